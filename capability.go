package vkboot

import (
	"sort"

	"github.com/charmbracelet/log"
)

// Availability comes back from the driver keyed by extension or layer name.
// hasRequired reports whether every required name is present. Matching is
// exact and case-sensitive; order and duplicates in required don't matter.
func hasRequired[V any](required []string, available map[string]V) bool {
	for _, name := range required {
		if _, ok := available[name]; !ok {
			return false
		}
	}
	return true
}

// logAvailable dumps the driver's advertised capability names at debug
// level, sorted so runs are comparable.
func logAvailable[V any](kind string, available map[string]V) {
	names := make([]string, 0, len(available))
	for name := range available {
		names = append(names, name)
	}
	sort.Strings(names)

	log.Debugf("%d available %ss", len(names), kind)
	for _, name := range names {
		log.Debugf("  %s: %s", kind, name)
	}
}
