package vkboot

import (
	"github.com/vkngwrapper/core/v3/core1_0"
)

// QueueFamilyIndices records which queue family serves each role. A field is
// nil until a family with that capability has been found; the same family
// may serve both roles.
type QueueFamilyIndices struct {
	GraphicsFamily *int
	PresentFamily  *int
}

// IsComplete reports whether both roles have a family. Completeness is
// always derived from both fields, never inferred from one.
func (i *QueueFamilyIndices) IsComplete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

// findQueueFamilies scans families in index order and keeps the first index
// whose flags include graphics and, independently, the first index for which
// presentSupport reports true. The scan stops as soon as both are found.
func findQueueFamilies(families []core1_0.QueueFamilyProperties, presentSupport func(index int) (bool, error)) (QueueFamilyIndices, error) {
	var indices QueueFamilyIndices

	for familyIdx := range families {
		if indices.GraphicsFamily == nil && families[familyIdx].QueueFlags&core1_0.QueueGraphics != 0 {
			idx := familyIdx
			indices.GraphicsFamily = &idx
		}

		if indices.PresentFamily == nil {
			supported, err := presentSupport(familyIdx)
			if err != nil {
				return indices, err
			}
			if supported {
				idx := familyIdx
				indices.PresentFamily = &idx
			}
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices, nil
}
