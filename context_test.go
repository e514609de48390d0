package vkboot

import (
	"reflect"
	"testing"
)

func TestDestroyReversesCreationOrder(t *testing.T) {
	c := &Context{}
	var destroyed []string

	created := []string{"instance", "debug messenger", "surface", "logical device", "swapchain", "image view"}
	for _, name := range created {
		name := name
		c.deferRelease(name, func() { destroyed = append(destroyed, name) })
	}

	c.Destroy()

	want := []string{"image view", "swapchain", "logical device", "surface", "debug messenger", "instance"}
	if !reflect.DeepEqual(destroyed, want) {
		t.Errorf("destroy order = %v, want %v", destroyed, want)
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	c := &Context{}
	count := 0
	c.deferRelease("instance", func() { count++ })

	c.Destroy()
	c.Destroy()

	if count != 1 {
		t.Errorf("release ran %d times, want exactly once", count)
	}
}

// A failure part-way through bring-up must still release everything created
// before it, once each, in reverse order. Optional resources that never got
// created have no release entry at all.
func TestDestroyAfterPartialInitialization(t *testing.T) {
	steps := []string{"instance", "surface", "logical device", "swapchain"}

	for failAfter := 0; failAfter <= len(steps); failAfter++ {
		c := &Context{}
		counts := make(map[string]int)

		for _, name := range steps[:failAfter] {
			name := name
			c.deferRelease(name, func() { counts[name]++ })
		}

		c.Destroy()

		for i, name := range steps {
			want := 0
			if i < failAfter {
				want = 1
			}
			if counts[name] != want {
				t.Errorf("fail after %d steps: %s released %d times, want %d",
					failAfter, name, counts[name], want)
			}
		}
	}
}

func TestDestroyOnEmptyContext(t *testing.T) {
	c := &Context{}
	c.Destroy() // must not panic
}
