package vkboot

import (
	"github.com/charmbracelet/log"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
)

// createSurface binds a presentable surface to the window. The surface is
// owned by the context, scoped to the instance, and must outlive every
// device and swapchain operation that references it.
func (c *Context) createSurface() error {
	c.surfaceExtension = khr_surface.CreateExtensionDriverFromCoreDriver(c.instanceDriver)

	surface, err := vkng_sdl2.CreateSurface(c.instanceDriver.Instance(), c.surfaceExtension, c.window.Handle())
	if err != nil {
		return markWrap(err, ErrSurfaceCreation, "create window surface")
	}
	c.surface = surface
	c.deferRelease("surface", func() { c.surfaceExtension.DestroySurface(c.surface, nil) })

	log.Debug("window surface created")
	return nil
}
