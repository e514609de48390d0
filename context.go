package vkboot

import (
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"

	"github.com/vkboot/vkboot/platform"
)

// Context is the ownership record for every handle acquired during bring-up.
// Each step stores the handles it produced and registers their release, so
// teardown is a plain reverse walk over what actually got created.
type Context struct {
	config Config
	window *platform.Window

	globalDriver   core1_0.GlobalDriver
	instanceDriver core1_0.CoreInstanceDriver
	deviceDriver   core1_0.CoreDeviceDriver

	debugDriver    ext_debug_utils.ExtensionDriver
	debugMessenger ext_debug_utils.DebugUtilsMessenger

	surfaceExtension khr_surface.ExtensionDriver
	surface          khr_surface.Surface

	// Enumerated, not owned; physical devices are never destroyed.
	physicalDevice core1_0.PhysicalDevice
	queueIndices   QueueFamilyIndices

	// Borrowed from the device, not separately owned.
	graphicsQueue core1_0.Queue
	presentQueue  core1_0.Queue

	swapchainExtension khr_swapchain.ExtensionDriver
	swapchain          khr_swapchain.Swapchain
	swapchainImages    []core1_0.Image
	swapchainFormat    core1_0.Format
	swapchainExtent    core1_0.Extent2D
	swapchainViews     []core1_0.ImageView

	releases []release
}

type release struct {
	name    string
	destroy func()
}

// New acquires a complete rendering context for the window. The steps run in
// strict dependency order and the first failure aborts the whole pipeline;
// on error everything created so far has already been torn down.
func New(cfg Config, window *platform.Window) (*Context, error) {
	c := &Context{
		config: cfg,
		window: window,
	}

	if err := c.acquire(); err != nil {
		c.Destroy()
		return nil, err
	}
	return c, nil
}

func (c *Context) acquire() error {
	if err := c.loadDriver(); err != nil {
		return err
	}
	if err := c.createInstance(); err != nil {
		return err
	}
	if err := c.setupDebugMessenger(); err != nil {
		return err
	}
	if err := c.createSurface(); err != nil {
		return err
	}
	if err := c.pickPhysicalDevice(); err != nil {
		return err
	}
	if err := c.createLogicalDevice(); err != nil {
		return err
	}
	if err := c.createSwapchain(); err != nil {
		return err
	}
	return c.createImageViews()
}

func (c *Context) loadDriver() error {
	globalDriver, err := core.CreateDriverFromProcAddr(platform.VulkanProcAddr())
	if err != nil {
		return errors.Wrap(err, "load vulkan driver")
	}
	c.globalDriver = globalDriver
	return nil
}

// deferRelease records the release of a just-created resource. Creation
// order is teardown order, reversed.
func (c *Context) deferRelease(name string, destroy func()) {
	c.releases = append(c.releases, release{name: name, destroy: destroy})
}

// Destroy releases every owned handle in reverse creation order: image views
// before the swapchain, the swapchain before the device, the device before
// the messenger and surface, and those before the instance. Resources that
// were never created have no entry, so a partially initialized context tears
// down cleanly. Calling Destroy again is a no-op.
func (c *Context) Destroy() {
	for i := len(c.releases) - 1; i >= 0; i-- {
		log.Debugf("destroying %s", c.releases[i].name)
		c.releases[i].destroy()
	}
	c.releases = nil
}

// SwapchainFormat is the pixel format negotiated for the swapchain images.
func (c *Context) SwapchainFormat() core1_0.Format { return c.swapchainFormat }

// SwapchainExtent is the negotiated image extent in pixels.
func (c *Context) SwapchainExtent() core1_0.Extent2D { return c.swapchainExtent }

// SwapchainImageCount is the number of images the driver actually allocated,
// which may exceed the requested minimum.
func (c *Context) SwapchainImageCount() int { return len(c.swapchainImages) }

// GraphicsQueue is the queue retrieved for the graphics family.
func (c *Context) GraphicsQueue() core1_0.Queue { return c.graphicsQueue }

// PresentQueue is the queue retrieved for the present family. It may be the
// same queue as GraphicsQueue when one family serves both roles.
func (c *Context) PresentQueue() core1_0.Queue { return c.presentQueue }
