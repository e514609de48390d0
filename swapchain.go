package vkboot

import (
	"github.com/charmbracelet/log"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// chooseSurfaceFormat prefers 8-bit BGRA in nonlinear sRGB; failing that,
// the first format the driver reported.
func chooseSurfaceFormat(available []khr_surface.SurfaceFormat) khr_surface.SurfaceFormat {
	for _, format := range available {
		if format.Format == core1_0.FormatB8G8R8A8SRGB && format.ColorSpace == khr_surface.ColorSpaceSRGBNonlinear {
			return format
		}
	}

	return available[0]
}

// choosePresentMode prefers mailbox for low latency. FIFO is the universal
// fallback; every conformant driver supports it, so it is returned without
// consulting the list.
func choosePresentMode(available []khr_surface.PresentMode) khr_surface.PresentMode {
	for _, mode := range available {
		if mode == khr_surface.PresentModeMailbox {
			return mode
		}
	}

	return khr_surface.PresentModeFIFO
}

// chooseExtent uses the surface's current extent verbatim when the driver
// defines one; otherwise the drawable size clamped per axis into the
// supported range. The wrapper reports the undefined-extent sentinel as -1.
func chooseExtent(capabilities *khr_surface.SurfaceCapabilities, drawableWidth, drawableHeight int) core1_0.Extent2D {
	if capabilities.CurrentExtent.Width != -1 {
		return capabilities.CurrentExtent
	}

	return core1_0.Extent2D{
		Width:  clamp(drawableWidth, capabilities.MinImageExtent.Width, capabilities.MaxImageExtent.Width),
		Height: clamp(drawableHeight, capabilities.MinImageExtent.Height, capabilities.MaxImageExtent.Height),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// chooseImageCount requests one image beyond the minimum, capped by the
// surface's maximum when it declares one. Zero means no upper bound.
func chooseImageCount(capabilities *khr_surface.SurfaceCapabilities) int {
	count := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && count > capabilities.MaxImageCount {
		count = capabilities.MaxImageCount
	}
	return count
}

func (c *Context) createSwapchain() error {
	c.swapchainExtension = khr_swapchain.CreateExtensionDriverFromCoreDriver(c.deviceDriver)

	support, err := querySwapchainSupport(c.surfaceExtension, c.surface, c.physicalDevice)
	if err != nil {
		return markWrap(err, ErrSwapchainCreation, "query swapchain support")
	}

	surfaceFormat := chooseSurfaceFormat(support.Formats)
	presentMode := choosePresentMode(support.PresentModes)
	drawableWidth, drawableHeight := c.window.DrawableSize()
	extent := chooseExtent(support.Capabilities, drawableWidth, drawableHeight)
	imageCount := chooseImageCount(support.Capabilities)

	// Concurrent sharing with both families listed only when graphics and
	// present live on different families; the exclusive case must not pass
	// an index list at all.
	sharingMode := core1_0.SharingModeExclusive
	var familyIndices []int
	if *c.queueIndices.GraphicsFamily != *c.queueIndices.PresentFamily {
		sharingMode = core1_0.SharingModeConcurrent
		familyIndices = []int{*c.queueIndices.GraphicsFamily, *c.queueIndices.PresentFamily}
	}

	swapchain, _, err := c.swapchainExtension.CreateSwapchain(nil, khr_swapchain.SwapchainCreateInfo{
		Surface: c.surface,

		MinImageCount:    imageCount,
		ImageFormat:      surfaceFormat.Format,
		ImageColorSpace:  surfaceFormat.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: familyIndices,

		PreTransform:   support.Capabilities.CurrentTransform,
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    presentMode,
		Clipped:        true,
	})
	if err != nil {
		return markWrap(err, ErrSwapchainCreation, "create swapchain")
	}
	c.swapchain = swapchain
	c.swapchainFormat = surfaceFormat.Format
	c.swapchainExtent = extent
	c.deferRelease("swapchain", func() { c.swapchainExtension.DestroySwapchain(c.swapchain, nil) })

	// The requested count is a lower bound; the driver may allocate more,
	// so the actual images must be re-queried.
	images, _, err := c.swapchainExtension.GetSwapchainImages(c.swapchain)
	if err != nil {
		return markWrap(err, ErrSwapchainCreation, "get swapchain images")
	}
	c.swapchainImages = images

	log.Debugf("swapchain created, %d images, extent %dx%d", len(images), extent.Width, extent.Height)
	return nil
}

// createImageViews makes one 2D color view per swapchain image: mip level 0
// only, one array layer, identity swizzle. The views keep index
// correspondence with the image slice for the swapchain's whole lifetime.
func (c *Context) createImageViews() error {
	for _, image := range c.swapchainImages {
		view, _, err := c.deviceDriver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
			Image:    image,
			ViewType: core1_0.ImageViewType2D,
			Format:   c.swapchainFormat,
			SubresourceRange: core1_0.ImageSubresourceRange{
				AspectMask:     core1_0.ImageAspectColor,
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		})
		if err != nil {
			// Views created before this point are already registered for
			// teardown.
			return markWrap(err, ErrImageViewCreation, "create swapchain image view")
		}

		c.swapchainViews = append(c.swapchainViews, view)
		c.deferRelease("image view", func() { c.deviceDriver.DestroyImageView(view, nil) })
	}

	return nil
}
