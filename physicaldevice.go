package vkboot

import (
	"github.com/charmbracelet/log"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// SwapchainSupportDetails is what the surface offers on a given physical
// device, queried live from the driver. Never cached across devices.
type SwapchainSupportDetails struct {
	Capabilities *khr_surface.SurfaceCapabilities
	Formats      []khr_surface.SurfaceFormat
	PresentModes []khr_surface.PresentMode
}

func (d SwapchainSupportDetails) adequate() bool {
	return len(d.Formats) > 0 && len(d.PresentModes) > 0
}

func querySwapchainSupport(surfaceExtension khr_surface.ExtensionDriver, surface khr_surface.Surface, device core1_0.PhysicalDevice) (SwapchainSupportDetails, error) {
	var details SwapchainSupportDetails
	var err error

	details.Capabilities, _, err = surfaceExtension.GetPhysicalDeviceSurfaceCapabilities(surface, device)
	if err != nil {
		return details, err
	}

	details.Formats, _, err = surfaceExtension.GetPhysicalDeviceSurfaceFormats(surface, device)
	if err != nil {
		return details, err
	}

	details.PresentModes, _, err = surfaceExtension.GetPhysicalDeviceSurfacePresentModes(surface, device)
	return details, err
}

// deviceSuitable is the suitability predicate over the three checks a
// candidate must pass. Split out from the driver queries so it can be
// exercised directly.
func deviceSuitable(indices QueueFamilyIndices, extensionsSupported bool, support SwapchainSupportDetails) bool {
	return indices.IsComplete() && extensionsSupported && support.adequate()
}

// pickPhysicalDevice selects the first device, in enumeration order, that
// has complete queue families, carries the required device extensions and
// offers at least one surface format and present mode. There is no scoring;
// first fit wins.
func (c *Context) pickPhysicalDevice() error {
	devices, _, err := c.instanceDriver.EnumeratePhysicalDevices()
	if err != nil {
		return markWrap(err, ErrNoGPU, "enumerate physical devices")
	}
	if len(devices) == 0 {
		return ErrNoGPU
	}

	for _, device := range devices {
		if c.isDeviceSuitable(device) {
			c.physicalDevice = device

			if properties, err := c.instanceDriver.GetPhysicalDeviceProperties(device); err == nil {
				log.Infof("selected physical device %q", properties.DeviceName)
			}
			return nil
		}
	}

	return ErrNoSuitableDevice
}

// isDeviceSuitable runs the three checks against the driver. Any query
// failure counts as zero capability for that check; it is never fatal on its
// own because the candidate simply fails suitability.
func (c *Context) isDeviceSuitable(device core1_0.PhysicalDevice) bool {
	indices, err := c.findDeviceQueueFamilies(device)
	if err != nil {
		return false
	}

	available, _, err := c.instanceDriver.EnumerateDeviceExtensionProperties(device)
	if err != nil {
		available = nil
	}
	extensionsSupported := hasRequired(c.config.DeviceExtensions, available)

	// Swapchain support is only meaningful once the swapchain extension is
	// known to be there.
	var support SwapchainSupportDetails
	if extensionsSupported {
		support, err = querySwapchainSupport(c.surfaceExtension, c.surface, device)
		if err != nil {
			return false
		}
	}

	return deviceSuitable(indices, extensionsSupported, support)
}

func (c *Context) findDeviceQueueFamilies(device core1_0.PhysicalDevice) (QueueFamilyIndices, error) {
	families := c.instanceDriver.GetPhysicalDeviceQueueFamilyProperties(device)

	return findQueueFamilies(families, func(index int) (bool, error) {
		supported, _, err := c.surfaceExtension.GetPhysicalDeviceSurfaceSupport(c.surface, device, index)
		return supported, err
	})
}
