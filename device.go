package vkboot

import (
	"github.com/charmbracelet/log"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
)

// createLogicalDevice builds the device with one queue-create entry per
// distinct required family and retrieves one queue handle per role.
func (c *Context) createLogicalDevice() error {
	indices, err := c.findDeviceQueueFamilies(c.physicalDevice)
	if err != nil {
		return markWrap(err, ErrDeviceCreation, "query queue families")
	}
	c.queueIndices = indices

	// A family that serves both roles gets exactly one entry.
	uniqueFamilies := []int{*indices.GraphicsFamily}
	if *indices.PresentFamily != uniqueFamilies[0] {
		uniqueFamilies = append(uniqueFamilies, *indices.PresentFamily)
	}

	queuePriority := float32(1.0)
	var queueCreateInfos []core1_0.DeviceQueueCreateInfo
	for _, family := range uniqueFamilies {
		queueCreateInfos = append(queueCreateInfos, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: family,
			QueuePriorities:  []float32{queuePriority},
		})
	}

	extensionNames := append([]string{}, c.config.DeviceExtensions...)

	// Portability-subset devices require the extension to be requested
	// whenever the implementation advertises it.
	available, _, err := c.instanceDriver.EnumerateDeviceExtensionProperties(c.physicalDevice)
	if err != nil {
		available = nil
	}
	if _, supported := available[khr_portability_subset.ExtensionName]; supported {
		extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
	}

	createInfo := core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueCreateInfos,
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledExtensionNames: extensionNames,
	}
	if c.config.Validation {
		// Current loaders ignore device-level layers but older ones still
		// read them.
		createInfo.EnabledLayerNames = c.config.ValidationLayers
	}

	c.deviceDriver, _, err = c.instanceDriver.CreateDevice(c.physicalDevice, nil, createInfo)
	if err != nil {
		return markWrap(err, ErrDeviceCreation, "create logical device")
	}
	c.deferRelease("logical device", func() { c.deviceDriver.DestroyDevice(nil) })

	c.graphicsQueue = c.deviceDriver.GetQueue(*indices.GraphicsFamily, 0)
	c.presentQueue = c.deviceDriver.GetQueue(*indices.PresentFamily, 0)

	log.Debugf("logical device created, graphics family %d, present family %d",
		*indices.GraphicsFamily, *indices.PresentFamily)
	return nil
}
