package vkboot

import (
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
)

// requiredInstanceExtensions is the window-reported extension set plus
// portability enumeration, plus debug utils when validation is on.
func (c *Context) requiredInstanceExtensions() []string {
	extensions := append([]string{}, c.window.RequiredInstanceExtensions()...)
	extensions = append(extensions, khr_portability_enumeration.ExtensionName)
	if c.config.Validation {
		extensions = append(extensions, ext_debug_utils.ExtensionName)
	}
	return extensions
}

func (c *Context) createInstance() error {
	available, _, err := c.globalDriver.AvailableExtensions()
	if err != nil {
		available = nil
	}
	logAvailable("instance extension", available)

	layers, _, err := c.globalDriver.AvailableLayers()
	if err != nil {
		layers = nil
	}
	logAvailable("instance layer", layers)

	// Validation must be confirmed before any create call so it never
	// degrades silently.
	if c.config.Validation && !hasRequired(c.config.ValidationLayers, layers) {
		return errors.Mark(
			errors.Newf("validation layers requested, but not available: %v", c.config.ValidationLayers),
			ErrUnsupportedLayer)
	}

	createInfo := core1_0.InstanceCreateInfo{
		ApplicationName:    c.config.AppName,
		ApplicationVersion: common.CreateVersion(1, 0, 0),
		EngineName:         "No Engine",
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         common.Vulkan1_2,

		EnabledExtensionNames: c.requiredInstanceExtensions(),

		// Set unconditionally so environments that only expose
		// portability-subset devices still enumerate them.
		Flags: khr_portability_enumeration.InstanceCreateEnumeratePortability,
	}

	if c.config.Validation {
		createInfo.EnabledLayerNames = c.config.ValidationLayers

		// Chained into the instance create info itself so validation also
		// covers the CreateInstance call.
		createInfo.Next = c.debugMessengerCreateInfo()
	}

	c.instanceDriver, _, err = c.globalDriver.CreateInstance(nil, createInfo)
	if err != nil {
		return markWrap(err, ErrInstanceCreation, "create instance")
	}
	c.deferRelease("instance", func() { c.instanceDriver.DestroyInstance(nil) })

	log.Debug("instance created")
	return nil
}
