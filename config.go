package vkboot

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// Defaults for the window the context presents to.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "Hello, Window!"
)

// Config carries the startup values for context acquisition. Zero-config use
// is expected; DefaultConfig covers everything and Load only overrides what
// a TOML file explicitly sets.
type Config struct {
	// AppName is reported to the driver at instance creation.
	AppName string `toml:"app_name"`

	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`

	// Validation enables the validation layer and the debug messenger.
	// Defaults to on in debug builds and off when built with -tags release.
	Validation bool `toml:"validation"`

	// ValidationLayers are checked against the installed layers before
	// instance creation whenever Validation is set.
	ValidationLayers []string `toml:"validation_layers"`

	// DeviceExtensions must all be advertised by a physical device for it
	// to be considered suitable.
	DeviceExtensions []string `toml:"device_extensions"`

	// FramesInFlight is carried for consumers that submit work. Nothing in
	// this module reads it: no per-frame synchronization objects exist
	// because no rendering happens here.
	FramesInFlight int `toml:"frames_in_flight"`
}

// DefaultConfig returns the stock configuration: an 800x600 fixed-size
// window, the Khronos validation layer in debug builds, and the swapchain
// extension as the only required device extension.
func DefaultConfig() Config {
	return Config{
		AppName:          "Hello Window",
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Title:            DefaultTitle,
		Resizable:        false,
		Validation:       validationDefault,
		ValidationLayers: []string{"VK_LAYER_KHRONOS_validation"},
		DeviceExtensions: []string{khr_swapchain.ExtensionName},
		FramesInFlight:   2,
	}
}

// Load reads a TOML configuration file over the defaults. A missing file is
// not an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}
