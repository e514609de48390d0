package vkboot

import "github.com/cockroachdb/errors"

// One sentinel per acquisition stage. Every failure is terminal: there is no
// retry, fallback device or degraded mode, so callers only ever report the
// error and exit. Driver causes stay attached through errors.Mark, which
// keeps errors.Is matching the sentinel while %+v still prints the full
// chain.
var (
	// ErrPlatformInit means the windowing subsystem failed to start.
	ErrPlatformInit = errors.New("windowing platform failed to initialize")

	// ErrUnsupportedLayer means a requested validation layer is not
	// installed. Raised before instance creation is even attempted, so
	// validation never degrades silently.
	ErrUnsupportedLayer = errors.New("requested validation layer is not available")

	// ErrInstanceCreation means the driver rejected instance creation.
	ErrInstanceCreation = errors.New("instance creation failed")

	// ErrExtensionUnavailable means the debug messenger entry points could
	// not be resolved or the install call was rejected.
	ErrExtensionUnavailable = errors.New("debug messenger extension is not available")

	// ErrSurfaceCreation means the windowing layer could not produce a
	// presentable surface for the instance.
	ErrSurfaceCreation = errors.New("surface creation failed")

	// ErrNoGPU means the instance exposes no physical devices at all.
	ErrNoGPU = errors.New("no GPU with Vulkan support")

	// ErrNoSuitableDevice means devices exist but none passed the
	// queue-family, extension and swapchain suitability checks.
	ErrNoSuitableDevice = errors.New("no suitable GPU found")

	// ErrDeviceCreation means logical device creation failed.
	ErrDeviceCreation = errors.New("logical device creation failed")

	// ErrSwapchainCreation means swapchain negotiation or creation failed.
	ErrSwapchainCreation = errors.New("swapchain creation failed")

	// ErrImageViewCreation means a view could not be created for one of the
	// swapchain images. Views created before the failure remain owned and
	// are destroyed during teardown.
	ErrImageViewCreation = errors.New("image view creation failed")
)

func markWrap(err, sentinel error, msg string) error {
	return errors.Mark(errors.Wrap(err, msg), sentinel)
}
