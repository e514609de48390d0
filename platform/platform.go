// Package platform wraps the SDL2 windowing layer the acquisition pipeline
// treats as an external collaborator: window creation, drawable size, the
// instance extensions presentation needs, and the event pump.
package platform

import (
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// Init starts the SDL video and event subsystems.
func Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return errors.Wrap(err, "initialize SDL")
	}
	return nil
}

// Terminate shuts the windowing layer down. Call it only after every window
// has been destroyed.
func Terminate() {
	sdl.Quit()
}

// VulkanProcAddr returns the loader entry point the global driver is built
// from.
func VulkanProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// Window is a Vulkan-capable OS window.
type Window struct {
	handle *sdl.Window
}

// NewWindow creates a visible Vulkan-capable window.
func NewWindow(title string, width, height int, resizable bool) (*Window, error) {
	var flags uint32 = sdl.WINDOW_SHOWN | sdl.WINDOW_VULKAN
	if resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	handle, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), flags)
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}

	return &Window{handle: handle}, nil
}

// Handle exposes the underlying SDL window for surface creation.
func (w *Window) Handle() *sdl.Window {
	return w.handle
}

// RequiredInstanceExtensions reports the instance extensions the windowing
// layer needs in order to present to this window.
func (w *Window) RequiredInstanceExtensions() []string {
	return w.handle.VulkanGetInstanceExtensions()
}

// DrawableSize returns the window's drawable area in pixels.
func (w *Window) DrawableSize() (int, int) {
	width, height := w.handle.VulkanGetDrawableSize()
	return int(width), int(height)
}

// Destroy closes the window. Safe to call more than once.
func (w *Window) Destroy() {
	if w.handle != nil {
		_ = w.handle.Destroy()
		w.handle = nil
	}
}

// Pump drains pending events. It reports false once a quit event has
// arrived.
func Pump() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, quit := event.(*sdl.QuitEvent); quit {
			return false
		}
	}
	return true
}
