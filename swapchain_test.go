package vkboot

import (
	"testing"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

var (
	preferredFormat = khr_surface.SurfaceFormat{
		Format:     core1_0.FormatB8G8R8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
	linearBGRA = khr_surface.SurfaceFormat{
		Format:     core1_0.FormatB8G8R8A8UnsignedNormalized,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
	rgbaSRGB = khr_surface.SurfaceFormat{
		Format:     core1_0.FormatR8G8B8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
)

func TestChooseSurfaceFormat(t *testing.T) {
	tests := []struct {
		name      string
		available []khr_surface.SurfaceFormat
		want      khr_surface.SurfaceFormat
	}{
		{
			name:      "preferred format first",
			available: []khr_surface.SurfaceFormat{preferredFormat, linearBGRA},
			want:      preferredFormat,
		},
		{
			name:      "preferred format found regardless of position",
			available: []khr_surface.SurfaceFormat{linearBGRA, rgbaSRGB, preferredFormat},
			want:      preferredFormat,
		},
		{
			name:      "falls back to first available",
			available: []khr_surface.SurfaceFormat{linearBGRA, rgbaSRGB},
			want:      linearBGRA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chooseSurfaceFormat(tt.available); got != tt.want {
				t.Errorf("chooseSurfaceFormat() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChoosePresentMode(t *testing.T) {
	tests := []struct {
		name      string
		available []khr_surface.PresentMode
		want      khr_surface.PresentMode
	}{
		{
			name: "mailbox preferred when available",
			available: []khr_surface.PresentMode{
				khr_surface.PresentModeFIFO,
				khr_surface.PresentModeMailbox,
			},
			want: khr_surface.PresentModeMailbox,
		},
		{
			name:      "fifo fallback",
			available: []khr_surface.PresentMode{khr_surface.PresentModeFIFO},
			want:      khr_surface.PresentModeFIFO,
		},
		{
			// FIFO is guaranteed by the API, so it is the fallback even
			// when the reported list omits it.
			name:      "fifo fallback even when absent from the list",
			available: []khr_surface.PresentMode{khr_surface.PresentModeImmediate},
			want:      khr_surface.PresentModeFIFO,
		},
		{
			name:      "empty list",
			available: nil,
			want:      khr_surface.PresentModeFIFO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := choosePresentMode(tt.available); got != tt.want {
				t.Errorf("choosePresentMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChooseExtent(t *testing.T) {
	tests := []struct {
		name          string
		capabilities  khr_surface.SurfaceCapabilities
		width, height int
		want          core1_0.Extent2D
	}{
		{
			name: "defined current extent used verbatim",
			capabilities: khr_surface.SurfaceCapabilities{
				CurrentExtent:  core1_0.Extent2D{Width: 1024, Height: 768},
				MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
				MaxImageExtent: core1_0.Extent2D{Width: 4096, Height: 4096},
			},
			width:  800,
			height: 600,
			want:   core1_0.Extent2D{Width: 1024, Height: 768},
		},
		{
			name: "undefined extent clamps window size to maximum",
			capabilities: khr_surface.SurfaceCapabilities{
				CurrentExtent:  core1_0.Extent2D{Width: -1, Height: -1},
				MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
				MaxImageExtent: core1_0.Extent2D{Width: 1280, Height: 720},
			},
			width:  1920,
			height: 1080,
			want:   core1_0.Extent2D{Width: 1280, Height: 720},
		},
		{
			name: "undefined extent clamps window size to minimum",
			capabilities: khr_surface.SurfaceCapabilities{
				CurrentExtent:  core1_0.Extent2D{Width: -1, Height: -1},
				MinImageExtent: core1_0.Extent2D{Width: 640, Height: 480},
				MaxImageExtent: core1_0.Extent2D{Width: 4096, Height: 4096},
			},
			width:  320,
			height: 200,
			want:   core1_0.Extent2D{Width: 640, Height: 480},
		},
		{
			name: "axes clamp independently",
			capabilities: khr_surface.SurfaceCapabilities{
				CurrentExtent:  core1_0.Extent2D{Width: -1, Height: -1},
				MinImageExtent: core1_0.Extent2D{Width: 1, Height: 600},
				MaxImageExtent: core1_0.Extent2D{Width: 800, Height: 4096},
			},
			width:  1920,
			height: 400,
			want:   core1_0.Extent2D{Width: 800, Height: 600},
		},
		{
			name: "window size inside range passes through",
			capabilities: khr_surface.SurfaceCapabilities{
				CurrentExtent:  core1_0.Extent2D{Width: -1, Height: -1},
				MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
				MaxImageExtent: core1_0.Extent2D{Width: 4096, Height: 4096},
			},
			width:  800,
			height: 600,
			want:   core1_0.Extent2D{Width: 800, Height: 600},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chooseExtent(&tt.capabilities, tt.width, tt.height); got != tt.want {
				t.Errorf("chooseExtent() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestChooseImageCount(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		want     int
	}{
		{name: "no upper bound", min: 2, max: 0, want: 3},
		{name: "capped at maximum", min: 2, max: 3, want: 3},
		{name: "roomy maximum", min: 2, max: 8, want: 3},
		{name: "min equals max", min: 3, max: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capabilities := khr_surface.SurfaceCapabilities{
				MinImageCount: tt.min,
				MaxImageCount: tt.max,
			}
			if got := chooseImageCount(&capabilities); got != tt.want {
				t.Errorf("chooseImageCount(min=%d, max=%d) = %d, want %d", tt.min, tt.max, got, tt.want)
			}
		})
	}
}
