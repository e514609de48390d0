package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"

	"github.com/vkboot/vkboot"
	"github.com/vkboot/vkboot/platform"
)

const configPath = "vkboot.toml"

func main() {
	log.SetLevel(log.DebugLevel)

	if err := run(); err != nil {
		log.Errorf("%+v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := vkboot.Load(configPath)
	if err != nil {
		return err
	}

	if err := platform.Init(); err != nil {
		return errors.Mark(err, vkboot.ErrPlatformInit)
	}
	defer platform.Terminate()

	window, err := platform.NewWindow(cfg.Title, cfg.Width, cfg.Height, cfg.Resizable)
	if err != nil {
		return errors.Mark(err, vkboot.ErrPlatformInit)
	}
	defer window.Destroy()

	start := hrtime.Now()
	ctx, err := vkboot.New(cfg, window)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	extent := ctx.SwapchainExtent()
	log.Infof("rendering context ready in %v: %d swapchain images at %dx%d",
		hrtime.Since(start), ctx.SwapchainImageCount(), extent.Width, extent.Height)

	// No rendering happens; the only runtime work is the event pump.
	for platform.Pump() {
	}

	return nil
}
