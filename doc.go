// Package vkboot acquires a Vulkan rendering context and tears it down
// again. Bring-up runs as a strictly linear pipeline: instance, optional
// debug messenger, window surface, physical device selection, logical device
// and queues, then a swapchain with one image view per swapchain image.
// Teardown releases every owned handle in the exact reverse order.
//
// The package performs no rendering. It creates no command buffers, fences
// or semaphores, and it has no swapchain recreation path; it exists to get
// the capability negotiation and destruction ordering right, which is the
// part of Vulkan bring-up that fails as driver crashes instead of clean
// errors when done wrong.
package vkboot
