//go:build release

package vkboot

const validationDefault = false
