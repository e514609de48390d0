//go:build !release

package vkboot

const validationDefault = true
