package vkboot

import (
	"github.com/charmbracelet/log"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
)

func (c *Context) debugMessengerCreateInfo() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityVerbose | ext_debug_utils.SeverityWarning | ext_debug_utils.SeverityError,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    debugCallback,
	}
}

// setupDebugMessenger installs the diagnostic callback. Skipped entirely
// unless validation is on. The wrapper resolves the messenger entry points
// from the instance at install time, so a driver without the extension
// surfaces here as an error rather than a crash.
func (c *Context) setupDebugMessenger() error {
	if !c.config.Validation {
		return nil
	}

	c.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(c.instanceDriver)

	var err error
	c.debugMessenger, _, err = c.debugDriver.CreateDebugUtilsMessenger(nil, c.debugMessengerCreateInfo())
	if err != nil {
		return markWrap(err, ErrExtensionUnavailable, "install debug messenger")
	}
	c.deferRelease("debug messenger", func() {
		c.debugDriver.DestroyDebugUtilsMessenger(c.debugMessenger, nil)
	})

	log.Debug("debug messenger installed")
	return nil
}

// severityLabel maps message severity to a display label. The highest set
// bit wins.
func severityLabel(severity ext_debug_utils.DebugUtilsMessageSeverityFlags) string {
	switch {
	case severity&ext_debug_utils.SeverityError != 0:
		return "ERROR"
	case severity&ext_debug_utils.SeverityWarning != 0:
		return "WARN "
	default:
		return "INFO "
	}
}

// debugCallback forwards driver diagnostics to the logger. Diagnostics are a
// side channel: the callback never fails and always returns false so the
// triggering call is not aborted.
func debugCallback(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	label := severityLabel(severity)

	switch {
	case severity&ext_debug_utils.SeverityError != 0:
		log.Errorf("[%s] %s", label, data.Message)
	case severity&ext_debug_utils.SeverityWarning != 0:
		log.Warnf("[%s] %s", label, data.Message)
	default:
		log.Infof("[%s] %s", label, data.Message)
	}

	return false
}
