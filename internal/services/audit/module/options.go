package module

import (
	"time"

	"convenios/internal/platform/config"
)

// Options holds configuration settings for the audit module
type Options struct {
	Timeout time.Duration
}

// FromConfig reads AUDIT_* values from process config/env
// AUDIT_TIMEOUT (default 2s) caps a single sink insert
func FromConfig(cfg config.Conf) Options {
	a := cfg.Prefix("AUDIT_")
	return Options{
		Timeout: a.MayDuration("TIMEOUT", 2*time.Second),
	}
}
