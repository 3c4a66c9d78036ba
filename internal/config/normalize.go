// internal/config/normalize.go
package config

import "sort"

// Defaults applied by Normalize.
const (
	DefaultPollIntervalMs  = 100
	DefaultPollTimeoutMs   = 1000
	DefaultMirrorTimeoutMs = 1000
	DeviceNameMaxChars     = 16
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// Normalize device name:
	// - ASCII already validated
	// - Truncate to max 16 characters
	if len(cfg.Device.Name) > DeviceNameMaxChars {
		cfg.Device.Name = cfg.Device.Name[:DeviceNameMaxChars]
	}

	// Axis and input order defines the write order of the setup plan.
	sort.Slice(cfg.Device.Motors, func(i, j int) bool {
		return cfg.Device.Motors[i].Axis < cfg.Device.Motors[j].Axis
	})
	sort.Slice(cfg.Device.Inputs, func(i, j int) bool {
		return cfg.Device.Inputs[i].Input < cfg.Device.Inputs[j].Input
	})

	if cfg.Poll.IntervalMs == 0 {
		cfg.Poll.IntervalMs = DefaultPollIntervalMs
	}
	if cfg.Poll.TimeoutMs == 0 {
		cfg.Poll.TimeoutMs = DefaultPollTimeoutMs
	}

	if cfg.Mirror != nil && cfg.Mirror.TimeoutMs == 0 {
		cfg.Mirror.TimeoutMs = DefaultMirrorTimeoutMs
	}
}
