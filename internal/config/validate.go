// internal/config/validate.go
package config

import (
	"errors"
	"fmt"

	"github.com/tamzrod/harp-stepper/internal/stepper"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
//
// Numeric values outside the advisory register ranges are NOT errors:
// they are reported by setup.BuildPlan and still sent to the device.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}

	d := cfg.Device

	// device name sanity (ASCII only)
	for i := 0; i < len(d.Name); i++ {
		if d.Name[i] > 0x7F {
			return fmt.Errorf("device %q: name must contain ASCII characters only", d.Name)
		}
	}

	// ------------------------------------------------------------
	// MOTORS
	// ------------------------------------------------------------

	seenAxis := make(map[uint8]bool)
	for _, m := range d.Motors {
		if !stepper.Axis(m.Axis).Valid() {
			return fmt.Errorf("motor axis %d: must be 0..%d", m.Axis, stepper.AxisCount-1)
		}
		if seenAxis[m.Axis] {
			return fmt.Errorf("motor axis %d: defined more than once", m.Axis)
		}
		seenAxis[m.Axis] = true

		if m.OperationMode != "" {
			if _, err := stepper.ParseMotorOperationMode(m.OperationMode); err != nil {
				return fmt.Errorf("motor axis %d: %w", m.Axis, err)
			}
		}
		if m.MicrostepResolution != nil {
			if _, err := stepper.MicrostepResolutionOf(*m.MicrostepResolution); err != nil {
				return fmt.Errorf("motor axis %d: %w", m.Axis, err)
			}
		}
		if m.HoldCurrentReduction != nil {
			if _, err := stepper.HoldCurrentReductionOf(*m.HoldCurrentReduction); err != nil {
				return fmt.Errorf("motor axis %d: %w", m.Axis, err)
			}
		}
	}

	// ------------------------------------------------------------
	// ENCODERS
	// ------------------------------------------------------------

	if d.Encoders.Mode != "" {
		if _, err := stepper.ParseEncoderMode(d.Encoders.Mode); err != nil {
			return fmt.Errorf("encoders: %w", err)
		}
	}
	if d.Encoders.RateHz != nil {
		if _, err := stepper.EncoderRateOf(*d.Encoders.RateHz); err != nil {
			return fmt.Errorf("encoders: %w", err)
		}
	}
	for _, e := range d.Encoders.Enabled {
		if e >= stepper.EncoderCount {
			return fmt.Errorf("encoders: encoder %d: must be 0..%d", e, stepper.EncoderCount-1)
		}
	}

	// ------------------------------------------------------------
	// DIGITAL INPUTS
	// ------------------------------------------------------------

	seenInput := make(map[uint8]bool)
	for _, in := range d.Inputs {
		if in.Input >= stepper.InputCount {
			return fmt.Errorf("input %d: must be 0..%d", in.Input, stepper.InputCount-1)
		}
		if seenInput[in.Input] {
			return fmt.Errorf("input %d: defined more than once", in.Input)
		}
		seenInput[in.Input] = true

		if in.OperationMode != "" {
			if _, err := stepper.ParseInputOperationMode(in.OperationMode); err != nil {
				return fmt.Errorf("input %d: %w", in.Input, err)
			}
		}
		if in.TriggerMode != "" {
			if _, err := stepper.ParseTriggerMode(in.TriggerMode); err != nil {
				return fmt.Errorf("input %d: %w", in.Input, err)
			}
		}
	}

	if d.EmergencyStopMode != "" {
		if _, err := stepper.ParseTriggerMode(d.EmergencyStopMode); err != nil {
			return fmt.Errorf("emergency_stop_mode: %w", err)
		}
	}

	// ------------------------------------------------------------
	// POLL / MIRROR
	// ------------------------------------------------------------

	if cfg.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must be >= 0, got %d", cfg.Poll.IntervalMs)
	}
	if cfg.Poll.TimeoutMs < 0 {
		return fmt.Errorf("poll: timeout_ms must be >= 0, got %d", cfg.Poll.TimeoutMs)
	}

	if m := cfg.Mirror; m != nil {
		if m.Endpoint == "" {
			return errors.New("mirror: endpoint required")
		}
		if m.TimeoutMs < 0 {
			return fmt.Errorf("mirror: timeout_ms must be >= 0, got %d", m.TimeoutMs)
		}
	}

	return nil
}
