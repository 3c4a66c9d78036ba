// internal/config/validate_test.go
package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/tamzrod/harp-stepper/internal/stepper"
)

// helper to build a config with one motor quickly
func withMotor(m MotorConfig) *Config {
	return &Config{
		Device: DeviceConfig{
			Name:   "rig-01",
			Motors: []MotorConfig{m},
		},
	}
}

func intp(v int) *int { return &v }

func f32p(v float32) *float32 { return &v }

// ---- tests ----

const sampleProfile = `
device:
  name: rig-01
  motors:
    - axis: 1
      operation_mode: dynamic_movements
      microstep_resolution: 16
      maximum_current_rms: 0.5
      hold_current_reduction: 50
      nominal_step_interval: 250
      enabled: true
    - axis: 0
      operation_mode: quiet_mode
  encoders:
    mode: position
    rate_hz: 250
    enabled: [0, 2]
  inputs:
    - input: 0
      operation_mode: event_and_stop_motor0
      trigger_mode: rising_edge
      enabled: true
  emergency_stop_mode: falling_edge
mirror:
  endpoint: 127.0.0.1:502
  unit_id: 7
`

func TestParse_SampleProfile(t *testing.T) {
	cfg, err := Parse([]byte(sampleProfile))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("validate: %v", err)
	}
	Normalize(cfg)

	if len(cfg.Device.Motors) != 2 || cfg.Device.Motors[0].Axis != 0 {
		t.Fatalf("motors not sorted by axis: %+v", cfg.Device.Motors)
	}
	m := cfg.Device.Motors[1]
	if m.MaximumCurrentRms == nil || *m.MaximumCurrentRms != 0.5 {
		t.Fatalf("unexpected current: %v", m.MaximumCurrentRms)
	}
	if m.MaximumStepInterval != nil {
		t.Fatalf("unset field must stay nil")
	}
	if cfg.Poll.IntervalMs != DefaultPollIntervalMs || cfg.Poll.TimeoutMs != DefaultPollTimeoutMs {
		t.Fatalf("poll defaults not applied: %+v", cfg.Poll)
	}
	if cfg.Mirror == nil || cfg.Mirror.UnitID != 7 || cfg.Mirror.TimeoutMs != DefaultMirrorTimeoutMs {
		t.Fatalf("unexpected mirror: %+v", cfg.Mirror)
	}
}

func TestParse_UnknownKeyRejected(t *testing.T) {
	_, err := Parse([]byte("device:\n  nmae: typo\n"))
	if err == nil {
		t.Fatalf("expected unknown field error, got nil")
	}
}

func TestValidate_AxisOutOfRange(t *testing.T) {
	if err := Validate(withMotor(MotorConfig{Axis: 4})); err == nil {
		t.Fatalf("expected axis error, got nil")
	}
}

func TestValidate_DuplicateAxis(t *testing.T) {
	cfg := withMotor(MotorConfig{Axis: 2})
	cfg.Device.Motors = append(cfg.Device.Motors, MotorConfig{Axis: 2})

	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "more than once") {
		t.Fatalf("expected duplicate axis error, got %v", err)
	}
}

func TestValidate_UnknownEnumNames(t *testing.T) {
	cases := []*Config{
		withMotor(MotorConfig{OperationMode: "turbo"}),
		withMotor(MotorConfig{MicrostepResolution: intp(128)}),
		withMotor(MotorConfig{HoldCurrentReduction: intp(33)}),
		{Device: DeviceConfig{Encoders: EncoderConfig{Mode: "velocity"}}},
		{Device: DeviceConfig{Encoders: EncoderConfig{RateHz: intp(1000)}}},
		{Device: DeviceConfig{Inputs: []InputConfig{{Input: 1, TriggerMode: "both"}}}},
		{Device: DeviceConfig{Inputs: []InputConfig{{Input: 1, OperationMode: "stop_all"}}}},
		{Device: DeviceConfig{EmergencyStopMode: "level"}},
	}

	for i, cfg := range cases {
		if err := Validate(cfg); !errors.Is(err, stepper.ErrUnknownName) {
			t.Fatalf("case %d: expected unknown name, got %v", i, err)
		}
	}
}

func TestValidate_OutOfRangeNumericIsNotAnError(t *testing.T) {
	cfg := withMotor(MotorConfig{Axis: 0, MaximumCurrentRms: f32p(5.0)})
	if err := Validate(cfg); err != nil {
		t.Fatalf("advisory range must not fail validation: %v", err)
	}
}

func TestValidate_EncoderAndInputIndices(t *testing.T) {
	bad := []*Config{
		{Device: DeviceConfig{Encoders: EncoderConfig{Enabled: []uint8{3}}}},
		{Device: DeviceConfig{Inputs: []InputConfig{{Input: 4}}}},
		{Device: DeviceConfig{Inputs: []InputConfig{{Input: 0}, {Input: 0}}}},
	}
	for i, cfg := range bad {
		if err := Validate(cfg); err == nil {
			t.Fatalf("case %d: expected error, got nil", i)
		}
	}
}

func TestValidate_NonASCIIName(t *testing.T) {
	cfg := &Config{Device: DeviceConfig{Name: "prüfstand"}}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected ASCII error, got nil")
	}
}

func TestValidate_MirrorEndpointRequired(t *testing.T) {
	cfg := &Config{Mirror: &MirrorConfig{UnitID: 1}}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected endpoint error, got nil")
	}
}

func TestNormalize_TruncatesName(t *testing.T) {
	cfg := &Config{Device: DeviceConfig{Name: "a-very-long-device-name"}}
	Normalize(cfg)
	if len(cfg.Device.Name) != DeviceNameMaxChars {
		t.Fatalf("name not truncated: %q", cfg.Device.Name)
	}
}

func TestValidate_NegativePollTimeout(t *testing.T) {
	cfg := &Config{Poll: PollConfig{TimeoutMs: -1}}
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected timeout error, got nil")
	}
}
