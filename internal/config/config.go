// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Device DeviceConfig  `yaml:"device"`
	Poll   PollConfig    `yaml:"poll"`
	Mirror *MirrorConfig `yaml:"mirror"` // optional, opt-in
}

// ---- DEVICE ----

type DeviceConfig struct {
	Name              string        `yaml:"name"`
	Motors            []MotorConfig `yaml:"motors"`
	Encoders          EncoderConfig `yaml:"encoders"`
	Inputs            []InputConfig `yaml:"inputs"`
	EmergencyStopMode string        `yaml:"emergency_stop_mode"`
}

// ---- MOTOR ----

// MotorConfig is the configuration of one axis.
// Nil fields are left untouched on the device.
type MotorConfig struct {
	Axis                     uint8    `yaml:"axis"`
	OperationMode            string   `yaml:"operation_mode"`
	MicrostepResolution      *int     `yaml:"microstep_resolution"`
	MaximumCurrentRms        *float32 `yaml:"maximum_current_rms"`
	HoldCurrentReduction     *int     `yaml:"hold_current_reduction"` // percent
	NominalStepInterval      *uint16  `yaml:"nominal_step_interval"`
	MaximumStepInterval      *uint16  `yaml:"maximum_step_interval"`
	StepAccelerationInterval *uint16  `yaml:"step_acceleration_interval"`
	MaximumStepsIntegration  *int32   `yaml:"maximum_steps_integration"`
	MinimumStepsIntegration  *int32   `yaml:"minimum_steps_integration"`
	Enabled                  bool     `yaml:"enabled"`
}

// ---- ENCODERS ----

type EncoderConfig struct {
	Mode    string  `yaml:"mode"`
	RateHz  *int    `yaml:"rate_hz"`
	Enabled []uint8 `yaml:"enabled"`
}

// ---- DIGITAL INPUTS ----

type InputConfig struct {
	Input         uint8  `yaml:"input"`
	OperationMode string `yaml:"operation_mode"`
	TriggerMode   string `yaml:"trigger_mode"`
	Enabled       bool   `yaml:"enabled"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
	TimeoutMs  int `yaml:"timeout_ms"` // per request
}

// ---- MIRROR ----

// MirrorConfig selects the Modbus TCP memory that receives the telemetry block.
type MirrorConfig struct {
	Endpoint    string `yaml:"endpoint"`
	UnitID      uint8  `yaml:"unit_id"`
	BaseAddress uint16 `yaml:"base_address"`
	TimeoutMs   int    `yaml:"timeout_ms"`
}

// Load reads and decodes a YAML profile. Unknown keys are rejected.
// Load does not validate; call Validate, then Normalize.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes a YAML profile from memory.
func Parse(raw []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &cfg, nil
}
