// internal/catalog/addresses.go
package catalog

import "github.com/tamzrod/harp-stepper/internal/stepper"

// Register addresses. These values define the device protocol and
// MUST NOT be configurable.
//
// Per-axis and per-input registers are declared by their base address;
// use PerAxis / PerInput for the address of one channel.

// ---- MOTOR / ENCODER / INPUT ENABLE ----

const (
	EnableMotors    uint8 = 32
	DisableMotors   uint8 = 33
	EnableEncoders  uint8 = 34
	DisableEncoders uint8 = 35
	EnableInputs    uint8 = 36
	DisableInputs   uint8 = 37
)

// ---- PER-AXIS CONFIGURATION (base + axis) ----

const (
	MotorOperationMode            uint8 = 38
	MotorMicrostepResolution      uint8 = 42
	MotorMaximumCurrentRms        uint8 = 46
	MotorHoldCurrentReduction     uint8 = 50
	MotorNominalStepInterval      uint8 = 54
	MotorMaximumStepInterval      uint8 = 58
	MotorStepAccelerationInterval uint8 = 62
)

// ---- SHARED CONFIGURATION ----

const (
	EncoderMode        uint8 = 66
	EncoderRate        uint8 = 67
	InputOperationMode uint8 = 68 // base + input
	InputTriggerMode   uint8 = 72 // base + input
	EmergencyStopMode  uint8 = 76
)

// ---- TELEMETRY ----

const (
	MotorStopped              uint8 = 77
	MotorOvervoltageDetection uint8 = 78
	MotorErrorDetection       uint8 = 79
	Encoders                  uint8 = 80
	DigitalInputState         uint8 = 81
	EmergencyStop             uint8 = 82
)

// ---- PER-AXIS STEP REGISTERS (base + axis) ----

const (
	MotorSteps                   uint8 = 83
	MotorAccumulatedSteps        uint8 = 87
	MotorMaximumStepsIntegration uint8 = 91
	MotorMinimumStepsIntegration uint8 = 95
	MotorImmediateSteps          uint8 = 99
)

// ---- STOP / RESET COMMANDS ----

const (
	StopMotorSuddenly uint8 = 103
	StopMotorSmoothly uint8 = 104
	ResetMotor        uint8 = 105
	ResetEncoder      uint8 = 106
)

// ---- RESERVED RANGE ----

// Addresses 107–114 are internal to the device firmware.
const (
	ReservedStart uint8 = 107
	ReservedEnd   uint8 = 114
)

// ---- CATALOG BOUNDS ----

const (
	FirstAddress uint8 = 32
	LastAddress  uint8 = ReservedEnd
)

// PerAxis returns the address of the register for axis a in a per-axis
// family starting at base.
func PerAxis(base uint8, a stepper.Axis) uint8 {
	return base + uint8(a)
}

// PerInput returns the address of the register for digital input i in a
// per-input family starting at base.
func PerInput(base uint8, i uint8) uint8 {
	return base + i
}
