// internal/registers/registers.go
package registers

import (
	"fmt"

	"github.com/tamzrod/harp-stepper/internal/catalog"
	"github.com/tamzrod/harp-stepper/internal/harp"
	"github.com/tamzrod/harp-stepper/internal/stepper"
)

// decoder is the address-polymorphic view of an Accessor.
type decoder interface {
	decodeAny(msg harp.Message) (any, error)
}

// index holds one decoder per public register. Filled by bind at init.
var index = make(map[uint8]decoder)

// ---- enable / disable ----

var (
	EnableMotors    = bind(catalog.EnableMotors, u8[stepper.StepperMotors]())
	DisableMotors   = bind(catalog.DisableMotors, u8[stepper.StepperMotors]())
	EnableEncoders  = bind(catalog.EnableEncoders, u8[stepper.QuadratureEncoders]())
	DisableEncoders = bind(catalog.DisableEncoders, u8[stepper.QuadratureEncoders]())
	EnableInputs    = bind(catalog.EnableInputs, u8[stepper.DigitalInputs]())
	DisableInputs   = bind(catalog.DisableInputs, u8[stepper.DigitalInputs]())
)

// ---- per-axis configuration, indexed by stepper.Axis ----

var (
	MotorOperationMode            = perAxis(catalog.MotorOperationMode, u8[stepper.MotorOperationMode]())
	MotorMicrostepResolution      = perAxis(catalog.MotorMicrostepResolution, u8[stepper.MicrostepResolution]())
	MotorMaximumCurrentRms        = perAxis(catalog.MotorMaximumCurrentRms, f32[float32]())
	MotorHoldCurrentReduction     = perAxis(catalog.MotorHoldCurrentReduction, u8[stepper.HoldCurrentReduction]())
	MotorNominalStepInterval      = perAxis(catalog.MotorNominalStepInterval, u16[uint16]())
	MotorMaximumStepInterval      = perAxis(catalog.MotorMaximumStepInterval, u16[uint16]())
	MotorStepAccelerationInterval = perAxis(catalog.MotorStepAccelerationInterval, u16[uint16]())
)

// ---- shared configuration ----

var (
	EncoderMode        = bind(catalog.EncoderMode, u8[stepper.EncoderMode]())
	EncoderRate        = bind(catalog.EncoderRate, u8[stepper.EncoderRate]())
	InputOperationMode = perInput(catalog.InputOperationMode, u8[stepper.InputOperationMode]())
	InputTriggerMode   = perInput(catalog.InputTriggerMode, u8[stepper.TriggerMode]())
	EmergencyStopMode  = bind(catalog.EmergencyStopMode, u8[stepper.TriggerMode]())
)

// ---- telemetry ----

var (
	MotorStopped              = bind(catalog.MotorStopped, u8[stepper.StepperMotors]())
	MotorOvervoltageDetection = bind(catalog.MotorOvervoltageDetection, u8[stepper.StepperMotors]())
	MotorErrorDetection       = bind(catalog.MotorErrorDetection, u8[stepper.StepperMotors]())
	Encoders                  = bind(catalog.Encoders, encoderReadings())
	DigitalInputState         = bind(catalog.DigitalInputState, u8[stepper.DigitalInputs]())
	EmergencyStop             = bind(catalog.EmergencyStop, u8[stepper.EmergencyStopState]())
)

// ---- per-axis steps, indexed by stepper.Axis ----

var (
	MotorSteps                   = perAxis(catalog.MotorSteps, s32[int32]())
	MotorAccumulatedSteps        = perAxis(catalog.MotorAccumulatedSteps, s32[int32]())
	MotorMaximumStepsIntegration = perAxis(catalog.MotorMaximumStepsIntegration, s32[int32]())
	MotorMinimumStepsIntegration = perAxis(catalog.MotorMinimumStepsIntegration, s32[int32]())
	MotorImmediateSteps          = perAxis(catalog.MotorImmediateSteps, s32[int32]())
)

// ---- stop / reset ----

var (
	StopMotorSuddenly = bind(catalog.StopMotorSuddenly, u8[stepper.StepperMotors]())
	StopMotorSmoothly = bind(catalog.StopMotorSmoothly, u8[stepper.StepperMotors]())
	ResetMotor        = bind(catalog.ResetMotor, u8[stepper.StepperMotors]())
	ResetEncoder      = bind(catalog.ResetEncoder, u8[stepper.QuadratureEncoders]())
)

func perAxis[T any](base uint8, c codec[T]) [stepper.AxisCount]Accessor[T] {
	var out [stepper.AxisCount]Accessor[T]
	for a := range out {
		out[a] = bind(catalog.PerAxis(base, stepper.Axis(a)), c)
	}
	return out
}

func perInput[T any](base uint8, c codec[T]) [stepper.InputCount]Accessor[T] {
	var out [stepper.InputCount]Accessor[T]
	for i := range out {
		out[i] = bind(catalog.PerInput(base, uint8(i)), c)
	}
	return out
}

// Decode decodes msg with the accessor bound to its address. The result is
// the register's domain value type (stepper.StepperMotors, float32, ...).
func Decode(msg harp.Message) (any, error) {
	e, err := catalog.Resolve(msg.Address())
	if err != nil {
		return nil, err
	}
	d, ok := index[e.Address]
	if !ok {
		return nil, fmt.Errorf("registers: no accessor bound to %s", e.Name)
	}
	return d.decodeAny(msg)
}
