// internal/command/registers.go
package command

import (
	"github.com/tamzrod/harp-stepper/internal/registers"
	"github.com/tamzrod/harp-stepper/internal/stepper"
)

// Per-axis and per-input constructors panic when the index is outside the
// device geometry (axis 0..3, input 0..3). That is a programming error:
// indices from configuration or the wire are checked first with
// stepper.Axis.Valid or against stepper.InputCount, and reported as errors.

// ---- enable / disable ----

func EnableMotors() *Builder[stepper.StepperMotors] {
	return newBuilder(registers.EnableMotors, stepper.MotorsNone)
}

func DisableMotors() *Builder[stepper.StepperMotors] {
	return newBuilder(registers.DisableMotors, stepper.MotorsNone)
}

func EnableEncoders() *Builder[stepper.QuadratureEncoders] {
	return newBuilder(registers.EnableEncoders, stepper.EncodersNone)
}

func DisableEncoders() *Builder[stepper.QuadratureEncoders] {
	return newBuilder(registers.DisableEncoders, stepper.EncodersNone)
}

func EnableInputs() *Builder[stepper.DigitalInputs] {
	return newBuilder(registers.EnableInputs, stepper.InputsNone)
}

func DisableInputs() *Builder[stepper.DigitalInputs] {
	return newBuilder(registers.DisableInputs, stepper.InputsNone)
}

// ---- per-axis configuration ----

func MotorOperationMode(a stepper.Axis) *Builder[stepper.MotorOperationMode] {
	return newBuilder(registers.MotorOperationMode[a], stepper.QuietMode)
}

func MotorMicrostepResolution(a stepper.Axis) *Builder[stepper.MicrostepResolution] {
	return newBuilder(registers.MotorMicrostepResolution[a], stepper.Microstep8)
}

// MotorMaximumCurrentRms is in amperes, advisory range [0.139, 2.1], default 0.2.
func MotorMaximumCurrentRms(a stepper.Axis) *Bounded[float32] {
	return newBounded(registers.MotorMaximumCurrentRms[a])
}

func MotorHoldCurrentReduction(a stepper.Axis) *Builder[stepper.HoldCurrentReduction] {
	return newBuilder(registers.MotorHoldCurrentReduction[a], stepper.NoReduction)
}

func MotorNominalStepInterval(a stepper.Axis) *Bounded[uint16] {
	return newBounded(registers.MotorNominalStepInterval[a])
}

func MotorMaximumStepInterval(a stepper.Axis) *Bounded[uint16] {
	return newBounded(registers.MotorMaximumStepInterval[a])
}

func MotorStepAccelerationInterval(a stepper.Axis) *Bounded[uint16] {
	return newBounded(registers.MotorStepAccelerationInterval[a])
}

// ---- shared configuration ----

func EncoderMode() *Builder[stepper.EncoderMode] {
	return newBuilder(registers.EncoderMode, stepper.EncoderPosition)
}

func EncoderRate() *Builder[stepper.EncoderRate] {
	return newBuilder(registers.EncoderRate, stepper.Rate100Hz)
}

func InputOperationMode(i uint8) *Builder[stepper.InputOperationMode] {
	return newBuilder(registers.InputOperationMode[i], stepper.EventOnly)
}

func InputTriggerMode(i uint8) *Builder[stepper.TriggerMode] {
	return newBuilder(registers.InputTriggerMode[i], stepper.RisingEdge)
}

func EmergencyStopMode() *Builder[stepper.TriggerMode] {
	return newBuilder(registers.EmergencyStopMode, stepper.RisingEdge)
}

// ---- telemetry ----
//
// Telemetry builders produce the messages a device would emit. Hosts use
// them for loopback tests and simulators.

func MotorStopped() *Builder[stepper.StepperMotors] {
	return newBuilder(registers.MotorStopped, stepper.MotorsNone)
}

func MotorOvervoltageDetection() *Builder[stepper.StepperMotors] {
	return newBuilder(registers.MotorOvervoltageDetection, stepper.MotorsNone)
}

func MotorErrorDetection() *Builder[stepper.StepperMotors] {
	return newBuilder(registers.MotorErrorDetection, stepper.MotorsNone)
}

func Encoders() *Builder[stepper.EncoderReadings] {
	return newBuilder(registers.Encoders, stepper.EncoderReadings{})
}

func DigitalInputState() *Builder[stepper.DigitalInputs] {
	return newBuilder(registers.DigitalInputState, stepper.InputsNone)
}

func EmergencyStop() *Builder[stepper.EmergencyStopState] {
	return newBuilder(registers.EmergencyStop, stepper.NoEmergency)
}

// ---- per-axis steps ----

func MotorSteps(a stepper.Axis) *Builder[int32] {
	return newBuilder(registers.MotorSteps[a], 0)
}

func MotorAccumulatedSteps(a stepper.Axis) *Builder[int32] {
	return newBuilder(registers.MotorAccumulatedSteps[a], 0)
}

// MotorMaximumStepsIntegration is the positive soft limit; 0 disables it.
func MotorMaximumStepsIntegration(a stepper.Axis) *Builder[int32] {
	return newBuilder(registers.MotorMaximumStepsIntegration[a], 0)
}

// MotorMinimumStepsIntegration is the negative soft limit; 0 disables it.
func MotorMinimumStepsIntegration(a stepper.Axis) *Builder[int32] {
	return newBuilder(registers.MotorMinimumStepsIntegration[a], 0)
}

func MotorImmediateSteps(a stepper.Axis) *Builder[int32] {
	return newBuilder(registers.MotorImmediateSteps[a], 0)
}

// ---- stop / reset ----

func StopMotorSuddenly() *Builder[stepper.StepperMotors] {
	return newBuilder(registers.StopMotorSuddenly, stepper.MotorsNone)
}

func StopMotorSmoothly() *Builder[stepper.StepperMotors] {
	return newBuilder(registers.StopMotorSmoothly, stepper.MotorsNone)
}

func ResetMotor() *Builder[stepper.StepperMotors] {
	return newBuilder(registers.ResetMotor, stepper.MotorsNone)
}

func ResetEncoder() *Builder[stepper.QuadratureEncoders] {
	return newBuilder(registers.ResetEncoder, stepper.EncodersNone)
}
