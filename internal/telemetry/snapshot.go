// internal/telemetry/snapshot.go
package telemetry

import (
	"github.com/tamzrod/harp-stepper/internal/catalog"
	"github.com/tamzrod/harp-stepper/internal/harp"
	"github.com/tamzrod/harp-stepper/internal/registers"
	"github.com/tamzrod/harp-stepper/internal/stepper"
)

// Snapshot is the last known device telemetry.
// It holds decoded values only; nothing is derived.
type Snapshot struct {
	Stopped          stepper.StepperMotors
	Overvoltage      stepper.StepperMotors
	Error            stepper.StepperMotors
	Inputs           stepper.DigitalInputs
	EmergencyStop    stepper.EmergencyStopState
	Encoders         stepper.EncoderReadings
	AccumulatedSteps [stepper.AxisCount]int32

	// Seconds is the device timestamp of the most recent timestamped
	// message applied; HasTime reports whether one was seen.
	Seconds float64
	HasTime bool
}

// Addresses returns the telemetry registers a Snapshot tracks, in
// address order.
func Addresses() []uint8 {
	out := []uint8{
		catalog.MotorStopped,
		catalog.MotorOvervoltageDetection,
		catalog.MotorErrorDetection,
		catalog.Encoders,
		catalog.DigitalInputState,
		catalog.EmergencyStop,
	}
	for a := stepper.Axis(0); a < stepper.AxisCount; a++ {
		out = append(out, catalog.PerAxis(catalog.MotorAccumulatedSteps, a))
	}
	return out
}

// Apply decodes msg into the snapshot.
// It returns false, nil when msg is not a tracked telemetry register.
// On error the snapshot is left unchanged.
func (s *Snapshot) Apply(msg harp.Message) (bool, error) {
	addr := msg.Address()

	var err error
	switch {
	case addr == catalog.MotorStopped:
		err = set(&s.Stopped, registers.MotorStopped, msg)
	case addr == catalog.MotorOvervoltageDetection:
		err = set(&s.Overvoltage, registers.MotorOvervoltageDetection, msg)
	case addr == catalog.MotorErrorDetection:
		err = set(&s.Error, registers.MotorErrorDetection, msg)
	case addr == catalog.Encoders:
		err = set(&s.Encoders, registers.Encoders, msg)
	case addr == catalog.DigitalInputState:
		err = set(&s.Inputs, registers.DigitalInputState, msg)
	case addr == catalog.EmergencyStop:
		err = set(&s.EmergencyStop, registers.EmergencyStop, msg)
	case addr >= catalog.MotorAccumulatedSteps && addr < catalog.MotorAccumulatedSteps+stepper.AxisCount:
		axis := addr - catalog.MotorAccumulatedSteps
		err = set(&s.AccumulatedSteps[axis], registers.MotorAccumulatedSteps[axis], msg)
	default:
		return false, nil
	}
	if err != nil {
		return true, err
	}

	if ts, ok := msg.Timestamp(); ok {
		s.Seconds = ts
		s.HasTime = true
	}
	return true, nil
}

func set[T any](dst *T, acc registers.Accessor[T], msg harp.Message) error {
	v, err := acc.GetPayload(msg)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
