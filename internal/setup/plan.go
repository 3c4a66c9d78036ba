// internal/setup/plan.go
package setup

import (
	"fmt"

	"github.com/tamzrod/harp-stepper/internal/command"
	cfg "github.com/tamzrod/harp-stepper/internal/config"
	"github.com/tamzrod/harp-stepper/internal/harp"
	"github.com/tamzrod/harp-stepper/internal/stepper"
)

// Advisory reports a value outside the declared register range.
// The value is still part of the plan.
type Advisory struct {
	Register string
	Value    float64
	Min      float64
	Max      float64
}

func (a Advisory) String() string {
	return fmt.Sprintf("%s=%g outside advisory range [%g, %g]", a.Register, a.Value, a.Min, a.Max)
}

// Plan is the ordered write sequence that applies a device profile.
type Plan struct {
	Messages   []harp.Message
	Advisories []Advisory
}

// BuildPlan converts one device profile into write messages.
// Assumes the profile has already passed config.Validate and Normalize.
func BuildPlan(d cfg.DeviceConfig) (Plan, error) {
	var p Plan

	var motors stepper.StepperMotors
	for _, m := range d.Motors {
		if err := p.addMotor(m); err != nil {
			return Plan{}, err
		}
		if m.Enabled {
			motors |= stepper.MotorOf(stepper.Axis(m.Axis))
		}
	}

	if err := p.addEncoders(d.Encoders); err != nil {
		return Plan{}, err
	}

	var inputs stepper.DigitalInputs
	for _, in := range d.Inputs {
		if err := p.addInput(in); err != nil {
			return Plan{}, err
		}
		if in.Enabled {
			inputs |= stepper.InputOf(in.Input)
		}
	}

	if d.EmergencyStopMode != "" {
		mode, err := stepper.ParseTriggerMode(d.EmergencyStopMode)
		if err != nil {
			return Plan{}, fmt.Errorf("setup: emergency stop: %w", err)
		}
		p.add(command.EmergencyStopMode().Set(mode).Build(harp.Write))
	}

	// ------------------------------------------------------------
	// ENABLE LAST: every channel is configured before it runs
	// ------------------------------------------------------------

	var encoders stepper.QuadratureEncoders
	for _, e := range d.Encoders.Enabled {
		encoders |= stepper.EncoderOf(e)
	}
	if encoders != stepper.EncodersNone {
		p.add(command.EnableEncoders().Set(encoders).Build(harp.Write))
	}
	if inputs != stepper.InputsNone {
		p.add(command.EnableInputs().Set(inputs).Build(harp.Write))
	}
	if motors != stepper.MotorsNone {
		p.add(command.EnableMotors().Set(motors).Build(harp.Write))
	}

	return p, nil
}

func (p *Plan) add(m harp.Message) {
	p.Messages = append(p.Messages, m)
}

func (p *Plan) addMotor(m cfg.MotorConfig) error {
	a := stepper.Axis(m.Axis)
	if !a.Valid() {
		return fmt.Errorf("setup: motor axis %d out of range", m.Axis)
	}

	if m.OperationMode != "" {
		mode, err := stepper.ParseMotorOperationMode(m.OperationMode)
		if err != nil {
			return fmt.Errorf("setup: motor axis %d: %w", m.Axis, err)
		}
		p.add(command.MotorOperationMode(a).Set(mode).Build(harp.Write))
	}

	if m.MicrostepResolution != nil {
		res, err := stepper.MicrostepResolutionOf(*m.MicrostepResolution)
		if err != nil {
			return fmt.Errorf("setup: motor axis %d: %w", m.Axis, err)
		}
		p.add(command.MotorMicrostepResolution(a).Set(res).Build(harp.Write))
	}

	if m.MaximumCurrentRms != nil {
		addBounded(p, command.MotorMaximumCurrentRms(a), *m.MaximumCurrentRms)
	}

	if m.HoldCurrentReduction != nil {
		red, err := stepper.HoldCurrentReductionOf(*m.HoldCurrentReduction)
		if err != nil {
			return fmt.Errorf("setup: motor axis %d: %w", m.Axis, err)
		}
		p.add(command.MotorHoldCurrentReduction(a).Set(red).Build(harp.Write))
	}

	if m.NominalStepInterval != nil {
		addBounded(p, command.MotorNominalStepInterval(a), *m.NominalStepInterval)
	}
	if m.MaximumStepInterval != nil {
		addBounded(p, command.MotorMaximumStepInterval(a), *m.MaximumStepInterval)
	}
	if m.StepAccelerationInterval != nil {
		addBounded(p, command.MotorStepAccelerationInterval(a), *m.StepAccelerationInterval)
	}

	if m.MaximumStepsIntegration != nil {
		p.add(command.MotorMaximumStepsIntegration(a).Set(*m.MaximumStepsIntegration).Build(harp.Write))
	}
	if m.MinimumStepsIntegration != nil {
		p.add(command.MotorMinimumStepsIntegration(a).Set(*m.MinimumStepsIntegration).Build(harp.Write))
	}

	return nil
}

func (p *Plan) addEncoders(e cfg.EncoderConfig) error {
	if e.Mode != "" {
		mode, err := stepper.ParseEncoderMode(e.Mode)
		if err != nil {
			return fmt.Errorf("setup: encoders: %w", err)
		}
		p.add(command.EncoderMode().Set(mode).Build(harp.Write))
	}
	if e.RateHz != nil {
		rate, err := stepper.EncoderRateOf(*e.RateHz)
		if err != nil {
			return fmt.Errorf("setup: encoders: %w", err)
		}
		p.add(command.EncoderRate().Set(rate).Build(harp.Write))
	}
	for _, id := range e.Enabled {
		if id >= stepper.EncoderCount {
			return fmt.Errorf("setup: encoder %d out of range", id)
		}
	}
	return nil
}

func (p *Plan) addInput(in cfg.InputConfig) error {
	if in.Input >= stepper.InputCount {
		return fmt.Errorf("setup: input %d out of range", in.Input)
	}
	if in.OperationMode != "" {
		mode, err := stepper.ParseInputOperationMode(in.OperationMode)
		if err != nil {
			return fmt.Errorf("setup: input %d: %w", in.Input, err)
		}
		p.add(command.InputOperationMode(in.Input).Set(mode).Build(harp.Write))
	}
	if in.TriggerMode != "" {
		mode, err := stepper.ParseTriggerMode(in.TriggerMode)
		if err != nil {
			return fmt.Errorf("setup: input %d: %w", in.Input, err)
		}
		p.add(command.InputTriggerMode(in.Input).Set(mode).Build(harp.Write))
	}
	return nil
}

// addBounded appends the write and, when v is outside the declared range,
// an advisory. Out-of-range values are sent unchanged.
func addBounded[T command.Number](p *Plan, b *command.Bounded[T], v T) {
	b.Set(v)
	if !b.InRange() {
		p.Advisories = append(p.Advisories, Advisory{
			Register: b.Register().Name,
			Value:    float64(v),
			Min:      float64(b.Range.Min),
			Max:      float64(b.Range.Max),
		})
	}
	p.add(b.Build(harp.Write))
}
