// internal/catalog/table.go
package catalog

import (
	"fmt"
	"strings"

	"github.com/tamzrod/harp-stepper/internal/payload"
	"github.com/tamzrod/harp-stepper/internal/stepper"
)

// family is one register, or one block of identical per-channel registers.
type family struct {
	base     uint8
	channels int    // 1 for single registers
	name     string // contains %d for per-channel families
	shape    payload.Shape
	count    int
	access   Access
	limits   *Limits
	desc     string
}

var (
	currentLimits      = &Limits{Min: 0.139, Max: 2.1, Default: 0.2}
	nominalLimits      = &Limits{Min: 100, Max: 20000, Default: 250}
	maxIntervalLimits  = &Limits{Min: 100, Max: 20000, Default: 2000}
	accelerationLimits = &Limits{Min: 2, Max: 2000, Default: 10}
)

var families = []family{
	{EnableMotors, 1, "EnableMotors", payload.U8, 1, AccessCommand, nil, "Enables the selected motor drivers (StepperMotors mask)."},
	{DisableMotors, 1, "DisableMotors", payload.U8, 1, AccessCommand, nil, "Disables the selected motor drivers (StepperMotors mask)."},
	{EnableEncoders, 1, "EnableEncoders", payload.U8, 1, AccessCommand, nil, "Enables the selected quadrature encoders (QuadratureEncoders mask)."},
	{DisableEncoders, 1, "DisableEncoders", payload.U8, 1, AccessCommand, nil, "Disables the selected quadrature encoders (QuadratureEncoders mask)."},
	{EnableInputs, 1, "EnableInputs", payload.U8, 1, AccessCommand, nil, "Enables events on the selected digital inputs (DigitalInputs mask)."},
	{DisableInputs, 1, "DisableInputs", payload.U8, 1, AccessCommand, nil, "Disables events on the selected digital inputs (DigitalInputs mask)."},

	{MotorOperationMode, stepper.AxisCount, "Motor%dOperationMode", payload.U8, 1, AccessConfig, nil, "Driver operation mode (MotorOperationMode)."},
	{MotorMicrostepResolution, stepper.AxisCount, "Motor%dMicrostepResolution", payload.U8, 1, AccessConfig, nil, "Microstep resolution (MicrostepResolution)."},
	{MotorMaximumCurrentRms, stepper.AxisCount, "Motor%dMaximumCurrentRms", payload.Float32, 1, AccessConfig, currentLimits, "Maximum RMS coil current in amperes."},
	{MotorHoldCurrentReduction, stepper.AxisCount, "Motor%dHoldCurrentReduction", payload.U8, 1, AccessConfig, nil, "Current reduction while holding (HoldCurrentReduction)."},
	{MotorNominalStepInterval, stepper.AxisCount, "Motor%dNominalStepInterval", payload.U16, 1, AccessConfig, nominalLimits, "Step interval at nominal speed, in microseconds."},
	{MotorMaximumStepInterval, stepper.AxisCount, "Motor%dMaximumStepInterval", payload.U16, 1, AccessConfig, maxIntervalLimits, "Step interval at start and end of a move, in microseconds."},
	{MotorStepAccelerationInterval, stepper.AxisCount, "Motor%dStepAccelerationInterval", payload.U16, 1, AccessConfig, accelerationLimits, "Interval change per step while accelerating, in microseconds."},

	{EncoderMode, 1, "EncoderMode", payload.U8, 1, AccessConfig, nil, "Encoder reporting mode (EncoderMode)."},
	{EncoderRate, 1, "EncoderRate", payload.U8, 1, AccessConfig, nil, "Encoder sampling rate (EncoderRate)."},
	{InputOperationMode, stepper.InputCount, "Input%dOperationMode", payload.U8, 1, AccessConfig, nil, "Action taken on input trigger (InputOperationMode)."},
	{InputTriggerMode, stepper.InputCount, "Input%dTriggerMode", payload.U8, 1, AccessConfig, nil, "Active edge of the input (TriggerMode)."},
	{EmergencyStopMode, 1, "EmergencyStopMode", payload.U8, 1, AccessConfig, nil, "Active edge of the emergency stop line (TriggerMode)."},

	{MotorStopped, 1, "MotorStopped", payload.U8, 1, AccessTelemetry, nil, "Motors currently stopped (StepperMotors mask)."},
	{MotorOvervoltageDetection, 1, "MotorOvervoltageDetection", payload.U8, 1, AccessTelemetry, nil, "Motors reporting overvoltage (StepperMotors mask)."},
	{MotorErrorDetection, 1, "MotorErrorDetection", payload.U8, 1, AccessTelemetry, nil, "Motors reporting a driver error (StepperMotors mask)."},
	{Encoders, 1, "Encoders", payload.S16, stepper.EncoderCount, AccessTelemetry, nil, "Encoder counters in order encoder0, encoder1, encoder2."},
	{DigitalInputState, 1, "DigitalInputState", payload.U8, 1, AccessTelemetry, nil, "Digital input levels (DigitalInputs mask)."},
	{EmergencyStop, 1, "EmergencyStop", payload.U8, 1, AccessTelemetry, nil, "Emergency stop state (EmergencyStopState)."},

	{MotorSteps, stepper.AxisCount, "Motor%dSteps", payload.S32, 1, AccessCommand, nil, "Relative move in steps; the sign gives the direction."},
	{MotorAccumulatedSteps, stepper.AxisCount, "Motor%dAccumulatedSteps", payload.S32, 1, AccessTelemetry, nil, "Running step counter."},
	{MotorMaximumStepsIntegration, stepper.AxisCount, "Motor%dMaximumStepsIntegration", payload.S32, 1, AccessConfig, nil, "Positive soft limit in steps; 0 disables."},
	{MotorMinimumStepsIntegration, stepper.AxisCount, "Motor%dMinimumStepsIntegration", payload.S32, 1, AccessConfig, nil, "Negative soft limit in steps; 0 disables."},
	{MotorImmediateSteps, stepper.AxisCount, "Motor%dImmediateSteps", payload.S32, 1, AccessCommand, nil, "Continuous run; the sign gives the direction."},

	{StopMotorSuddenly, 1, "StopMotorSuddenly", payload.U8, 1, AccessCommand, nil, "Stops the selected motors without deceleration (StepperMotors mask)."},
	{StopMotorSmoothly, 1, "StopMotorSmoothly", payload.U8, 1, AccessCommand, nil, "Stops the selected motors with deceleration (StepperMotors mask)."},
	{ResetMotor, 1, "ResetMotor", payload.U8, 1, AccessCommand, nil, "Resets the selected motor drivers (StepperMotors mask)."},
	{ResetEncoder, 1, "ResetEncoder", payload.U8, 1, AccessCommand, nil, "Resets the selected encoder counters (QuadratureEncoders mask)."},

	{ReservedStart, int(ReservedEnd-ReservedStart) + 1, "Reserved%d", payload.U8, 1, AccessReserved, nil, "Internal to the device firmware."},
}

// build expands the families into the address table.
// A gap or a double definition is a programming error and panics at init.
func build() [int(LastAddress-FirstAddress) + 1]Entry {
	var t [int(LastAddress-FirstAddress) + 1]Entry
	seen := make(map[uint8]bool)

	for _, f := range families {
		for ch := 0; ch < f.channels; ch++ {
			addr := f.base + uint8(ch)
			if addr < FirstAddress || addr > LastAddress {
				panic(fmt.Sprintf("catalog: %s address %d out of range", f.name, addr))
			}
			if seen[addr] {
				panic(fmt.Sprintf("catalog: address %d defined twice", addr))
			}
			seen[addr] = true

			name := f.name
			if strings.Contains(name, "%d") {
				n := ch
				if f.access == AccessReserved {
					n = int(addr)
				}
				name = fmt.Sprintf(f.name, n)
			}

			e := Entry{
				Address:     addr,
				Name:        name,
				Shape:       f.shape,
				Count:       f.count,
				Access:      f.access,
				Description: f.desc,
			}
			if f.limits != nil {
				e.limits = *f.limits
				e.hasLimits = true
			}
			t[addr-FirstAddress] = e
		}
	}

	for a := int(FirstAddress); a <= int(LastAddress); a++ {
		if !seen[uint8(a)] {
			panic(fmt.Sprintf("catalog: address %d undefined", a))
		}
	}

	return t
}
