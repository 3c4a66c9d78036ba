// internal/stepper/enums.go
package stepper

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownName is returned when a configuration name does not match
// any enumerator.
var ErrUnknownName = errors.New("unknown_name")

// All enums below are one byte on the wire. Values outside the declared
// enumerators are legal Go values: the device may report them and they
// are carried through unchanged.

// ---- MotorOperationMode ----

type MotorOperationMode uint8

const (
	QuietMode MotorOperationMode = iota
	DynamicMovements
)

var motorOperationModeNames = []string{"QuietMode", "DynamicMovements"}

func (v MotorOperationMode) String() string {
	return enumString("MotorOperationMode", motorOperationModeNames, uint8(v))
}

func ParseMotorOperationMode(s string) (MotorOperationMode, error) {
	v, err := parseEnum("motor operation mode", motorOperationModeNames, s)
	return MotorOperationMode(v), err
}

// ---- MicrostepResolution ----

type MicrostepResolution uint8

const (
	Microstep8 MicrostepResolution = iota
	Microstep16
	Microstep32
	Microstep64
)

var microstepNames = []string{"Microstep8", "Microstep16", "Microstep32", "Microstep64"}

func (v MicrostepResolution) String() string {
	return enumString("MicrostepResolution", microstepNames, uint8(v))
}

// Microsteps returns the number of microsteps per full step, or 0 for an
// unnamed value.
func (v MicrostepResolution) Microsteps() int {
	if int(v) >= len(microstepNames) {
		return 0
	}
	return 8 << v
}

// MicrostepResolutionOf maps 8, 16, 32 or 64 microsteps to its enumerator.
func MicrostepResolutionOf(microsteps int) (MicrostepResolution, error) {
	for v := Microstep8; v <= Microstep64; v++ {
		if v.Microsteps() == microsteps {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: microstep resolution %d", ErrUnknownName, microsteps)
}

// ---- HoldCurrentReduction ----

type HoldCurrentReduction uint8

const (
	NoReduction HoldCurrentReduction = iota
	Reduction50
	Reduction75
	Reduction88
)

var holdCurrentReductionNames = []string{"NoReduction", "Reduction50", "Reduction75", "Reduction88"}

var holdCurrentReductionPercent = []int{0, 50, 75, 88}

func (v HoldCurrentReduction) String() string {
	return enumString("HoldCurrentReduction", holdCurrentReductionNames, uint8(v))
}

// Percent returns the hold current reduction in percent, or -1 for an
// unnamed value.
func (v HoldCurrentReduction) Percent() int {
	if int(v) >= len(holdCurrentReductionPercent) {
		return -1
	}
	return holdCurrentReductionPercent[v]
}

func HoldCurrentReductionOf(percent int) (HoldCurrentReduction, error) {
	for i, p := range holdCurrentReductionPercent {
		if p == percent {
			return HoldCurrentReduction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: hold current reduction %d%%", ErrUnknownName, percent)
}

// ---- EncoderMode ----

type EncoderMode uint8

const (
	EncoderPosition EncoderMode = iota
	EncoderDisplacement
)

var encoderModeNames = []string{"Position", "Displacement"}

func (v EncoderMode) String() string {
	return enumString("EncoderMode", encoderModeNames, uint8(v))
}

func ParseEncoderMode(s string) (EncoderMode, error) {
	v, err := parseEnum("encoder mode", encoderModeNames, s)
	return EncoderMode(v), err
}

// ---- EncoderRate ----

type EncoderRate uint8

const (
	Rate100Hz EncoderRate = iota
	Rate200Hz
	Rate250Hz
	Rate500Hz
)

var encoderRateNames = []string{"Rate100Hz", "Rate200Hz", "Rate250Hz", "Rate500Hz"}

var encoderRateHz = []int{100, 200, 250, 500}

func (v EncoderRate) String() string {
	return enumString("EncoderRate", encoderRateNames, uint8(v))
}

// Hz returns the sampling rate, or 0 for an unnamed value.
func (v EncoderRate) Hz() int {
	if int(v) >= len(encoderRateHz) {
		return 0
	}
	return encoderRateHz[v]
}

func EncoderRateOf(hz int) (EncoderRate, error) {
	for i, r := range encoderRateHz {
		if r == hz {
			return EncoderRate(i), nil
		}
	}
	return 0, fmt.Errorf("%w: encoder rate %d Hz", ErrUnknownName, hz)
}

// ---- InputOperationMode ----

type InputOperationMode uint8

const (
	EventOnly InputOperationMode = iota
	EventAndStopMotor0
	EventAndStopMotor1
	EventAndStopMotor2
	EventAndStopMotor3
)

var inputOperationModeNames = []string{
	"EventOnly",
	"EventAndStopMotor0",
	"EventAndStopMotor1",
	"EventAndStopMotor2",
	"EventAndStopMotor3",
}

func (v InputOperationMode) String() string {
	return enumString("InputOperationMode", inputOperationModeNames, uint8(v))
}

func ParseInputOperationMode(s string) (InputOperationMode, error) {
	v, err := parseEnum("input operation mode", inputOperationModeNames, s)
	return InputOperationMode(v), err
}

// ---- TriggerMode ----

// TriggerMode selects the active edge of a digital input or of the
// emergency stop line.
type TriggerMode uint8

const (
	RisingEdge TriggerMode = iota
	FallingEdge
)

var triggerModeNames = []string{"RisingEdge", "FallingEdge"}

func (v TriggerMode) String() string {
	return enumString("TriggerMode", triggerModeNames, uint8(v))
}

func ParseTriggerMode(s string) (TriggerMode, error) {
	v, err := parseEnum("trigger mode", triggerModeNames, s)
	return TriggerMode(v), err
}

// ---- EmergencyStopState ----

type EmergencyStopState uint8

const (
	NoEmergency EmergencyStopState = iota
	EmergencyDetected
)

var emergencyStopStateNames = []string{"NoEmergency", "EmergencyDetected"}

func (v EmergencyStopState) String() string {
	return enumString("EmergencyStopState", emergencyStopStateNames, uint8(v))
}

// ---- helpers ----

func enumString(typ string, names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", typ, v)
}

// parseEnum accepts either the enumerator name ("DynamicMovements") or its
// snake_case form ("dynamic_movements").
func parseEnum(what string, names []string, s string) (uint8, error) {
	s = strings.TrimSpace(s)
	for i, n := range names {
		if s == n || s == snakeCase(n) {
			return uint8(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownName, what, s)
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
