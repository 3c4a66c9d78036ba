// internal/stepper/flags.go
package stepper

import (
	"fmt"
	"strings"
)

// Fixed device geometry.
const (
	AxisCount    = 4
	InputCount   = 4
	EncoderCount = 3
)

// Axis selects one motor channel (0..3).
type Axis uint8

func (a Axis) Valid() bool { return a < AxisCount }

// ---- StepperMotors ----

// StepperMotors is a motor selection mask. Any combination is valid,
// including None. Undefined bits are kept as-is.
type StepperMotors uint8

const (
	MotorsNone StepperMotors = 0x0
	Motor0     StepperMotors = 0x1
	Motor1     StepperMotors = 0x2
	Motor2     StepperMotors = 0x4
	Motor3     StepperMotors = 0x8
)

var motorNames = []string{"Motor0", "Motor1", "Motor2", "Motor3"}

// MotorOf returns the mask bit for axis a.
func MotorOf(a Axis) StepperMotors { return StepperMotors(1) << a }

func (m StepperMotors) Has(bits StepperMotors) bool { return m&bits == bits }

func (m StepperMotors) String() string { return formatFlags(uint8(m), motorNames) }

// ---- QuadratureEncoders ----

// QuadratureEncoders is an encoder selection mask. Only the low three bits
// name an encoder; bit 0x8 has no meaning for this set.
type QuadratureEncoders uint8

const (
	EncodersNone QuadratureEncoders = 0x0
	Encoder0     QuadratureEncoders = 0x1
	Encoder1     QuadratureEncoders = 0x2
	Encoder2     QuadratureEncoders = 0x4
)

var encoderNames = []string{"Encoder0", "Encoder1", "Encoder2"}

// EncoderOf returns the mask bit for encoder index i.
func EncoderOf(i uint8) QuadratureEncoders { return QuadratureEncoders(1) << i }

func (e QuadratureEncoders) Has(bits QuadratureEncoders) bool { return e&bits == bits }

func (e QuadratureEncoders) String() string { return formatFlags(uint8(e), encoderNames) }

// ---- DigitalInputs ----

type DigitalInputs uint8

const (
	InputsNone DigitalInputs = 0x0
	Input0     DigitalInputs = 0x1
	Input1     DigitalInputs = 0x2
	Input2     DigitalInputs = 0x4
	Input3     DigitalInputs = 0x8
)

var inputNames = []string{"Input0", "Input1", "Input2", "Input3"}

// InputOf returns the mask bit for digital input index i.
func InputOf(i uint8) DigitalInputs { return DigitalInputs(1) << i }

func (d DigitalInputs) Has(bits DigitalInputs) bool { return d&bits == bits }

func (d DigitalInputs) String() string { return formatFlags(uint8(d), inputNames) }

// formatFlags renders set bits by name, joined with '|'.
// Bits without a name are rendered as one hex remainder.
func formatFlags(v uint8, names []string) string {
	if v == 0 {
		return "None"
	}

	var parts []string
	rest := v
	for i, n := range names {
		bit := uint8(1) << i
		if v&bit != 0 {
			parts = append(parts, n)
			rest &^= bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%02X", rest))
	}
	return strings.Join(parts, "|")
}
