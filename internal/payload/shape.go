// internal/payload/shape.go
package payload

import "fmt"

// Shape is the wire representation of one payload element.
// Shapes are geometry only: no semantics.
type Shape uint8

const (
	U8 Shape = iota + 1
	U16
	S16
	S32
	Float32
)

// Width returns the byte width of one element.
func (s Shape) Width() int {
	switch s {
	case U8:
		return 1
	case U16, S16:
		return 2
	case S32, Float32:
		return 4
	default:
		return 0
	}
}

// Size returns the payload byte length for count elements.
func (s Shape) Size(count int) int {
	return s.Width() * count
}

// TypeCode returns the Harp payload type byte for the shape.
// Bit 0x80 marks signed types, bit 0x40 marks floating point.
func (s Shape) TypeCode() byte {
	switch s {
	case U8:
		return 0x01
	case U16:
		return 0x02
	case S16:
		return 0x82
	case S32:
		return 0x84
	case Float32:
		return 0x44
	default:
		return 0x00
	}
}

func (s Shape) String() string {
	switch s {
	case U8:
		return "U8"
	case U16:
		return "U16"
	case S16:
		return "S16"
	case S32:
		return "S32"
	case Float32:
		return "Float32"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}
