// internal/payload/codec.go
package payload

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch is returned when a payload does not have the exact
// byte length of its declared shape and element count.
var ErrLengthMismatch = errors.New("payload_length_mismatch")

// LengthError carries the geometry of a rejected payload.
type LengthError struct {
	Shape Shape
	Count int
	Got   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf(
		"%s: %s x%d wants %d bytes, got %d",
		ErrLengthMismatch,
		e.Shape,
		e.Count,
		e.Shape.Size(e.Count),
		e.Got,
	)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// Check verifies that b is exactly shape.Size(count) bytes long.
// Decoders call it before touching any byte, so a decode is never partial.
func Check(b []byte, shape Shape, count int) error {
	if len(b) != shape.Size(count) {
		return &LengthError{Shape: shape, Count: count, Got: len(b)}
	}
	return nil
}

// All multi-byte values are little-endian on the wire.

// ---- U8 ----

func EncodeU8(v uint8) []byte {
	return []byte{v}
}

func DecodeU8(b []byte) (uint8, error) {
	if err := Check(b, U8, 1); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ---- U16 ----

func EncodeU16(v uint16) []byte {
	out := make([]byte, 2)
	binary.LittleEndian.PutUint16(out, v)
	return out
}

func DecodeU16(b []byte) (uint16, error) {
	if err := Check(b, U16, 1); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ---- S32 ----

func EncodeS32(v int32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, uint32(v))
	return out
}

func DecodeS32(b []byte) (int32, error) {
	if err := Check(b, S32, 1); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

// ---- Float32 (IEEE-754) ----

func EncodeF32(v float32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, math.Float32bits(v))
	return out
}

func DecodeF32(b []byte) (float32, error) {
	if err := Check(b, Float32, 1); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// ---- S16 x3 ----

// EncodeS16Array3 packs three signed 16-bit values in index order.
// The order is part of the wire contract.
func EncodeS16Array3(v [3]int16) []byte {
	out := make([]byte, 6)
	for i, x := range v {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(x))
	}
	return out
}

func DecodeS16Array3(b []byte) ([3]int16, error) {
	var out [3]int16
	if err := Check(b, S16, 3); err != nil {
		return out, err
	}
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[2*i:]))
	}
	return out, nil
}
