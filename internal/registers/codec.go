// internal/registers/codec.go
package registers

import (
	"github.com/tamzrod/harp-stepper/internal/payload"
	"github.com/tamzrod/harp-stepper/internal/stepper"
)

// codec binds a payload shape to a domain value type.
// Enum and bit-flag casts are raw reinterpretations of the wire byte:
// undeclared values pass through unchanged.
type codec[T any] struct {
	shape  payload.Shape
	count  int
	encode func(T) []byte
	decode func([]byte) (T, error)
}

func u8[T ~uint8]() codec[T] {
	return codec[T]{
		shape:  payload.U8,
		count:  1,
		encode: func(v T) []byte { return payload.EncodeU8(uint8(v)) },
		decode: func(b []byte) (T, error) {
			v, err := payload.DecodeU8(b)
			return T(v), err
		},
	}
}

func u16[T ~uint16]() codec[T] {
	return codec[T]{
		shape:  payload.U16,
		count:  1,
		encode: func(v T) []byte { return payload.EncodeU16(uint16(v)) },
		decode: func(b []byte) (T, error) {
			v, err := payload.DecodeU16(b)
			return T(v), err
		},
	}
}

func s32[T ~int32]() codec[T] {
	return codec[T]{
		shape:  payload.S32,
		count:  1,
		encode: func(v T) []byte { return payload.EncodeS32(int32(v)) },
		decode: func(b []byte) (T, error) {
			v, err := payload.DecodeS32(b)
			return T(v), err
		},
	}
}

func f32[T ~float32]() codec[T] {
	return codec[T]{
		shape:  payload.Float32,
		count:  1,
		encode: func(v T) []byte { return payload.EncodeF32(float32(v)) },
		decode: func(b []byte) (T, error) {
			v, err := payload.DecodeF32(b)
			return T(v), err
		},
	}
}

func encoderReadings() codec[stepper.EncoderReadings] {
	return codec[stepper.EncoderReadings]{
		shape:  payload.S16,
		count:  stepper.EncoderCount,
		encode: func(r stepper.EncoderReadings) []byte { return payload.EncodeS16Array3(r.Array()) },
		decode: func(b []byte) (stepper.EncoderReadings, error) {
			v, err := payload.DecodeS16Array3(b)
			if err != nil {
				return stepper.EncoderReadings{}, err
			}
			return stepper.EncoderReadingsOf(v), nil
		},
	}
}
