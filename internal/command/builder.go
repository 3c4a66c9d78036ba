// internal/command/builder.go
package command

import (
	"github.com/tamzrod/harp-stepper/internal/catalog"
	"github.com/tamzrod/harp-stepper/internal/harp"
	"github.com/tamzrod/harp-stepper/internal/registers"
)

// Builder holds one typed value for a register and turns it into an
// outgoing message.
type Builder[T any] struct {
	Value T

	def T
	acc registers.Accessor[T]
}

func newBuilder[T any](acc registers.Accessor[T], def T) *Builder[T] {
	return &Builder[T]{Value: def, def: def, acc: acc}
}

// Register returns the catalog entry the builder writes to.
func (b *Builder[T]) Register() catalog.Entry { return b.acc.Entry() }

// Default returns the declared default value.
func (b *Builder[T]) Default() T { return b.def }

// Reset restores the default value.
func (b *Builder[T]) Reset() { b.Value = b.def }

// Set replaces the value and returns the builder for chaining.
func (b *Builder[T]) Set(v T) *Builder[T] {
	b.Value = v
	return b
}

// Build encodes the current value. The value is sent as-is.
func (b *Builder[T]) Build(kind harp.MessageKind) harp.Message {
	return b.acc.FromPayload(kind, b.Value)
}

func (b *Builder[T]) BuildWithTimestamp(seconds float64, kind harp.MessageKind) harp.Message {
	return b.acc.FromPayloadWithTimestamp(seconds, kind, b.Value)
}

// Number is the set of payload types that carry a declared range.
type Number interface {
	~uint16 | ~int32 | ~float32
}

// Range is an inclusive advisory range. It drives input validation in
// front ends; Build never enforces it.
type Range[T Number] struct {
	Min T
	Max T
}

func (r Range[T]) Contains(v T) bool { return v >= r.Min && v <= r.Max }

// Bounded is a Builder for a numeric register with a declared range.
type Bounded[T Number] struct {
	Builder[T]
	Range Range[T]
}

// newBounded takes range and default from the catalog entry.
func newBounded[T Number](acc registers.Accessor[T]) *Bounded[T] {
	l, ok := acc.Entry().Limits()
	if !ok {
		panic("command: " + acc.Entry().Name + " declares no limits")
	}
	def := T(l.Default)
	return &Bounded[T]{
		Builder: Builder[T]{Value: def, def: def, acc: acc},
		Range:   Range[T]{Min: T(l.Min), Max: T(l.Max)},
	}
}

// InRange reports whether the current value lies inside the declared range.
func (b *Bounded[T]) InRange() bool { return b.Range.Contains(b.Value) }

// Set replaces the value and returns the bounded builder for chaining.
func (b *Bounded[T]) Set(v T) *Bounded[T] {
	b.Value = v
	return b
}
