// internal/registers/accessor.go
package registers

import (
	"errors"
	"fmt"

	"github.com/tamzrod/harp-stepper/internal/catalog"
	"github.com/tamzrod/harp-stepper/internal/harp"
)

var (
	ErrAddressMismatch  = errors.New("address_mismatch")
	ErrMissingTimestamp = errors.New("missing_timestamp")
)

// Accessor reads and builds messages for one register.
// It is bound to a single address at package init; it is not
// address-polymorphic.
type Accessor[T any] struct {
	entry catalog.Entry
	c     codec[T]
}

// bind builds the accessor for addr. A shape disagreement between the
// codec and the catalog is a programming error and panics at init.
func bind[T any](addr uint8, c codec[T]) Accessor[T] {
	e, err := catalog.Resolve(addr)
	if err != nil {
		panic(fmt.Sprintf("registers: bind %d: %v", addr, err))
	}
	if e.Shape != c.shape || e.Count != c.count {
		panic(fmt.Sprintf(
			"registers: %s is %s x%d in catalog, codec is %s x%d",
			e.Name, e.Shape, e.Count, c.shape, c.count,
		))
	}
	a := Accessor[T]{entry: e, c: c}
	index[addr] = a
	return a
}

func (a Accessor[T]) Address() uint8 { return a.entry.Address }

func (a Accessor[T]) Entry() catalog.Entry { return a.entry }

// GetPayload decodes the payload of msg.
func (a Accessor[T]) GetPayload(msg harp.Message) (T, error) {
	var zero T
	if msg.Address() != a.entry.Address {
		return zero, fmt.Errorf(
			"%w: %s is address %d, message is %d",
			ErrAddressMismatch, a.entry.Name, a.entry.Address, msg.Address(),
		)
	}
	v, err := a.c.decode(msg.Payload())
	if err != nil {
		return zero, fmt.Errorf("%s: %w", a.entry.Name, err)
	}
	return v, nil
}

// GetTimestampedPayload decodes the payload of msg and pairs it with the
// message timestamp.
func (a Accessor[T]) GetTimestampedPayload(msg harp.Message) (harp.Timestamped[T], error) {
	seconds, ok := msg.Timestamp()
	if !ok {
		return harp.Timestamped[T]{}, fmt.Errorf("%w: %s", ErrMissingTimestamp, a.entry.Name)
	}
	v, err := a.GetPayload(msg)
	if err != nil {
		return harp.Timestamped[T]{}, err
	}
	return harp.Timestamped[T]{Value: v, Seconds: seconds}, nil
}

// FromPayload builds an untimestamped message. Values are encoded as-is;
// advisory ranges are not checked here.
func (a Accessor[T]) FromPayload(kind harp.MessageKind, v T) harp.Message {
	return harp.NewMessage(a.entry.Address, kind, a.c.encode(v))
}

func (a Accessor[T]) FromPayloadWithTimestamp(seconds float64, kind harp.MessageKind, v T) harp.Message {
	return harp.NewTimestampedMessage(a.entry.Address, kind, seconds, a.c.encode(v))
}

func (a Accessor[T]) decodeAny(msg harp.Message) (any, error) {
	return a.GetPayload(msg)
}
