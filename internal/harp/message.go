// internal/harp/message.go
package harp

import (
	"errors"
	"fmt"
	"strings"
)

// MessageKind is the Harp message type carried by the transport.
type MessageKind uint8

const (
	Read  MessageKind = 1
	Write MessageKind = 2
	Event MessageKind = 3
)

// ErrUnknownKind is returned by ParseKind for unrecognized names.
var ErrUnknownKind = errors.New("unknown_message_kind")

func (k MessageKind) String() string {
	switch k {
	case Read:
		return "read"
	case Write:
		return "write"
	case Event:
		return "event"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

func ParseKind(s string) (MessageKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "read":
		return Read, nil
	case "write":
		return Write, nil
	case "event":
		return Event, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Message is one validated register message as delivered by the
// transport layer (framing and checksum already stripped).
// A Message is a value: it is never mutated after construction.
type Message struct {
	address   uint8
	kind      MessageKind
	timestamp float64
	hasTime   bool
	payload   []byte
}

// NewMessage builds an untimestamped message. The payload is copied.
func NewMessage(address uint8, kind MessageKind, payload []byte) Message {
	return Message{
		address: address,
		kind:    kind,
		payload: append([]byte(nil), payload...),
	}
}

// NewTimestampedMessage builds a message carrying a capture time in
// seconds. The payload is copied.
func NewTimestampedMessage(address uint8, kind MessageKind, seconds float64, payload []byte) Message {
	m := NewMessage(address, kind, payload)
	m.timestamp = seconds
	m.hasTime = true
	return m
}

func (m Message) Address() uint8 { return m.address }

func (m Message) Kind() MessageKind { return m.kind }

// Timestamp returns the capture time and whether one is present.
func (m Message) Timestamp() (float64, bool) { return m.timestamp, m.hasTime }

// Payload returns a copy of the raw payload bytes.
func (m Message) Payload() []byte { return append([]byte(nil), m.payload...) }

// PayloadLen returns the payload length without copying.
func (m Message) PayloadLen() int { return len(m.payload) }

func (m Message) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s addr=%d", m.kind, m.address)
	if m.hasTime {
		fmt.Fprintf(&b, " t=%g", m.timestamp)
	}
	fmt.Fprintf(&b, " payload=[% X]", m.payload)
	return b.String()
}

// Timestamped pairs a decoded value with the capture time of the message
// it was decoded from.
type Timestamped[T any] struct {
	Value   T
	Seconds float64
}
