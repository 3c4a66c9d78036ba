// internal/catalog/catalog.go
package catalog

import (
	"errors"
	"fmt"

	"github.com/tamzrod/harp-stepper/internal/payload"
)

var (
	ErrUnknownRegister  = errors.New("unknown_register")
	ErrReservedRegister = errors.New("reserved_register")
)

// Access is the access class of a register.
type Access uint8

const (
	AccessReserved  Access = iota // present in the table, no public accessor
	AccessConfig                  // read and write, device echoes the stored value
	AccessCommand                 // written by the host to trigger an action
	AccessTelemetry               // produced by the device (read or event)
)

func (a Access) String() string {
	switch a {
	case AccessReserved:
		return "reserved"
	case AccessConfig:
		return "config"
	case AccessCommand:
		return "command"
	case AccessTelemetry:
		return "telemetry"
	default:
		return fmt.Sprintf("access(%d)", uint8(a))
	}
}

// Limits is the advisory numeric range and default of a bounded register.
// The codec never enforces it.
type Limits struct {
	Min     float64
	Max     float64
	Default float64
}

// Contains reports whether v lies inside the inclusive range.
func (l Limits) Contains(v float64) bool {
	return v >= l.Min && v <= l.Max
}

// Entry describes one register. Entries are plain values; changing a
// returned Entry does not affect the catalog.
type Entry struct {
	Address     uint8
	Name        string
	Shape       payload.Shape
	Count       int
	Access      Access
	Description string

	limits    Limits
	hasLimits bool
}

// Size returns the payload byte length of the register.
func (e Entry) Size() int { return e.Shape.Size(e.Count) }

// Limits returns the advisory range, if the register declares one.
func (e Entry) Limits() (Limits, bool) { return e.limits, e.hasLimits }

// Reserved reports whether the register is internal to the device.
func (e Entry) Reserved() bool { return e.Access == AccessReserved }

// table is indexed by address - FirstAddress. Built once, never mutated.
var table = build()

var byName = indexNames(table)

// Lookup returns the entry for addr. Reserved addresses are present in the
// catalog and are returned without error; use Resolve on codec paths.
func Lookup(addr uint8) (Entry, error) {
	if addr < FirstAddress || addr > LastAddress {
		return Entry{}, fmt.Errorf("%w: address %d", ErrUnknownRegister, addr)
	}
	return table[addr-FirstAddress], nil
}

// Resolve is Lookup restricted to registers with a public accessor.
func Resolve(addr uint8) (Entry, error) {
	e, err := Lookup(addr)
	if err != nil {
		return Entry{}, err
	}
	if e.Reserved() {
		return Entry{}, fmt.Errorf("%w: address %d", ErrReservedRegister, addr)
	}
	return e, nil
}

// ByName returns the entry with the given register name.
func ByName(name string) (Entry, error) {
	addr, ok := byName[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: name %q", ErrUnknownRegister, name)
	}
	return Lookup(addr)
}

// All returns every entry in address order, reserved ones included.
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table[:])
	return out
}

func indexNames(t [int(LastAddress-FirstAddress) + 1]Entry) map[string]uint8 {
	out := make(map[string]uint8, len(t))
	for _, e := range t {
		out[e.Name] = e.Address
	}
	return out
}
