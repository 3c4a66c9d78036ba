// internal/writer/types.go
package writer

import (
	"github.com/tamzrod/harp-stepper/internal/harp"
	"github.com/tamzrod/harp-stepper/internal/poller"
	"github.com/tamzrod/harp-stepper/internal/telemetry"
)

// Plan is the fully-built mirror plan for one device.
type Plan struct {
	Endpoint    string
	UnitID      uint8
	BaseAddress uint16 // holding register of slot 0
}

// endpointClient is the exact contract the writer uses.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}

// TelemetryWriter is the delivery-only contract for the telemetry block.
// It receives a snapshot and writes it verbatim.
type TelemetryWriter interface {
	WriteTelemetry(s telemetry.Snapshot) error
}

// Writer folds device messages into a snapshot and mirrors it.
type Writer interface {
	Write(res poller.PollResult) error
	Apply(msg harp.Message) error
	Snapshot() telemetry.Snapshot
}
