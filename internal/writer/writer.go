// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/harp-stepper/internal/harp"
	"github.com/tamzrod/harp-stepper/internal/poller"
	"github.com/tamzrod/harp-stepper/internal/telemetry"
)

type mirror struct {
	tw   TelemetryWriter
	snap telemetry.Snapshot
}

// New returns a Writer that mirrors telemetry through tw.
// Not safe for concurrent use; one goroutine owns it.
func New(tw TelemetryWriter) Writer {
	return &mirror{tw: tw}
}

// Write folds one poll cycle into the snapshot and writes it.
// Failed cycles are not written; the mirror keeps the last known state.
func (m *mirror) Write(res poller.PollResult) error {
	if res.Err != nil {
		return nil
	}

	var errs []string
	for _, msg := range res.Messages {
		if _, err := m.snap.Apply(msg); err != nil {
			errs = append(errs, fmt.Sprintf("device=%s reg=%d: %v", res.DeviceID, msg.Address(), err))
		}
	}

	if err := m.tw.WriteTelemetry(m.snap); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return errors.New("writer: " + strings.Join(errs, " | "))
	}
	return nil
}

// Apply folds one device message into the snapshot and writes it.
// Messages for non-telemetry registers are ignored.
func (m *mirror) Apply(msg harp.Message) error {
	ok, err := m.snap.Apply(msg)
	if err != nil {
		return fmt.Errorf("writer: reg=%d: %w", msg.Address(), err)
	}
	if !ok {
		return nil
	}
	return m.tw.WriteTelemetry(m.snap)
}

func (m *mirror) Snapshot() telemetry.Snapshot {
	return m.snap
}
