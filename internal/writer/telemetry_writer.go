// internal/writer/telemetry_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/harp-stepper/internal/telemetry"
)

type telemetryWriter struct {
	plan Plan
	cli  endpointClient

	needFull bool
	last     []uint16
}

// NewTelemetryWriter builds the block writer for plan.
func NewTelemetryWriter(plan Plan, cli endpointClient) TelemetryWriter {
	return &telemetryWriter{
		plan:     plan,
		cli:      cli,
		needFull: true, // full re-assert on first successful write
		last:     make([]uint16, telemetry.SlotsPerDevice),
	}
}

// WriteTelemetry delivers a snapshot into mirror memory.
// On any write failure, the next call will re-assert the full block.
func (tw *telemetryWriter) WriteTelemetry(s telemetry.Snapshot) error {
	if tw.cli == nil {
		return fmt.Errorf("telemetry writer: missing client for endpoint %s", tw.plan.Endpoint)
	}

	regs := telemetry.Encode(s)

	// ------------------------------------------------------------
	// Full block write (re-assert)
	// ------------------------------------------------------------
	if tw.needFull {
		if err := tw.cli.WriteRegisters(tw.plan.UnitID, tw.plan.BaseAddress, regs); err != nil {
			return fmt.Errorf("telemetry writer: full block write failed: %w", err)
		}
		tw.needFull = false
		copy(tw.last, regs)
		return nil
	}

	// ------------------------------------------------------------
	// Incremental: one write per contiguous run of changed slots
	// ------------------------------------------------------------
	var errs []string

	for start := 0; start < len(regs); {
		if regs[start] == tw.last[start] {
			start++
			continue
		}
		end := start + 1
		for end < len(regs) && regs[end] != tw.last[end] {
			end++
		}

		addr := tw.plan.BaseAddress + uint16(start)
		if err := tw.cli.WriteRegisters(tw.plan.UnitID, addr, regs[start:end]); err != nil {
			errs = append(errs, fmt.Sprintf("slots %d..%d write failed: %v", start, end-1, err))
		} else {
			copy(tw.last[start:end], regs[start:end])
		}
		start = end
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt: re-assert on next write.
		tw.needFull = true
		return errors.New("telemetry writer: " + strings.Join(errs, " | "))
	}

	return nil
}
