// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/harp-stepper/internal/harp"
)

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	DeviceID string
	At       time.Time

	// Messages holds one Read reply per polled address, in poll order.
	// It is empty when Err is set.
	Messages []harp.Message
	Err      error // non-nil means the poll cycle failed
}
