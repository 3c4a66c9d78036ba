// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/tamzrod/harp-stepper/internal/config"
	"github.com/tamzrod/harp-stepper/internal/telemetry"
)

// Build constructs a telemetry Poller for the configured device.
// Assumes config has already passed Validate and Normalize.
// The client is owned by the caller.
func Build(c *cfg.Config, client Client) (*Poller, error) {
	id := c.Device.Name
	if id == "" {
		id = "harp-stepper"
	}
	return New(
		Config{
			DeviceID:  id,
			Interval:  time.Duration(c.Poll.IntervalMs) * time.Millisecond,
			Timeout:   time.Duration(c.Poll.TimeoutMs) * time.Millisecond,
			Addresses: telemetry.Addresses(),
		},
		client,
	)
}
