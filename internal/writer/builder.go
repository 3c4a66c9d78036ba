// internal/writer/builder.go
package writer

import (
	"errors"
	"time"

	cfg "github.com/tamzrod/harp-stepper/internal/config"
	wmodbus "github.com/tamzrod/harp-stepper/internal/writer/modbus"
)

// BuildPlan converts the mirror config into a writer Plan.
// Assumes config has already passed Validate.
func BuildPlan(m *cfg.MirrorConfig) (Plan, error) {
	if m == nil {
		return Plan{}, errors.New("writer: mirror not configured")
	}
	if m.Endpoint == "" {
		return Plan{}, errors.New("writer: mirror.endpoint required")
	}
	return Plan{
		Endpoint:    m.Endpoint,
		UnitID:      m.UnitID,
		BaseAddress: m.BaseAddress,
	}, nil
}

// BuildEndpointClient connects the mirror endpoint.
func BuildEndpointClient(m *cfg.MirrorConfig) (*wmodbus.EndpointClient, func() error, error) {
	c, err := wmodbus.NewEndpointClient(wmodbus.Config{
		Endpoint: m.Endpoint,
		Timeout:  time.Duration(m.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}
	return c, c.Close, nil
}
