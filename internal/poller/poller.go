// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/harp-stepper/internal/catalog"
	"github.com/tamzrod/harp-stepper/internal/harp"
)

// Client abstracts the Harp transport needed by the poller.
// One request, one reply. Framing and checksums belong to the transport.
type Client interface {
	Request(ctx context.Context, req harp.Message) (harp.Message, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	DeviceID  string
	Interval  time.Duration
	Timeout   time.Duration // per request
	Addresses []uint8
}

// Poller is a dumb, clock-driven reader.
type Poller struct {
	cfg    Config
	client Client
}

// New creates a poller with immutable config.
func New(cfg Config, client Client) (*Poller, error) {
	if cfg.DeviceID == "" {
		return nil, errors.New("poller: device id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if cfg.Timeout <= 0 {
		return nil, errors.New("poller: timeout must be > 0")
	}
	if len(cfg.Addresses) == 0 {
		return nil, errors.New("poller: at least one address required")
	}
	if client == nil {
		return nil, errors.New("poller: client required")
	}
	for _, addr := range cfg.Addresses {
		if _, err := catalog.Resolve(addr); err != nil {
			return nil, fmt.Errorf("poller: address %d: %w", addr, err)
		}
	}

	addrs := make([]uint8, len(cfg.Addresses))
	copy(addrs, cfg.Addresses)
	cfg.Addresses = addrs

	return &Poller{cfg: cfg, client: client}, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: any failure aborts the cycle.
func (p *Poller) PollOnce(ctx context.Context) PollResult {
	res := PollResult{
		DeviceID: p.cfg.DeviceID,
		At:       time.Now(),
	}

	msgs := make([]harp.Message, 0, len(p.cfg.Addresses))

	for _, addr := range p.cfg.Addresses {
		rctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
		reply, err := p.client.Request(rctx, harp.NewMessage(addr, harp.Read, nil))
		cancel()
		if err != nil {
			res.Err = fmt.Errorf("poller: read %d: %w", addr, err)
			return res
		}
		if reply.Address() != addr {
			res.Err = fmt.Errorf("poller: read %d: reply for address %d", addr, reply.Address())
			return res
		}
		if reply.Kind() != harp.Read {
			res.Err = fmt.Errorf("poller: read %d: unexpected %s reply", addr, reply.Kind())
			return res
		}
		msgs = append(msgs, reply)
	}

	// Commit only if all reads succeeded
	res.Messages = msgs
	return res
}
