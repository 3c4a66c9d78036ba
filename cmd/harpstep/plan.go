// cmd/harpstep/plan.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/tamzrod/harp-stepper/internal/config"
	"github.com/tamzrod/harp-stepper/internal/feed"
	"github.com/tamzrod/harp-stepper/internal/harp"
	"github.com/tamzrod/harp-stepper/internal/setup"
)

const requestTimeout = 2 * time.Second

// loadProfile runs the Load, Validate, Normalize sequence.
func loadProfile(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)
	return cfg, nil
}

func runPlan(ctx context.Context, logger *zap.Logger, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	host := fs.String("host", "", "transport host to send the writes to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: harpstep plan [-host addr] <profile.yaml>")
	}

	cfg, err := loadProfile(fs.Arg(0))
	if err != nil {
		return err
	}

	plan, err := setup.BuildPlan(cfg.Device)
	if err != nil {
		return err
	}

	for _, a := range plan.Advisories {
		logger.Warn("value outside advisory range, sending anyway",
			zap.String("register", a.Register),
			zap.Float64("value", a.Value),
			zap.Float64("min", a.Min),
			zap.Float64("max", a.Max),
		)
	}

	if *host == "" {
		for _, m := range plan.Messages {
			if _, err := fmt.Fprintln(out, feed.Format(m)); err != nil {
				return err
			}
		}
		return nil
	}

	// ------------------------------------------------------------
	// Send to the device through the transport host
	// ------------------------------------------------------------

	cli, err := feed.Dial(ctx, *host, requestTimeout)
	if err != nil {
		return fmt.Errorf("transport dial failed: %w", err)
	}
	defer cli.Close()

	for _, m := range plan.Messages {
		rctx, cancel := context.WithTimeout(ctx, requestTimeout)
		reply, err := cli.Request(rctx, m)
		cancel()
		if err != nil {
			return fmt.Errorf("write %d: %w", m.Address(), err)
		}
		if reply.Address() != m.Address() || reply.Kind() != harp.Write {
			return fmt.Errorf("write %d: unexpected reply %s", m.Address(), reply)
		}
		logger.Debug("register written", zap.Uint8("address", m.Address()))
	}

	logger.Info("device configured",
		zap.String("device", cfg.Device.Name),
		zap.Int("writes", len(plan.Messages)),
		zap.Int("advisories", len(plan.Advisories)),
	)
	return nil
}
