// cmd/harpstep/mirror.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tamzrod/harp-stepper/internal/feed"
	"github.com/tamzrod/harp-stepper/internal/harp"
	"github.com/tamzrod/harp-stepper/internal/poller"
	"github.com/tamzrod/harp-stepper/internal/writer"
)

func runMirror(ctx context.Context, logger *zap.Logger, args []string, in io.Reader) error {
	fs := flag.NewFlagSet("mirror", flag.ContinueOnError)
	host := fs.String("host", "", "transport host to poll (default: read events from stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: harpstep mirror [-host addr] <profile.yaml>")
	}

	cfg, err := loadProfile(fs.Arg(0))
	if err != nil {
		return err
	}
	if cfg.Mirror == nil {
		return errors.New("profile has no mirror section")
	}

	// ---- writer plan + endpoint client ----
	plan, err := writer.BuildPlan(cfg.Mirror)
	if err != nil {
		return err
	}
	ep, closeEndpoint, err := writer.BuildEndpointClient(cfg.Mirror)
	if err != nil {
		return fmt.Errorf("mirror endpoint failed: %w", err)
	}
	defer closeEndpoint()

	w := writer.New(writer.NewTelemetryWriter(plan, ep))

	log := logger.With(
		zap.String("device", cfg.Device.Name),
		zap.String("endpoint", plan.Endpoint),
		zap.Uint8("unit_id", plan.UnitID),
	)

	if *host == "" {
		log.Info("mirroring events from stdin")
		return feed.Scan(in, func(msg harp.Message) error {
			if err := w.Apply(msg); err != nil {
				log.Warn("mirror write failed", zap.Error(err))
			}
			return nil
		})
	}

	// ------------------------------------------------------------
	// Poll the transport host; events are folded in between polls
	// ------------------------------------------------------------

	cli, err := feed.Dial(ctx, *host, requestTimeout)
	if err != nil {
		return fmt.Errorf("transport dial failed: %w", err)
	}
	defer cli.Close()

	events := make(chan harp.Message, 64)
	cli.OnEvent = func(m harp.Message) {
		select {
		case events <- m:
		default:
			log.Warn("event dropped", zap.Uint8("address", m.Address()))
		}
	}

	p, err := poller.Build(cfg, cli)
	if err != nil {
		return err
	}

	out := make(chan poller.PollResult)
	go p.Run(ctx, out)

	log.Info("mirroring", zap.String("host", *host), zap.Int("interval_ms", cfg.Poll.IntervalMs))

	for {
		select {
		case <-ctx.Done():
			return nil

		case res := <-out:
			if res.Err != nil {
				log.Warn("poll failed", zap.Error(res.Err))
				continue
			}
			if err := w.Write(res); err != nil {
				log.Warn("mirror write failed", zap.Error(err))
			}

		case m := <-events:
			if err := w.Apply(m); err != nil {
				log.Warn("mirror write failed", zap.Error(err))
			}
		}
	}
}
