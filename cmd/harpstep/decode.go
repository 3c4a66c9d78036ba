// cmd/harpstep/decode.go
package main

import (
	"io"

	"go.uber.org/zap"

	"github.com/tamzrod/harp-stepper/internal/catalog"
	"github.com/tamzrod/harp-stepper/internal/feed"
	"github.com/tamzrod/harp-stepper/internal/harp"
	"github.com/tamzrod/harp-stepper/internal/registers"
)

// runDecode logs one line per message. Messages that fail to decode
// are logged and skipped; only malformed feed lines stop the scan.
func runDecode(logger *zap.Logger, in io.Reader) error {
	return feed.Scan(in, func(msg harp.Message) error {
		decodeOne(logger, msg)
		return nil
	})
}

func decodeOne(logger *zap.Logger, msg harp.Message) {
	fields := []zap.Field{
		zap.Uint8("address", msg.Address()),
		zap.Stringer("kind", msg.Kind()),
	}
	if e, err := catalog.Lookup(msg.Address()); err == nil {
		fields = append(fields, zap.String("register", e.Name))
	}
	if ts, ok := msg.Timestamp(); ok {
		fields = append(fields, zap.Float64("seconds", ts))
	}

	v, err := registers.Decode(msg)
	if err != nil {
		logger.Warn("decode failed", append(fields, zap.Error(err))...)
		return
	}
	logger.Info("message", append(fields, zap.Any("value", v))...)
}
