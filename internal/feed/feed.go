// internal/feed/feed.go
package feed

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tamzrod/harp-stepper/internal/harp"
)

// ErrSyntax is returned for lines that are not a feed message.
var ErrSyntax = errors.New("feed_syntax")

// Parse decodes one feed line:
//
//	<read|write|event> <address> [@<seconds>] [<hex payload>]
//
// Example: "event 80 @12.5 0500fdff0000".
func Parse(line string) (harp.Message, error) {
	f := strings.Fields(line)
	if len(f) < 2 || len(f) > 4 {
		return harp.Message{}, fmt.Errorf("%w: %q", ErrSyntax, line)
	}

	kind, err := harp.ParseKind(f[0])
	if err != nil {
		return harp.Message{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	addr, err := strconv.ParseUint(f[1], 10, 8)
	if err != nil {
		return harp.Message{}, fmt.Errorf("%w: address %q", ErrSyntax, f[1])
	}

	rest := f[2:]

	var (
		seconds float64
		hasTime bool
	)
	if len(rest) > 0 && strings.HasPrefix(rest[0], "@") {
		seconds, err = strconv.ParseFloat(rest[0][1:], 64)
		if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
			return harp.Message{}, fmt.Errorf("%w: timestamp %q", ErrSyntax, rest[0])
		}
		hasTime = true
		rest = rest[1:]
	}

	var payload []byte
	switch len(rest) {
	case 0:
	case 1:
		payload, err = hex.DecodeString(rest[0])
		if err != nil {
			return harp.Message{}, fmt.Errorf("%w: payload %q", ErrSyntax, rest[0])
		}
	default:
		return harp.Message{}, fmt.Errorf("%w: %q", ErrSyntax, line)
	}

	if hasTime {
		return harp.NewTimestampedMessage(uint8(addr), kind, seconds, payload), nil
	}
	return harp.NewMessage(uint8(addr), kind, payload), nil
}

// Format is the inverse of Parse.
func Format(msg harp.Message) string {
	var b strings.Builder
	b.WriteString(msg.Kind().String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(int(msg.Address())))
	if ts, ok := msg.Timestamp(); ok {
		b.WriteString(" @")
		b.WriteString(strconv.FormatFloat(ts, 'f', -1, 64))
	}
	if msg.PayloadLen() > 0 {
		b.WriteByte(' ')
		b.WriteString(hex.EncodeToString(msg.Payload()))
	}
	return b.String()
}

// Scan parses r line by line and calls fn for each message.
// Empty lines and lines starting with '#' are skipped.
// It stops at the first parse or fn error.
func Scan(r io.Reader, fn func(harp.Message) error) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		msg, err := Parse(line)
		if err != nil {
			return fmt.Errorf("feed: line %d: %w", n, err)
		}
		if err := fn(msg); err != nil {
			return fmt.Errorf("feed: line %d: %w", n, err)
		}
	}
	return sc.Err()
}
