// internal/feed/client.go
package feed

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/tamzrod/harp-stepper/internal/harp"
)

// ErrClosed is returned by Request once the connection has been dropped
// and the client cannot redial.
var ErrClosed = errors.New("feed_client_closed")

// Client implements poller.Client over a feed-speaking transport host.
// One request line out, lines in until the reply. Events that arrive
// while waiting are passed to OnEvent.
//
// Any send or receive failure drops the connection, so a late reply can
// never be taken for the answer to a later request. Clients built by Dial
// reconnect on the next Request.
type Client struct {
	mu   sync.Mutex
	conn io.ReadWriteCloser
	r    *bufio.Reader
	dial func() (io.ReadWriteCloser, error)

	// OnEvent receives unsolicited event messages. Nil drops them.
	OnEvent func(harp.Message)
}

// NewClient wraps an established connection. It does not reconnect.
func NewClient(conn io.ReadWriteCloser) *Client {
	return &Client{conn: conn, r: bufio.NewReader(conn)}
}

// Dial connects to a transport host over TCP.
func Dial(ctx context.Context, endpoint string, timeout time.Duration) (*Client, error) {
	if endpoint == "" {
		return nil, errors.New("feed client: endpoint required")
	}
	dial := func(ctx context.Context) (io.ReadWriteCloser, error) {
		d := net.Dialer{Timeout: timeout}
		return d.DialContext(ctx, "tcp", endpoint)
	}

	conn, err := dial(ctx)
	if err != nil {
		return nil, err
	}
	c := NewClient(conn)
	c.dial = func() (io.ReadWriteCloser, error) { return dial(context.Background()) }
	return c, nil
}

func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dial = nil
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

type deadliner interface {
	SetDeadline(t time.Time) error
}

// Request sends req and returns the first non-event reply.
func (c *Client) Request(ctx context.Context, req harp.Message) (harp.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return harp.Message{}, err
	}
	if err := c.connect(); err != nil {
		return harp.Message{}, err
	}

	msg, err := c.exchange(ctx, req)
	if err != nil {
		c.drop()
		return harp.Message{}, err
	}
	return msg, nil
}

func (c *Client) connect() error {
	if c.conn != nil {
		return nil
	}
	if c.dial == nil {
		return ErrClosed
	}
	conn, err := c.dial()
	if err != nil {
		return fmt.Errorf("feed client: redial: %w", err)
	}
	c.conn = conn
	c.r = bufio.NewReader(conn)
	return nil
}

// drop closes the connection after a failed exchange.
func (c *Client) drop() {
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.conn = nil
	c.r = nil
}

func (c *Client) exchange(ctx context.Context, req harp.Message) (harp.Message, error) {
	if d, ok := c.conn.(deadliner); ok {
		dl, _ := ctx.Deadline()
		if err := d.SetDeadline(dl); err != nil {
			return harp.Message{}, err
		}
	}

	if _, err := io.WriteString(c.conn, Format(req)+"\n"); err != nil {
		return harp.Message{}, fmt.Errorf("feed client: send: %w", err)
	}

	for {
		line, err := c.r.ReadString('\n')
		if err != nil {
			return harp.Message{}, fmt.Errorf("feed client: receive: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue // keep-alive
		}
		msg, err := Parse(line)
		if err != nil {
			return harp.Message{}, fmt.Errorf("feed client: %w", err)
		}
		if msg.Kind() == harp.Event {
			if c.OnEvent != nil {
				c.OnEvent(msg)
			}
			continue
		}
		return msg, nil
	}
}
