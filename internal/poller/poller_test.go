// internal/poller/poller_test.go
package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tamzrod/harp-stepper/internal/catalog"
	"github.com/tamzrod/harp-stepper/internal/config"
	"github.com/tamzrod/harp-stepper/internal/harp"
	"github.com/tamzrod/harp-stepper/internal/stepper"
)

type fakeClient struct {
	failAddr  uint8
	wrongAddr uint8
	kind      harp.MessageKind
	requests  []harp.Message
}

func (f *fakeClient) Request(ctx context.Context, req harp.Message) (harp.Message, error) {
	f.requests = append(f.requests, req)

	addr := req.Address()
	if addr == f.failAddr {
		return harp.Message{}, errors.New("fail read")
	}
	if addr == f.wrongAddr {
		addr++
	}
	kind := harp.Read
	if f.kind != 0 {
		kind = f.kind
	}
	return harp.NewMessage(addr, kind, []byte{byte(stepper.Motor1)}), nil
}

func testConfig() Config {
	return Config{
		DeviceID:  "rig-01",
		Interval:  1 * time.Second,
		Timeout:   100 * time.Millisecond,
		Addresses: []uint8{catalog.MotorStopped, catalog.MotorErrorDetection},
	}
}

func TestPollOnce_Success(t *testing.T) {
	cli := &fakeClient{}
	p, err := New(testConfig(), cli)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.PollOnce(context.Background())
	if res.Err != nil {
		t.Fatalf("PollOnce err=%v", res.Err)
	}
	if len(res.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(res.Messages))
	}
	if res.DeviceID != "rig-01" {
		t.Fatalf("unexpected device id: %q", res.DeviceID)
	}

	for i, req := range cli.requests {
		if req.Kind() != harp.Read || req.PayloadLen() != 0 {
			t.Fatalf("request %d is not an empty read: %v", i, req)
		}
	}
	if cli.requests[1].Address() != catalog.MotorErrorDetection {
		t.Fatalf("requests out of order: %v", cli.requests)
	}
}

func TestPollOnce_Failure(t *testing.T) {
	p, err := New(testConfig(), &fakeClient{failAddr: catalog.MotorErrorDetection})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.PollOnce(context.Background())
	if res.Err == nil {
		t.Fatalf("expected error, got nil")
	}
	if len(res.Messages) != 0 {
		t.Fatalf("partial result committed: %v", res.Messages)
	}
}

func TestPollOnce_ReplyMismatch(t *testing.T) {
	cases := []*fakeClient{
		{wrongAddr: catalog.MotorStopped},
		{kind: harp.Event},
	}
	for i, cli := range cases {
		p, err := New(testConfig(), cli)
		if err != nil {
			t.Fatalf("New() err=%v", err)
		}
		if res := p.PollOnce(context.Background()); res.Err == nil {
			t.Fatalf("case %d: expected error, got nil", i)
		}
	}
}

func TestNew_RejectsBadConfig(t *testing.T) {
	bad := []Config{
		{Interval: time.Second, Timeout: time.Second, Addresses: []uint8{77}},
		{DeviceID: "d", Timeout: time.Second, Addresses: []uint8{77}},
		{DeviceID: "d", Interval: time.Second, Addresses: []uint8{77}},
		{DeviceID: "d", Interval: time.Second, Timeout: time.Second},
		{DeviceID: "d", Interval: time.Second, Timeout: time.Second, Addresses: []uint8{110}},
		{DeviceID: "d", Interval: time.Second, Timeout: time.Second, Addresses: []uint8{7}},
	}
	for i, c := range bad {
		if _, err := New(c, &fakeClient{}); err == nil {
			t.Fatalf("case %d: expected error, got nil", i)
		}
	}
}

func TestRun_EmitsUntilCancelled(t *testing.T) {
	c := testConfig()
	c.Interval = time.Millisecond
	p, err := New(c, &fakeClient{})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan PollResult)
	done := make(chan struct{})
	go func() {
		p.Run(ctx, out)
		close(done)
	}()

	select {
	case res := <-out:
		if res.Err != nil {
			t.Fatalf("unexpected error: %v", res.Err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no poll result emitted")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestBuild_TelemetryAddresses(t *testing.T) {
	c := &config.Config{Poll: config.PollConfig{IntervalMs: 50, TimeoutMs: 20}}
	p, err := Build(c, &fakeClient{})
	if err != nil {
		t.Fatalf("Build() err=%v", err)
	}
	if p.cfg.Interval != 50*time.Millisecond || p.cfg.Timeout != 20*time.Millisecond || len(p.cfg.Addresses) != 10 {
		t.Fatalf("unexpected poller config: %+v", p.cfg)
	}
}

// silentClient models a host that accepts the request and never answers.
type silentClient struct{}

func (silentClient) Request(ctx context.Context, req harp.Message) (harp.Message, error) {
	<-ctx.Done()
	return harp.Message{}, ctx.Err()
}

func TestPollOnce_SilentHostTimesOut(t *testing.T) {
	c := testConfig()
	c.Addresses = []uint8{catalog.MotorStopped}
	p, err := New(c, silentClient{})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	done := make(chan PollResult, 1)
	go func() { done <- p.PollOnce(context.Background()) }()

	select {
	case res := <-done:
		if !errors.Is(res.Err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline exceeded, got %v", res.Err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("PollOnce blocked past the request timeout")
	}
}
