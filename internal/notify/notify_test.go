package notify

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/lawfirm-api/internal/config"
	"github.com/BruksfildServices01/lawfirm-api/internal/logging"
)

type recordingSink struct {
	mu       sync.Mutex
	received []Notification
	result   Result
	delay    time.Duration
}

func (r *recordingSink) Name() string { return "recording" }

func (r *recordingSink) Deliver(_ context.Context, n Notification) Result {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.received = append(r.received, n)
	return r.result
}

func (r *recordingSink) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.received)
}

func TestSMTPNotifierMissingConfig(t *testing.T) {
	n := NewSMTPNotifier(config.SMTPConfig{Host: "smtp.example.com"}, logging.Discard())

	res := n.Deliver(context.Background(), Notification{Subject: "s", Body: "b"})

	assert.False(t, res.Sent)
	assert.Equal(t, "email configuration missing", res.Reason)
}

func TestSMTPNotifierTransportFailure(t *testing.T) {
	// Reserve a port and release it so the dial is refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	cfg := config.SMTPConfig{
		Host:     "127.0.0.1",
		Port:     port,
		Username: "mailer",
		Password: "secret",
		From:     "site@example.com",
		To:       "office@example.com",
	}
	n := NewSMTPNotifier(cfg, logging.Discard())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res := n.Deliver(ctx, Notification{Subject: "New Booking Received (Booking #1)", Body: "b"})

	assert.False(t, res.Sent)
	assert.Contains(t, res.Reason, "failed to send email notification")
}

func TestKafkaSinkSkipsUnknownKind(t *testing.T) {
	sink := NewKafkaSink([]string{"127.0.0.1:9"}, map[Kind]string{KindBookingCreated: "bookings.created"}, logging.Discard())
	defer sink.Close()

	res := sink.Deliver(context.Background(), Notification{Kind: KindContactCreated})

	assert.False(t, res.Sent)
	assert.Contains(t, res.Reason, "no topic")
}

func TestDispatcherDeliversToEverySink(t *testing.T) {
	first := &recordingSink{result: Sent()}
	second := &recordingSink{result: Failed("down")}
	d := NewDispatcher(logging.Discard(), first, second)

	results := d.Deliver(context.Background(), Notification{Kind: KindBookingCreated})
	d.Close()

	require.Len(t, results, 2)
	assert.True(t, results[0].Sent)
	assert.False(t, results[1].Sent)
	assert.Equal(t, "down", results[1].Reason)
	assert.Equal(t, 1, first.count())
	assert.Equal(t, 1, second.count())
}

func TestDispatcherCloseDrainsQueue(t *testing.T) {
	sink := &recordingSink{result: Sent(), delay: 5 * time.Millisecond}
	d := NewDispatcher(logging.Discard(), sink)

	for i := 0; i < 10; i++ {
		d.Dispatch(Notification{Kind: KindContactCreated, Subject: "New Contact Message"})
	}
	d.Close()

	assert.Equal(t, 10, sink.count())
}

func TestDispatcherDropsAfterClose(t *testing.T) {
	sink := &recordingSink{result: Sent()}
	d := NewDispatcher(logging.Discard(), sink)
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Notification{Kind: KindBookingCreated})
	})
	d.Close()
	assert.Equal(t, 0, sink.count())
}
