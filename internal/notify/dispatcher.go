package notify

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	queueSize       = 100
	deliveryTimeout = 30 * time.Second
)

// Dispatcher hands notifications to a background worker so the request that
// produced them never waits on a mail server or broker.
type Dispatcher struct {
	sinks  []Sink
	logger logrus.FieldLogger
	queue  chan Notification

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(logger logrus.FieldLogger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks:  sinks,
		logger: logger,
		queue:  make(chan Notification, queueSize),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for n := range d.queue {
		d.Deliver(context.Background(), n)
	}
}

// Deliver sends n to every sink synchronously and returns one Result per sink.
func (d *Dispatcher) Deliver(ctx context.Context, n Notification) []Result {
	results := make([]Result, 0, len(d.sinks))
	for _, sink := range d.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, deliveryTimeout)
		res := sink.Deliver(sinkCtx, n)
		cancel()

		entry := d.logger.WithFields(logrus.Fields{
			"sink": sink.Name(),
			"kind": n.Kind,
			"sent": res.Sent,
		})
		if res.Sent {
			entry.Debug("notification delivered")
		} else {
			entry.WithField("reason", res.Reason).Warn("notification not delivered")
		}
		results = append(results, res)
	}
	return results
}

// Dispatch queues n without blocking. When the queue is full or the
// dispatcher is closed the notification is dropped.
func (d *Dispatcher) Dispatch(n Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.WithField("kind", n.Kind).Warn("notification dispatcher closed, dropping notification")
		return
	}

	select {
	case d.queue <- n:
	default:
		d.logger.WithField("kind", n.Kind).Warn("notification queue full, dropping notification")
	}
}

// Close stops accepting notifications and waits for queued ones to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}
