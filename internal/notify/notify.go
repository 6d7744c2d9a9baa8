// Package notify delivers best-effort notices about newly created records.
// Delivery failures are reported as a Result and logged; they never reach the
// HTTP caller.
package notify

import "context"

type Kind string

const (
	KindBookingCreated Kind = "booking.created"
	KindContactCreated Kind = "contact.created"
)

type Notification struct {
	Kind    Kind
	Subject string
	Body    string

	// Key and Payload are used by structured sinks such as Kafka.
	Key     string
	Payload any
}

type Result struct {
	Sent   bool
	Reason string
}

func Sent() Result {
	return Result{Sent: true}
}

func Failed(reason string) Result {
	return Result{Sent: false, Reason: reason}
}

type Sink interface {
	Name() string
	Deliver(ctx context.Context, n Notification) Result
}
