package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/logging"
)

// Sender renders notification emails. Delivery is a log line; there is no
// mail gateway.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	subject, err := Subject(event)
	if err != nil {
		logging.FromContext(ctx).WithError(err).Warn("dropping notification")
		return nil
	}
	logging.FromContext(ctx).
		WithField("to", event.Email).
		WithField("subject", subject).
		Info("email sent")
	return nil
}

func Subject(event kafka.BookingEvent) (string, error) {
	switch event.Type {
	case kafka.EventBookingCreated:
		return fmt.Sprintf("Your booking %s is %s", event.BookingReference, event.Status), nil
	case kafka.EventBookingCancelled:
		return fmt.Sprintf("Your booking %s has been cancelled", event.BookingReference), nil
	case kafka.EventNewsletterSubscribed:
		return "Welcome to our newsletter", nil
	default:
		return "", fmt.Errorf("unknown event type %q", event.Type)
	}
}
