package newsletter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/logging"
	"github.com/Domenick1991/flightbooking/internal/metrics"
)

type NewsletterUseCase interface {
	Subscribe(ctx context.Context, email string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// NewsletterService accepts subscriptions without storing them; with a
// producer configured it forwards them to the notifications topic.
type NewsletterService struct {
	producer Producer
	topic    string
	now      func() time.Time
}

type NewsletterServiceOption func(*NewsletterService)

func WithProducer(producer Producer, topic string) NewsletterServiceOption {
	return func(s *NewsletterService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewNewsletterService(opts ...NewsletterServiceOption) *NewsletterService {
	service := &NewsletterService{now: time.Now}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *NewsletterService) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return fmt.Errorf("email %q: %w", email, domain.ErrInvalidInput)
	}

	log := logging.FromContext(ctx).WithField("email", email)
	if s.producer == nil || s.topic == "" {
		log.Info("newsletter subscription received")
		return nil
	}

	event := kafka.BookingEvent{
		Type:       kafka.EventNewsletterSubscribed,
		Email:      email,
		OccurredAt: s.now().UTC(),
	}
	if err := s.producer.Publish(ctx, s.topic, email, event); err != nil {
		metrics.EventsPublishFailed.WithLabelValues(kafka.EventNewsletterSubscribed).Inc()
		log.WithError(err).Warn("failed to publish newsletter subscription")
	}
	return nil
}

var _ NewsletterUseCase = (*NewsletterService)(nil)
