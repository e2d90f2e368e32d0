package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/flightbooking/internal/logging"
	"github.com/segmentio/kafka-go"
)

const (
	EventBookingCreated       = "booking_created"
	EventBookingCancelled     = "booking_cancelled"
	EventNewsletterSubscribed = "newsletter_subscribed"
)

// BookingEvent is the payload on both the booking and notifications topics.
// Booking fields are empty for newsletter events.
type BookingEvent struct {
	Type             string    `json:"type"`
	BookingReference string    `json:"booking_reference,omitempty"`
	FlightID         string    `json:"flight_id,omitempty"`
	SeatClass        string    `json:"seat_class,omitempty"`
	Passengers       int       `json:"passengers,omitempty"`
	TotalPrice       string    `json:"total_price,omitempty"`
	Email            string    `json:"email"`
	Status           string    `json:"status,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &Producer{writer: writer}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	logging.FromContext(ctx).WithField("topic", topic).WithField("key", key).Debug("published event")
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
