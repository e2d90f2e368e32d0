package newsletter

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func TestSubscribe_Publishes(t *testing.T) {
	ctx := context.Background()
	producer := new(MockProducer)
	producer.On("Publish", ctx, "notifications", "anna@example.com", mock.MatchedBy(func(e kafka.BookingEvent) bool {
		return e.Type == kafka.EventNewsletterSubscribed && e.Email == "anna@example.com"
	})).Return(nil)

	service := NewNewsletterService(WithProducer(producer, "notifications"))

	err := service.Subscribe(ctx, " anna@example.com ")

	assert.NoError(t, err)
	producer.AssertExpectations(t)
}

func TestSubscribe_WithoutProducer(t *testing.T) {
	service := NewNewsletterService()

	assert.NoError(t, service.Subscribe(context.Background(), "anna@example.com"))
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	producer := new(MockProducer)
	service := NewNewsletterService(WithProducer(producer, "notifications"))

	for _, email := range []string{"", "anna", "anna.example.com"} {
		err := service.Subscribe(context.Background(), email)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, email)
	}
	producer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscribe_PublishFailureIsNotFatal(t *testing.T) {
	producer := new(MockProducer)
	producer.On("Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down"))

	service := NewNewsletterService(WithProducer(producer, "notifications"))

	assert.NoError(t, service.Subscribe(context.Background(), "anna@example.com"))
	producer.AssertNumberOfCalls(t, "Publish", 1)
}
