package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewsletterHandler_subscribe(t *testing.T) {
	newsletterSvc := &MockNewsletterUseCase{}
	router := newTestRouter(&MockFlightUseCase{}, &MockBookingUseCase{}, newsletterSvc)

	newsletterSvc.On("Subscribe", mock.Anything, "anna@example.com").Return(nil)

	w := perform(t, router, http.MethodPost, "/api/newsletter/subscribe", map[string]string{"email": "anna@example.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Successfully subscribed to newsletter"}`, w.Body.String())
	newsletterSvc.AssertExpectations(t)
}

func TestNewsletterHandler_subscribe_Invalid(t *testing.T) {
	newsletterSvc := &MockNewsletterUseCase{}
	router := newTestRouter(&MockFlightUseCase{}, &MockBookingUseCase{}, newsletterSvc)

	newsletterSvc.On("Subscribe", mock.Anything, "").Return(fmt.Errorf("email: %w", domain.ErrInvalidInput))

	w := perform(t, router, http.MethodPost, "/api/newsletter/subscribe", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Valid email address is required", decodeError(t, w).Message)
}
