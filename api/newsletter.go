package api

import (
	"net/http"

	"github.com/Domenick1991/flightbooking/internal/service/newsletter"
	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	service newsletter.NewsletterUseCase
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func NewNewsletterHandler(service newsletter.NewsletterUseCase) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

func (h *NewsletterHandler) Register(router *gin.RouterGroup) {
	router.POST("/subscribe", h.subscribe)
}

// subscribe tolerates a missing or malformed body; the service rejects the
// resulting empty address.
func (h *NewsletterHandler) subscribe(c *gin.Context) {
	var req subscribeRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.service.Subscribe(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, "Valid email address is required", "Not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully subscribed to newsletter"})
}
