package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sponsorcrm/internal/services"
)

type InboundEmailHandler struct {
	Service *services.InboundEmailService
	Secret  string // empty disables the auth check
}

func NewInboundEmailHandler(service *services.InboundEmailService, secret string) *InboundEmailHandler {
	return &InboundEmailHandler{Service: service, Secret: secret}
}

// Receive godoc
// @Summary      Email forwarding webhook
// @Description  Accepts several vendor payload shapes, runs the extraction and conditionally creates a lead. Spam and newsletters create nothing.
// @Tags         extraction
// @Accept       json
// @Produce      json
// @Success      200  {object}  services.InboundResult
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /inbound-email [post]
func (h *InboundEmailHandler) Receive(c *gin.Context) {
	if h.Secret != "" {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token != h.Secret {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	result, err := h.Service.Process(c.Request.Context(), payload)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Describe answers GET on the webhook path so forwarding integrations can be
// pointed at it and verified without sending real mail.
func (h *InboundEmailHandler) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Inbound email webhook is active. POST email data to create leads.",
		"expectedFormat": gin.H{
			"from":    "sender@example.com",
			"subject": "Email subject",
			"body":    "Email content",
		},
	})
}
