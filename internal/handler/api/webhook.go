package api

import (
	"encoding/json"
	"io"
	"net/http"

	resdto "ticketgate/internal/handler/dto/response"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	webhookUseCase usecase.WebhookUseCase
}

func NewWebhookHandler(webhookUseCase usecase.WebhookUseCase) *WebhookHandler {
	return &WebhookHandler{
		webhookUseCase: webhookUseCase,
	}
}

// @Summary Payment notification
// @Description Receive a payment processor webhook. Deliveries are at-least-once; replays return the previously issued tickets.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param notification body usecase.PaymentNotification true "Processor notification"
// @Success 200 {object} resdto.IssuanceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *WebhookHandler) PaymentNotification(c *gin.Context) {
	// Processor payloads carry far more fields than the subset read here and
	// every SDK version adds new ones, so the strict binder used for our own
	// request DTOs must not apply. Unknown fields are ignored; unrecognized
	// shapes still fail closed downstream when no intent can be resolved.
	body, readErr := io.ReadAll(c.Request.Body)
	if readErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid notification format",
		})
		return
	}
	var notification usecase.PaymentNotification
	if bindErr := json.Unmarshal(body, &notification); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid notification format",
		})
		return
	}

	issuanceRM, err := h.webhookUseCase.HandleNotification(c.Request.Context(), notification)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrIntentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No purchase intent matches this notification",
			})
		case errs.Is(err, usecase.ErrAlreadyProcessed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Notification already processed",
			})
		case errs.Is(err, usecase.ErrAmountMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Captured amount does not match purchase",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if issuanceRM == nil {
		// Unhandled event type, acknowledged without effect.
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromIssuanceRM(issuanceRM))
}
