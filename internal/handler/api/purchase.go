package api

import (
	"net/http"

	reqdto "ticketgate/internal/handler/dto/request"
	resdto "ticketgate/internal/handler/dto/response"
	"ticketgate/internal/handler/middleware"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PurchaseHandler struct {
	purchaseUseCase usecase.PurchaseUseCase
	ticketUseCase   usecase.TicketUseCase
}

func NewPurchaseHandler(purchaseUseCase usecase.PurchaseUseCase, ticketUseCase usecase.TicketUseCase) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUseCase: purchaseUseCase,
		ticketUseCase:   ticketUseCase,
	}
}

// @Summary Open purchase
// @Description Reserve capacity and open a checkout session with the payment processor
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OpenPurchaseRequest true "Purchase request"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /purchases [post]
func (h *PurchaseHandler) OpenPurchase(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.OpenPurchaseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params := usecase.OpenPurchaseParams{
		EventID:    req.EventID,
		Quantity:   req.Quantity,
		BoundNames: req.GetBoundNames(),
	}

	purchaseRM, err := h.purchaseUseCase.Open(c.Request.Context(), userID, params)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		case errs.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errs.Is(err, usecase.ErrUserNotVerified):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Identity verification required before purchase",
			})
		case errs.Is(err, usecase.ErrEventInPast):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Event has already started",
			})
		case errs.Is(err, usecase.ErrQuantityOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity out of range",
			})
		case errs.Is(err, usecase.ErrInsufficientCapacity):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Not enough tickets available",
			})
		case errs.Is(err, usecase.ErrPaymentGatewayFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment processor unavailable",
			})
		case errs.Is(err, usecase.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPurchaseRM(purchaseRM))
}

// @Summary Get purchase
// @Description Get purchase intent status by ID
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Purchase ID"
// @Success 200 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /purchases/{id} [get]
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid purchase ID format",
		})
		return
	}

	purchaseRM, err := h.purchaseUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrPurchaseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Purchase not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurchaseRM(purchaseRM))
}

// @Summary List purchase tickets
// @Description List tickets issued for a confirmed purchase
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Purchase ID"
// @Success 200 {array} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /purchases/{id}/tickets [get]
func (h *PurchaseHandler) GetPurchaseTickets(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid purchase ID format",
		})
		return
	}

	ticketsRM, err := h.ticketUseCase.ListByPurchase(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.TicketResponse, len(ticketsRM))
	for i, rm := range ticketsRM {
		response[i] = resdto.FromTicketRM(rm)
	}

	c.JSON(http.StatusOK, response)
}
