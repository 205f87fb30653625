package api

import (
	"net/http"

	resdto "ticketgate/internal/handler/dto/response"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TicketHandler struct {
	ticketUseCase usecase.TicketUseCase
}

func NewTicketHandler(ticketUseCase usecase.TicketUseCase) *TicketHandler {
	return &TicketHandler{
		ticketUseCase: ticketUseCase,
	}
}

// @Summary Get ticket
// @Description Get ticket detail by ID
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} resdto.TicketResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ticket ID format",
		})
		return
	}

	ticketRM, err := h.ticketUseCase.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ticket not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketRM(ticketRM))
}

// @Summary Revoke ticket
// @Description Revoke a valid ticket. Bars entry immediately; the registry mirror catches up asynchronously.
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /tickets/{id}/revoke [post]
func (h *TicketHandler) RevokeTicket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ticket ID format",
		})
		return
	}

	if err := h.ticketUseCase.Revoke(c.Request.Context(), id); err != nil {
		switch {
		case errs.Is(err, usecase.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ticket not found",
			})
		case errs.Is(err, usecase.ErrTicketNotRevocable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Ticket is not in a revocable state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
