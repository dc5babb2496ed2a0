package handlers

import (
	"errors"
	"net/http"

	"event-checkout-api/internal/models"
	"event-checkout-api/internal/repositories"

	"github.com/gin-gonic/gin"
)

// SaleHandler handles ticket sale requests
type SaleHandler struct {
	sales *repositories.SaleRepository
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(sales *repositories.SaleRepository) *SaleHandler {
	return &SaleHandler{sales: sales}
}

// TotalSoldByEvent godoc
// @Summary Get the number of tickets sold for an event
// @Tags tickets-sold
// @Produce json
// @Param eventId query int true "The event ID"
// @Success 200 {object} models.EventSalesTotal
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /sold/v1/tickets/event [get]
func (h *SaleHandler) TotalSoldByEvent(c *gin.Context) {
	eventID, ok := queryInt(c, "eventId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event ID cannot be null."})
		return
	}

	total, err := h.sales.TotalSoldByEvent(eventID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, total)
}

// TotalSoldBySession godoc
// @Summary Get the number of tickets sold for an event session
// @Tags tickets-sold
// @Produce json
// @Param eventSessionId query int true "The event session ID"
// @Success 200 {object} models.SessionSalesTotal
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /sold/v1/tickets/event/session [get]
func (h *SaleHandler) TotalSoldBySession(c *gin.Context) {
	eventSessionID, ok := queryInt(c, "eventSessionId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event Session ID cannot be null."})
		return
	}

	total, err := h.sales.TotalSoldBySession(eventSessionID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, total)
}

// Finalize godoc
// @Summary Record sold tickets after the client completes checkout
// @Description Converts the cart contents into sold-ticket records and deletes the cart, atomically.
// @Tags tickets-sold
// @Accept json
// @Produce json
// @Param tickets body models.FinalizeRequest true "Tickets to record"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /sold/v1/add/tickets/sold [post]
func (h *SaleHandler) Finalize(c *gin.Context) {
	var req models.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tickets cannot be null or empty."})
		return
	}
	if err := req.Validate(); err != nil {
		if errors.Is(err, models.ErrMixedCarts) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tickets cannot be null or empty."})
		return
	}

	if err := h.sales.Finalize(&req); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
