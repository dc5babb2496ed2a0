package handlers

import (
	"net/http"

	"event-checkout-api/internal/models"
	"event-checkout-api/internal/repositories"

	"github.com/gin-gonic/gin"
)

// EventHandler handles event catalog requests
type EventHandler struct {
	events *repositories.EventRepository
}

// NewEventHandler creates a new event handler
func NewEventHandler(events *repositories.EventRepository) *EventHandler {
	return &EventHandler{events: events}
}

// GetEvent godoc
// @Summary Get the event details by event ID
// @Tags events
// @Produce json
// @Param eventId query int true "The event ID"
// @Success 200 {object} models.Event
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /events/v1 [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, ok := queryInt(c, "eventId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event ID cannot be null."})
		return
	}

	event, err := h.events.GetByID(eventID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// ListEvents godoc
// @Summary Get all listed events ordered by start time
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Failure 503 {object} map[string]string
// @Router /events/v1/all [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.events.GetAll()
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if events == nil {
		events = []*models.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Add an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body models.EventCreateRequest true "Event details"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /events/v1/add/event [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req models.EventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Null values not allowed."})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	eventID, err := h.events.Create(&req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event_id": eventID})
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param event body models.EventUpdateRequest true "Event details"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /events/v1/update/event [post]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req models.EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Null values not allowed."})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.events.Update(&req); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
