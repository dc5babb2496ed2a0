package handlers

import (
	"net/http"

	"event-checkout-api/internal/models"
	"event-checkout-api/internal/repositories"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles event session requests
type SessionHandler struct {
	sessions *repositories.SessionRepository
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *repositories.SessionRepository) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// GetSessions godoc
// @Summary Get the sessions of an event ordered by price
// @Tags event-sessions
// @Produce json
// @Param eventId query int true "The event ID"
// @Success 200 {array} models.EventSession
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /event-sessions/v1 [get]
func (h *SessionHandler) GetSessions(c *gin.Context) {
	eventID, ok := queryInt(c, "eventId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Event ID cannot be null."})
		return
	}

	sessions, err := h.sessions.GetByEvent(eventID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if sessions == nil {
		sessions = []*models.EventSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

// CreateSession godoc
// @Summary Add a session to an event
// @Tags event-sessions
// @Accept json
// @Produce json
// @Param session body models.SessionCreateRequest true "Session details"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /event-sessions/v1/add/event/session [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req models.SessionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Null values not allowed."})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := h.sessions.Create(&req)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event_session_id": sessionID})
}
