package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"event-checkout-api/internal/models"

	"github.com/gin-gonic/gin"
)

// respondStoreError reports a failed store operation. The driver message is
// passed through to the client so failures stay debuggable.
func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrEventNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
}

// queryInt parses a required integer query parameter. The bool reports
// whether the parameter was present and valid; the handler owns the 400.
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
