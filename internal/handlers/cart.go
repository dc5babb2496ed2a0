package handlers

import (
	"errors"
	"net/http"

	"event-checkout-api/internal/models"
	"event-checkout-api/internal/repositories"

	"github.com/gin-gonic/gin"
)

// CartHandler handles shopping cart requests
type CartHandler struct {
	carts *repositories.CartRepository
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *repositories.CartRepository) *CartHandler {
	return &CartHandler{carts: carts}
}

// GetCartBySession godoc
// @Summary Resolve the cart for a client session
// @Description Returns a tagged result: cart_id (0 when no cart exists yet) or ambiguous=true when more than one cart matches the session.
// @Tags cart
// @Produce json
// @Param sessionId query string true "Client session ID"
// @Success 200 {object} models.CartLookupResult
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /cart/v1 [get]
func (h *CartHandler) GetCartBySession(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID cannot be null."})
		return
	}

	cartID, err := h.carts.GetIDBySession(sessionID)
	if err != nil {
		if errors.Is(err, models.ErrTooManyCarts) {
			c.JSON(http.StatusOK, models.CartLookupResult{Ambiguous: true})
			return
		}
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CartLookupResult{CartID: cartID})
}

// GetContentsByID godoc
// @Summary Get the cart contents by cart ID
// @Tags cart
// @Produce json
// @Param cartId query int true "Cart ID"
// @Success 200 {array} models.CartLine
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /cart/v1/contents/by/id [get]
func (h *CartHandler) GetContentsByID(c *gin.Context) {
	cartID, ok := queryInt(c, "cartId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart ID cannot be null."})
		return
	}

	lines, err := h.carts.ContentsByCart(cartID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if lines == nil {
		lines = []*models.CartLine{}
	}
	c.JSON(http.StatusOK, lines)
}

// GetContentsBySession godoc
// @Summary Get the cart contents by client session ID
// @Tags cart
// @Produce json
// @Param sessionId query string true "Client session ID"
// @Success 200 {array} models.CartLine
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /cart/v1/contents/by/session [get]
func (h *CartHandler) GetContentsBySession(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID cannot be null."})
		return
	}

	lines, err := h.carts.ContentsBySession(sessionID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if lines == nil {
		lines = []*models.CartLine{}
	}
	c.JSON(http.StatusOK, lines)
}

// GetSubtotal godoc
// @Summary Calculate the subtotal of the cart for a client session
// @Tags cart
// @Produce json
// @Param sessionId query string true "Client session ID"
// @Success 200 {object} map[string]number
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /cart/v1/contents/total [get]
func (h *CartHandler) GetSubtotal(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID cannot be null."})
		return
	}

	subtotal, err := h.carts.Subtotal(sessionID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subtotal": subtotal})
}

type createCartRequest struct {
	SessionID string `json:"session_id"`
}

// CreateCart godoc
// @Summary Create a cart for a client session
// @Tags cart
// @Accept json
// @Produce json
// @Param cart body object true "JSON with session_id"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /cart/v1/add/cart [post]
func (h *CartHandler) CreateCart(c *gin.Context) {
	var req createCartRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID cannot be null."})
		return
	}

	cartID, err := h.carts.Create(req.SessionID)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart_id": cartID})
}

// UpsertItem godoc
// @Summary Add an item to the cart, or overwrite its quantity
// @Description Quantity zero removes the item from the cart.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body models.CartItemRequest true "Cart item"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /cart/v1/add/cart/item [post]
func (h *CartHandler) UpsertItem(c *gin.Context) {
	var req models.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Null values not allowed."})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Null values not allowed."})
		return
	}

	cartItemID, removed, err := h.carts.UpsertItem(*req.CartID, *req.EventSessionID, *req.Quantity)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart_item_id": cartItemID, "removed": removed})
}

type deleteCartItemRequest struct {
	CartItemID *int `json:"cart_item_id"`
}

// DeleteItem godoc
// @Summary Delete an item from the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body object true "JSON with cart_item_id"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /cart/v1/delete/cart/item [delete]
func (h *CartHandler) DeleteItem(c *gin.Context) {
	var req deleteCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CartItemID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart Item ID cannot be null."})
		return
	}

	if err := h.carts.DeleteItem(*req.CartItemID); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart_item_id": *req.CartItemID})
}

type deleteCartRequest struct {
	CartID *int `json:"cart_id"`
}

// DeleteCart godoc
// @Summary Delete a cart and all of its items
// @Tags cart
// @Accept json
// @Produce json
// @Param cart body object true "JSON with cart_id"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /cart/v1/delete/cart [delete]
func (h *CartHandler) DeleteCart(c *gin.Context) {
	var req deleteCartRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CartID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart ID cannot be null."})
		return
	}

	if err := h.carts.Delete(*req.CartID); err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cart_id": *req.CartID})
}
