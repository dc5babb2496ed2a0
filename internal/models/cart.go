package models

// Cart represents a session-scoped shopping cart
type Cart struct {
	ID        int    `json:"cart_id" db:"cart_id"`
	SessionID string `json:"session_id" db:"session_id"`
}

// CartItem represents one line item in a cart: an event session and a quantity
type CartItem struct {
	ID             int `json:"cart_item_id" db:"cart_item_id"`
	CartID         int `json:"cart_id" db:"cart_id"`
	EventSessionID int `json:"event_session_id" db:"event_session_id"`
	Quantity       int `json:"quantity" db:"quantity"`
}

// CartLine is a cart item joined with its session and event details, the
// shape returned by the cart contents endpoints.
type CartLine struct {
	CartItemID     int     `json:"cart_item_id" db:"cart_item_id"`
	CartID         int     `json:"cart_id" db:"cart_id"`
	EventSessionID int     `json:"event_session_id" db:"event_session_id"`
	Quantity       int     `json:"quantity" db:"quantity"`
	EventID        int     `json:"event_id" db:"event_id"`
	Title          string  `json:"title" db:"title"`
	Price          float64 `json:"price" db:"price"`
	EventTitle     string  `json:"event_title" db:"event_title"`
}

// CartLookupResult is the tagged result of resolving a cart by session ID.
// Ambiguous reports that more than one cart matched, which the client has to
// resolve by clearing its session. CartID 0 means no cart exists yet.
type CartLookupResult struct {
	CartID    int  `json:"cart_id"`
	Ambiguous bool `json:"ambiguous,omitempty"`
}

// CartItemRequest represents the body of the add-cart-item endpoint.
// Quantity is a pointer because zero is meaningful: it removes the item.
type CartItemRequest struct {
	CartID         *int `json:"cart_id"`
	EventSessionID *int `json:"event_session_id"`
	Quantity       *int `json:"quantity"`
}

// Validate validates the cart item request
func (r *CartItemRequest) Validate() error {
	if r.CartID == nil || r.EventSessionID == nil || r.Quantity == nil {
		return ErrInvalidInput
	}
	if *r.Quantity < 0 {
		return ErrInvalidInput
	}
	return nil
}
