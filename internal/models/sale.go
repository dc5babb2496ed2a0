package models

// SoldTicket is the immutable record of a completed ticket purchase
type SoldTicket struct {
	ID             int    `json:"tickets_sold_id" db:"tickets_sold_id"`
	EventSessionID int    `json:"event_session_id" db:"event_session_id"`
	Quantity       int    `json:"quantity" db:"quantity"`
	FirstName      string `json:"first_name" db:"first_name"`
	LastName       string `json:"last_name" db:"last_name"`
	Email          string `json:"email" db:"email"`
	Phone          string `json:"phone" db:"phone"`
	Company        string `json:"company" db:"company"`
}

// TicketSale is one entry in a finalize request: the cart item being
// purchased plus the purchaser's contact details.
type TicketSale struct {
	CartItem  CartItem `json:"cartItem"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Company   string   `json:"company"`
}

// FinalizeRequest represents the body of the add-tickets-sold endpoint
type FinalizeRequest struct {
	Tickets []TicketSale `json:"tickets"`
}

// Validate validates the finalize request. All tickets in one batch must
// reference the same cart: finalize deletes a single cart at the end, so a
// mixed batch would strand items in the other carts.
func (r *FinalizeRequest) Validate() error {
	if len(r.Tickets) == 0 {
		return ErrInvalidInput
	}
	cartID := r.Tickets[0].CartItem.CartID
	for _, t := range r.Tickets[1:] {
		if t.CartItem.CartID != cartID {
			return ErrMixedCarts
		}
	}
	return nil
}

// EventSalesTotal is the per-event sold-ticket sum
type EventSalesTotal struct {
	EventID   int `json:"event_id"`
	TotalSold int `json:"totalSold"`
}

// SessionSalesTotal is the per-session sold-ticket sum
type SessionSalesTotal struct {
	EventSessionID int `json:"event_session_id"`
	TotalSold      int `json:"totalSold"`
}
