package repositories

import (
	"database/sql"
	"fmt"

	"event-checkout-api/internal/models"
)

// SaleRepository records ticket sales and answers sold-ticket totals
type SaleRepository struct {
	db *sql.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *sql.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// Finalize converts cart contents into sold-ticket records inside a single
// transaction: one tickets_sold row per ticket, then each originating cart
// item is deleted, then the cart itself. Either every ticket is recorded and
// the cart is fully cleared, or nothing changes.
func (r *SaleRepository) Finalize(req *models.FinalizeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, ticket := range req.Tickets {
		_, err = tx.Exec(`
			INSERT INTO tickets_sold (event_session_id, quantity, first_name, last_name, email, phone, company)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			ticket.CartItem.EventSessionID,
			ticket.CartItem.Quantity,
			ticket.FirstName,
			ticket.LastName,
			ticket.Email,
			ticket.Phone,
			ticket.Company,
		)
		if err != nil {
			return fmt.Errorf("failed to record sold ticket: %w", err)
		}
	}

	for _, ticket := range req.Tickets {
		if _, err := tx.Exec("DELETE FROM cart_item WHERE cart_item_id = $1", ticket.CartItem.ID); err != nil {
			return fmt.Errorf("failed to delete cart item: %w", err)
		}
	}

	if _, err := tx.Exec("DELETE FROM cart WHERE cart_id = $1", req.Tickets[0].CartItem.CartID); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sale: %w", err)
	}

	return nil
}

// TotalSoldByEvent sums tickets sold across all sessions of an event.
// An event with no sales sums to 0.
func (r *SaleRepository) TotalSoldByEvent(eventID int) (*models.EventSalesTotal, error) {
	query := `
		SELECT COALESCE(SUM(ts.quantity), 0) AS total_sold
		FROM tickets_sold ts
		JOIN event_session es ON ts.event_session_id = es.event_session_id
		WHERE es.event_id = $1`

	total := &models.EventSalesTotal{EventID: eventID}
	if err := r.db.QueryRow(query, eventID).Scan(&total.TotalSold); err != nil {
		return nil, fmt.Errorf("failed to get tickets sold for event: %w", err)
	}

	return total, nil
}

// TotalSoldBySession sums tickets sold for one event session
func (r *SaleRepository) TotalSoldBySession(eventSessionID int) (*models.SessionSalesTotal, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0) AS total_sold
		FROM tickets_sold
		WHERE event_session_id = $1`

	total := &models.SessionSalesTotal{EventSessionID: eventSessionID}
	if err := r.db.QueryRow(query, eventSessionID).Scan(&total.TotalSold); err != nil {
		return nil, fmt.Errorf("failed to get tickets sold for session: %w", err)
	}

	return total, nil
}
