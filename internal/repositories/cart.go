package repositories

import (
	"database/sql"
	"fmt"

	"event-checkout-api/internal/models"
)

// CartRepository handles cart and cart item data operations
type CartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

// GetIDBySession resolves the cart belonging to a client session. It returns
// 0 when no cart exists. The schema does not enforce one cart per session,
// so more than one matching row is surfaced as ErrTooManyCarts rather than
// silently picking one.
func (r *CartRepository) GetIDBySession(sessionID string) (int, error) {
	rows, err := r.db.Query("SELECT cart_id FROM cart WHERE session_id = $1", sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to get cart by session: %w", err)
	}
	defer rows.Close()

	var cartIDs []int
	for rows.Next() {
		var cartID int
		if err := rows.Scan(&cartID); err != nil {
			return 0, fmt.Errorf("failed to scan cart: %w", err)
		}
		cartIDs = append(cartIDs, cartID)
	}

	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating carts: %w", err)
	}

	switch len(cartIDs) {
	case 0:
		return 0, nil
	case 1:
		return cartIDs[0], nil
	default:
		return 0, models.ErrTooManyCarts
	}
}

// Create creates a new cart for a client session and returns its ID
func (r *CartRepository) Create(sessionID string) (int, error) {
	var cartID int
	err := r.db.QueryRow(
		"INSERT INTO cart (session_id) VALUES ($1) RETURNING cart_id",
		sessionID,
	).Scan(&cartID)
	if err != nil {
		return 0, fmt.Errorf("failed to create cart: %w", err)
	}

	return cartID, nil
}

// UpsertItem sets the quantity for an event session in a cart with a single
// write statement. A positive quantity inserts the item or overwrites the
// stored quantity, keyed on the (cart_id, event_session_id) uniqueness
// constraint. Quantity zero deletes the item; deleting an item that was
// never stored is a no-op, and a zero-quantity row is never inserted.
// It returns the cart item ID and whether an item was removed.
func (r *CartRepository) UpsertItem(cartID, eventSessionID, quantity int) (int, bool, error) {
	if quantity == 0 {
		result, err := r.db.Exec(
			"DELETE FROM cart_item WHERE cart_id = $1 AND event_session_id = $2",
			cartID, eventSessionID,
		)
		if err != nil {
			return 0, false, fmt.Errorf("failed to delete cart item: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return 0, false, fmt.Errorf("failed to get rows affected: %w", err)
		}

		return 0, rowsAffected > 0, nil
	}

	query := `
		INSERT INTO cart_item (cart_id, event_session_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, event_session_id) DO UPDATE SET quantity = excluded.quantity
		RETURNING cart_item_id`

	var cartItemID int
	err := r.db.QueryRow(query, cartID, eventSessionID, quantity).Scan(&cartItemID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return cartItemID, false, nil
}

// DeleteItem deletes a cart item by ID. Deleting an ID that does not exist
// is not an error.
func (r *CartRepository) DeleteItem(cartItemID int) error {
	_, err := r.db.Exec("DELETE FROM cart_item WHERE cart_item_id = $1", cartItemID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

// Delete deletes a cart and its items. Items go first so they never outlive
// their parent cart, and both statements share one transaction.
func (r *CartRepository) Delete(cartID int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM cart_item WHERE cart_id = $1", cartID); err != nil {
		return fmt.Errorf("failed to delete cart items: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM cart WHERE cart_id = $1", cartID); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cart deletion: %w", err)
	}

	return nil
}

// ContentsByCart retrieves the lines of a cart joined with session and event
// details, ordered by event ID for stable display.
func (r *CartRepository) ContentsByCart(cartID int) ([]*models.CartLine, error) {
	query := `
		SELECT ci.cart_item_id, ci.cart_id, ci.event_session_id, ci.quantity,
		       es.event_id, es.title, es.price, e.title AS event_title
		FROM cart_item ci
		JOIN event_session es ON ci.event_session_id = es.event_session_id
		JOIN event e ON es.event_id = e.event_id
		WHERE ci.cart_id = $1
		ORDER BY es.event_id ASC`

	return r.queryLines(query, cartID)
}

// ContentsBySession retrieves cart lines resolved through the client session
func (r *CartRepository) ContentsBySession(sessionID string) ([]*models.CartLine, error) {
	query := `
		SELECT ci.cart_item_id, ci.cart_id, ci.event_session_id, ci.quantity,
		       es.event_id, es.title, es.price, e.title AS event_title
		FROM cart_item ci
		JOIN cart c ON ci.cart_id = c.cart_id
		JOIN event_session es ON ci.event_session_id = es.event_session_id
		JOIN event e ON es.event_id = e.event_id
		WHERE c.session_id = $1
		ORDER BY es.event_id ASC`

	return r.queryLines(query, sessionID)
}

func (r *CartRepository) queryLines(query string, arg interface{}) ([]*models.CartLine, error) {
	rows, err := r.db.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart contents: %w", err)
	}
	defer rows.Close()

	var lines []*models.CartLine
	for rows.Next() {
		line := &models.CartLine{}
		err := rows.Scan(
			&line.CartItemID,
			&line.CartID,
			&line.EventSessionID,
			&line.Quantity,
			&line.EventID,
			&line.Title,
			&line.Price,
			&line.EventTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart lines: %w", err)
	}

	return lines, nil
}

// Subtotal sums quantity*price across the cart resolved from a client
// session. An empty or missing cart yields 0, never null.
func (r *CartRepository) Subtotal(sessionID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(ci.quantity * es.price), 0) AS subtotal
		FROM cart_item ci
		JOIN cart c ON ci.cart_id = c.cart_id
		JOIN event_session es ON ci.event_session_id = es.event_session_id
		WHERE c.session_id = $1`

	var subtotal float64
	if err := r.db.QueryRow(query, sessionID).Scan(&subtotal); err != nil {
		return 0, fmt.Errorf("failed to get cart subtotal: %w", err)
	}

	return subtotal, nil
}
