package repositories

import (
	"database/sql"
	"fmt"

	"event-checkout-api/internal/models"
)

// SessionRepository handles event session data operations
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// GetByEvent retrieves the sessions of an event ordered by price ascending.
// An event with no sessions yields an empty list.
func (r *SessionRepository) GetByEvent(eventID int) ([]*models.EventSession, error) {
	query := `
		SELECT event_session_id, event_id, title, description, type, price, sale,
		       sale_end_date_time, total_quantity, quantity_remaining
		FROM event_session
		WHERE event_id = $1
		ORDER BY price ASC`

	rows, err := r.db.Query(query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.EventSession
	for rows.Next() {
		session := &models.EventSession{}
		err := rows.Scan(
			&session.ID,
			&session.EventID,
			&session.Title,
			&session.Description,
			&session.Type,
			&session.Price,
			&session.Sale,
			&session.SaleEndDateTime,
			&session.TotalQuantity,
			&session.QuantityRemaining,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event session: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event sessions: %w", err)
	}

	return sessions, nil
}

// Create creates a new event session and returns its ID. The remaining
// quantity starts out equal to the total quantity.
func (r *SessionRepository) Create(req *models.SessionCreateRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO event_session (event_id, title, description, type, price, sale,
		                           sale_end_date_time, total_quantity, quantity_remaining)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING event_session_id`

	var sessionID int
	err := r.db.QueryRow(
		query,
		*req.EventID,
		req.Title,
		req.Description,
		req.Type,
		*req.Price,
		*req.Sale,
		*req.SaleEndDateTime,
		*req.TotalQuantity,
		*req.TotalQuantity,
	).Scan(&sessionID)

	if err != nil {
		return 0, fmt.Errorf("failed to create event session: %w", err)
	}

	return sessionID, nil
}
