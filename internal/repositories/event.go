package repositories

import (
	"database/sql"
	"fmt"

	"event-checkout-api/internal/models"
)

// EventRepository handles event catalog data operations
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// GetByID retrieves an event by ID. A missing event is an empty result, not
// an error: the caller gets (nil, nil).
func (r *EventRepository) GetByID(eventID int) (*models.Event, error) {
	query := `
		SELECT event_id, title, description, status, start_date_time, end_date_time, banner_image
		FROM event
		WHERE event_id = $1`

	event := &models.Event{}
	err := r.db.QueryRow(query, eventID).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Status,
		&event.StartDateTime,
		&event.EndDateTime,
		&event.BannerImage,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// GetAll retrieves all listed events ordered by start time
func (r *EventRepository) GetAll() ([]*models.Event, error) {
	query := `
		SELECT event_id, title, description, status, start_date_time, end_date_time, banner_image
		FROM event
		ORDER BY start_date_time ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Status,
			&event.StartDateTime,
			&event.EndDateTime,
			&event.BannerImage,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// Create creates a new event and returns its ID
func (r *EventRepository) Create(req *models.EventCreateRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO event (title, description, status, start_date_time, end_date_time, banner_image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING event_id`

	var eventID int
	err := r.db.QueryRow(
		query,
		req.Title,
		req.Description,
		req.Status,
		req.StartDateTime,
		req.EndDateTime,
		req.BannerImage,
	).Scan(&eventID)

	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return eventID, nil
}

// Update overwrites an event's details
func (r *EventRepository) Update(req *models.EventUpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// Placeholders are numbered in occurrence order so they bind the same
	// way under Postgres and SQLite.
	query := `
		UPDATE event
		SET title = $1, description = $2, status = $3, start_date_time = $4, end_date_time = $5, banner_image = $6
		WHERE event_id = $7`

	result, err := r.db.Exec(
		query,
		req.Title,
		req.Description,
		req.Status,
		req.StartDateTime,
		req.EndDateTime,
		req.BannerImage,
		*req.EventID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrEventNotFound
	}

	return nil
}
