package models

import (
	"errors"
	"time"
)

// EventSession represents a purchasable instance of an event, such as a
// ticket tier with its own price and inventory.
type EventSession struct {
	ID                int       `json:"event_session_id" db:"event_session_id"`
	EventID           int       `json:"event_id" db:"event_id"`
	Title             string    `json:"title" db:"title"`
	Description       string    `json:"description" db:"description"`
	Type              string    `json:"type" db:"type"`
	Price             float64   `json:"price" db:"price"`
	Sale              bool      `json:"sale" db:"sale"`
	SaleEndDateTime   time.Time `json:"sale_end_date_time" db:"sale_end_date_time"`
	TotalQuantity     int       `json:"total_quantity" db:"total_quantity"`
	QuantityRemaining int       `json:"quantity_remaining" db:"quantity_remaining"`
}

// SessionCreateRequest represents the data needed to create an event session
type SessionCreateRequest struct {
	EventID         *int       `json:"event_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Type            string     `json:"type"`
	Price           *float64   `json:"price"`
	Sale            *bool      `json:"sale"`
	SaleEndDateTime *time.Time `json:"sale_end_date_time"`
	TotalQuantity   *int       `json:"total_quantity"`
}

// Validate validates the session create request
func (r *SessionCreateRequest) Validate() error {
	if r.EventID == nil || r.Title == "" || r.Description == "" || r.Type == "" {
		return ErrInvalidInput
	}
	if r.Price == nil || r.Sale == nil || r.SaleEndDateTime == nil || r.TotalQuantity == nil {
		return ErrInvalidInput
	}
	if *r.Price < 0 {
		return errors.New("session price cannot be negative")
	}
	if *r.TotalQuantity <= 0 {
		return errors.New("session quantity must be positive")
	}
	return nil
}
