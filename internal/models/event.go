package models

import (
	"errors"
	"fmt"
	"time"
)

// EventStatus represents the publication status of an event
type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusCancelled EventStatus = "cancelled"
)

// Event represents a listed event
type Event struct {
	ID            int       `json:"event_id" db:"event_id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	Status        string    `json:"status" db:"status"`
	StartDateTime time.Time `json:"start_date_time" db:"start_date_time"`
	EndDateTime   time.Time `json:"end_date_time" db:"end_date_time"`
	BannerImage   string    `json:"banner_image" db:"banner_image"`
}

// EventCreateRequest represents the data needed to create a new event
type EventCreateRequest struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	StartDateTime *time.Time `json:"start_date_time"`
	EndDateTime   *time.Time `json:"end_date_time"`
	BannerImage   string     `json:"banner_image"`
}

// EventUpdateRequest represents the data that can be updated for an event
type EventUpdateRequest struct {
	EventID       *int       `json:"event_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        string     `json:"status"`
	StartDateTime *time.Time `json:"start_date_time"`
	EndDateTime   *time.Time `json:"end_date_time"`
	BannerImage   string     `json:"banner_image"`
}

// Validate validates the event create request
func (r *EventCreateRequest) Validate() error {
	if r.Title == "" || r.Description == "" || r.Status == "" {
		return ErrInvalidInput
	}
	switch EventStatus(r.Status) {
	case StatusDraft, StatusPublished, StatusCancelled:
	default:
		return fmt.Errorf("unknown event status %q", r.Status)
	}
	if r.StartDateTime == nil || r.EndDateTime == nil {
		return ErrInvalidInput
	}
	if r.EndDateTime.Before(*r.StartDateTime) {
		return errors.New("event end date must be after start date")
	}
	return nil
}

// Validate validates the event update request
func (r *EventUpdateRequest) Validate() error {
	if r.EventID == nil {
		return ErrInvalidInput
	}
	create := EventCreateRequest{
		Title:         r.Title,
		Description:   r.Description,
		Status:        r.Status,
		StartDateTime: r.StartDateTime,
		EndDateTime:   r.EndDateTime,
		BannerImage:   r.BannerImage,
	}
	return create.Validate()
}
