package model

import "time"

type EventType string

const (
	EventSaved   EventType = "booking.saved"
	EventDeleted EventType = "booking.deleted"
)

// Event is published after every change to the store. Booking is empty for deletions.
type Event struct {
	Type       EventType `json:"type"`
	BookingID  string    `json:"booking_id"`
	Booking    *Booking  `json:"booking,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	By         string    `json:"by"`
}
