package models

import "time"

// NATS Event Types
const (
	EventEventCreated         = "event.created"
	EventEventDeleted         = "event.deleted"
	EventAttendeeRegistered   = "attendee.registered"
	EventAttendeeCheckedIn    = "attendee.checked_in"
	EventCartCheckedOut       = "cart.checked_out"
	EventBookingStatusChanged = "booking.status_changed"
)

// EventCreatedEvent represents an event creation notification
type EventCreatedEvent struct {
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

// EventDeletedEvent represents an event deletion notification
type EventDeletedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
}

// AttendeeRegisteredEvent represents a ticket purchase notification
type AttendeeRegisteredEvent struct {
	AttendeeID string    `json:"attendee_id"`
	EventID    string    `json:"event_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// AttendeeCheckedInEvent represents a successful check-in
type AttendeeCheckedInEvent struct {
	AttendeeID string    `json:"attendee_id"`
	EventID    string    `json:"event_id"`
	Timestamp  time.Time `json:"timestamp"`
}

// CartCheckedOutEvent represents a batch cart checkout
type CartCheckedOutEvent struct {
	BookingIDs []string  `json:"booking_ids"`
	Total      int64     `json:"total"`
	Timestamp  time.Time `json:"timestamp"`
}

// BookingStatusChangedEvent represents a booking status transition
type BookingStatusChangedEvent struct {
	BookingID string    `json:"booking_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
