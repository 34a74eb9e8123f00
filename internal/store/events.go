package store

import (
	"context"
	"time"

	"allurra/internal/models"
)

// Events returns a snapshot of the events slice
func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// GetEvent returns the event with the given id
func (s *Store) GetEvent(id string) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

// AddEvent creates an event from the draft. The store assigns the id and
// creation time, starts revenue at zero and resets every ticket type's
// sold counter regardless of the input.
func (s *Store) AddEvent(ctx context.Context, req *models.CreateEventRequest) models.Event {
	s.mu.Lock()

	ticketTypes := make([]models.TicketType, len(req.TicketTypes))
	for i, tt := range req.TicketTypes {
		ticketTypes[i] = models.TicketType{
			ID:       s.newID(),
			Name:     tt.Name,
			Price:    tt.Price,
			Quantity: tt.Quantity,
			Sold:     0,
		}
	}

	event := models.Event{
		ID:          s.newID(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		TicketTypes: ticketTypes,
		CreatedAt:   time.Now(),
		Revenue:     0,
	}

	next := make([]models.Event, len(s.events), len(s.events)+1)
	copy(next, s.events)
	s.events = append(next, event)
	s.persist(KeyEvents, s.events)
	s.mu.Unlock()

	s.publish(ctx, models.EventEventCreated, models.EventCreatedEvent{
		EventID:   event.ID,
		Title:     event.Title,
		Timestamp: time.Now(),
	})

	return event
}

// UpdateEvent shallow-merges the non-nil fields of the request into the
// matching event. An unknown id leaves the collection unchanged; no error
// is raised. Merged ticket types are not validated against sold totals.
func (s *Store) UpdateEvent(ctx context.Context, id string, req *models.UpdateEventRequest) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Event, len(s.events))
	copy(next, s.events)

	for i := range next {
		if next[i].ID != id {
			continue
		}

		if req.Title != nil {
			next[i].Title = *req.Title
		}
		if req.Description != nil {
			next[i].Description = *req.Description
		}
		if req.Date != nil {
			next[i].Date = *req.Date
		}
		if req.Time != nil {
			next[i].Time = *req.Time
		}
		if req.Location != nil {
			next[i].Location = *req.Location
		}
		if req.ImageURL != nil {
			next[i].ImageURL = *req.ImageURL
		}
		if req.TicketTypes != nil {
			next[i].TicketTypes = *req.TicketTypes
		}
		if req.Revenue != nil {
			next[i].Revenue = *req.Revenue
		}

		s.events = next
		s.persist(KeyEvents, s.events)
		return next[i], true
	}

	return models.Event{}, false
}

// DeleteEvent removes the matching event. Attendees referencing the event
// are deliberately left in place; see the product note in DESIGN.md.
// Unknown ids are a silent no-op.
func (s *Store) DeleteEvent(ctx context.Context, id string) {
	s.mu.Lock()

	next := make([]models.Event, 0, len(s.events))
	removed := false
	for _, e := range s.events {
		if e.ID == id {
			removed = true
			continue
		}
		next = append(next, e)
	}
	s.events = next
	s.persist(KeyEvents, s.events)
	s.mu.Unlock()

	if removed {
		s.publish(ctx, models.EventEventDeleted, models.EventDeletedEvent{
			EventID:   id,
			Timestamp: time.Now(),
		})
	}
}

// TotalRevenue sums revenue across all events, recomputed on every call
func (s *Store) TotalRevenue() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, e := range s.events {
		total += e.Revenue
	}
	return total
}

// TotalTicketsSold sums the sold counters across all ticket types
func (s *Store) TotalTicketsSold() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, e := range s.events {
		for _, tt := range e.TicketTypes {
			total += tt.Sold
		}
	}
	return total
}
