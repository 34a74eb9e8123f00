package store

import (
	"context"
	"time"

	"allurra/internal/models"

	"github.com/google/uuid"
)

// Attendees returns a snapshot of the attendees slice
func (s *Store) Attendees() []models.Attendee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Attendee, len(s.attendees))
	copy(out, s.attendees)
	return out
}

// AddAttendee registers a ticket holder. The store assigns the id and
// purchase time and forces the checked-in flag to false. A missing QR code
// gets a generated one.
func (s *Store) AddAttendee(ctx context.Context, req *models.CreateAttendeeRequest) models.Attendee {
	qrCode := req.QRCode
	if qrCode == "" {
		qrCode = uuid.New().String()
	}

	s.mu.Lock()
	attendee := models.Attendee{
		ID:           s.newID(),
		EventID:      req.EventID,
		TicketTypeID: req.TicketTypeID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		CheckedIn:    false,
		QRCode:       qrCode,
		PurchasedAt:  time.Now(),
	}

	next := make([]models.Attendee, len(s.attendees), len(s.attendees)+1)
	copy(next, s.attendees)
	s.attendees = append(next, attendee)
	s.persist(KeyAttendees, s.attendees)
	s.mu.Unlock()

	s.publish(ctx, models.EventAttendeeRegistered, models.AttendeeRegisteredEvent{
		AttendeeID: attendee.ID,
		EventID:    attendee.EventID,
		Timestamp:  time.Now(),
	})

	return attendee
}

// CheckInAttendee marks the attendee as arrived. The first call sets
// CheckedInAt; repeat calls keep the flag true and leave the original
// timestamp untouched. An unknown id is a silent no-op and reports
// found=false.
func (s *Store) CheckInAttendee(ctx context.Context, id string) (models.Attendee, bool) {
	s.mu.Lock()

	next := make([]models.Attendee, len(s.attendees))
	copy(next, s.attendees)

	for i := range next {
		if next[i].ID != id {
			continue
		}

		if next[i].CheckedIn {
			// Check-in is monotonic; nothing to change
			attendee := next[i]
			s.mu.Unlock()
			return attendee, true
		}

		now := time.Now()
		next[i].CheckedIn = true
		next[i].CheckedInAt = &now

		s.attendees = next
		s.persist(KeyAttendees, s.attendees)
		attendee := next[i]
		s.mu.Unlock()

		s.publish(ctx, models.EventAttendeeCheckedIn, models.AttendeeCheckedInEvent{
			AttendeeID: attendee.ID,
			EventID:    attendee.EventID,
			Timestamp:  now,
		})
		return attendee, true
	}

	s.mu.Unlock()
	return models.Attendee{}, false
}

// EventAttendees filters attendees by event id, recomputed on every call.
// Attendees of a deleted event are still returned.
func (s *Store) EventAttendees(eventID string) []models.Attendee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Attendee, 0)
	for _, a := range s.attendees {
		if a.EventID == eventID {
			result = append(result, a)
		}
	}
	return result
}

// FindAttendeeByQR resolves a scanned QR payload to an attendee
func (s *Store) FindAttendeeByQR(code string) (models.Attendee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.attendees {
		if a.QRCode == code {
			return a, true
		}
	}
	return models.Attendee{}, false
}
