package store

import (
	"context"
	"testing"

	"allurra/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAttendeeForcesCheckedInFalse(t *testing.T) {
	s, _ := newTestStore(t)

	attendee := s.AddAttendee(context.Background(), &models.CreateAttendeeRequest{
		EventID:      "1",
		TicketTypeID: "t1",
		Name:         "Ngozi",
		Email:        "ngozi@example.com",
	})

	assert.False(t, attendee.CheckedIn)
	assert.Nil(t, attendee.CheckedInAt)
	assert.NotEmpty(t, attendee.ID)
	assert.NotEmpty(t, attendee.QRCode, "a missing QR code gets generated")
	assert.False(t, attendee.PurchasedAt.IsZero())
}

func TestAddAttendeeKeepsSuppliedQRCode(t *testing.T) {
	s, _ := newTestStore(t)

	attendee := s.AddAttendee(context.Background(), &models.CreateAttendeeRequest{
		EventID:      "1",
		TicketTypeID: "t1",
		Name:         "Bola",
		Email:        "bola@example.com",
		QRCode:       "EVT1-B1-CHK",
	})

	assert.Equal(t, "EVT1-B1-CHK", attendee.QRCode)
}

func TestCheckInAttendee(t *testing.T) {
	s, _ := newTestStore(t)

	// a2 is not checked in yet in the sample dataset
	attendee, ok := s.CheckInAttendee(context.Background(), "a2")
	require.True(t, ok)
	assert.True(t, attendee.CheckedIn)
	require.NotNil(t, attendee.CheckedInAt)
}

func TestCheckInAttendeeRepeatKeepsTimestamp(t *testing.T) {
	s, _ := newTestStore(t)

	first, ok := s.CheckInAttendee(context.Background(), "a2")
	require.True(t, ok)
	require.NotNil(t, first.CheckedInAt)

	second, ok := s.CheckInAttendee(context.Background(), "a2")
	require.True(t, ok)
	assert.True(t, second.CheckedIn)
	require.NotNil(t, second.CheckedInAt)
	assert.True(t, first.CheckedInAt.Equal(*second.CheckedInAt),
		"repeat check-in must not advance the original timestamp")
}

func TestCheckInAttendeeUnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Attendees()

	_, ok := s.CheckInAttendee(context.Background(), "no-such-id")

	assert.False(t, ok)
	assert.Equal(t, before, s.Attendees())
}

func TestEventAttendeesFilter(t *testing.T) {
	s, _ := newTestStore(t)

	attendees := s.EventAttendees("1")
	require.Len(t, attendees, 3)
	for _, a := range attendees {
		assert.Equal(t, "1", a.EventID)
	}

	assert.Empty(t, s.EventAttendees("2"))
}

func TestFindAttendeeByQR(t *testing.T) {
	s, _ := newTestStore(t)

	attendee, ok := s.FindAttendeeByQR("EVT1-A2-VIP")
	require.True(t, ok)
	assert.Equal(t, "a2", attendee.ID)

	_, ok = s.FindAttendeeByQR("UNKNOWN-CODE")
	assert.False(t, ok)
}
