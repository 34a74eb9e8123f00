package store

import (
	"context"
	"strconv"
	"testing"

	"allurra/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEventAssignsIncreasingIDs(t *testing.T) {
	s, _ := newTestStore(t)

	var prev int64
	for i := 0; i < 50; i++ {
		event := s.AddEvent(context.Background(), &models.CreateEventRequest{
			Title:    "Event " + strconv.Itoa(i),
			Date:     "2025-06-01",
			Location: "Lagos",
		})

		id, err := strconv.ParseInt(event.ID, 10, 64)
		require.NoError(t, err)
		assert.Greater(t, id, prev, "ids must be strictly increasing")
		prev = id
	}
}

func TestAddEventResetsSoldCounters(t *testing.T) {
	s, _ := newTestStore(t)

	event := s.AddEvent(context.Background(), &models.CreateEventRequest{
		Title:    "Concert",
		Date:     "2025-06-01",
		Location: "Lagos",
		TicketTypes: []models.TicketTypeDraft{
			{Name: "Regular", Price: 10000, Quantity: 100, Sold: 77},
			{Name: "VIP", Price: 30000, Quantity: 20, Sold: 5},
		},
	})

	require.Len(t, event.TicketTypes, 2)
	for _, tt := range event.TicketTypes {
		assert.Equal(t, 0, tt.Sold, "sold counters start at zero regardless of input")
	}
	assert.Equal(t, int64(0), event.Revenue)
}

func TestUpdateEventShallowMerge(t *testing.T) {
	s, _ := newTestStore(t)

	title := "Renamed"
	revenue := int64(120000)
	updated, ok := s.UpdateEvent(context.Background(), "1", &models.UpdateEventRequest{
		Title:   &title,
		Revenue: &revenue,
	})

	require.True(t, ok)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, int64(120000), updated.Revenue)
	// Untouched fields survive the merge
	assert.Equal(t, "2025-03-15", updated.Date)
	assert.Len(t, updated.TicketTypes, 2)
}

func TestUpdateEventUnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Events()

	title := "Ghost"
	_, ok := s.UpdateEvent(context.Background(), "no-such-id", &models.UpdateEventRequest{Title: &title})

	assert.False(t, ok)
	assert.Equal(t, before, s.Events())
}

func TestDeleteEventKeepsAttendees(t *testing.T) {
	s, _ := newTestStore(t)
	require.NotEmpty(t, s.EventAttendees("1"))

	s.DeleteEvent(context.Background(), "1")

	_, ok := s.GetEvent("1")
	assert.False(t, ok)
	// Attendees are deliberately orphaned, not cascaded
	assert.Len(t, s.EventAttendees("1"), 3)
}

func TestDeleteEventUnknownIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Events()

	s.DeleteEvent(context.Background(), "no-such-id")

	assert.Equal(t, before, s.Events())
}

func TestTotalRevenue(t *testing.T) {
	s, _ := newTestStore(t)

	// Seed dataset: 1655000 + 0
	assert.Equal(t, int64(1655000), s.TotalRevenue())

	revenue := int64(45000)
	_, ok := s.UpdateEvent(context.Background(), "2", &models.UpdateEventRequest{Revenue: &revenue})
	require.True(t, ok)
	assert.Equal(t, int64(1700000), s.TotalRevenue())
}

func TestTotalRevenueEmpty(t *testing.T) {
	adapter := newMemoryAdapter()
	adapter.data[KeyEvents] = []byte(`[]`)

	s := New(adapter, nil, nil)
	s.Load(context.Background())

	assert.Empty(t, s.Events())
	assert.Equal(t, int64(0), s.TotalRevenue())
}

func TestTotalTicketsSold(t *testing.T) {
	s, _ := newTestStore(t)

	// Seed dataset: 45 + 28 + 156
	assert.Equal(t, 229, s.TotalTicketsSold())
}
