package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"allurra/internal/models"
	"allurra/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryAdapter is an in-process storage backend for tests
type memoryAdapter struct {
	mu   sync.Mutex
	data map[string][]byte

	failWrites bool
	writes     int
}

func newMemoryAdapter() *memoryAdapter {
	return &memoryAdapter{data: make(map[string][]byte)}
}

func (m *memoryAdapter) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (m *memoryAdapter) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes++
	if m.failWrites {
		return errors.New("disk full")
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryAdapter) Close() error { return nil }

func newTestStore(t *testing.T) (*Store, *memoryAdapter) {
	t.Helper()

	adapter := newMemoryAdapter()
	s := New(adapter, nil, nil)
	s.Load(context.Background())
	return s, adapter
}

func TestLoadDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	assert.False(t, s.IsLoading())
	assert.Len(t, s.Events(), 2, "events fall back to the bundled sample dataset")
	assert.Len(t, s.Attendees(), 3, "attendees fall back to the bundled sample dataset")
	assert.Empty(t, s.Bookings())
	assert.Empty(t, s.Cart())
	assert.Equal(t, "Event Organizer", s.Profile().Name)
	assert.False(t, s.AuthState().IsAuthenticated)
}

func TestLoadMalformedSliceFallsBack(t *testing.T) {
	adapter := newMemoryAdapter()
	adapter.data[KeyEvents] = []byte("{not json")
	adapter.data[KeyBookings] = []byte(`[{"id":"b1","status":"pending","paid":true}]`)

	s := New(adapter, nil, nil)
	s.Load(context.Background())

	// Malformed events are discarded in favor of the sample dataset,
	// valid bookings load as stored
	assert.Len(t, s.Events(), 2)
	require.Len(t, s.Bookings(), 1)
	assert.Equal(t, "b1", s.Bookings()[0].ID)
}

func TestRoundTripThroughAdapter(t *testing.T) {
	adapter := newMemoryAdapter()
	s := New(adapter, nil, nil)
	s.Load(context.Background())

	created := s.AddEvent(context.Background(), &models.CreateEventRequest{
		Title:    "Launch Party",
		Date:     "2025-06-01",
		Location: "Lagos",
		TicketTypes: []models.TicketTypeDraft{
			{Name: "Regular", Price: 5000, Quantity: 10},
		},
	})
	s.AddAttendee(context.Background(), &models.CreateAttendeeRequest{
		EventID:      created.ID,
		TicketTypeID: created.TicketTypes[0].ID,
		Name:         "Ada",
		Email:        "ada@example.com",
	})
	s.Flush()

	// Simulate an app restart over the same stored data
	restarted := New(adapter, nil, nil)
	restarted.Load(context.Background())

	require.Len(t, restarted.Events(), 3)
	reloaded, ok := restarted.GetEvent(created.ID)
	require.True(t, ok)
	assert.Equal(t, created.Title, reloaded.Title)
	assert.Equal(t, created.TicketTypes, reloaded.TicketTypes)
	assert.True(t, created.CreatedAt.Equal(reloaded.CreatedAt))
	assert.Len(t, restarted.Attendees(), 4)
}

// stallingAdapter delays the first write until the gate is closed, so a
// later snapshot of the same key gets every chance to land first.
type stallingAdapter struct {
	*memoryAdapter
	gateMu  sync.Mutex
	gate    chan struct{}
	stalled bool
}

func newStallingAdapter() *stallingAdapter {
	return &stallingAdapter{
		memoryAdapter: newMemoryAdapter(),
		gate:          make(chan struct{}),
	}
}

func (a *stallingAdapter) Set(ctx context.Context, key string, value []byte) error {
	a.gateMu.Lock()
	first := !a.stalled
	a.stalled = true
	a.gateMu.Unlock()

	if first {
		<-a.gate
	}
	return a.memoryAdapter.Set(ctx, key, value)
}

func TestSlowWriteCannotClobberLaterSnapshot(t *testing.T) {
	adapter := newStallingAdapter()
	s := New(adapter, nil, nil)
	s.Load(context.Background())

	first := s.AddEvent(context.Background(), &models.CreateEventRequest{
		Title:    "First Event",
		Date:     "2025-06-01",
		Location: "Lagos",
	})
	second := s.AddEvent(context.Background(), &models.CreateEventRequest{
		Title:    "Second Event",
		Date:     "2025-07-01",
		Location: "Abuja",
	})

	close(adapter.gate)
	s.Flush()

	// Whichever write reached the adapter first, the durable snapshot
	// must hold both mutations
	adapter.mu.Lock()
	data := adapter.data[KeyEvents]
	adapter.mu.Unlock()

	var stored []models.Event
	require.NoError(t, json.Unmarshal(data, &stored))
	require.Len(t, stored, 4)

	restarted := New(adapter, nil, nil)
	restarted.Load(context.Background())
	_, ok := restarted.GetEvent(first.ID)
	assert.True(t, ok)
	_, ok = restarted.GetEvent(second.ID)
	assert.True(t, ok)
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	adapter := newMemoryAdapter()
	s := New(adapter, nil, nil)
	s.Load(context.Background())

	adapter.failWrites = true
	created := s.AddEvent(context.Background(), &models.CreateEventRequest{
		Title:    "Doomed Event",
		Date:     "2025-07-01",
		Location: "Abuja",
	})
	s.Flush()

	// In-memory state is not rolled back when the durable write fails
	_, ok := s.GetEvent(created.ID)
	assert.True(t, ok)

	adapter.mu.Lock()
	_, stored := adapter.data[KeyEvents]
	adapter.mu.Unlock()
	assert.False(t, stored, "failed write must not leave a partial value")
}
