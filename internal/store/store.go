package store

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"allurra/internal/logger"
	"allurra/internal/messaging"
	"allurra/internal/metrics"
	"allurra/internal/models"
	"allurra/internal/storage"
)

// Storage keys, one per state slice
const (
	KeyEvents    = "allurra_events"
	KeyAttendees = "allurra_attendees"
	KeyBookings  = "allurra_bookings"
	KeyCart      = "allurra_cart"
	KeyProfile   = "allurra_profile"
	KeyAuth      = "allurra_auth"
)

const persistTimeout = 5 * time.Second

// Store is the single owner of all mutable application state. Every
// mutation replaces a whole slice in memory, then persists it to the
// storage adapter in the background. Durable writes are fire-and-forget:
// a failed write is logged and counted, never rolled back, so in-memory
// state is always the source of truth for the running process. Writes to
// the same key are serialized and versioned so a slow earlier snapshot
// can never overwrite a later one.
type Store struct {
	mu sync.RWMutex

	events    []models.Event
	attendees []models.Attendee
	bookings  []models.Booking
	cart      []models.CartItem
	profile   models.UserProfile
	auth      models.AuthState
	loading   bool

	adapter  storage.Adapter
	nats     *messaging.NATSClient
	verifier CredentialVerifier

	lastID  int64
	wg      sync.WaitGroup
	writers map[string]*keyWriter
	seq     map[string]uint64
}

// keyWriter serializes durable writes for one storage key. written holds
// the highest snapshot version that reached the adapter; snapshots a newer
// write has already superseded are dropped instead of written.
type keyWriter struct {
	mu      sync.Mutex
	written uint64
}

// New creates a store bound to a storage adapter. nats may be a
// disconnected client; verifier nil means the default syntactic check.
func New(adapter storage.Adapter, nats *messaging.NATSClient, verifier CredentialVerifier) *Store {
	if verifier == nil {
		verifier = SyntacticVerifier{}
	}
	return &Store{
		profile:  defaultProfile,
		adapter:  adapter,
		nats:     nats,
		verifier: verifier,
		loading:  true,
		writers:  make(map[string]*keyWriter),
		seq:      make(map[string]uint64),
	}
}

// Load reads every slice from the storage adapter. A missing or malformed
// value falls back to the slice default: the bundled sample dataset for
// events and attendees, empty collections for bookings and cart, the
// canned profile and an unauthenticated state. Failures are logged and
// never surfaced; there is no retry.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !loadSlice(ctx, s.adapter, KeyEvents, &s.events) {
		s.events = seedEvents()
	}
	if !loadSlice(ctx, s.adapter, KeyAttendees, &s.attendees) {
		s.attendees = seedAttendees()
	}
	if !loadSlice(ctx, s.adapter, KeyBookings, &s.bookings) {
		s.bookings = []models.Booking{}
	}
	if !loadSlice(ctx, s.adapter, KeyCart, &s.cart) {
		s.cart = []models.CartItem{}
	}

	var profile models.UserProfile
	if loadSlice(ctx, s.adapter, KeyProfile, &profile) {
		s.profile = profile
	}
	var auth models.AuthState
	if loadSlice(ctx, s.adapter, KeyAuth, &auth) {
		s.auth = auth
	}

	s.loading = false
}

// loadSlice reads and decodes one key. Returns false when the key is
// absent or the stored value cannot be decoded; the caller then applies
// the slice default and the bad value is silently discarded.
func loadSlice(ctx context.Context, adapter storage.Adapter, key string, out interface{}) bool {
	data, err := adapter.Get(ctx, key)
	if err != nil {
		if err != storage.ErrNotFound {
			logger.Get().Error("Failed to load slice, using default", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		logger.Get().Error("Discarding malformed stored slice", "key", key, "error", err)
		return false
	}
	return true
}

// IsLoading reports whether the initial load has completed
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// persist serializes a slice under the caller's lock and writes it to the
// adapter in the background. The caller does not wait for durable
// confirmation; a crash between the in-memory update and the completed
// write loses that mutation on next load. Each snapshot carries a per-key
// version assigned under the store lock, and the key's writer mutex keeps
// one write in flight per key: a snapshot that a newer version has already
// landed is dropped, so reordered goroutines cannot clobber durable state
// with stale data.
func (s *Store) persist(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Get().Error("Failed to serialize slice", "key", key, "error", err)
		metrics.RecordPersistFailure(key)
		return
	}

	w := s.writers[key]
	if w == nil {
		w = &keyWriter{}
		s.writers[key] = w
	}
	s.seq[key]++
	version := s.seq[key]

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		w.mu.Lock()
		defer w.mu.Unlock()

		if version <= w.written {
			// A newer snapshot of this key is already durable
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := s.adapter.Set(ctx, key, data); err != nil {
			logger.Get().Error("Failed to persist slice", "key", key, "error", err)
			metrics.RecordPersistFailure(key)
			return
		}
		w.written = version
	}()
}

// publish sends a domain event, fire-and-forget
func (s *Store) publish(ctx context.Context, subject string, data interface{}) {
	if s.nats == nil {
		return
	}
	if err := s.nats.Publish(subject, data); err != nil {
		logger.WithContext(ctx).Error("Failed to publish domain event",
			"error", err, "event_type", subject)
	}
}

// Flush waits for all in-flight background writes to finish. Used during
// graceful shutdown and by tests.
func (s *Store) Flush() {
	s.wg.Wait()
}

// newID returns a fresh time-based id, strictly increasing within the
// process lifetime. Must be called with the write lock held.
func (s *Store) newID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}
