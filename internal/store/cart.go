package store

import (
	"context"
	"time"

	"allurra/internal/models"
)

// Cart returns a snapshot of the cart slice
func (s *Store) Cart() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// CartTotal sums bid amounts across the cart
func (s *Store) CartTotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, item := range s.cart {
		total += item.BidAmount
	}
	return total
}

// AddToCart appends a provisional booking request. The store assigns the
// id and accepts any bid amount; checking the bid against the provider's
// base price is the caller's concern.
func (s *Store) AddToCart(ctx context.Context, provider models.ServiceProvider, eventDate, location string, bidAmount int64) models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.CartItem{
		ID:         s.newID(),
		ProviderID: provider.ID,
		Provider:   provider,
		EventDate:  eventDate,
		Location:   location,
		BidAmount:  bidAmount,
	}

	next := make([]models.CartItem, len(s.cart), len(s.cart)+1)
	copy(next, s.cart)
	s.cart = append(next, item)
	s.persist(KeyCart, s.cart)

	return item
}

// RemoveFromCart removes the matching item; unknown ids are a silent no-op
func (s *Store) RemoveFromCart(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.CartItem, 0, len(s.cart))
	for _, item := range s.cart {
		if item.ID == id {
			continue
		}
		next = append(next, item)
	}
	s.cart = next
	s.persist(KeyCart, s.cart)
}

// CheckoutCart converts the supplied items into paid pending bookings in
// one batch, then removes exactly those items from the cart, leaving any
// others untouched. The caller is responsible for passing current cart
// contents; a stale list produces a cart/booking mismatch that the store
// does not reconcile.
func (s *Store) CheckoutCart(ctx context.Context, items []models.CartItem) []models.Booking {
	s.mu.Lock()

	created := make([]models.Booking, len(items))
	var total int64
	for i, item := range items {
		created[i] = models.Booking{
			ID:         s.newID(),
			ProviderID: item.ProviderID,
			Provider:   item.Provider,
			EventDate:  item.EventDate,
			Location:   item.Location,
			BidAmount:  item.BidAmount,
			Status:     models.BookingPending,
			CreatedAt:  time.Now(),
			Paid:       true,
		}
		total += item.BidAmount
	}

	nextBookings := make([]models.Booking, len(s.bookings), len(s.bookings)+len(created))
	copy(nextBookings, s.bookings)
	s.bookings = append(nextBookings, created...)
	s.persist(KeyBookings, s.bookings)

	checkedOut := make(map[string]bool, len(items))
	for _, item := range items {
		checkedOut[item.ID] = true
	}
	nextCart := make([]models.CartItem, 0, len(s.cart))
	for _, item := range s.cart {
		if checkedOut[item.ID] {
			continue
		}
		nextCart = append(nextCart, item)
	}
	s.cart = nextCart
	s.persist(KeyCart, s.cart)
	s.mu.Unlock()

	if len(created) > 0 {
		ids := make([]string, len(created))
		for i, b := range created {
			ids[i] = b.ID
		}
		s.publish(ctx, models.EventCartCheckedOut, models.CartCheckedOutEvent{
			BookingIDs: ids,
			Total:      total,
			Timestamp:  time.Now(),
		})
	}

	return created
}

// Bookings returns a snapshot of the bookings slice
func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// UpdateBookingStatus replaces the status of the matching booking. Any
// status label is accepted; there is no transition table. The only path
// driven by the application is rejected to refunded. Unknown ids report
// found=false and change nothing.
func (s *Store) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (models.Booking, bool) {
	s.mu.Lock()

	next := make([]models.Booking, len(s.bookings))
	copy(next, s.bookings)

	for i := range next {
		if next[i].ID != id {
			continue
		}

		next[i].Status = status
		s.bookings = next
		s.persist(KeyBookings, s.bookings)
		booking := next[i]
		s.mu.Unlock()

		s.publish(ctx, models.EventBookingStatusChanged, models.BookingStatusChangedEvent{
			BookingID: booking.ID,
			Status:    string(status),
			Timestamp: time.Now(),
		})
		return booking, true
	}

	s.mu.Unlock()
	return models.Booking{}, false
}
