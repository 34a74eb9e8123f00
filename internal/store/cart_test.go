package store

import (
	"context"
	"testing"

	"allurra/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProvider = models.ServiceProvider{
	ID:        "sp1",
	Name:      "MC Deji Live",
	Category:  models.CategoryMC,
	BasePrice: 150000,
	Location:  "Lagos",
}

func TestAddToCartAcceptsAnyBid(t *testing.T) {
	s, _ := newTestStore(t)

	// Bid validation belongs to the caller; the store takes any amount,
	// including one below the provider's base price
	item := s.AddToCart(context.Background(), testProvider, "2025-06-01", "Lagos", 1)

	assert.Equal(t, int64(1), item.BidAmount)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, testProvider, item.Provider)
	assert.Len(t, s.Cart(), 1)
}

func TestRemoveFromCart(t *testing.T) {
	s, _ := newTestStore(t)

	item := s.AddToCart(context.Background(), testProvider, "2025-06-01", "Lagos", 200000)
	s.RemoveFromCart(context.Background(), item.ID)
	assert.Empty(t, s.Cart())

	// Unknown ids are a silent no-op
	s.RemoveFromCart(context.Background(), "no-such-id")
	assert.Empty(t, s.Cart())
}

func TestCheckoutCartPartial(t *testing.T) {
	s, _ := newTestStore(t)

	a := s.AddToCart(context.Background(), testProvider, "2025-06-01", "Lagos", 200000)
	b := s.AddToCart(context.Background(), testProvider, "2025-06-02", "Abuja", 180000)
	c := s.AddToCart(context.Background(), testProvider, "2025-06-03", "Lagos", 170000)

	created := s.CheckoutCart(context.Background(), []models.CartItem{a, c})

	require.Len(t, created, 2)
	for _, booking := range created {
		assert.Equal(t, models.BookingPending, booking.Status)
		assert.True(t, booking.Paid)
		assert.NotEmpty(t, booking.ID)
		assert.False(t, booking.CreatedAt.IsZero())
	}
	assert.Equal(t, a.BidAmount, created[0].BidAmount)
	assert.Equal(t, c.BidAmount, created[1].BidAmount)

	// Exactly the checked-out items leave the cart
	remaining := s.Cart()
	require.Len(t, remaining, 1)
	assert.Equal(t, b.ID, remaining[0].ID)

	assert.Len(t, s.Bookings(), 2)
}

func TestCheckoutCartEmptyList(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddToCart(context.Background(), testProvider, "2025-06-01", "Lagos", 200000)
	created := s.CheckoutCart(context.Background(), nil)

	assert.Empty(t, created)
	assert.Len(t, s.Cart(), 1, "nothing leaves the cart when no items are supplied")
	assert.Empty(t, s.Bookings())
}

func TestUpdateBookingStatusRefund(t *testing.T) {
	s, _ := newTestStore(t)

	item := s.AddToCart(context.Background(), testProvider, "2025-06-01", "Lagos", 200000)
	created := s.CheckoutCart(context.Background(), []models.CartItem{item})
	require.Len(t, created, 1)

	rejected, ok := s.UpdateBookingStatus(context.Background(), created[0].ID, models.BookingRejected)
	require.True(t, ok)
	assert.Equal(t, models.BookingRejected, rejected.Status)

	refunded, ok := s.UpdateBookingStatus(context.Background(), created[0].ID, models.BookingRefunded)
	require.True(t, ok)
	assert.Equal(t, models.BookingRefunded, refunded.Status)
	assert.True(t, refunded.Paid, "the paid flag is untouched by status changes")
}

func TestUpdateBookingStatusUnknownID(t *testing.T) {
	s, _ := newTestStore(t)

	_, ok := s.UpdateBookingStatus(context.Background(), "no-such-id", models.BookingRefunded)
	assert.False(t, ok)
	assert.Empty(t, s.Bookings())
}

func TestCartTotal(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Equal(t, int64(0), s.CartTotal())

	s.AddToCart(context.Background(), testProvider, "2025-06-01", "Lagos", 200000)
	s.AddToCart(context.Background(), testProvider, "2025-06-02", "Abuja", 150000)

	assert.Equal(t, int64(350000), s.CartTotal())
}
