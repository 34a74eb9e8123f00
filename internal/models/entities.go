package models

import (
	"time"
)

// ServiceCategory classifies providers in the service catalog
type ServiceCategory string

const (
	CategoryMC          ServiceCategory = "mc"
	CategoryComedian    ServiceCategory = "comedian"
	CategoryCatering    ServiceCategory = "catering"
	CategoryPhotography ServiceCategory = "photography"
	CategoryDecoration  ServiceCategory = "decoration"
)

// BookingStatus is the lifecycle label of a service booking
type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingAccepted BookingStatus = "accepted"
	BookingRejected BookingStatus = "rejected"
	BookingRefunded BookingStatus = "refunded"
)

// TicketType represents a priced tier of tickets for an event.
// Owned by exactly one Event, embedded rather than stored separately.
type TicketType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Sold     int    `json:"sold"`
}

// Event represents an organizer-created ticketed event
type Event struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Location    string       `json:"location"`
	ImageURL    string       `json:"imageUrl"`
	TicketTypes []TicketType `json:"ticketTypes"`
	CreatedAt   time.Time    `json:"createdAt"`
	// Revenue is an accumulated total set by callers, not derived
	// from ticket sales. Callers must keep it consistent themselves.
	Revenue int64 `json:"revenue"`
}

// Attendee represents a ticket holder for an event.
// CheckedInAt is set exactly when CheckedIn first becomes true;
// check-in is monotonic and never reset.
type Attendee struct {
	ID           string     `json:"id"`
	EventID      string     `json:"eventId"`
	TicketTypeID string     `json:"ticketTypeId"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	CheckedIn    bool       `json:"checkedIn"`
	CheckedInAt  *time.Time `json:"checkedInAt,omitempty"`
	QRCode       string     `json:"qrCode"`
	PurchasedAt  time.Time  `json:"purchasedAt"`
}

// PortfolioItem is a media sample in a provider's portfolio
type PortfolioItem struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Type      string `json:"type"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// ServiceProvider represents a bookable vendor or entertainer from the
// static catalog. Catalog data is read-only reference data.
type ServiceProvider struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ServiceCategory `json:"category"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	BasePrice   int64           `json:"basePrice"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	Location    string          `json:"location"`
	Portfolio   []PortfolioItem `json:"portfolio,omitempty"`
}

// CartItem is a provisional booking request awaiting checkout.
// The provider is snapshotted by value at add-to-cart time, so later
// catalog changes do not affect items already in the cart.
type CartItem struct {
	ID         string          `json:"id"`
	ProviderID string          `json:"providerId"`
	Provider   ServiceProvider `json:"provider"`
	EventDate  string          `json:"eventDate"`
	Location   string          `json:"location"`
	BidAmount  int64           `json:"bidAmount"`
}

// Booking is a confirmed (paid) request to a service provider,
// created only through cart checkout
type Booking struct {
	ID         string          `json:"id"`
	ProviderID string          `json:"providerId"`
	Provider   ServiceProvider `json:"provider"`
	EventDate  string          `json:"eventDate"`
	Location   string          `json:"location"`
	BidAmount  int64           `json:"bidAmount"`
	Status     BookingStatus   `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	Paid       bool            `json:"paid"`
}

// UserProfile is the singleton organizer profile
type UserProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// AuthState is the process-wide authentication flag plus the signed-in user
type AuthState struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *UserProfile `json:"user"`
}
