package models

// TicketTypeDraft - входные данные тарифа при создании события
type TicketTypeDraft struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"min=0"`
	Quantity int    `json:"quantity" binding:"min=0"`
	// Sold is accepted but always reset to zero on create
	Sold int `json:"sold"`
}

// CreateEventRequest - модель для создания события
type CreateEventRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Date        string            `json:"date" binding:"required"`
	Time        string            `json:"time"`
	Location    string            `json:"location" binding:"required"`
	ImageURL    string            `json:"imageUrl"`
	TicketTypes []TicketTypeDraft `json:"ticketTypes"`
}

// CreateEventResponse - модель ответа при создании события
type CreateEventResponse struct {
	ID string `json:"id"`
}

// UpdateEventRequest carries the partial fields of an event update.
// Nil pointers mean "leave the field as is" (shallow merge).
type UpdateEventRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Date        *string       `json:"date"`
	Time        *string       `json:"time"`
	Location    *string       `json:"location"`
	ImageURL    *string       `json:"imageUrl"`
	TicketTypes *[]TicketType `json:"ticketTypes"`
	Revenue     *int64        `json:"revenue"`
}

// CreateAttendeeRequest - модель для регистрации участника
type CreateAttendeeRequest struct {
	EventID      string `json:"eventId" binding:"required"`
	TicketTypeID string `json:"ticketTypeId" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone"`
	QRCode       string `json:"qrCode"`
}

// CreateAttendeeResponse - модель ответа при регистрации участника
type CreateAttendeeResponse struct {
	ID     string `json:"id"`
	QRCode string `json:"qrCode"`
}

// CheckInRequest identifies the attendee either directly by id or by the
// scanned QR code payload
type CheckInRequest struct {
	AttendeeID string `json:"attendeeId"`
	QRCode     string `json:"qrCode"`
}

// AddToCartRequest - модель для добавления заявки в корзину
type AddToCartRequest struct {
	ProviderID string `json:"providerId" binding:"required"`
	EventDate  string `json:"eventDate" binding:"required"`
	Location   string `json:"location" binding:"required"`
	BidAmount  int64  `json:"bidAmount" binding:"required"`
}

// AddToCartResponse - модель ответа при добавлении в корзину
type AddToCartResponse struct {
	ID string `json:"id"`
}

// CheckoutRequest lists the cart item ids being checked out. An empty list
// means the whole cart.
type CheckoutRequest struct {
	ItemIDs []string `json:"itemIds"`
}

// CheckoutResponse - модель ответа при оформлении корзины
type CheckoutResponse struct {
	BookingIDs []string `json:"bookingIds"`
	Total      int64    `json:"total"`
}

// UpdateBookingStatusRequest - модель для смены статуса бронирования
type UpdateBookingStatusRequest struct {
	BookingID string        `json:"bookingId" binding:"required"`
	Status    BookingStatus `json:"status" binding:"required"`
}

// LoginRequest - модель для входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest - модель для регистрации
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Company  string `json:"company"`
}

// AuthResponse - модель ответа при входе и регистрации
type AuthResponse struct {
	IsAuthenticated bool        `json:"isAuthenticated"`
	User            UserProfile `json:"user"`
}

// AnalyticsResponse - модель ответа аналитики для организатора
type AnalyticsResponse struct {
	TotalRevenue     int64 `json:"total_revenue"`
	TotalEvents      int   `json:"total_events"`
	TotalTicketsSold int   `json:"total_tickets_sold"`
	TotalAttendees   int   `json:"total_attendees"`
	PendingBookings  int   `json:"pending_bookings"`
}
