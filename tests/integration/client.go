package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"allurra/internal/models"
)

// TestClient provides methods for testing the API
type TestClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewTestClient creates a new test client
func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// makeRequest makes an HTTP request and returns the response
func (c *TestClient) makeRequest(t *testing.T, method, path string, body interface{}) *http.Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}

	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

// HealthCheck verifies the API is up
func (c *TestClient) HealthCheck(t *testing.T) {
	resp := c.makeRequest(t, "GET", "/health", nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
}

// ListEvents lists all events
func (c *TestClient) ListEvents(t *testing.T) []models.Event {
	resp := c.makeRequest(t, "GET", "/api/events", nil)

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var events []models.Event
	decodeBody(t, resp, &events)
	return events
}

// CreateEvent creates a new event and returns its id
func (c *TestClient) CreateEvent(t *testing.T, req models.CreateEventRequest) string {
	resp := c.makeRequest(t, "POST", "/api/events", req)

	if resp.StatusCode != http.StatusCreated {
		resp.Body.Close()
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	var created models.CreateEventResponse
	decodeBody(t, resp, &created)
	return created.ID
}

// GetEvent fetches a single event
func (c *TestClient) GetEvent(t *testing.T, id string) models.Event {
	resp := c.makeRequest(t, "GET", "/api/events/"+id, nil)

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var event models.Event
	decodeBody(t, resp, &event)
	return event
}

// DeleteEvent removes an event
func (c *TestClient) DeleteEvent(t *testing.T, id string) {
	resp := c.makeRequest(t, "DELETE", "/api/events/"+id, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
}

// RegisterAttendee registers an attendee for an event
func (c *TestClient) RegisterAttendee(t *testing.T, req models.CreateAttendeeRequest) models.CreateAttendeeResponse {
	resp := c.makeRequest(t, "POST", "/api/attendees", req)

	if resp.StatusCode != http.StatusCreated {
		resp.Body.Close()
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	var created models.CreateAttendeeResponse
	decodeBody(t, resp, &created)
	return created
}

// CheckInByQR checks an attendee in by the scanned QR payload
func (c *TestClient) CheckInByQR(t *testing.T, code string) models.Attendee {
	resp := c.makeRequest(t, "PATCH", "/api/attendees/checkin", models.CheckInRequest{QRCode: code})

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var attendee models.Attendee
	decodeBody(t, resp, &attendee)
	return attendee
}

// ListProviders lists service providers, optionally filtered
func (c *TestClient) ListProviders(t *testing.T, category string) []models.ServiceProvider {
	path := "/api/providers"
	if category != "" {
		path = fmt.Sprintf("%s?category=%s", path, category)
	}

	resp := c.makeRequest(t, "GET", path, nil)

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var providers []models.ServiceProvider
	decodeBody(t, resp, &providers)
	return providers
}

// AddToCart puts a bid into the cart and returns the item id
func (c *TestClient) AddToCart(t *testing.T, req models.AddToCartRequest) string {
	resp := c.makeRequest(t, "POST", "/api/cart", req)

	if resp.StatusCode != http.StatusCreated {
		resp.Body.Close()
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	var added models.AddToCartResponse
	decodeBody(t, resp, &added)
	return added.ID
}

// Checkout converts the given cart items into bookings
func (c *TestClient) Checkout(t *testing.T, itemIDs []string) models.CheckoutResponse {
	resp := c.makeRequest(t, "POST", "/api/cart/checkout", models.CheckoutRequest{ItemIDs: itemIDs})

	if resp.StatusCode != http.StatusCreated {
		resp.Body.Close()
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	var out models.CheckoutResponse
	decodeBody(t, resp, &out)
	return out
}

// ListBookings lists all bookings
func (c *TestClient) ListBookings(t *testing.T) []models.Booking {
	resp := c.makeRequest(t, "GET", "/api/bookings", nil)

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var bookings []models.Booking
	decodeBody(t, resp, &bookings)
	return bookings
}

// UpdateBookingStatus moves a booking to a new status
func (c *TestClient) UpdateBookingStatus(t *testing.T, bookingID string, status models.BookingStatus) models.Booking {
	resp := c.makeRequest(t, "PATCH", "/api/bookings/status", models.UpdateBookingStatusRequest{
		BookingID: bookingID,
		Status:    status,
	})

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var booking models.Booking
	decodeBody(t, resp, &booking)
	return booking
}

// Login authenticates with the given credentials
func (c *TestClient) Login(t *testing.T, email, password string) models.AuthResponse {
	resp := c.makeRequest(t, "POST", "/api/auth/login", models.LoginRequest{
		Email:    email,
		Password: password,
	})

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var auth models.AuthResponse
	decodeBody(t, resp, &auth)
	return auth
}
