package integration

import (
	"os"
	"testing"

	"allurra/internal/models"
)

const defaultBaseURL = "http://localhost:8081"

// NewClientOrSkip skips the test unless a live server address is configured.
// Set ALLURRA_API_URL (or ALLURRA_INTEGRATION=1 for the default address) to
// run these tests against a running instance.
func NewClientOrSkip(t *testing.T) *TestClient {
	if url := os.Getenv("ALLURRA_API_URL"); url != "" {
		return NewTestClient(url)
	}
	if os.Getenv("ALLURRA_INTEGRATION") != "" {
		return NewTestClient(defaultBaseURL)
	}
	t.Skip("integration tests disabled, set ALLURRA_API_URL to enable")
	return nil
}

// LogTestStep logs a test step
func LogTestStep(t *testing.T, format string, args ...interface{}) {
	t.Logf("STEP: "+format, args...)
}

// LogTestResult logs a test result
func LogTestResult(t *testing.T, format string, args ...interface{}) {
	t.Logf("RESULT: "+format, args...)
}

// AssertEventExists checks if an event exists in the list
func AssertEventExists(t *testing.T, events []models.Event, eventID string) {
	for _, event := range events {
		if event.ID == eventID {
			return
		}
	}
	t.Fatalf("Event with ID %s not found in events list, %+v", eventID, events)
}

// FindProviderByCategory picks the first provider of the given category
func FindProviderByCategory(providers []models.ServiceProvider, category models.ServiceCategory) *models.ServiceProvider {
	for i := range providers {
		if providers[i].Category == category {
			return &providers[i]
		}
	}
	return nil
}

// FindBooking locates a booking by id
func FindBooking(bookings []models.Booking, id string) *models.Booking {
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i]
		}
	}
	return nil
}
