package store

import (
	"time"

	"allurra/internal/models"
)

// Bundled sample dataset, used when no stored value exists for the events
// and attendees slices.

func seedEvents() []models.Event {
	return []models.Event{
		{
			ID:          "1",
			Title:       "Tech Conference 2025",
			Description: "Annual technology conference featuring the latest innovations",
			Date:        "2025-03-15",
			Time:        "09:00 AM",
			Location:    "Lagos Convention Centre, Lagos",
			ImageURL:    "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800",
			TicketTypes: []models.TicketType{
				{ID: "t1", Name: "Regular", Price: 15000, Quantity: 100, Sold: 45},
				{ID: "t2", Name: "VIP", Price: 35000, Quantity: 50, Sold: 28},
			},
			CreatedAt: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			Revenue:   1655000,
		},
		{
			ID:          "2",
			Title:       "Wedding Reception",
			Description: "Celebrating the union of two hearts",
			Date:        "2025-04-20",
			Time:        "04:00 PM",
			Location:    "Eko Hotel & Suites, Victoria Island",
			ImageURL:    "https://images.unsplash.com/photo-1519225421980-715cb0215aed?w=800",
			TicketTypes: []models.TicketType{
				{ID: "t3", Name: "General Admission", Price: 0, Quantity: 200, Sold: 156},
			},
			CreatedAt: time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC),
			Revenue:   0,
		},
	}
}

func seedAttendees() []models.Attendee {
	checkedInAt := time.Date(2025, 3, 15, 9, 15, 0, 0, time.UTC)

	return []models.Attendee{
		{
			ID:           "a1",
			EventID:      "1",
			TicketTypeID: "t1",
			Name:         "Chidi Okafor",
			Email:        "chidi@example.com",
			Phone:        "+234 801 234 5678",
			CheckedIn:    true,
			CheckedInAt:  &checkedInAt,
			QRCode:       "EVT1-A1-CHK",
			PurchasedAt:  time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           "a2",
			EventID:      "1",
			TicketTypeID: "t2",
			Name:         "Amina Ibrahim",
			Email:        "amina@example.com",
			Phone:        "+234 802 345 6789",
			CheckedIn:    false,
			QRCode:       "EVT1-A2-VIP",
			PurchasedAt:  time.Date(2025, 2, 5, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:           "a3",
			EventID:      "1",
			TicketTypeID: "t1",
			Name:         "Tunde Williams",
			Email:        "tunde@example.com",
			Phone:        "+234 803 456 7890",
			CheckedIn:    false,
			QRCode:       "EVT1-A3-CHK",
			PurchasedAt:  time.Date(2025, 2, 10, 16, 45, 0, 0, time.UTC),
		},
	}
}
