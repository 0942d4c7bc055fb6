package entities

import "parkspot/internal/db"

type BookingsList struct {
	Total    int          `json:"total"`
	Bookings []db.Booking `json:"bookings"`
}
