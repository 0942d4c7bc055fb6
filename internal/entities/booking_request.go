package entities

import (
	"time"

	"parkspot/internal/db"
)

type BookingRequest struct {
	CustomerID    string           `json:"customer_id"`
	FacilityID    string           `json:"facility_id"`
	SlotID        string           `json:"slot_id"`
	VehicleNumber string           `json:"vehicle_number"`
	VehicleType   db.VehicleType   `json:"vehicle_type"`
	EntryTime     time.Time        `json:"entry_time"`
	ExitTime      *time.Time       `json:"exit_time,omitempty"`
	PaymentMethod db.PaymentMethod `json:"payment_method"`
	UPIHandle     string           `json:"upi_handle,omitempty"`
}
