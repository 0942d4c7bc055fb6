package api

import (
	"time"

	"parkspot/internal/db"
)

// Auth
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=customer provider"`
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=customer provider"`
}

// Booking
type CreateBookingRequest struct {
	FacilityID    string     `json:"facility_id" validate:"required"`
	SlotID        string     `json:"slot_id" validate:"required"`
	VehicleNumber string     `json:"vehicle_number" validate:"required"`
	VehicleType   string     `json:"vehicle_type" validate:"required,oneof=car bike ev suv"`
	EntryTime     time.Time  `json:"entry_time" validate:"required"`
	ExitTime      *time.Time `json:"exit_time,omitempty"`
	PaymentMethod string     `json:"payment_method" validate:"required,oneof=upi card pay-at-exit"`
	UPIHandle     string     `json:"upi_handle,omitempty" validate:"required_if=PaymentMethod upi,omitempty,upi_handle"`
}

type CreateBookingResponse struct {
	Booking db.Booking `json:"booking"`
	Message string     `json:"message"`
}
