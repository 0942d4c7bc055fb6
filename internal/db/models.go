package db

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

type SlotStatus string

const (
	SlotFree        SlotStatus = "free"
	SlotOccupied    SlotStatus = "occupied"
	SlotReserved    SlotStatus = "reserved"
	SlotMaintenance SlotStatus = "maintenance"
)

type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentUPI       PaymentMethod = "upi"
	PaymentCard      PaymentMethod = "card"
	PaymentPayAtExit PaymentMethod = "pay-at-exit"
)

type VehicleType string

const (
	VehicleCar  VehicleType = "car"
	VehicleBike VehicleType = "bike"
	VehicleEV   VehicleType = "ev"
	VehicleSUV  VehicleType = "suv"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Facility struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Images         []string `json:"images,omitempty"`
	Description    string   `json:"description,omitempty"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	TotalSlots     int      `json:"total_slots"`
	AvailableSlots int      `json:"available_slots"`
	Floors         int      `json:"floors"`
	OpeningHours   string   `json:"opening_hours"`
	Amenities      []string `json:"amenities,omitempty"`
	ProviderID     string   `json:"provider_id"`
	Verified       bool     `json:"verified"`
}

type ParkingSlot struct {
	ID           string      `json:"id"`
	FacilityID   string      `json:"facility_id"`
	Number       string      `json:"number"`
	Floor        int         `json:"floor"`
	VehicleType  VehicleType `json:"vehicle_type"`
	Status       SlotStatus  `json:"status"`
	PricePerHour int         `json:"price_per_hour"`
}

type Booking struct {
	ID            string        `json:"id"`
	Code          string        `json:"code"`
	CustomerID    string        `json:"customer_id"`
	FacilityID    string        `json:"facility_id"`
	SlotID        string        `json:"slot_id"`
	VehicleNumber string        `json:"vehicle_number"`
	VehicleType   VehicleType   `json:"vehicle_type"`
	EntryTime     time.Time     `json:"entry_time"`
	ExitTime      *time.Time    `json:"exit_time,omitempty"`
	Amount        int           `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Status        BookingStatus `json:"status"`
	QRCode        string        `json:"qr_code"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type Vehicle struct {
	ID      string      `json:"id"`
	OwnerID string      `json:"owner_id"`
	Number  string      `json:"number"`
	Type    VehicleType `json:"type"`
	Model   string      `json:"model,omitempty"`
}

type MonthlyPass struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customer_id"`
	FacilityID  string      `json:"facility_id"`
	VehicleType VehicleType `json:"vehicle_type"`
	ValidFrom   time.Time   `json:"valid_from"`
	ValidUntil  time.Time   `json:"valid_until"`
	Amount      int         `json:"amount"`
	Active      bool        `json:"active"`
}
