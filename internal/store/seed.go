package store

import (
	"time"

	"parkspot/internal/db"
)

const (
	DemoCustomerID = "user-demo-customer"
	DemoProviderID = "user-demo-provider"
)

// seed loads the fixed demo catalog: two facilities with their slot
// lists and one demo user per role. Login picks from these users.
func (s *Store) seed() {
	created := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	s.users = []db.User{
		{
			ID:        DemoCustomerID,
			Name:      "Asha Verma",
			Email:     "asha@parkspot.dev",
			Phone:     "+919876543210",
			Role:      db.RoleCustomer,
			CreatedAt: created,
		},
		{
			ID:        DemoProviderID,
			Name:      "Rohit Mehta",
			Email:     "rohit@parkspot.dev",
			Phone:     "+919812345678",
			Role:      db.RoleProvider,
			CreatedAt: created,
		},
	}

	s.facilities = []db.Facility{
		{
			ID:             "fac-orion",
			Name:           "Orion Mall Parking",
			Address:        "Brigade Gateway, Rajajinagar",
			City:           "Bengaluru",
			Latitude:       13.0113,
			Longitude:      77.5551,
			Images:         []string{"/images/facilities/orion-1.jpg", "/images/facilities/orion-2.jpg"},
			Description:    "Covered multi-level parking attached to Orion Mall.",
			Rating:         4.5,
			ReviewCount:    212,
			TotalSlots:     6,
			AvailableSlots: 5,
			Floors:         2,
			OpeningHours:   "06:00-23:00",
			Amenities:      []string{"cctv", "ev-charging", "car-wash"},
			ProviderID:     DemoProviderID,
			Verified:       true,
		},
		{
			ID:             "fac-phoenix",
			Name:           "Phoenix Marketcity Parking",
			Address:        "Whitefield Main Road",
			City:           "Bengaluru",
			Latitude:       12.9970,
			Longitude:      77.6960,
			Images:         []string{"/images/facilities/phoenix-1.jpg"},
			Description:    "Open and basement parking with dedicated two-wheeler bays.",
			Rating:         4.2,
			ReviewCount:    148,
			TotalSlots:     4,
			AvailableSlots: 3,
			Floors:         1,
			OpeningHours:   "24x7",
			Amenities:      []string{"cctv", "valet"},
			ProviderID:     DemoProviderID,
			Verified:       false,
		},
	}

	s.slots = map[string][]db.ParkingSlot{
		"fac-orion": {
			{ID: "slot-or-a1", FacilityID: "fac-orion", Number: "A1", Floor: 0, VehicleType: db.VehicleCar, Status: db.SlotFree, PricePerHour: 50},
			{ID: "slot-or-a2", FacilityID: "fac-orion", Number: "A2", Floor: 0, VehicleType: db.VehicleCar, Status: db.SlotOccupied, PricePerHour: 50},
			{ID: "slot-or-a3", FacilityID: "fac-orion", Number: "A3", Floor: 0, VehicleType: db.VehicleSUV, Status: db.SlotFree, PricePerHour: 70},
			{ID: "slot-or-b1", FacilityID: "fac-orion", Number: "B1", Floor: 1, VehicleType: db.VehicleBike, Status: db.SlotFree, PricePerHour: 20},
			{ID: "slot-or-b2", FacilityID: "fac-orion", Number: "B2", Floor: 1, VehicleType: db.VehicleEV, Status: db.SlotFree, PricePerHour: 60},
			{ID: "slot-or-b3", FacilityID: "fac-orion", Number: "B3", Floor: 1, VehicleType: db.VehicleBike, Status: db.SlotMaintenance, PricePerHour: 20},
		},
		"fac-phoenix": {
			{ID: "slot-ph-p1", FacilityID: "fac-phoenix", Number: "P1", Floor: 0, VehicleType: db.VehicleCar, Status: db.SlotFree, PricePerHour: 40},
			{ID: "slot-ph-p2", FacilityID: "fac-phoenix", Number: "P2", Floor: 0, VehicleType: db.VehicleCar, Status: db.SlotReserved, PricePerHour: 40},
			{ID: "slot-ph-p3", FacilityID: "fac-phoenix", Number: "P3", Floor: 0, VehicleType: db.VehicleBike, Status: db.SlotFree, PricePerHour: 15},
			{ID: "slot-ph-p4", FacilityID: "fac-phoenix", Number: "P4", Floor: 0, VehicleType: db.VehicleEV, Status: db.SlotFree, PricePerHour: 55},
		},
	}
}
