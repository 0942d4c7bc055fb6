package service

import (
	"fmt"
	"log"

	"parkspot/internal/db"
	"parkspot/internal/entities"
	apperrors "parkspot/internal/errors"
	"parkspot/internal/store"
)

type BookingService struct {
	Store  *store.Store
	notify *NotifyService
}

func NewBookingService(st *store.Store, notify *NotifyService) *BookingService {
	return &BookingService{Store: st, notify: notify}
}

// CreateBooking books a slot: prices the stay, appends the booking (the
// store flips the slot to occupied in the same step) and fires the
// confirmation notifications.
func (s *BookingService) CreateBooking(req *entities.BookingRequest) (*db.Booking, error) {
	slot, err := s.Store.Slot(req.FacilityID, req.SlotID)
	if err != nil {
		return nil, err
	}
	if slot.Status != db.SlotFree {
		return nil, apperrors.ErrConflict(fmt.Sprintf("slot %s is %s", slot.Number, slot.Status))
	}
	if req.VehicleType != "" && slot.VehicleType != req.VehicleType {
		return nil, apperrors.ErrConflict(fmt.Sprintf("slot %s takes %s, not %s", slot.Number, slot.VehicleType, req.VehicleType))
	}

	amount := 0
	if req.ExitTime != nil {
		amount, err = AmountFor(slot.PricePerHour, req.EntryTime, *req.ExitTime)
		if err != nil {
			return nil, err
		}
	}

	booking := db.Booking{
		CustomerID:    req.CustomerID,
		FacilityID:    req.FacilityID,
		SlotID:        req.SlotID,
		VehicleNumber: req.VehicleNumber,
		VehicleType:   req.VehicleType,
		EntryTime:     req.EntryTime,
		ExitTime:      req.ExitTime,
		Amount:        amount,
		PaymentMethod: req.PaymentMethod,
		Status:        db.BookingActive,
	}

	created, err := s.Store.CreateBooking(booking)
	if err != nil {
		log.Printf("Error creating booking in store: %v", err)
		return nil, err
	}

	if s.notify != nil {
		facility, ferr := s.Store.FacilityByID(created.FacilityID)
		user, uerr := s.Store.UserByID(created.CustomerID)
		if ferr != nil || uerr != nil {
			log.Printf("Booking %s created, skipping notifications: facility=%v user=%v", created.Code, ferr, uerr)
		} else {
			s.notify.SendBookingConfirmation(*created, *facility, *slot, *user)
		}
	}

	return created, nil
}

// BookingsForUser returns the user's bookings in insertion order.
func (s *BookingService) BookingsForUser(userID string) entities.BookingsList {
	bookings := s.Store.BookingsByUser(userID)
	return entities.BookingsList{Total: len(bookings), Bookings: bookings}
}

func (s *BookingService) GetBooking(id string) (*db.Booking, error) {
	return s.Store.BookingByID(id)
}

func (s *BookingService) ListFacilities() []db.Facility {
	return s.Store.Facilities()
}

func (s *BookingService) GetFacilityByID(id string) (*db.Facility, error) {
	return s.Store.FacilityByID(id)
}

func (s *BookingService) ListSlots(facilityID string) ([]db.ParkingSlot, error) {
	return s.Store.SlotsByFacility(facilityID)
}

func (s *BookingService) ListAvailableSlots(facilityID string, vt db.VehicleType) ([]db.ParkingSlot, error) {
	return s.Store.AvailableSlots(facilityID, vt)
}
