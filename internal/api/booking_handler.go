package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"parkspot/internal/auth"
	"parkspot/internal/db"
	"parkspot/internal/entities"
	apperrors "parkspot/internal/errors"
	"parkspot/internal/payment"
	"parkspot/internal/service"
	"parkspot/internal/store"
)

type BookingHandler struct {
	Service  *service.BookingService
	validate *validator.Validate
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc, validate: newValidator()}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	booking, err := h.Service.CreateBooking(&entities.BookingRequest{
		CustomerID:    userID,
		FacilityID:    req.FacilityID,
		SlotID:        req.SlotID,
		VehicleNumber: req.VehicleNumber,
		VehicleType:   db.VehicleType(req.VehicleType),
		EntryTime:     req.EntryTime,
		ExitTime:      req.ExitTime,
		PaymentMethod: db.PaymentMethod(req.PaymentMethod),
		UPIHandle:     payment.NormalizeUPI(req.UPIHandle),
	})
	if err != nil {
		if errors.Is(err, store.ErrFacilityNotFound) || errors.Is(err, store.ErrSlotNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		var httpErr *apperrors.HTTPError
		if errors.As(err, &httpErr) {
			http.Error(w, httpErr.Message, httpErr.Code)
			return
		}
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateBookingResponse{
		Booking: *booking,
		Message: "Booking confirmed.",
	})
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.BookingsForUser(userID))
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := mux.Vars(r)["id"]
	booking, err := h.Service.GetBooking(id)
	if err != nil || booking.CustomerID != userID {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}
