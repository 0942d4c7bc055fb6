package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"parkspot/internal/db"
	"parkspot/internal/service"
	"parkspot/internal/store"
)

type FacilityHandler struct {
	Service *service.BookingService
}

func NewFacilityHandler(svc *service.BookingService) *FacilityHandler {
	return &FacilityHandler{Service: svc}
}

func (h *FacilityHandler) ListFacilities(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.ListFacilities())
}

func (h *FacilityHandler) GetFacility(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	facility, err := h.Service.GetFacilityByID(id)
	if err != nil {
		if errors.Is(err, store.ErrFacilityNotFound) {
			http.Error(w, "Facility not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error fetching facility", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(facility)
}

// ListSlots returns a facility's slot list; ?free=true narrows it to
// free slots, optionally filtered by ?vehicle_type.
func (h *FacilityHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var (
		slots []db.ParkingSlot
		err   error
	)
	if r.URL.Query().Get("free") == "true" {
		vt := db.VehicleType(r.URL.Query().Get("vehicle_type"))
		slots, err = h.Service.ListAvailableSlots(id, vt)
	} else {
		slots, err = h.Service.ListSlots(id)
	}
	if err != nil {
		if errors.Is(err, store.ErrFacilityNotFound) {
			http.Error(w, "Facility not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error fetching slots", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(slots)
}
