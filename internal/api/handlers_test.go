package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"parkspot/internal/auth"
	"parkspot/internal/db"
	"parkspot/internal/entities"
	"parkspot/internal/service"
	"parkspot/internal/store"
)

func newTestRouter(t *testing.T) (*mux.Router, *store.Store) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	st := store.NewStore(0)
	bookingSvc := service.NewBookingService(st, nil)
	authSvc := service.NewAuthService(st)

	authHandler := NewAuthHandler(authSvc)
	facilityHandler := NewFacilityHandler(bookingSvc)
	bookingHandler := NewBookingHandler(bookingSvc)

	r := mux.NewRouter()
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("POST")
	r.HandleFunc("/api/facilities", facilityHandler.ListFacilities).Methods("GET")
	r.HandleFunc("/api/facilities/{id}", facilityHandler.GetFacility).Methods("GET")
	r.HandleFunc("/api/facilities/{id}/slots", facilityHandler.ListSlots).Methods("GET")

	bookings := r.PathPrefix("/api/bookings").Subrouter()
	bookings.Use(auth.AuthMiddleware)
	bookings.HandleFunc("", bookingHandler.CreateBooking).Methods("POST")
	bookings.HandleFunc("", bookingHandler.ListBookings).Methods("GET")
	bookings.HandleFunc("/{id}", bookingHandler.GetBooking).Methods("GET")

	return r, st
}

func doJSON(t *testing.T, r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, r http.Handler, role string) entities.AuthResponse {
	t.Helper()
	rec := doJSON(t, r, "POST", "/api/auth/login", "",
		fmt.Sprintf(`{"email":"demo@parkspot.dev","password":"pw","role":%q}`, role))
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp entities.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	return resp
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	resp := loginAs(t, r, "customer")
	if resp.Token == "" {
		t.Error("login returned empty token")
	}
	if resp.User.Role != db.RoleCustomer {
		t.Errorf("login user role = %s, want customer", resp.User.Role)
	}

	rec := doJSON(t, r, "POST", "/api/auth/login", "",
		`{"email":"demo@parkspot.dev","password":"pw","role":"admin"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("login with bad role status = %d, want 400", rec.Code)
	}
}

func TestFacilityEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, "GET", "/api/facilities", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list facilities status = %d", rec.Code)
	}
	var facilities []db.Facility
	if err := json.Unmarshal(rec.Body.Bytes(), &facilities); err != nil {
		t.Fatalf("decoding facilities: %v", err)
	}
	if len(facilities) != 2 {
		t.Errorf("facilities length = %d, want 2", len(facilities))
	}

	if rec := doJSON(t, r, "GET", "/api/facilities/fac-nowhere", "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown facility status = %d, want 404", rec.Code)
	}

	rec = doJSON(t, r, "GET", "/api/facilities/fac-orion/slots?free=true&vehicle_type=bike", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list slots status = %d", rec.Code)
	}
	var slots []db.ParkingSlot
	if err := json.Unmarshal(rec.Body.Bytes(), &slots); err != nil {
		t.Fatalf("decoding slots: %v", err)
	}
	if len(slots) != 1 || slots[0].VehicleType != db.VehicleBike || slots[0].Status != db.SlotFree {
		t.Errorf("free bike slots = %+v", slots)
	}
}

func TestBookingFlow(t *testing.T) {
	r, st := newTestRouter(t)
	resp := loginAs(t, r, "customer")

	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	body := fmt.Sprintf(`{
		"facility_id": "fac-orion",
		"slot_id": "slot-or-a1",
		"vehicle_number": "KA01AB1234",
		"vehicle_type": "car",
		"entry_time": %q,
		"exit_time": %q,
		"payment_method": "upi",
		"upi_handle": "Asha@ExampleBank"
	}`, entry.Format(time.RFC3339), entry.Add(2*time.Hour).Format(time.RFC3339))

	rec := doJSON(t, r, "POST", "/api/bookings", resp.Token, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create booking status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created CreateBookingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding booking response: %v", err)
	}
	if created.Booking.Amount != 100 {
		t.Errorf("amount = %d, want 100 for 2 hours at 50/hour", created.Booking.Amount)
	}
	if created.Booking.CustomerID != resp.User.ID {
		t.Errorf("customer id = %s, want %s", created.Booking.CustomerID, resp.User.ID)
	}

	slot, err := st.Slot("fac-orion", "slot-or-a1")
	if err != nil {
		t.Fatalf("Slot() error = %v", err)
	}
	if slot.Status != db.SlotOccupied {
		t.Errorf("slot status = %s, want occupied", slot.Status)
	}

	rec = doJSON(t, r, "GET", "/api/bookings", resp.Token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list bookings status = %d", rec.Code)
	}
	var list entities.BookingsList
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decoding bookings list: %v", err)
	}
	if list.Total != 1 || list.Bookings[0].ID != created.Booking.ID {
		t.Errorf("bookings list = %+v", list)
	}

	rec = doJSON(t, r, "GET", "/api/bookings/"+created.Booking.ID, resp.Token, "")
	if rec.Code != http.StatusOK {
		t.Errorf("get booking status = %d", rec.Code)
	}
}

func TestBookingEndpointRejections(t *testing.T) {
	r, _ := newTestRouter(t)
	resp := loginAs(t, r, "customer")

	// no token
	if rec := doJSON(t, r, "GET", "/api/bookings", "", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated list status = %d, want 401", rec.Code)
	}

	entry := time.Now().UTC().Format(time.RFC3339)

	// upi payment without a handle
	body := fmt.Sprintf(`{
		"facility_id": "fac-orion", "slot_id": "slot-or-a1",
		"vehicle_number": "KA01AB1234", "vehicle_type": "car",
		"entry_time": %q, "payment_method": "upi"
	}`, entry)
	if rec := doJSON(t, r, "POST", "/api/bookings", resp.Token, body); rec.Code != http.StatusBadRequest {
		t.Errorf("upi without handle status = %d, want 400", rec.Code)
	}

	// malformed upi handle
	body = fmt.Sprintf(`{
		"facility_id": "fac-orion", "slot_id": "slot-or-a1",
		"vehicle_number": "KA01AB1234", "vehicle_type": "car",
		"entry_time": %q, "payment_method": "upi", "upi_handle": "ali ce@bank"
	}`, entry)
	if rec := doJSON(t, r, "POST", "/api/bookings", resp.Token, body); rec.Code != http.StatusBadRequest {
		t.Errorf("bad upi handle status = %d, want 400", rec.Code)
	}

	// occupied slot
	body = fmt.Sprintf(`{
		"facility_id": "fac-orion", "slot_id": "slot-or-a2",
		"vehicle_number": "KA01AB1234", "vehicle_type": "car",
		"entry_time": %q, "payment_method": "pay-at-exit"
	}`, entry)
	if rec := doJSON(t, r, "POST", "/api/bookings", resp.Token, body); rec.Code != http.StatusConflict {
		t.Errorf("occupied slot status = %d, want 409", rec.Code)
	}

	// unknown slot
	body = fmt.Sprintf(`{
		"facility_id": "fac-orion", "slot_id": "slot-zz",
		"vehicle_number": "KA01AB1234", "vehicle_type": "car",
		"entry_time": %q, "payment_method": "pay-at-exit"
	}`, entry)
	if rec := doJSON(t, r, "POST", "/api/bookings", resp.Token, body); rec.Code != http.StatusNotFound {
		t.Errorf("unknown slot status = %d, want 404", rec.Code)
	}
}
