package service

import (
	"errors"
	"testing"
	"time"

	"parkspot/internal/db"
	"parkspot/internal/entities"
	apperrors "parkspot/internal/errors"
	"parkspot/internal/store"
)

func TestCreateBookingPricesStay(t *testing.T) {
	st := store.NewStore(0)
	svc := NewBookingService(st, nil)

	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	exit := entry.Add(3 * time.Hour)

	b, err := svc.CreateBooking(&entities.BookingRequest{
		CustomerID:    store.DemoCustomerID,
		FacilityID:    "fac-orion",
		SlotID:        "slot-or-a1", // car slot, 50/hour
		VehicleNumber: "KA01AB1234",
		VehicleType:   db.VehicleCar,
		EntryTime:     entry,
		ExitTime:      &exit,
		PaymentMethod: db.PaymentUPI,
		UPIHandle:     "asha@examplebank",
	})
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if b.Amount != 150 {
		t.Errorf("amount = %d, want 150", b.Amount)
	}

	sl, err := st.Slot("fac-orion", "slot-or-a1")
	if err != nil {
		t.Fatalf("Slot() error = %v", err)
	}
	if sl.Status != db.SlotOccupied {
		t.Errorf("slot status = %s, want occupied", sl.Status)
	}

	list := svc.BookingsForUser(store.DemoCustomerID)
	if list.Total != 1 || list.Bookings[0].ID != b.ID {
		t.Errorf("BookingsForUser() = %+v, want the created booking", list)
	}
}

func TestCreateBookingPayAtExitHasNoAmount(t *testing.T) {
	st := store.NewStore(0)
	svc := NewBookingService(st, nil)

	b, err := svc.CreateBooking(&entities.BookingRequest{
		CustomerID:    store.DemoCustomerID,
		FacilityID:    "fac-phoenix",
		SlotID:        "slot-ph-p1",
		VehicleNumber: "KA05CD5678",
		VehicleType:   db.VehicleCar,
		EntryTime:     time.Now().UTC(),
		PaymentMethod: db.PaymentPayAtExit,
	})
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if b.Amount != 0 {
		t.Errorf("amount = %d, want 0 for pay-at-exit", b.Amount)
	}
	if b.ExitTime != nil {
		t.Errorf("exit time = %v, want nil", b.ExitTime)
	}
}

func TestCreateBookingRejections(t *testing.T) {
	entry := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		req        entities.BookingRequest
		wantStore  error
		wantStatus int
	}{
		{
			name: "occupied slot",
			req: entities.BookingRequest{
				FacilityID: "fac-orion", SlotID: "slot-or-a2",
				VehicleType: db.VehicleCar, EntryTime: entry,
			},
			wantStatus: 409,
		},
		{
			name: "vehicle type mismatch",
			req: entities.BookingRequest{
				FacilityID: "fac-orion", SlotID: "slot-or-b1",
				VehicleType: db.VehicleCar, EntryTime: entry,
			},
			wantStatus: 409,
		},
		{
			name: "unknown slot",
			req: entities.BookingRequest{
				FacilityID: "fac-orion", SlotID: "slot-zz",
				VehicleType: db.VehicleCar, EntryTime: entry,
			},
			wantStore: store.ErrSlotNotFound,
		},
		{
			name: "unknown facility",
			req: entities.BookingRequest{
				FacilityID: "fac-nowhere", SlotID: "slot-or-a1",
				VehicleType: db.VehicleCar, EntryTime: entry,
			},
			wantStore: store.ErrFacilityNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewStore(0)
			svc := NewBookingService(st, nil)

			tt.req.CustomerID = store.DemoCustomerID
			tt.req.VehicleNumber = "KA01AB1234"
			_, err := svc.CreateBooking(&tt.req)
			if err == nil {
				t.Fatal("CreateBooking() succeeded, want error")
			}
			if tt.wantStore != nil && !errors.Is(err, tt.wantStore) {
				t.Errorf("error = %v, want %v", err, tt.wantStore)
			}
			if tt.wantStatus != 0 {
				var httpErr *apperrors.HTTPError
				if !errors.As(err, &httpErr) || httpErr.Code != tt.wantStatus {
					t.Errorf("error = %v, want HTTPError with code %d", err, tt.wantStatus)
				}
			}
			if got := len(st.Bookings()); got != 0 {
				t.Errorf("booking list length = %d after rejected create", got)
			}
		})
	}
}

func TestFacilityQueries(t *testing.T) {
	st := store.NewStore(0)
	svc := NewBookingService(st, nil)

	if got := len(svc.ListFacilities()); got != 2 {
		t.Errorf("ListFacilities() length = %d, want 2", got)
	}
	if _, err := svc.GetFacilityByID("fac-nowhere"); !errors.Is(err, store.ErrFacilityNotFound) {
		t.Errorf("GetFacilityByID(unknown) error = %v, want ErrFacilityNotFound", err)
	}
	slots, err := svc.ListSlots("fac-orion")
	if err != nil {
		t.Fatalf("ListSlots() error = %v", err)
	}
	if len(slots) != 6 {
		t.Errorf("ListSlots() length = %d, want 6", len(slots))
	}
}
