package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"parkspot/internal/db"
)

var (
	ErrFacilityNotFound = errors.New("facility not found")
	ErrSlotNotFound     = errors.New("slot not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUnknownRole      = errors.New("no user for role")
	ErrAuthSuperseded   = errors.New("auth attempt superseded")
)

// Store is the single source of truth for the session: current user,
// facility catalog, per-facility slot lists and the booking list.
// Every mutation runs under one lock, so a booking append and the
// matching slot flip are never observable half-applied.
type Store struct {
	mu sync.Mutex

	authDelay   time.Duration
	authSeq     uint64
	authApplied uint64

	user       *db.User
	users      []db.User
	facilities []db.Facility
	slots      map[string][]db.ParkingSlot
	bookings   []db.Booking
}

// NewStore builds a store seeded with the demo catalog. authDelay is the
// simulated network latency applied to Login and Signup; tests pass 0.
func NewStore(authDelay time.Duration) *Store {
	s := &Store{
		authDelay: authDelay,
		slots:     make(map[string][]db.ParkingSlot),
	}
	s.seed()
	return s
}

// beginAuth hands out a monotonic sequence number per auth attempt.
// A completion whose number is no longer the newest is discarded, so a
// slow Login can never overwrite the result of a later one.
func (s *Store) beginAuth() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authSeq++
	return s.authSeq
}

func (s *Store) commitAuthLocked(seq uint64) bool {
	if seq <= s.authApplied {
		return false
	}
	s.authApplied = seq
	return true
}

func (s *Store) simulateLatency(ctx context.Context) error {
	if s.authDelay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.authDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Login suspends for the simulated delay, then sets the demo user for the
// requested role as the session user. No credential check is performed.
func (s *Store) Login(ctx context.Context, email, password string, role db.Role) (*db.User, error) {
	seq := s.beginAuth()
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var found *db.User
	for i := range s.users {
		if s.users[i].Role == role {
			found = &s.users[i]
			break
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
	if !s.commitAuthLocked(seq) {
		return nil, ErrAuthSuperseded
	}
	u := *found
	s.user = &u
	out := u
	return &out, nil
}

// Signup suspends for the simulated delay, registers a new user and sets
// it as the session user. The password is hashed before it is stored; it
// is never verified afterwards.
func (s *Store) Signup(ctx context.Context, name, email, password string, role db.Role) (*db.User, error) {
	seq := s.beginAuth()
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.commitAuthLocked(seq) {
		return nil, ErrAuthSuperseded
	}

	u := db.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        "",
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	s.users = append(s.users, u)
	cur := u
	s.user = &cur
	out := u
	return &out, nil
}

// Logout clears the session user and invalidates any auth attempt still
// in flight.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authApplied = s.authSeq
}

func (s *Store) CurrentUser() *db.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated is derived from the user field, never stored.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

func (s *Store) UserByID(id string) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
}

func (s *Store) Facilities() []db.Facility {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]db.Facility, len(s.facilities))
	copy(out, s.facilities)
	return out
}

func (s *Store) FacilityByID(id string) (*db.Facility, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.facilities {
		if s.facilities[i].ID == id {
			f := s.facilities[i]
			return &f, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrFacilityNotFound, id)
}

func (s *Store) SlotsByFacility(facilityID string) ([]db.ParkingSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slots, ok := s.slots[facilityID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFacilityNotFound, facilityID)
	}
	out := make([]db.ParkingSlot, len(slots))
	copy(out, slots)
	return out, nil
}

// AvailableSlots returns the free slots of a facility, optionally
// narrowed to one vehicle type.
func (s *Store) AvailableSlots(facilityID string, vt db.VehicleType) ([]db.ParkingSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slots, ok := s.slots[facilityID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFacilityNotFound, facilityID)
	}
	var out []db.ParkingSlot
	for _, sl := range slots {
		if sl.Status != db.SlotFree {
			continue
		}
		if vt != "" && sl.VehicleType != vt {
			continue
		}
		out = append(out, sl)
	}
	return out, nil
}

// UpdateSlotStatus replaces the status of one slot, leaving every other
// slot untouched. Unknown facility or slot ids fail with an explicit
// error rather than silently.
func (s *Store) UpdateSlotStatus(facilityID, slotID string, status db.SlotStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateSlotStatusLocked(facilityID, slotID, status)
}

func (s *Store) updateSlotStatusLocked(facilityID, slotID string, status db.SlotStatus) error {
	slots, ok := s.slots[facilityID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFacilityNotFound, facilityID)
	}
	for i := range slots {
		if slots[i].ID == slotID {
			slots[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("%w: %s in facility %s", ErrSlotNotFound, slotID, facilityID)
}

func (s *Store) slotLocked(facilityID, slotID string) (*db.ParkingSlot, error) {
	slots, ok := s.slots[facilityID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFacilityNotFound, facilityID)
	}
	for i := range slots {
		if slots[i].ID == slotID {
			return &slots[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s in facility %s", ErrSlotNotFound, slotID, facilityID)
}

func (s *Store) Slot(facilityID, slotID string) (*db.ParkingSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, err := s.slotLocked(facilityID, slotID)
	if err != nil {
		return nil, err
	}
	out := *sl
	return &out, nil
}

// CreateBooking appends the booking and flips the referenced slot to
// occupied under the same lock acquisition. The slot is resolved before
// anything is written, so a bad reference leaves the store unchanged.
func (s *Store) CreateBooking(b db.Booking) (*db.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.slotLocked(b.FacilityID, b.SlotID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.Code = strings.ToUpper(b.ID[:8])
	b.QRCode = "PKS-" + b.Code
	if b.Status == "" {
		b.Status = db.BookingActive
	}
	b.CreatedAt = now
	b.UpdatedAt = now

	s.bookings = append(s.bookings, b)
	if err := s.updateSlotStatusLocked(b.FacilityID, b.SlotID, db.SlotOccupied); err != nil {
		return nil, err
	}
	out := b
	return &out, nil
}

// BookingsByUser returns the user's bookings in insertion order.
func (s *Store) BookingsByUser(userID string) []db.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []db.Booking
	for _, b := range s.bookings {
		if b.CustomerID == userID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) BookingByID(id string) (*db.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
}

func (s *Store) Bookings() []db.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]db.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// ActiveBookingsPastExit returns active bookings whose exit time has
// passed. Bookings without an exit time are settled at the gate and are
// never swept.
func (s *Store) ActiveBookingsPastExit(now time.Time) []db.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []db.Booking
	for _, b := range s.bookings {
		if b.Status == db.BookingActive && b.ExitTime != nil && b.ExitTime.Before(now) {
			out = append(out, b)
		}
	}
	return out
}

// CompleteBooking transitions a booking to completed and frees its slot,
// both under the same lock acquisition.
func (s *Store) CompleteBooking(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID != id {
			continue
		}
		if err := s.updateSlotStatusLocked(s.bookings[i].FacilityID, s.bookings[i].SlotID, db.SlotFree); err != nil {
			return err
		}
		s.bookings[i].Status = db.BookingCompleted
		s.bookings[i].UpdatedAt = time.Now().UTC()
		return nil
	}
	return fmt.Errorf("%w: %s", ErrBookingNotFound, id)
}
