package service

import (
	"fmt"
	"log"
	"time"

	"parkspot/internal/store"
)

type JobService struct {
	Store *store.Store
}

func NewJobService(st *store.Store) *JobService {
	return &JobService{Store: st}
}

// CompleteFinishedBookings finds active bookings whose exit time has
// passed, marks them completed and frees their slots.
func (s *JobService) CompleteFinishedBookings() error {
	log.Println("Cron Job: Checking for bookings to mark as 'completed'...")

	due := s.Store.ActiveBookingsPastExit(time.Now().UTC())
	if len(due) == 0 {
		log.Println("Cron Job: No active bookings found past their exit time.")
		return nil
	}

	log.Printf("Cron Job: Found %d bookings to mark as 'completed'.", len(due))

	for _, b := range due {
		if err := s.Store.CompleteBooking(b.ID); err != nil {
			return fmt.Errorf("cron job: failed to complete booking %s: %w", b.Code, err)
		}
	}

	log.Printf("Cron Job: Successfully completed %d bookings and freed their slots.", len(due))
	return nil
}
