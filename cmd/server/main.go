package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"parkspot/internal/api"
	"parkspot/internal/auth"
	"parkspot/internal/service"
	"parkspot/internal/store"
)

func main() {
	godotenv.Load()
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set")
	}

	authDelay := 800 * time.Millisecond
	if raw := os.Getenv("AUTH_DELAY_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Invalid AUTH_DELAY_MS: %v", err)
		}
		authDelay = time.Duration(ms) * time.Millisecond
	}

	st := store.NewStore(authDelay)
	notify := service.NewNotifyService()
	bookingSvc := service.NewBookingService(st, notify)
	authSvc := service.NewAuthService(st)
	jobSvc := service.NewJobService(st)

	authHandler := api.NewAuthHandler(authSvc)
	facilityHandler := api.NewFacilityHandler(bookingSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("POST")
	r.HandleFunc("/api/facilities", facilityHandler.ListFacilities).Methods("GET")
	r.HandleFunc("/api/facilities/{id}", facilityHandler.GetFacility).Methods("GET")
	r.HandleFunc("/api/facilities/{id}/slots", facilityHandler.ListSlots).Methods("GET")

	// Booking endpoints (protected)
	bookings := r.PathPrefix("/api/bookings").Subrouter()
	bookings.Use(auth.AuthMiddleware)
	bookings.HandleFunc("", bookingHandler.CreateBooking).Methods("POST")
	bookings.HandleFunc("", bookingHandler.ListBookings).Methods("GET")
	bookings.HandleFunc("/{id}", bookingHandler.GetBooking).Methods("GET")

	c := cron.New()
	if _, err := c.AddFunc("@every 1m", func() {
		if err := jobSvc.CompleteFinishedBookings(); err != nil {
			log.Printf("Cron job error: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule booking completion job: %v", err)
	}
	c.Start()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	root := api.NewBoundary(handlers.LoggingHandler(os.Stdout, cors(r)), "/api/facilities")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, root))
}
