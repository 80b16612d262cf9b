// Package booking implements the booking ledger and the booking workflow:
// creation against the availability engine, Stripe payment, and the
// confirmed/cancelled status transitions.
package booking

import (
	"context"
	"time"

	bookingRepo "eraflix/database/repository/booking"
	slotRepo "eraflix/database/repository/slot"
	venueRepo "eraflix/database/repository/venue"
	"eraflix/models"
	"eraflix/services/availability"
)

// CreateBookingResult carries the stored booking plus the Stripe client
// secret the frontend needs to complete payment.
type CreateBookingResult struct {
	Booking      models.Booking `json:"booking"`
	ClientSecret string         `json:"clientSecret,omitempty"`
}

type BookingService interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*CreateBookingResult, error)
	ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListConfirmedBookings(ctx context.Context, screenID string, day time.Time) ([]models.Booking, error)
	ListBookingsForDay(ctx context.Context, screenID string, day time.Time) ([]models.Booking, error)
}

// PaymentHandler abstracts the payment collaborator so the workflow can be
// tested without Stripe.
type PaymentHandler interface {
	CreateIntent(ctx context.Context, booking models.Booking) (clientSecret, paymentID string, err error)
	VerifyPaid(ctx context.Context, paymentID string) (bool, error)
}

// TaskScheduler abstracts the reminder queue.
type TaskScheduler interface {
	ScheduleBookingReminder(payload models.BookingReminderPayload, fireAt time.Time) error
}

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Slots    slotRepo.SlotRepository
	Venues   venueRepo.VenueRepository
	Resolver availability.Resolver
	Payments PaymentHandler
	Tasks    TaskScheduler
}
