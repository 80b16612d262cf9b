// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"eraflix/database"
	"eraflix/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListConfirmedByScreenAndDay(ctx context.Context, screenID string, day time.Time) ([]models.Booking, error)
	ListByScreenAndDay(ctx context.Context, screenID string, day time.Time) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string) error
	SetPaymentID(ctx context.Context, bookingID, paymentID string) error
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
