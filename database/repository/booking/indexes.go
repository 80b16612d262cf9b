// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eraflix/models"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on booking ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary query pattern: bookings for a screen within a date range.
		{
			Keys:    bson.D{{Key: "screenId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("screen_date_idx"),
		},
		// Double-booking guard: at most one confirmed booking per
		// (screen, date, window). Concurrent confirms race here, not in
		// the read-side availability check.
		{
			Keys: bson.D{
				{Key: "screenId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "slot.start", Value: 1},
				{Key: "slot.end", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": models.BookingStatusConfirmed}).
				SetName("unique_confirmed_window"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
