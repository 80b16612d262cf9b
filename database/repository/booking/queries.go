// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eraflix/models"
)

// dayRange returns the inclusive [00:00:00.000, 23:59:59.999] window for the
// calendar day containing t, so documents written with a time-of-day component
// still match their date.
func dayRange(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}

// ListConfirmedByScreenAndDay returns confirmed bookings for the screen whose
// booking date falls within the given calendar day.
func (r *mongoBookingRepo) ListConfirmedByScreenAndDay(ctx context.Context, screenID string, day time.Time) ([]models.Booking, error) {
	return r.listByScreenAndDay(ctx, screenID, day, models.BookingStatusConfirmed)
}

// ListByScreenAndDay returns bookings of any status for the screen on the given
// calendar day (admin view).
func (r *mongoBookingRepo) ListByScreenAndDay(ctx context.Context, screenID string, day time.Time) ([]models.Booking, error) {
	return r.listByScreenAndDay(ctx, screenID, day, "")
}

func (r *mongoBookingRepo) listByScreenAndDay(ctx context.Context, screenID string, day time.Time, status string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	dayStart, dayEnd := dayRange(day)
	filter := bson.M{
		"screenId": screenID,
		"date":     bson.M{"$gte": dayStart, "$lte": dayEnd},
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "slot.start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
