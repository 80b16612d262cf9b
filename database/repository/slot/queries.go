// File: database/repository/slot/queries.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eraflix/models"
)

// GetActiveByWindow returns the active slot with the exact (screenID, start, end)
// window, or nil when no such slot exists.
func (r *mongoSlotRepo) GetActiveByWindow(ctx context.Context, screenID, start, end string) (*models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"screenId": screenID,
		"start":    start,
		"end":      end,
		"active":   true,
	}

	var slot models.TimeSlot
	err := r.coll.FindOne(ctx, filter).Decode(&slot)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slot by window: %w", err)
	}
	return &slot, nil
}

// List returns slots sorted by start time (ties by id for determinism),
// optionally filtered by screen when screenID is non-empty.
func (r *mongoSlotRepo) List(ctx context.Context, screenID string) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if screenID != "" {
		filter["screenId"] = screenID
	}

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeslots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding timeslots: %w", err)
	}
	return slots, nil
}
