// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"

	"eraflix/database"
	"eraflix/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SlotRepository interface {
	Create(ctx context.Context, slot models.TimeSlot) (string, error)
	Update(ctx context.Context, slot models.TimeSlot) error
	DeleteByID(ctx context.Context, slotID string) error
	GetByID(ctx context.Context, slotID string) (*models.TimeSlot, error)
	GetActiveByWindow(ctx context.Context, screenID, start, end string) (*models.TimeSlot, error)
	List(ctx context.Context, screenID string) ([]models.TimeSlot, error)
	EnsureIndexes() error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	return &mongoSlotRepo{
		coll: database.DB().Collection("timeslots"),
	}
}
