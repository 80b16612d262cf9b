// File: database/repository/event/interface.go
package eventRepo

import (
	"context"
	"time"

	"eraflix/database"
	"eraflix/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type EventRepository interface {
	Create(ctx context.Context, event models.Event) (string, error)
	Update(ctx context.Context, event models.Event) error
	DeleteByID(ctx context.Context, eventID string) error
	GetByID(ctx context.Context, eventID string) (*models.Event, error)
	ListActiveUpcoming(ctx context.Context, from time.Time) ([]models.Event, error)
	ListAll(ctx context.Context) ([]models.Event, error)
	EnsureIndexes() error
}

type mongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new MongoDB EventRepository.
func NewMongoEventRepo() EventRepository {
	return &mongoEventRepo{
		coll: database.DB().Collection("events"),
	}
}
