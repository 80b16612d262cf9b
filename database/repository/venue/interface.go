// File: database/repository/venue/interface.go
package venueRepo

import (
	"context"

	"eraflix/database"
	"eraflix/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type VenueRepository interface {
	CreateLocation(ctx context.Context, loc models.Location) (string, error)
	UpdateLocation(ctx context.Context, loc models.Location) error
	DeleteLocation(ctx context.Context, locationID string) error
	GetLocationByID(ctx context.Context, locationID string) (*models.Location, error)
	ListLocations(ctx context.Context, activeOnly bool) ([]models.Location, error)

	CreateScreen(ctx context.Context, screen models.Screen) (string, error)
	UpdateScreen(ctx context.Context, screen models.Screen) error
	DeleteScreen(ctx context.Context, screenID string) error
	GetScreenByID(ctx context.Context, screenID string) (*models.Screen, error)
	ListScreens(ctx context.Context, locationID string, activeOnly bool) ([]models.Screen, error)

	EnsureIndexes() error
}

type mongoVenueRepo struct {
	locations *mongo.Collection
	screens   *mongo.Collection
}

// NewMongoVenueRepo constructs a new MongoDB VenueRepository.
func NewMongoVenueRepo() VenueRepository {
	db := database.DB()
	return &mongoVenueRepo{
		locations: db.Collection("locations"),
		screens:   db.Collection("screens"),
	}
}
