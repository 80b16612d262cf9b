// File: database/repository/venue/queries.go
package venueRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eraflix/models"
)

func (r *mongoVenueRepo) ListLocations(ctx context.Context, activeOnly bool) ([]models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "city", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.locations.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}
	defer cursor.Close(ctx)

	var locs []models.Location
	if err := cursor.All(ctx, &locs); err != nil {
		return nil, fmt.Errorf("error decoding locations: %w", err)
	}
	return locs, nil
}

func (r *mongoVenueRepo) ListScreens(ctx context.Context, locationID string, activeOnly bool) ([]models.Screen, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if locationID != "" {
		filter["locationId"] = locationID
	}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.screens.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch screens: %w", err)
	}
	defer cursor.Close(ctx)

	var screens []models.Screen
	if err := cursor.All(ctx, &screens); err != nil {
		return nil, fmt.Errorf("error decoding screens: %w", err)
	}
	return screens, nil
}
