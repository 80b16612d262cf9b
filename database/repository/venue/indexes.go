// File: database/repository/venue/indexes.go
package venueRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the locations and screens collections.
func (r *mongoVenueRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	locationIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "city", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index().SetName("city_active_idx"),
		},
	}
	if _, err := r.locations.Indexes().CreateMany(ctx, locationIndexes); err != nil {
		return fmt.Errorf("failed to create location indexes: %w", err)
	}

	screenIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "locationId", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index().SetName("location_active_idx"),
		},
	}
	if _, err := r.screens.Indexes().CreateMany(ctx, screenIndexes); err != nil {
		return fmt.Errorf("failed to create screen indexes: %w", err)
	}
	return nil
}
