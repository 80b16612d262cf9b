// File: database/repository/venue/crud.go
package venueRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"eraflix/models"
)

func (r *mongoVenueRepo) CreateLocation(ctx context.Context, loc models.Location) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if loc.ID == "" {
		loc.ID = uuid.New().String()
	}
	now := time.Now()
	loc.CreatedAt = now
	loc.UpdatedAt = now

	if _, err := r.locations.InsertOne(ctx, loc); err != nil {
		return "", err
	}
	return loc.ID, nil
}

func (r *mongoVenueRepo) UpdateLocation(ctx context.Context, loc models.Location) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        loc.Name,
		"address":     loc.Address,
		"city":        loc.City,
		"description": loc.Description,
		"imageUrl":    loc.ImageURL,
		"active":      loc.Active,
		"updatedAt":   time.Now(),
	}}
	res, err := r.locations.UpdateOne(ctx, bson.M{"id": loc.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoVenueRepo) DeleteLocation(ctx context.Context, locationID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.locations.DeleteOne(ctx, bson.M{"id": locationID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoVenueRepo) GetLocationByID(ctx context.Context, locationID string) (*models.Location, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var loc models.Location
	if err := r.locations.FindOne(ctx, bson.M{"id": locationID}).Decode(&loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *mongoVenueRepo) CreateScreen(ctx context.Context, screen models.Screen) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if screen.ID == "" {
		screen.ID = uuid.New().String()
	}
	now := time.Now()
	screen.CreatedAt = now
	screen.UpdatedAt = now

	if _, err := r.screens.InsertOne(ctx, screen); err != nil {
		return "", err
	}
	return screen.ID, nil
}

func (r *mongoVenueRepo) UpdateScreen(ctx context.Context, screen models.Screen) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":      screen.Name,
		"capacity":  screen.Capacity,
		"amenities": screen.Amenities,
		"imageUrl":  screen.ImageURL,
		"basePrice": screen.BasePrice,
		"active":    screen.Active,
		"updatedAt": time.Now(),
	}}
	res, err := r.screens.UpdateOne(ctx, bson.M{"id": screen.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoVenueRepo) DeleteScreen(ctx context.Context, screenID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.screens.DeleteOne(ctx, bson.M{"id": screenID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoVenueRepo) GetScreenByID(ctx context.Context, screenID string) (*models.Screen, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var screen models.Screen
	if err := r.screens.FindOne(ctx, bson.M{"id": screenID}).Decode(&screen); err != nil {
		return nil, err
	}
	return &screen, nil
}
