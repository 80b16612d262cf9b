// File: database/repository/contact/crud.go
package contactRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"eraflix/models"
)

func (r *mongoContactRepo) Create(ctx context.Context, req models.ContactRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	req.CreatedAt = time.Now()
	if req.Status == "" {
		req.Status = models.ContactStatusNew
	}

	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return "", err
	}
	return req.ID, nil
}

func (r *mongoContactRepo) GetByID(ctx context.Context, contactID string) (*models.ContactRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var req models.ContactRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": contactID}).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *mongoContactRepo) List(ctx context.Context, status string) ([]models.ContactRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact requests: %w", err)
	}
	defer cursor.Close(ctx)

	var reqs []models.ContactRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, fmt.Errorf("error decoding contact requests: %w", err)
	}
	return reqs, nil
}

func (r *mongoContactRepo) UpdateStatus(ctx context.Context, contactID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": contactID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the contact_requests collection.
func (r *mongoContactRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("status_created_idx"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create contact indexes: %w", err)
	}
	return nil
}
