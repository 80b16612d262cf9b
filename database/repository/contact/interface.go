// File: database/repository/contact/interface.go
package contactRepo

import (
	"context"

	"eraflix/database"
	"eraflix/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ContactRepository interface {
	Create(ctx context.Context, req models.ContactRequest) (string, error)
	GetByID(ctx context.Context, contactID string) (*models.ContactRequest, error)
	List(ctx context.Context, status string) ([]models.ContactRequest, error)
	UpdateStatus(ctx context.Context, contactID, status string) error
	EnsureIndexes() error
}

type mongoContactRepo struct {
	coll *mongo.Collection
}

// NewMongoContactRepo constructs a new MongoDB ContactRepository.
func NewMongoContactRepo() ContactRepository {
	return &mongoContactRepo{
		coll: database.DB().Collection("contact_requests"),
	}
}
