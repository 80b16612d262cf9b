// Package catalog implements the slot catalog: the set of named time
// windows an administrator offers per screen.
package catalog

import (
	"context"

	slotRepo "eraflix/database/repository/slot"
	"eraflix/models"
)

// CatalogService manages the per-screen slot catalog. Write operations are
// assumed to be gated by an elevated caller.
type CatalogService interface {
	CreateSlot(ctx context.Context, req models.CreateSlotRequest) (*models.TimeSlot, error)
	UpdateSlot(ctx context.Context, slotID string, req models.UpdateSlotRequest) (*models.TimeSlot, error)
	DeleteSlot(ctx context.Context, slotID string) error
	ListSlots(ctx context.Context, screenID string) ([]models.TimeSlot, error)
}

// DefaultCatalogService is the production CatalogService.
type DefaultCatalogService struct {
	Repo slotRepo.SlotRepository
}
