package catalog

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"eraflix/models"
	"eraflix/services/apperr"
)

// CreateSlot validates the window, rejects duplicates of an active slot's
// (screen, start, end), and stores the slot with active=true.
func (s *DefaultCatalogService) CreateSlot(ctx context.Context, req models.CreateSlotRequest) (*models.TimeSlot, error) {
	if err := ValidateScreenID(req.ScreenID); err != nil {
		return nil, err
	}
	if err := ValidateWindow(req.Start, req.End); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetActiveByWindow(ctx, req.ScreenID, req.Start, req.End)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate window: %w", err)
	}
	if existing != nil {
		return nil, apperr.NewConflictError(
			fmt.Sprintf("an active slot %s-%s already exists for screen %s", req.Start, req.End, req.ScreenID))
	}

	slot := models.TimeSlot{
		ScreenID: req.ScreenID,
		Name:     req.Name,
		Start:    req.Start,
		End:      req.End,
		Active:   true,
	}
	id, err := s.Repo.Create(ctx, slot)
	if err != nil {
		// The unique_active_window index closes the check-then-insert race.
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.NewConflictError(
				fmt.Sprintf("an active slot %s-%s already exists for screen %s", req.Start, req.End, req.ScreenID))
		}
		return nil, fmt.Errorf("failed to create slot: %w", err)
	}
	slot.ID = id
	return &slot, nil
}

// UpdateSlot applies the non-nil fields, re-validates the resulting window,
// and rejects collisions with a different slot's active window.
func (s *DefaultCatalogService) UpdateSlot(ctx context.Context, slotID string, req models.UpdateSlotRequest) (*models.TimeSlot, error) {
	slot, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFoundError("slot", slotID)
		}
		return nil, fmt.Errorf("failed to fetch slot: %w", err)
	}

	if req.Name != nil {
		slot.Name = *req.Name
	}
	if req.Start != nil {
		slot.Start = *req.Start
	}
	if req.End != nil {
		slot.End = *req.End
	}
	if req.Active != nil {
		slot.Active = *req.Active
	}

	if err := ValidateWindow(slot.Start, slot.End); err != nil {
		return nil, err
	}

	if slot.Active {
		existing, err := s.Repo.GetActiveByWindow(ctx, slot.ScreenID, slot.Start, slot.End)
		if err != nil {
			return nil, fmt.Errorf("failed to check for duplicate window: %w", err)
		}
		if existing != nil && existing.ID != slot.ID {
			return nil, apperr.NewConflictError(
				fmt.Sprintf("an active slot %s-%s already exists for screen %s", slot.Start, slot.End, slot.ScreenID))
		}
	}

	if err := s.Repo.Update(ctx, *slot); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFoundError("slot", slotID)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.NewConflictError(
				fmt.Sprintf("an active slot %s-%s already exists for screen %s", slot.Start, slot.End, slot.ScreenID))
		}
		return nil, fmt.Errorf("failed to update slot: %w", err)
	}
	return slot, nil
}

// DeleteSlot removes the slot. Existing bookings keep their own window
// snapshot, so deletion never cascades.
func (s *DefaultCatalogService) DeleteSlot(ctx context.Context, slotID string) error {
	if err := s.Repo.DeleteByID(ctx, slotID); err != nil {
		if err == mongo.ErrNoDocuments {
			return apperr.NewNotFoundError("slot", slotID)
		}
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	return nil
}

// ListSlots returns slots sorted by start time, optionally filtered by screen.
func (s *DefaultCatalogService) ListSlots(ctx context.Context, screenID string) ([]models.TimeSlot, error) {
	slots, err := s.Repo.List(ctx, screenID)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	return slots, nil
}
