// Package contact implements public enquiry intake and the admin inbox.
package contact

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"eraflix/config"
	contactRepo "eraflix/database/repository/contact"
	"eraflix/models"
	"eraflix/services/apperr"
	"eraflix/services/catalog"
	"eraflix/utils"
)

type ContactService interface {
	Submit(ctx context.Context, req models.CreateContactRequest) (*models.ContactRequest, error)
	List(ctx context.Context, status string) ([]models.ContactRequest, error)
	MarkHandled(ctx context.Context, contactID string) (*models.ContactRequest, error)
}

// Notifier abstracts the admin-notification queue.
type Notifier interface {
	EnqueueContactNotification(payload models.ContactNotifyPayload) error
}

// DefaultContactService is the production ContactService.
type DefaultContactService struct {
	Repo     contactRepo.ContactRepository
	Notifier Notifier
}

// Submit stores a new enquiry and enqueues an admin notification. A queue
// failure is logged but the submission still succeeds.
func (s *DefaultContactService) Submit(ctx context.Context, req models.CreateContactRequest) (*models.ContactRequest, error) {
	if req.PreferredDate != "" {
		if _, err := catalog.ValidateDate(req.PreferredDate); err != nil {
			return nil, err
		}
	}

	record := models.ContactRequest{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Message:       req.Message,
		ScreenID:      req.ScreenID,
		PreferredDate: req.PreferredDate,
		Status:        models.ContactStatusNew,
	}
	id, err := s.Repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to store contact request: %w", err)
	}
	record.ID = id

	if s.Notifier != nil {
		payload := models.ContactNotifyPayload{
			ContactID: record.ID,
			Name:      record.Name,
			Email:     record.Email,
			Message:   record.Message,
			NotifyTo:  config.AppConfig.AdminNotifyEmail,
		}
		if err := s.Notifier.EnqueueContactNotification(payload); err != nil {
			utils.GetLogger().Error("failed to enqueue contact notification",
				zap.String("contactID", record.ID), zap.Error(err))
		}
	}
	return &record, nil
}

func (s *DefaultContactService) List(ctx context.Context, status string) ([]models.ContactRequest, error) {
	reqs, err := s.Repo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact requests: %w", err)
	}
	return reqs, nil
}

func (s *DefaultContactService) MarkHandled(ctx context.Context, contactID string) (*models.ContactRequest, error) {
	if err := s.Repo.UpdateStatus(ctx, contactID, models.ContactStatusHandled); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFoundError("contact request", contactID)
		}
		return nil, fmt.Errorf("failed to update contact request: %w", err)
	}
	record, err := s.Repo.GetByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact request: %w", err)
	}
	return record, nil
}
