// Package venue implements the location and screen directory.
package venue

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	venueRepo "eraflix/database/repository/venue"
	"eraflix/models"
	"eraflix/services/apperr"
)

type VenueService interface {
	CreateLocation(ctx context.Context, req models.CreateLocationRequest) (*models.Location, error)
	UpdateLocation(ctx context.Context, loc models.Location) (*models.Location, error)
	DeleteLocation(ctx context.Context, locationID string) error
	ListLocations(ctx context.Context, activeOnly bool) ([]models.Location, error)

	CreateScreen(ctx context.Context, req models.CreateScreenRequest) (*models.Screen, error)
	UpdateScreen(ctx context.Context, screen models.Screen) (*models.Screen, error)
	DeleteScreen(ctx context.Context, screenID string) error
	GetScreen(ctx context.Context, screenID string) (*models.Screen, error)

	// Browse is the public directory view: active locations with their active screens.
	Browse(ctx context.Context) ([]models.LocationWithScreens, error)
}

// DefaultVenueService is the production VenueService.
type DefaultVenueService struct {
	Repo venueRepo.VenueRepository
}

func (s *DefaultVenueService) CreateLocation(ctx context.Context, req models.CreateLocationRequest) (*models.Location, error) {
	loc := models.Location{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Active:      true,
	}
	id, err := s.Repo.CreateLocation(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	loc.ID = id
	return &loc, nil
}

func (s *DefaultVenueService) UpdateLocation(ctx context.Context, loc models.Location) (*models.Location, error) {
	if err := s.Repo.UpdateLocation(ctx, loc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFoundError("location", loc.ID)
		}
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return &loc, nil
}

func (s *DefaultVenueService) DeleteLocation(ctx context.Context, locationID string) error {
	if err := s.Repo.DeleteLocation(ctx, locationID); err != nil {
		if err == mongo.ErrNoDocuments {
			return apperr.NewNotFoundError("location", locationID)
		}
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

func (s *DefaultVenueService) ListLocations(ctx context.Context, activeOnly bool) ([]models.Location, error) {
	locs, err := s.Repo.ListLocations(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locs, nil
}

func (s *DefaultVenueService) CreateScreen(ctx context.Context, req models.CreateScreenRequest) (*models.Screen, error) {
	if _, err := s.Repo.GetLocationByID(ctx, req.LocationID); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFoundError("location", req.LocationID)
		}
		return nil, fmt.Errorf("failed to fetch location: %w", err)
	}

	screen := models.Screen{
		LocationID: req.LocationID,
		Name:       req.Name,
		Capacity:   req.Capacity,
		Amenities:  req.Amenities,
		ImageURL:   req.ImageURL,
		BasePrice:  req.BasePrice,
		Active:     true,
	}
	id, err := s.Repo.CreateScreen(ctx, screen)
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	screen.ID = id
	return &screen, nil
}

func (s *DefaultVenueService) UpdateScreen(ctx context.Context, screen models.Screen) (*models.Screen, error) {
	if err := s.Repo.UpdateScreen(ctx, screen); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFoundError("screen", screen.ID)
		}
		return nil, fmt.Errorf("failed to update screen: %w", err)
	}
	return &screen, nil
}

func (s *DefaultVenueService) DeleteScreen(ctx context.Context, screenID string) error {
	if err := s.Repo.DeleteScreen(ctx, screenID); err != nil {
		if err == mongo.ErrNoDocuments {
			return apperr.NewNotFoundError("screen", screenID)
		}
		return fmt.Errorf("failed to delete screen: %w", err)
	}
	return nil
}

func (s *DefaultVenueService) GetScreen(ctx context.Context, screenID string) (*models.Screen, error) {
	screen, err := s.Repo.GetScreenByID(ctx, screenID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFoundError("screen", screenID)
		}
		return nil, fmt.Errorf("failed to fetch screen: %w", err)
	}
	return screen, nil
}

func (s *DefaultVenueService) Browse(ctx context.Context) ([]models.LocationWithScreens, error) {
	locs, err := s.Repo.ListLocations(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	result := make([]models.LocationWithScreens, 0, len(locs))
	for _, loc := range locs {
		screens, err := s.Repo.ListScreens(ctx, loc.ID, true)
		if err != nil {
			return nil, fmt.Errorf("failed to list screens for location %s: %w", loc.ID, err)
		}
		result = append(result, models.LocationWithScreens{Location: loc, Screens: screens})
	}
	return result, nil
}
