package services

import (
	"context"
	"errors"
	"strings"

	"kickconnect.net/configs/configslog"
	"kickconnect.net/models"
	"kickconnect.net/repositories"

	"go.uber.org/zap"
)

type LocationServiceError string

func (e LocationServiceError) Error() string { return string(e) }

const (
	ErrLocationNotFound       LocationServiceError = "location not found"
	ErrLocationNameRequired   LocationServiceError = "location name is required"
	ErrLocationCreationFailed LocationServiceError = "location could not be created"
	ErrLocationUpdateFailed   LocationServiceError = "location could not be updated"
)

// LocationInput is the payload for creating or updating a location.
type LocationInput struct {
	LocationName    string
	LocationAddress string
	LocationCity    string
	LocationState   string
	LocationZip     string
	LocationPhone   string
	LocationEmail   string
	IsActive        bool
}

// ILocationService manages the physical sites of an account.
type ILocationService interface {
	CreateLocation(ctx context.Context, accountID uint, input LocationInput) (*models.Location, error)
	GetLocation(ctx context.Context, locationID uint) (*models.Location, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
	ListActiveLocations(ctx context.Context) ([]models.Location, error)
	ListInactiveLocations(ctx context.Context) ([]models.Location, error)
	ListAccountLocations(ctx context.Context, accountID uint) ([]models.Location, error)
	UpdateLocation(ctx context.Context, locationID uint, input LocationInput) error
}

type LocationService struct {
	repo repositories.ILocationRepository
}

func NewLocationService() ILocationService {
	return &LocationService{repo: repositories.NewLocationRepository()}
}

func (s *LocationService) CreateLocation(ctx context.Context, accountID uint, input LocationInput) (*models.Location, error) {
	if strings.TrimSpace(input.LocationName) == "" {
		return nil, ErrLocationNameRequired
	}
	location := &models.Location{
		AccountID:       accountID,
		LocationName:    strings.TrimSpace(input.LocationName),
		LocationAddress: input.LocationAddress,
		LocationCity:    input.LocationCity,
		LocationState:   input.LocationState,
		LocationZip:     input.LocationZip,
		LocationPhone:   input.LocationPhone,
		LocationEmail:   input.LocationEmail,
		IsActive:        true,
	}
	if err := s.repo.Create(ctx, location); err != nil {
		configslog.Log.Error("LocationService.CreateLocation failed", zap.Uint("accountId", accountID), zap.Error(err))
		return nil, ErrLocationCreationFailed
	}
	return location, nil
}

func (s *LocationService) GetLocation(ctx context.Context, locationID uint) (*models.Location, error) {
	location, err := s.repo.FindByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return location, nil
}

func (s *LocationService) ListLocations(ctx context.Context) ([]models.Location, error) {
	return s.repo.ListAll(ctx)
}

func (s *LocationService) ListActiveLocations(ctx context.Context) ([]models.Location, error) {
	return s.repo.ListActive(ctx)
}

func (s *LocationService) ListInactiveLocations(ctx context.Context) ([]models.Location, error) {
	return s.repo.ListInactive(ctx)
}

func (s *LocationService) ListAccountLocations(ctx context.Context, accountID uint) ([]models.Location, error) {
	return s.repo.ListActiveByAccount(ctx, accountID)
}

func (s *LocationService) UpdateLocation(ctx context.Context, locationID uint, input LocationInput) error {
	if strings.TrimSpace(input.LocationName) == "" {
		return ErrLocationNameRequired
	}
	location := &models.Location{
		LocationName:    strings.TrimSpace(input.LocationName),
		LocationAddress: input.LocationAddress,
		LocationCity:    input.LocationCity,
		LocationState:   input.LocationState,
		LocationZip:     input.LocationZip,
		LocationPhone:   input.LocationPhone,
		LocationEmail:   input.LocationEmail,
		IsActive:        input.IsActive,
	}
	if err := s.repo.Update(ctx, locationID, location); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrLocationNotFound
		}
		configslog.Log.Error("LocationService.UpdateLocation failed", zap.Uint("locationId", locationID), zap.Error(err))
		return ErrLocationUpdateFailed
	}
	return nil
}

var _ ILocationService = (*LocationService)(nil)
