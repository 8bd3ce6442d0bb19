package services

import (
	"context"
	"errors"
	"strings"

	"kickconnect.net/models"
	"kickconnect.net/repositories"
)

type CommonServiceError string

func (e CommonServiceError) Error() string { return string(e) }

const ErrZipNotFound CommonServiceError = "zip code not found"

// ICommonService serves the shared reference data: day names and the zip
// code lookup behind address autofill.
type ICommonService interface {
	ListDays(ctx context.Context) ([]models.Day, error)
	LookupZip(ctx context.Context, zip string) (*models.ZipCode, error)
}

type CommonService struct {
	repo repositories.ILookupRepository
}

func NewCommonService() ICommonService {
	return &CommonService{repo: repositories.NewLookupRepository()}
}

func (s *CommonService) ListDays(ctx context.Context) ([]models.Day, error) {
	return s.repo.ListDays(ctx)
}

// LookupZip resolves a zip to its city and state. Unknown zips are a
// not-found, not an empty result.
func (s *CommonService) LookupZip(ctx context.Context, zip string) (*models.ZipCode, error) {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return nil, ErrZipNotFound
	}
	row, err := s.repo.FindZip(ctx, zip)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrZipNotFound
		}
		return nil, err
	}
	return row, nil
}

var _ ICommonService = (*CommonService)(nil)
