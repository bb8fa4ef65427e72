package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ebsuite/claimsportal/internal/app/models"
	"github.com/ebsuite/claimsportal/internal/app/models/dto"
	"github.com/ebsuite/claimsportal/internal/app/repositories"
	"github.com/ebsuite/claimsportal/internal/pkg/apperrors"
)

// DistrictService handles school district lookups
type DistrictService struct {
	districtRepo *repositories.DistrictRepository
}

// NewDistrictService creates a new district service instance
func NewDistrictService(districtRepo *repositories.DistrictRepository) *DistrictService {
	return &DistrictService{districtRepo: districtRepo}
}

func validateDistrict(req *dto.DistrictRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}
	if code != strings.ToUpper(code) {
		return fmt.Errorf("%w: code must be uppercase", apperrors.ErrValidationFailed)
	}

	return nil
}

// GetAll lists districts
func (s *DistrictService) GetAll(ctx context.Context) ([]*models.District, error) {
	return s.districtRepo.GetAll(ctx)
}

// GetByID retrieves a single district
func (s *DistrictService) GetByID(ctx context.Context, id int64) (*models.District, error) {
	return s.districtRepo.GetByID(ctx, id)
}

// Create adds a district
func (s *DistrictService) Create(ctx context.Context, req *dto.DistrictRequest) (*models.District, error) {
	if err := validateDistrict(req); err != nil {
		return nil, err
	}

	exists, err := s.districtRepo.ExistsByNameOrCode(ctx, req.Name, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDistrictAlreadyExists
	}

	district := &models.District{
		Name: strings.TrimSpace(req.Name),
		Code: strings.TrimSpace(req.Code),
	}
	if err := s.districtRepo.Create(ctx, district); err != nil {
		return nil, err
	}

	return district, nil
}

// Update rewrites a district
func (s *DistrictService) Update(ctx context.Context, id int64, req *dto.DistrictRequest) (*models.District, error) {
	if err := validateDistrict(req); err != nil {
		return nil, err
	}

	district := &models.District{
		ID:   id,
		Name: strings.TrimSpace(req.Name),
		Code: strings.TrimSpace(req.Code),
	}
	if err := s.districtRepo.Update(ctx, district); err != nil {
		return nil, err
	}

	return district, nil
}

// Delete removes a district with no enrolled students or practitioners
func (s *DistrictService) Delete(ctx context.Context, id int64) error {
	return s.districtRepo.Delete(ctx, id)
}
