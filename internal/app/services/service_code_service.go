package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ebsuite/claimsportal/internal/app/models"
	"github.com/ebsuite/claimsportal/internal/app/models/dto"
	"github.com/ebsuite/claimsportal/internal/app/repositories"
	"github.com/ebsuite/claimsportal/internal/pkg/apperrors"
)

// ServiceCodeService handles the billing catalog
type ServiceCodeService struct {
	serviceCodeRepo *repositories.ServiceCodeRepository
}

// NewServiceCodeService creates a new service code service instance
func NewServiceCodeService(serviceCodeRepo *repositories.ServiceCodeRepository) *ServiceCodeService {
	return &ServiceCodeService{serviceCodeRepo: serviceCodeRepo}
}

func buildServiceCode(req *dto.ServiceCodeRequest) (*models.ServiceCode, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code == "" {
		return nil, fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidationFailed)
	}
	if req.UnitRate != nil && *req.UnitRate < 0 {
		return nil, fmt.Errorf("%w: unit rate cannot be negative", apperrors.ErrValidationFailed)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return &models.ServiceCode{
		Code:        code,
		Description: strings.TrimSpace(req.Description),
		UnitRate:    req.UnitRate,
		IsActive:    active,
	}, nil
}

// GetAll lists catalog entries
func (s *ServiceCodeService) GetAll(ctx context.Context, includeInactive bool) ([]*models.ServiceCode, error) {
	return s.serviceCodeRepo.GetAll(ctx, includeInactive)
}

// GetByID retrieves one catalog entry
func (s *ServiceCodeService) GetByID(ctx context.Context, id int64) (*models.ServiceCode, error) {
	return s.serviceCodeRepo.GetByID(ctx, id)
}

// Create adds a catalog entry
func (s *ServiceCodeService) Create(ctx context.Context, req *dto.ServiceCodeRequest) (*models.ServiceCode, error) {
	sc, err := buildServiceCode(req)
	if err != nil {
		return nil, err
	}

	// Deletion only deactivates, so recreating a retired code reactivates
	// it in place instead of tripping the uniqueness constraint.
	existing, err := s.serviceCodeRepo.GetByCode(ctx, sc.Code)
	if err != nil && !errors.Is(err, apperrors.ErrServiceCodeNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.IsActive {
			return nil, apperrors.ErrServiceCodeAlreadyExists
		}
		sc.ID = existing.ID
		if err := s.serviceCodeRepo.Update(ctx, sc); err != nil {
			return nil, err
		}
		return sc, nil
	}

	if err := s.serviceCodeRepo.Create(ctx, sc); err != nil {
		return nil, err
	}

	return sc, nil
}

// Update rewrites a catalog entry
func (s *ServiceCodeService) Update(ctx context.Context, id int64, req *dto.ServiceCodeRequest) (*models.ServiceCode, error) {
	if _, err := s.serviceCodeRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	sc, err := buildServiceCode(req)
	if err != nil {
		return nil, err
	}

	sc.ID = id
	if err := s.serviceCodeRepo.Update(ctx, sc); err != nil {
		return nil, err
	}

	return sc, nil
}

// Delete deactivates a catalog entry
func (s *ServiceCodeService) Delete(ctx context.Context, id int64) error {
	return s.serviceCodeRepo.Delete(ctx, id)
}
