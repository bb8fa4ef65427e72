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
	"github.com/ebsuite/claimsportal/internal/pkg/helpers"
	"github.com/ebsuite/claimsportal/internal/pkg/validation"
)

// PractitionerService handles provider roster operations
type PractitionerService struct {
	practitionerRepo *repositories.PractitionerRepository
	districtRepo     *repositories.DistrictRepository
	userRepo         *repositories.UserRepository
}

// NewPractitionerService creates a new practitioner service instance
func NewPractitionerService(
	practitionerRepo *repositories.PractitionerRepository,
	districtRepo *repositories.DistrictRepository,
	userRepo *repositories.UserRepository,
) *PractitionerService {
	return &PractitionerService{
		practitionerRepo: practitionerRepo,
		districtRepo:     districtRepo,
		userRepo:         userRepo,
	}
}

func (s *PractitionerService) buildPractitioner(ctx context.Context, req *dto.PractitionerRequest) (*models.Practitioner, error) {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if req.NPI != "" && !validation.CompiledPatterns.NPI.MatchString(req.NPI) {
		return nil, fmt.Errorf("%w: NPI must be 10 digits", apperrors.ErrValidationFailed)
	}

	if req.DistrictID != nil {
		if _, err := s.districtRepo.GetByID(ctx, *req.DistrictID); err != nil {
			return nil, err
		}
	}

	if req.UserID != nil {
		user, err := s.userRepo.GetByID(ctx, *req.UserID)
		if err != nil {
			return nil, err
		}
		if user.RoleType != models.RolePractitioner {
			return nil, fmt.Errorf("%w: linked account must hold the PRACTITIONER role", apperrors.ErrValidationFailed)
		}
	}

	return &models.Practitioner{
		UserID:     req.UserID,
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Credential: helpers.NullableString(req.Credential),
		NPI:        helpers.NullableString(req.NPI),
		DistrictID: req.DistrictID,
	}, nil
}

// GetAll lists practitioners, optionally filtered by district
func (s *PractitionerService) GetAll(ctx context.Context, districtID *int64) ([]models.Practitioner, error) {
	return s.practitionerRepo.GetAll(ctx, districtID)
}

// GetByID retrieves a single practitioner
func (s *PractitionerService) GetByID(ctx context.Context, id int64) (*models.Practitioner, error) {
	return s.practitionerRepo.GetByID(ctx, id)
}

// Create adds a practitioner to the roster
func (s *PractitionerService) Create(ctx context.Context, req *dto.PractitionerRequest) (*models.Practitioner, error) {
	practitioner, err := s.buildPractitioner(ctx, req)
	if err != nil {
		return nil, err
	}

	// One roster entry per portal account.
	if req.UserID != nil {
		existing, err := s.practitionerRepo.GetByUserID(ctx, *req.UserID)
		if err != nil && !errors.Is(err, apperrors.ErrPractitionerNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: account is already linked to practitioner %d", apperrors.ErrValidationFailed, existing.ID)
		}
	}

	if err := s.practitionerRepo.Create(ctx, practitioner); err != nil {
		return nil, err
	}

	return practitioner, nil
}

// Update rewrites a practitioner record
func (s *PractitionerService) Update(ctx context.Context, id int64, req *dto.PractitionerRequest) (*models.Practitioner, error) {
	if _, err := s.practitionerRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	practitioner, err := s.buildPractitioner(ctx, req)
	if err != nil {
		return nil, err
	}

	practitioner.ID = id
	if err := s.practitionerRepo.Update(ctx, practitioner); err != nil {
		return nil, err
	}

	return practitioner, nil
}

// Delete removes a practitioner
func (s *PractitionerService) Delete(ctx context.Context, id int64) error {
	return s.practitionerRepo.Delete(ctx, id)
}
