package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ebsuite/claimsportal/internal/app/models"
	"github.com/ebsuite/claimsportal/internal/app/models/dto"
	"github.com/ebsuite/claimsportal/internal/app/repositories"
	"github.com/ebsuite/claimsportal/internal/pkg/apperrors"
	"github.com/ebsuite/claimsportal/internal/pkg/helpers"
	"github.com/ebsuite/claimsportal/internal/pkg/validation"
)

// StudentService handles student roster operations
type StudentService struct {
	studentRepo  *repositories.StudentRepository
	districtRepo *repositories.DistrictRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, districtRepo *repositories.DistrictRepository) *StudentService {
	return &StudentService{
		studentRepo:  studentRepo,
		districtRepo: districtRepo,
	}
}

func (s *StudentService) validateStudent(req *dto.StudentRequest) error {
	if !validation.CompiledPatterns.SSID.MatchString(req.SSID) {
		return fmt.Errorf("%w: SSID must be 10 digits", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *StudentService) buildStudent(ctx context.Context, req *dto.StudentRequest) (*models.Student, error) {
	if err := s.validateStudent(req); err != nil {
		return nil, err
	}

	dob, err := helpers.ParseDate(req.DOB)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date of birth", apperrors.ErrValidationFailed)
	}

	if req.DistrictID != nil {
		if _, err := s.districtRepo.GetByID(ctx, *req.DistrictID); err != nil {
			return nil, err
		}
	}

	return &models.Student{
		SSID:       req.SSID,
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		DOB:        dob,
		DistrictID: req.DistrictID,
		Grade:      helpers.NullableString(req.Grade),
	}, nil
}

// GetAll lists students with filtering and pagination
func (s *StudentService) GetAll(ctx context.Context, districtID *int64, search *string, page, pageSize int) ([]models.Student, dto.PaginationInfo, error) {
	students, total, err := s.studentRepo.GetAll(ctx, districtID, search, page, pageSize)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return students, helpers.NewPaginationInfo(total, page, pageSize), nil
}

// GetByID retrieves a single student with its district populated
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if student.DistrictID != nil {
		district, err := s.districtRepo.GetByID(ctx, *student.DistrictID)
		if err == nil {
			student.District = district
		}
	}

	return student, nil
}

// Create adds a student to the roster
func (s *StudentService) Create(ctx context.Context, req *dto.StudentRequest) (*models.Student, error) {
	student, err := s.buildStudent(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// Update rewrites a student record
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.StudentRequest) (*models.Student, error) {
	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	student, err := s.buildStudent(ctx, req)
	if err != nil {
		return nil, err
	}

	student.ID = id
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return s.studentRepo.GetByID(ctx, id)
}

// Delete removes a student from the roster
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
