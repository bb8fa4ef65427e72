package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ebsuite/claimsportal/internal/app/models"
	"github.com/ebsuite/claimsportal/internal/app/models/dto"
	"github.com/ebsuite/claimsportal/internal/app/workflow"
	"github.com/ebsuite/claimsportal/internal/pkg/apperrors"
	"github.com/ebsuite/claimsportal/internal/pkg/helpers"
	"github.com/ebsuite/claimsportal/internal/pkg/validation"
)

//go:generate mockgen -source=claim_service.go -destination=mocks/mock_claim_repository.go -package=mocks

// ClaimRepository is the persistence surface the claim service needs. The
// concrete repository satisfies it, and through it the workflow.ClaimStore
// contract used by the transition engine.
type ClaimRepository interface {
	ListClaims(ctx context.Context) ([]*models.Claim, error)
	GetByID(ctx context.Context, id int64) (*models.Claim, error)
	Create(ctx context.Context, claim *models.Claim) error
	Update(ctx context.Context, claim *models.Claim) error
	Delete(ctx context.Context, id int64) error
	UpdateStatuses(ctx context.Context, ids []int64, newStatus models.ClaimStatus, actor int64) error
}

// ClaimService handles the claim lifecycle: the editor boundary, bucket
// classification for the dashboard and bulk status transitions.
type ClaimService struct {
	claimRepo ClaimRepository
	engine    *workflow.Engine
	logger    zerolog.Logger
}

// NewClaimService creates a new claim service instance
func NewClaimService(claimRepo ClaimRepository, logger zerolog.Logger) *ClaimService {
	return &ClaimService{
		claimRepo: claimRepo,
		engine:    workflow.NewEngine(claimRepo),
		logger:    logger,
	}
}

// List returns the rows visible for a bucket and search term, plus the
// per-bucket counts computed over the whole collection so every tab shows
// its total regardless of which one is active.
func (s *ClaimService) List(ctx context.Context, bucketParam, search string) (*dto.ClaimListResponse, error) {
	bucket := workflow.BucketNotPaid
	if bucketParam != "" {
		parsed, ok := workflow.ParseBucket(bucketParam)
		if !ok {
			return nil, fmt.Errorf("%w: unknown bucket %q", apperrors.ErrBadRequest, bucketParam)
		}
		bucket = parsed
	}

	claims, err := s.claimRepo.ListClaims(ctx)
	if err != nil {
		return nil, err
	}

	visible := workflow.Filter(claims, bucket, search)
	if visible == nil {
		visible = []*models.Claim{}
	}

	return &dto.ClaimListResponse{
		Claims:  visible,
		Buckets: workflow.Counts(claims),
		Total:   len(visible),
	}, nil
}

// GetByID retrieves a single claim
func (s *ClaimService) GetByID(ctx context.Context, id int64) (*models.Claim, error) {
	return s.claimRepo.GetByID(ctx, id)
}

// Create validates and persists a new claim. A request without a status
// enters the lifecycle as Incomplete.
func (s *ClaimService) Create(ctx context.Context, req *dto.ClaimRequest, actor int64) (*models.Claim, error) {
	claim, err := s.buildClaim(req)
	if err != nil {
		return nil, err
	}

	if claim.Status == "" {
		claim.Status = models.StatusIncomplete
	}

	claim.CreatedBy = &actor
	claim.UpdatedBy = &actor

	if err := s.claimRepo.Create(ctx, claim); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("claimID", claim.ID).
		Str("claimNumber", claim.ClaimNumber).
		Str("status", string(claim.Status)).
		Msg("Claim created")

	return claim, nil
}

// Update rewrites the editable fields of an existing claim. The editor never
// changes workflow status or payment fields; those move only through
// transitions and remittance posting.
func (s *ClaimService) Update(ctx context.Context, id int64, req *dto.ClaimRequest, actor int64) (*models.Claim, error) {
	existing, err := s.claimRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	claim, err := s.buildClaim(req)
	if err != nil {
		return nil, err
	}

	claim.ID = existing.ID
	claim.Status = existing.Status
	claim.BatchNumber = existing.BatchNumber
	claim.PaidAmount = existing.PaidAmount
	claim.FinalizedDate = existing.FinalizedDate
	claim.UpdatedBy = &actor

	if err := s.claimRepo.Update(ctx, claim); err != nil {
		return nil, err
	}

	return s.claimRepo.GetByID(ctx, id)
}

// Delete removes a claim
func (s *ClaimService) Delete(ctx context.Context, id int64) error {
	return s.claimRepo.Delete(ctx, id)
}

// ApplyTransition runs a bulk status transition for an explicit selection of
// claim ids. The whole batch succeeds or none of it does.
func (s *ClaimService) ApplyTransition(ctx context.Context, req *dto.TransitionRequest, actor int64) (*dto.TransitionResponse, error) {
	kind, err := workflow.ParseTransitionKind(req.Action)
	if err != nil {
		return nil, err
	}

	view := workflow.NewViewState(workflow.BucketReadyToSubmit)
	for _, id := range req.ClaimIDs {
		view.Selection[id] = struct{}{}
	}

	refreshed, err := s.engine.Apply(ctx, view, kind, actor)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("action", string(kind)).
		Int("count", len(req.ClaimIDs)).
		Int64("actor", actor).
		Msg("Bulk transition applied")

	return &dto.TransitionResponse{
		Action:       string(kind),
		UpdatedCount: len(req.ClaimIDs),
		NewStatus:    kind.Target(),
		Buckets:      workflow.Counts(refreshed),
	}, nil
}

// RemittanceSummary aggregates the remittance overview bucket into one line
// per status, in lifecycle order.
func (s *ClaimService) RemittanceSummary(ctx context.Context) (*dto.RemittanceSummaryResponse, error) {
	claims, err := s.claimRepo.ListClaims(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[models.ClaimStatus]*dto.RemittanceLine)
	for _, claim := range claims {
		if !workflow.InBucket(claim.Status, workflow.BucketRemittanceOverview) {
			continue
		}
		line, ok := byStatus[claim.Status]
		if !ok {
			line = &dto.RemittanceLine{Status: claim.Status}
			byStatus[claim.Status] = line
		}
		line.ClaimCount++
		if claim.BilledAmount != nil {
			line.BilledTotal += *claim.BilledAmount
		}
		if claim.PaidAmount != nil {
			line.PaidTotal += *claim.PaidAmount
		}
	}

	lines := make([]dto.RemittanceLine, 0, len(byStatus))
	for _, status := range models.AllClaimStatuses {
		if line, ok := byStatus[status]; ok {
			lines = append(lines, *line)
		}
	}

	return &dto.RemittanceSummaryResponse{Lines: lines}, nil
}

// buildClaim coerces an editor request into a claim model. Blank strings
// become nulls; malformed dates and amounts are validation failures.
func (s *ClaimService) buildClaim(req *dto.ClaimRequest) (*models.Claim, error) {
	claimNumber := strings.TrimSpace(req.ClaimNumber)
	if claimNumber == "" {
		return nil, fmt.Errorf("%w: claim number cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.CompiledPatterns.ClaimNumber.MatchString(claimNumber) {
		return nil, fmt.Errorf("%w: invalid claim number format", apperrors.ErrValidationFailed)
	}

	status := models.ClaimStatus(req.Status)
	if req.Status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidClaimStatus, req.Status)
	}

	serviceDate, err := helpers.ParseDate(req.ServiceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service date", apperrors.ErrValidationFailed)
	}

	studentDOB, err := helpers.ParseDate(req.StudentDOB)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid student date of birth", apperrors.ErrValidationFailed)
	}

	billedAmount, err := helpers.ParseAmount(req.BilledAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid billed amount", apperrors.ErrValidationFailed)
	}

	return &models.Claim{
		ClaimNumber:        claimNumber,
		BatchNumber:        helpers.NullableString(req.BatchNumber),
		Status:             status,
		ServiceDate:        serviceDate,
		BilledAmount:       billedAmount,
		ServiceCode:        helpers.NullableString(req.ServiceCode),
		ServiceDescription: helpers.NullableString(req.ServiceDescription),
		RenderingProvider:  helpers.NullableString(req.RenderingProvider),
		District:           helpers.NullableString(req.District),
		StudentSSID:        helpers.NullableString(req.StudentSSID),
		StudentName:        helpers.NullableString(req.StudentName),
		StudentDOB:         studentDOB,
		InsuranceType:      helpers.NullableString(req.InsuranceType),
		InsuranceCarrier:   helpers.NullableString(req.InsuranceCarrier),
		Modifiers:          req.Modifiers,
	}, nil
}
