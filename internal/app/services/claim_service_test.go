package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/ebsuite/claimsportal/internal/app/models"
	"github.com/ebsuite/claimsportal/internal/app/models/dto"
	"github.com/ebsuite/claimsportal/internal/app/services"
	"github.com/ebsuite/claimsportal/internal/app/services/mocks"
	"github.com/ebsuite/claimsportal/internal/app/workflow"
	"github.com/ebsuite/claimsportal/internal/pkg/apperrors"
)

func newClaimService(t *testing.T) (*services.ClaimService, *mocks.MockClaimRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClaimRepository(ctrl)
	return services.NewClaimService(repo, zerolog.Nop()), repo
}

func strPtr(s string) *string { return &s }

func amountPtr(f float64) *float64 { return &f }

func testClaim(id int64, status models.ClaimStatus) *models.Claim {
	return &models.Claim{
		ID:          id,
		ClaimNumber: "CLM-2025-00001",
		Status:      status,
	}
}

func TestClaimService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status to Incomplete", func(t *testing.T) {
		svc, repo := newClaimService(t)

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, claim *models.Claim) error {
				if claim.Status != models.StatusIncomplete {
					t.Errorf("Status = %q, want %q", claim.Status, models.StatusIncomplete)
				}
				if claim.CreatedBy == nil || *claim.CreatedBy != 7 {
					t.Errorf("CreatedBy = %v, want 7", claim.CreatedBy)
				}
				claim.ID = 1
				return nil
			})

		claim, err := svc.Create(ctx, &dto.ClaimRequest{ClaimNumber: "CLM-2025-00001"}, 7)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if claim.ID != 1 {
			t.Errorf("ID = %d, want 1", claim.ID)
		}
	})

	t.Run("coerces amounts and dates", func(t *testing.T) {
		svc, repo := newClaimService(t)

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, claim *models.Claim) error {
				if claim.BilledAmount == nil || *claim.BilledAmount != 1250.50 {
					t.Errorf("BilledAmount = %v, want 1250.50", claim.BilledAmount)
				}
				if claim.ServiceDate == nil {
					t.Error("ServiceDate = nil, want a date")
				}
				if claim.District != nil {
					t.Errorf("District = %v, want nil for blank input", claim.District)
				}
				return nil
			})

		_, err := svc.Create(ctx, &dto.ClaimRequest{
			ClaimNumber:  "CLM-2025-00002",
			BilledAmount: "$1,250.50",
			ServiceDate:  "2025-03-14",
		}, 7)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	})

	t.Run("rejects empty claim number", func(t *testing.T) {
		svc, _ := newClaimService(t)

		_, err := svc.Create(ctx, &dto.ClaimRequest{ClaimNumber: "   "}, 7)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("Create() error = %v, want ErrValidationFailed", err)
		}
	})

	t.Run("rejects malformed billed amount", func(t *testing.T) {
		svc, _ := newClaimService(t)

		_, err := svc.Create(ctx, &dto.ClaimRequest{
			ClaimNumber:  "CLM-2025-00003",
			BilledAmount: "abc",
		}, 7)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("Create() error = %v, want ErrValidationFailed", err)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		svc, _ := newClaimService(t)

		_, err := svc.Create(ctx, &dto.ClaimRequest{
			ClaimNumber: "CLM-2025-00004",
			Status:      "Pending Review",
		}, 7)
		if !errors.Is(err, apperrors.ErrInvalidClaimStatus) {
			t.Fatalf("Create() error = %v, want ErrInvalidClaimStatus", err)
		}
	})
}

func TestClaimService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps workflow and payment fields", func(t *testing.T) {
		svc, repo := newClaimService(t)

		existing := testClaim(5, models.StatusPaid)
		existing.PaidAmount = amountPtr(990)
		existing.BatchNumber = strPtr("B-1A2B3C4D")

		repo.EXPECT().GetByID(ctx, int64(5)).Return(existing, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, claim *models.Claim) error {
				if claim.Status != models.StatusPaid {
					t.Errorf("Status = %q, editor must not change it", claim.Status)
				}
				if claim.PaidAmount == nil || *claim.PaidAmount != 990 {
					t.Errorf("PaidAmount = %v, editor must not change it", claim.PaidAmount)
				}
				if claim.BatchNumber == nil || *claim.BatchNumber != "B-1A2B3C4D" {
					t.Errorf("BatchNumber = %v, editor must not change it", claim.BatchNumber)
				}
				return nil
			})
		repo.EXPECT().GetByID(ctx, int64(5)).Return(existing, nil)

		_, err := svc.Update(ctx, 5, &dto.ClaimRequest{
			ClaimNumber: "CLM-2025-00001",
			Status:      "Draft",
		}, 9)
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc, repo := newClaimService(t)

		repo.EXPECT().GetByID(ctx, int64(404)).Return(nil, apperrors.ErrClaimNotFound)

		_, err := svc.Update(ctx, 404, &dto.ClaimRequest{ClaimNumber: "CLM-2025-00001"}, 9)
		if !errors.Is(err, apperrors.ErrClaimNotFound) {
			t.Fatalf("Update() error = %v, want ErrClaimNotFound", err)
		}
	})
}

func TestClaimService_List(t *testing.T) {
	ctx := context.Background()

	claims := []*models.Claim{
		testClaim(1, models.StatusSubmitted),
		testClaim(2, models.StatusPaid),
		testClaim(3, models.StatusNeedsApproval),
	}

	t.Run("defaults to the not paid bucket", func(t *testing.T) {
		svc, repo := newClaimService(t)
		repo.EXPECT().ListClaims(ctx).Return(claims, nil)

		resp, err := svc.List(ctx, "", "")
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if resp.Total != 1 || resp.Claims[0].ID != 1 {
			t.Errorf("visible = %d rows, want only claim 1", resp.Total)
		}
		if resp.Buckets[workflow.BucketRemittanceOverview] != 2 {
			t.Errorf("remittance count = %d, want 2", resp.Buckets[workflow.BucketRemittanceOverview])
		}
	})

	t.Run("rejects unknown bucket", func(t *testing.T) {
		svc, _ := newClaimService(t)

		_, err := svc.List(ctx, "ARCHIVED", "")
		if !errors.Is(err, apperrors.ErrBadRequest) {
			t.Fatalf("List() error = %v, want ErrBadRequest", err)
		}
	})
}

func TestClaimService_ApplyTransition(t *testing.T) {
	ctx := context.Background()

	t.Run("approves a selection and reports fresh counts", func(t *testing.T) {
		svc, repo := newClaimService(t)

		before := []*models.Claim{
			testClaim(1, models.StatusNeedsApproval),
			testClaim(2, models.StatusApproved),
		}
		after := []*models.Claim{
			testClaim(1, models.StatusApproved),
			testClaim(2, models.StatusApproved),
		}

		gomock.InOrder(
			repo.EXPECT().ListClaims(ctx).Return(before, nil),
			repo.EXPECT().UpdateStatuses(ctx, []int64{1, 2}, models.StatusApproved, int64(9)).Return(nil),
			repo.EXPECT().ListClaims(ctx).Return(after, nil),
		)

		resp, err := svc.ApplyTransition(ctx, &dto.TransitionRequest{
			Action:   "approve",
			ClaimIDs: []int64{1, 2},
		}, 9)
		if err != nil {
			t.Fatalf("ApplyTransition() error = %v", err)
		}
		if resp.UpdatedCount != 2 || resp.NewStatus != models.StatusApproved {
			t.Errorf("got %d rows to %q, want 2 rows to Approved", resp.UpdatedCount, resp.NewStatus)
		}
		if resp.Buckets[workflow.BucketReadyToSubmit] != 2 {
			t.Errorf("ready count = %d, want 2", resp.Buckets[workflow.BucketReadyToSubmit])
		}
	})

	t.Run("rejects the whole batch on one bad claim", func(t *testing.T) {
		svc, repo := newClaimService(t)

		repo.EXPECT().ListClaims(ctx).Return([]*models.Claim{
			testClaim(1, models.StatusNeedsApproval),
			testClaim(2, models.StatusDraft),
		}, nil)

		_, err := svc.ApplyTransition(ctx, &dto.TransitionRequest{
			Action:   "submit_for_billing",
			ClaimIDs: []int64{1, 2},
		}, 9)

		var invalid *workflow.InvalidTransitionError
		if !errors.As(err, &invalid) {
			t.Fatalf("ApplyTransition() error = %v, want InvalidTransitionError", err)
		}
		if len(invalid.Claims) != 1 || invalid.Claims[0].ID != 2 {
			t.Errorf("invalid claims = %+v, want claim 2 only", invalid.Claims)
		}
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		svc, _ := newClaimService(t)

		_, err := svc.ApplyTransition(ctx, &dto.TransitionRequest{
			Action:   "archive",
			ClaimIDs: []int64{1},
		}, 9)
		if !errors.Is(err, workflow.ErrUnknownTransition) {
			t.Fatalf("ApplyTransition() error = %v, want ErrUnknownTransition", err)
		}
	})
}

func TestClaimService_RemittanceSummary(t *testing.T) {
	ctx := context.Background()
	svc, repo := newClaimService(t)

	submitted := testClaim(1, models.StatusSubmitted)
	submitted.BilledAmount = amountPtr(100)
	paid1 := testClaim(2, models.StatusPaid)
	paid1.BilledAmount = amountPtr(200)
	paid1.PaidAmount = amountPtr(180)
	paid2 := testClaim(3, models.StatusPaid)
	paid2.PaidAmount = amountPtr(50)
	draft := testClaim(4, models.StatusDraft)

	repo.EXPECT().ListClaims(ctx).Return([]*models.Claim{submitted, paid1, paid2, draft}, nil)

	resp, err := svc.RemittanceSummary(ctx)
	if err != nil {
		t.Fatalf("RemittanceSummary() error = %v", err)
	}

	if len(resp.Lines) != 2 {
		t.Fatalf("got %d lines, want 2 (Submitted, Paid)", len(resp.Lines))
	}
	if resp.Lines[0].Status != models.StatusSubmitted || resp.Lines[0].BilledTotal != 100 {
		t.Errorf("line 0 = %+v, want Submitted with billed 100", resp.Lines[0])
	}
	if resp.Lines[1].Status != models.StatusPaid || resp.Lines[1].ClaimCount != 2 || resp.Lines[1].PaidTotal != 230 {
		t.Errorf("line 1 = %+v, want Paid with 2 claims paid 230", resp.Lines[1])
	}
}
