package workflow_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ebsuite/claimsportal/internal/app/models"
	"github.com/ebsuite/claimsportal/internal/app/workflow"
	"github.com/ebsuite/claimsportal/internal/app/workflow/mocks"
)

const actorID int64 = 42

func claim(id int64, status models.ClaimStatus) *models.Claim {
	return &models.Claim{ID: id, Status: status}
}

func readyView(ids ...int64) *workflow.ViewState {
	view := workflow.NewViewState(workflow.BucketReadyToSubmit)
	for _, id := range ids {
		view.Selection.Toggle(id)
	}
	return view
}

func TestEngine_Apply_EmptySelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockClaimStore(ctrl)
	engine := workflow.NewEngine(store)

	_, err := engine.Apply(context.Background(), readyView(), workflow.TransitionApprove, actorID)
	if !errors.Is(err, workflow.ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
}

func TestEngine_Apply_UnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockClaimStore(ctrl)
	engine := workflow.NewEngine(store)

	_, err := engine.Apply(context.Background(), readyView(1), workflow.TransitionKind("archive"), actorID)
	if !errors.Is(err, workflow.ErrUnknownTransition) {
		t.Fatalf("expected ErrUnknownTransition, got %v", err)
	}
}

func TestEngine_Apply_ApproveNeedsApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockClaimStore(ctrl)
	engine := workflow.NewEngine(store)

	store.EXPECT().ListClaims(gomock.Any()).Return([]*models.Claim{claim(1, models.StatusNeedsApproval)}, nil)
	store.EXPECT().UpdateStatuses(gomock.Any(), []int64{1}, models.StatusApproved, actorID).Return(nil)
	store.EXPECT().ListClaims(gomock.Any()).Return([]*models.Claim{claim(1, models.StatusApproved)}, nil)

	view := readyView(1)
	refreshed, err := engine.Apply(context.Background(), view, workflow.TransitionApprove, actorID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if refreshed[0].Status != models.StatusApproved {
		t.Fatalf("status = %q, want %q", refreshed[0].Status, models.StatusApproved)
	}
	if len(view.Selection) != 0 {
		t.Fatalf("selection should clear after a successful transition, got %v", view.Selection.IDs())
	}
}

// Approving an already-approved claim is an idempotent success.
func TestEngine_Apply_ApproveIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockClaimStore(ctrl)
	engine := workflow.NewEngine(store)

	store.EXPECT().ListClaims(gomock.Any()).Return([]*models.Claim{claim(1, models.StatusApproved)}, nil)
	store.EXPECT().UpdateStatuses(gomock.Any(), []int64{1}, models.StatusApproved, actorID).Return(nil)
	store.EXPECT().ListClaims(gomock.Any()).Return([]*models.Claim{claim(1, models.StatusApproved)}, nil)

	if _, err := engine.Apply(context.Background(), readyView(1), workflow.TransitionApprove, actorID); err != nil {
		t.Fatalf("re-approving an Approved claim should succeed, got %v", err)
	}
}

// One Draft claim in the selection poisons the whole batch: the store write
// is never issued and every claim keeps its status.
func TestEngine_Apply_DraftRejectsWholeBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockClaimStore(ctrl)
	engine := workflow.NewEngine(store)

	store.EXPECT().ListClaims(gomock.Any()).Return([]*models.Claim{
		claim(1, models.StatusNeedsApproval),
		claim(2, models.StatusDraft),
	}, nil)

	_, err := engine.Apply(context.Background(), readyView(1, 2), workflow.TransitionSubmitForBilling, actorID)

	var invalidErr *workflow.InvalidTransitionError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if len(invalidErr.Claims) != 1 || invalidErr.Claims[0].ID != 2 || invalidErr.Claims[0].Status != models.StatusDraft {
		t.Fatalf("unexpected invalid claims: %+v", invalidErr.Claims)
	}
}

func TestEngine_Apply_MissingClaimRejectsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockClaimStore(ctrl)
	engine := workflow.NewEngine(store)

	store.EXPECT().ListClaims(gomock.Any()).Return([]*models.Claim{claim(1, models.StatusApproved)}, nil)

	view := readyView(1, 99)
	_, err := engine.Apply(context.Background(), view, workflow.TransitionApprove, actorID)

	var invalidErr *workflow.InvalidTransitionError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if len(invalidErr.Claims) != 1 || invalidErr.Claims[0].ID != 99 || invalidErr.Claims[0].Status != "" {
		t.Fatalf("unexpected invalid claims: %+v", invalidErr.Claims)
	}
	if len(view.Selection) != 2 {
		t.Fatal("selection must survive a rejected batch so the user can correct it")
	}
}

// The two-claim submit scenario: both claims move to Submitted and their
// bucket membership moves from Ready to Submit to Not Paid plus the
// remittance rollup.
func TestEngine_Apply_SubmitForBillingScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockClaimStore(ctrl)
	engine := workflow.NewEngine(store)

	before := []*models.Claim{
		claim(1, models.StatusNeedsApproval),
		claim(2, models.StatusApproved),
	}
	after := []*models.Claim{
		claim(1, models.StatusSubmitted),
		claim(2, models.StatusSubmitted),
	}

	store.EXPECT().ListClaims(gomock.Any()).Return(before, nil)
	store.EXPECT().UpdateStatuses(gomock.Any(), []int64{1, 2}, models.StatusSubmitted, actorID).Return(nil)
	store.EXPECT().ListClaims(gomock.Any()).Return(after, nil)

	refreshed, err := engine.Apply(context.Background(), readyView(1, 2), workflow.TransitionSubmitForBilling, actorID)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	for _, c := range refreshed {
		if c.Status != models.StatusSubmitted {
			t.Fatalf("claim %d status = %q, want Submitted", c.ID, c.Status)
		}
		if workflow.InBucket(c.Status, workflow.BucketReadyToSubmit) {
			t.Fatalf("claim %d still classified Ready to Submit", c.ID)
		}
		if !workflow.InBucket(c.Status, workflow.BucketNotPaid) || !workflow.InBucket(c.Status, workflow.BucketRemittanceOverview) {
			t.Fatalf("claim %d should be in Not Paid and Remittance Overview", c.ID)
		}
	}
}

func TestEngine_Apply_StoreFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockClaimStore(ctrl)
	engine := workflow.NewEngine(store)

	storeErr := errors.New("connection reset")
	store.EXPECT().ListClaims(gomock.Any()).Return([]*models.Claim{claim(1, models.StatusApproved)}, nil)
	store.EXPECT().UpdateStatuses(gomock.Any(), []int64{1}, models.StatusSubmitted, actorID).Return(storeErr)

	view := readyView(1)
	_, err := engine.Apply(context.Background(), view, workflow.TransitionSubmitForBilling, actorID)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
	if len(view.Selection) != 1 {
		t.Fatal("selection must survive a failed write so the user can retry")
	}
}
