package workflow

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ebsuite/claimsportal/internal/app/models"
)

// TransitionKind identifies a bulk action on the Ready to Submit tab.
type TransitionKind string

const (
	TransitionApprove          TransitionKind = "approve"
	TransitionSubmitForBilling TransitionKind = "submit_for_billing"
)

// Engine errors
var (
	ErrEmptySelection    = errors.New("no claims selected")
	ErrUnknownTransition = errors.New("unknown transition kind")
)

// ParseTransitionKind resolves a request action to a transition kind.
func ParseTransitionKind(s string) (TransitionKind, error) {
	switch TransitionKind(s) {
	case TransitionApprove, TransitionSubmitForBilling:
		return TransitionKind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTransition, s)
}

// Target returns the status a successful transition writes.
func (k TransitionKind) Target() models.ClaimStatus {
	switch k {
	case TransitionApprove:
		return models.StatusApproved
	case TransitionSubmitForBilling:
		return models.StatusSubmitted
	default:
		return ""
	}
}

// Allows reports whether a claim currently in the given status may take this
// transition. Both bulk actions require Needs Approval or Approved, which
// makes re-applying a transition to an already-transitioned claim an
// idempotent success rather than an error.
func (k TransitionKind) Allows(status models.ClaimStatus) bool {
	switch k {
	case TransitionApprove, TransitionSubmitForBilling:
		return status == models.StatusNeedsApproval || status == models.StatusApproved
	default:
		return false
	}
}

// InvalidClaim identifies one selected claim that blocks a batch, with the
// status it actually had at validation time. A zero Status means the claim no
// longer exists.
type InvalidClaim struct {
	ID     int64              `json:"id"`
	Status models.ClaimStatus `json:"status"`
}

// InvalidTransitionError rejects a whole batch: one or more selected claims
// were not in a status the transition allows. Nothing was written.
type InvalidTransitionError struct {
	Kind   TransitionKind
	Claims []InvalidClaim
}

func (e *InvalidTransitionError) Error() string {
	parts := make([]string, len(e.Claims))
	for i, c := range e.Claims {
		status := string(c.Status)
		if status == "" {
			status = "missing"
		}
		parts[i] = fmt.Sprintf("claim %d (%s)", c.ID, status)
	}
	return fmt.Sprintf("transition %s not allowed for: %s", e.Kind, strings.Join(parts, ", "))
}

// Engine applies all-or-nothing status transitions to a selection of claims.
type Engine struct {
	store ClaimStore
}

// NewEngine creates a transition engine over the given store.
func NewEngine(store ClaimStore) *Engine {
	return &Engine{store: store}
}

// Apply runs a bulk transition for the view's current selection.
//
// The selection may be stale: another session can have changed a claim since
// it was checked, so every id is re-validated against a fresh read of the
// store rather than against the bucket the selection was made in. If any
// selected claim is missing or outside the transition's required statuses the
// whole batch is rejected with InvalidTransitionError and no row is touched.
// On success the write goes through UpdateStatuses as one atomic unit, the
// claim collection is re-fetched and re-classified, and the selection clears.
// The returned slice is the refreshed collection.
func (e *Engine) Apply(ctx context.Context, view *ViewState, kind TransitionKind, actor int64) ([]*models.Claim, error) {
	if _, err := ParseTransitionKind(string(kind)); err != nil {
		return nil, err
	}

	ids := view.Selection.IDs()
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}

	claims, err := e.store.ListClaims(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading claims for validation: %w", err)
	}

	byID := make(map[int64]*models.Claim, len(claims))
	for _, claim := range claims {
		byID[claim.ID] = claim
	}

	var invalid []InvalidClaim
	for _, id := range ids {
		claim, ok := byID[id]
		if !ok {
			invalid = append(invalid, InvalidClaim{ID: id})
			continue
		}
		if !kind.Allows(claim.Status) {
			invalid = append(invalid, InvalidClaim{ID: id, Status: claim.Status})
		}
	}
	if len(invalid) > 0 {
		sort.Slice(invalid, func(i, j int) bool { return invalid[i].ID < invalid[j].ID })
		return nil, &InvalidTransitionError{Kind: kind, Claims: invalid}
	}

	if err := e.store.UpdateStatuses(ctx, ids, kind.Target(), actor); err != nil {
		return nil, err
	}

	refreshed, err := e.store.ListClaims(ctx)
	if err != nil {
		return nil, fmt.Errorf("refreshing claims after transition: %w", err)
	}

	view.Selection.Clear()
	return refreshed, nil
}
