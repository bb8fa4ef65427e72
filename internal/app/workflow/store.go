package workflow

import (
	"context"

	"github.com/ebsuite/claimsportal/internal/app/models"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// ClaimStore is the persistence boundary the transition engine writes
// through. ListClaims is a full read in insertion order; UpdateStatuses must
// apply the status change to every id atomically, refreshing updated_at and
// recording updated_by = actor, or apply it to none of them.
type ClaimStore interface {
	ListClaims(ctx context.Context) ([]*models.Claim, error)
	UpdateStatuses(ctx context.Context, ids []int64, newStatus models.ClaimStatus, actor int64) error
}
