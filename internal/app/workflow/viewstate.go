package workflow

import "github.com/ebsuite/claimsportal/internal/app/models"

// ViewState is the caller-owned dashboard state: the active bucket, the
// free-text search term and the selection made against the visible rows.
// The classify/filter/toggle functions stay pure; all mutable view state
// lives here.
type ViewState struct {
	ActiveBucket Bucket
	SearchTerm   string
	Selection    Selection
}

// NewViewState returns a view positioned on the given bucket with an empty
// search and selection.
func NewViewState(bucket Bucket) *ViewState {
	return &ViewState{
		ActiveBucket: bucket,
		Selection:    NewSelection(),
	}
}

// SetBucket switches the active tab. Ids selected under one bucket are not
// guaranteed to be members of another, so the selection is cleared whenever
// the bucket actually changes.
func (v *ViewState) SetBucket(bucket Bucket) {
	if bucket == v.ActiveBucket {
		return
	}
	v.ActiveBucket = bucket
	v.Selection.Clear()
}

// SetSearchTerm narrows or widens the visible rows within the same bucket.
// The selection is kept: selected ids remain members of the active bucket
// and the transition engine re-validates each id at apply time anyway.
func (v *ViewState) SetSearchTerm(term string) {
	v.SearchTerm = term
}

// VisibleRows computes the row set for the current bucket and search term.
func (v *ViewState) VisibleRows(claims []*models.Claim) []*models.Claim {
	return Filter(claims, v.ActiveBucket, v.SearchTerm)
}

// VisibleIDs returns the ids of the visible rows, in row order.
func (v *ViewState) VisibleIDs(claims []*models.Claim) []int64 {
	rows := v.VisibleRows(claims)
	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids
}
