package workflow

import (
	"strings"

	"github.com/ebsuite/claimsportal/internal/app/models"
)

// Filter selects the claims visible for a bucket and free-text search term.
// Bucket membership is evaluated first, then the search term is matched as a
// case-insensitive substring against claim number, student name, rendering
// provider and district. An empty term passes every bucket member. Result
// order is the input (store) order; the filter never re-sorts.
func Filter(claims []*models.Claim, bucket Bucket, searchTerm string) []*models.Claim {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	var visible []*models.Claim
	for _, claim := range claims {
		if !InBucket(claim.Status, bucket) {
			continue
		}
		if term != "" && !matchesSearch(claim, term) {
			continue
		}
		visible = append(visible, claim)
	}
	return visible
}

// matchesSearch checks the searchable fields for a lowercased term. Absent
// fields never match.
func matchesSearch(claim *models.Claim, term string) bool {
	if strings.Contains(strings.ToLower(claim.ClaimNumber), term) {
		return true
	}
	for _, field := range []*string{claim.StudentName, claim.RenderingProvider, claim.District} {
		if field == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*field), term) {
			return true
		}
	}
	return false
}
