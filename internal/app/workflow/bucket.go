package workflow

import "github.com/ebsuite/claimsportal/internal/app/models"

// Bucket is a derived workflow classification of a claim, used to drive the
// dashboard tabs. Buckets are computed from status on every read, never
// stored, and are not mutually exclusive: Remittance Overview is a reporting
// rollup that overlaps Not Paid and Paid on purpose.
type Bucket string

const (
	BucketNotPaid            Bucket = "NOT_PAID"
	BucketPaid               Bucket = "PAID"
	BucketReadyToSubmit      Bucket = "READY_TO_SUBMIT"
	BucketIncomplete         Bucket = "INCOMPLETE"
	BucketRemittanceOverview Bucket = "REMITTANCE_OVERVIEW"
)

// AllBuckets lists the dashboard tabs in display order.
var AllBuckets = []Bucket{
	BucketNotPaid,
	BucketPaid,
	BucketReadyToSubmit,
	BucketIncomplete,
	BucketRemittanceOverview,
}

// ParseBucket resolves a request parameter to a bucket.
func ParseBucket(s string) (Bucket, bool) {
	switch Bucket(s) {
	case BucketNotPaid, BucketPaid, BucketReadyToSubmit, BucketIncomplete, BucketRemittanceOverview:
		return Bucket(s), true
	}
	return "", false
}

// Buckets returns every bucket the given status belongs to. A status outside
// the enumeration classifies into no bucket; that is a defined outcome, not
// an error, so the claim simply counts toward no tab.
func Buckets(status models.ClaimStatus) []Bucket {
	switch status {
	case models.StatusSubmitted, models.StatusRejected:
		return []Bucket{BucketNotPaid, BucketRemittanceOverview}
	case models.StatusPaid:
		return []Bucket{BucketPaid, BucketRemittanceOverview}
	case models.StatusNeedsApproval, models.StatusApproved:
		return []Bucket{BucketReadyToSubmit}
	case models.StatusIncomplete, models.StatusDraft:
		return []Bucket{BucketIncomplete}
	default:
		return nil
	}
}

// InBucket reports whether a status classifies into the given bucket.
func InBucket(status models.ClaimStatus, bucket Bucket) bool {
	for _, b := range Buckets(status) {
		if b == bucket {
			return true
		}
	}
	return false
}

// Counts tallies per-bucket membership for a claim collection. A claim with
// overlapping buckets contributes to each of them.
func Counts(claims []*models.Claim) map[Bucket]int {
	counts := make(map[Bucket]int, len(AllBuckets))
	for _, b := range AllBuckets {
		counts[b] = 0
	}
	for _, claim := range claims {
		for _, b := range Buckets(claim.Status) {
			counts[b]++
		}
	}
	return counts
}
