package workflow

import (
	"reflect"
	"testing"

	"github.com/ebsuite/claimsportal/internal/app/models"
)

func TestBuckets_Mapping(t *testing.T) {
	cases := []struct {
		status models.ClaimStatus
		want   []Bucket
	}{
		{models.StatusSubmitted, []Bucket{BucketNotPaid, BucketRemittanceOverview}},
		{models.StatusRejected, []Bucket{BucketNotPaid, BucketRemittanceOverview}},
		{models.StatusPaid, []Bucket{BucketPaid, BucketRemittanceOverview}},
		{models.StatusNeedsApproval, []Bucket{BucketReadyToSubmit}},
		{models.StatusApproved, []Bucket{BucketReadyToSubmit}},
		{models.StatusIncomplete, []Bucket{BucketIncomplete}},
		{models.StatusDraft, []Bucket{BucketIncomplete}},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			got := Buckets(tc.status)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Buckets(%q) = %v, want %v", tc.status, got, tc.want)
			}
		})
	}
}

func TestBuckets_UnknownStatusHasNoBucket(t *testing.T) {
	for _, status := range []models.ClaimStatus{"", "Pending", "approved"} {
		if got := Buckets(status); len(got) != 0 {
			t.Fatalf("Buckets(%q) = %v, want none", status, got)
		}
	}
}

// Every enumerated status classifies somewhere, and the remittance rollup
// overlaps exactly one of Not Paid / Paid for each remitted status.
func TestBuckets_TotalOverEnumeration(t *testing.T) {
	for _, status := range models.AllClaimStatuses {
		buckets := Buckets(status)
		if len(buckets) == 0 {
			t.Fatalf("status %q classified into no bucket", status)
		}

		if !InBucket(status, BucketRemittanceOverview) {
			continue
		}
		notPaid := InBucket(status, BucketNotPaid)
		paid := InBucket(status, BucketPaid)
		if notPaid == paid {
			t.Fatalf("status %q: remittance member must be in exactly one of Not Paid/Paid (notPaid=%v paid=%v)", status, notPaid, paid)
		}
	}
}

func TestCounts(t *testing.T) {
	claims := []*models.Claim{
		{ID: 1, Status: models.StatusSubmitted},
		{ID: 2, Status: models.StatusPaid},
		{ID: 3, Status: models.StatusNeedsApproval},
		{ID: 4, Status: models.StatusDraft},
		{ID: 5, Status: "Bogus"},
	}

	counts := Counts(claims)
	want := map[Bucket]int{
		BucketNotPaid:            1,
		BucketPaid:               1,
		BucketReadyToSubmit:      1,
		BucketIncomplete:         1,
		BucketRemittanceOverview: 2,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("Counts = %v, want %v", counts, want)
	}
}

func TestParseBucket(t *testing.T) {
	if b, ok := ParseBucket("READY_TO_SUBMIT"); !ok || b != BucketReadyToSubmit {
		t.Fatalf("ParseBucket(READY_TO_SUBMIT) = %v, %v", b, ok)
	}
	if _, ok := ParseBucket("ready_to_submit"); ok {
		t.Fatal("ParseBucket should reject unknown spellings")
	}
}
