package workflow

import (
	"reflect"
	"testing"

	"github.com/ebsuite/claimsportal/internal/app/models"
)

func strPtr(s string) *string { return &s }

func testClaims() []*models.Claim {
	return []*models.Claim{
		{ID: 1, ClaimNumber: "CLM-001", Status: models.StatusSubmitted, District: strPtr("Fruitvale"), StudentName: strPtr("Maya Torres")},
		{ID: 2, ClaimNumber: "CLM-002", Status: models.StatusRejected, District: strPtr("Bakersfield")},
		{ID: 3, ClaimNumber: "CLM-003", Status: models.StatusSubmitted, RenderingProvider: strPtr("Jordan Avery, SLP")},
		{ID: 4, ClaimNumber: "CLM-004", Status: models.StatusPaid, District: strPtr("FRUITVALE")},
		{ID: 5, ClaimNumber: "CLM-005", Status: models.StatusNeedsApproval},
	}
}

func visibleIDs(claims []*models.Claim) []int64 {
	ids := make([]int64, len(claims))
	for i, c := range claims {
		ids[i] = c.ID
	}
	return ids
}

func TestFilter_EmptyTermReturnsBucketInStoreOrder(t *testing.T) {
	claims := testClaims()

	got := Filter(claims, BucketNotPaid, "")
	if want := []int64{1, 2, 3}; !reflect.DeepEqual(visibleIDs(got), want) {
		t.Fatalf("NotPaid ids = %v, want %v", visibleIDs(got), want)
	}

	// Idempotent: identical arguments yield the identical sequence.
	again := Filter(claims, BucketNotPaid, "")
	if !reflect.DeepEqual(visibleIDs(got), visibleIDs(again)) {
		t.Fatalf("filter is not idempotent: %v vs %v", visibleIDs(got), visibleIDs(again))
	}
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	claims := testClaims()

	t.Run("district match any case", func(t *testing.T) {
		got := Filter(claims, BucketRemittanceOverview, "fruitvale")
		if want := []int64{1, 4}; !reflect.DeepEqual(visibleIDs(got), want) {
			t.Fatalf("ids = %v, want %v", visibleIDs(got), want)
		}
	})

	t.Run("no match in other district", func(t *testing.T) {
		got := Filter(claims, BucketRemittanceOverview, "fruitvale")
		for _, c := range got {
			if c.District != nil && *c.District == "Bakersfield" {
				t.Fatalf("Bakersfield claim %d matched fruitvale", c.ID)
			}
		}
	})

	t.Run("claim number", func(t *testing.T) {
		got := Filter(claims, BucketNotPaid, "clm-002")
		if want := []int64{2}; !reflect.DeepEqual(visibleIDs(got), want) {
			t.Fatalf("ids = %v, want %v", visibleIDs(got), want)
		}
	})

	t.Run("student name", func(t *testing.T) {
		got := Filter(claims, BucketNotPaid, "torres")
		if want := []int64{1}; !reflect.DeepEqual(visibleIDs(got), want) {
			t.Fatalf("ids = %v, want %v", visibleIDs(got), want)
		}
	})

	t.Run("rendering provider", func(t *testing.T) {
		got := Filter(claims, BucketNotPaid, "avery")
		if want := []int64{3}; !reflect.DeepEqual(visibleIDs(got), want) {
			t.Fatalf("ids = %v, want %v", visibleIDs(got), want)
		}
	})
}

func TestFilter_NilFieldsNeverMatch(t *testing.T) {
	claims := []*models.Claim{
		{ID: 9, ClaimNumber: "CLM-009", Status: models.StatusSubmitted},
	}
	if got := Filter(claims, BucketNotPaid, "fruitvale"); len(got) != 0 {
		t.Fatalf("claim with nil fields matched: %v", visibleIDs(got))
	}
}

func TestFilter_BucketMembershipGatesBeforeSearch(t *testing.T) {
	claims := testClaims()
	// Claim 4 is Paid; it matches "fruitvale" but is not a Not Paid member.
	got := Filter(claims, BucketNotPaid, "fruitvale")
	if want := []int64{1}; !reflect.DeepEqual(visibleIDs(got), want) {
		t.Fatalf("ids = %v, want %v", visibleIDs(got), want)
	}
}
