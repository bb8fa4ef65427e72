package models

import "testing"

func TestClaimStatus_IsValid(t *testing.T) {
	for _, status := range AllClaimStatuses {
		if !status.IsValid() {
			t.Fatalf("enumerated status %q reported invalid", status)
		}
	}
	for _, status := range []ClaimStatus{"", "draft", "PAID", "Pending"} {
		if status.IsValid() {
			t.Fatalf("status %q should be invalid", status)
		}
	}
}

func TestClaimStatus_BadgeColorIsTotal(t *testing.T) {
	seen := make(map[string]bool)
	for _, status := range AllClaimStatuses {
		color := status.BadgeColor()
		if color == "" {
			t.Fatalf("status %q has no badge color", status)
		}
		seen[color] = true
	}
	// The default arm keeps rendering safe for values outside the enum.
	if got := ClaimStatus("Bogus").BadgeColor(); got != "gray" {
		t.Fatalf("unknown status badge = %q, want gray", got)
	}
}
