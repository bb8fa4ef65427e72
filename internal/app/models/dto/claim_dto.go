package dto

import (
	"github.com/ebsuite/claimsportal/internal/app/models"
	"github.com/ebsuite/claimsportal/internal/app/workflow"
)

// ClaimRequest is the claim editor payload for create and update. Numeric and
// date fields arrive as strings from the form layer and are coerced (or
// nulled) by the claim service.
type ClaimRequest struct {
	ClaimNumber        string   `json:"claimNumber" binding:"required" example:"CLM-2025-00017"`
	Status             string   `json:"status,omitempty" example:"Needs Approval"` // Defaults to Incomplete on create
	BatchNumber        string   `json:"batchNumber,omitempty"`
	ServiceDate        string   `json:"serviceDate,omitempty" example:"2025-03-14"` // Coerced to a date or null
	BilledAmount       string   `json:"billedAmount,omitempty" example:"125.50"`    // Coerced to a numeric or null
	ServiceCode        string   `json:"serviceCode,omitempty" example:"H2019"`
	ServiceDescription string   `json:"serviceDescription,omitempty"`
	RenderingProvider  string   `json:"renderingProvider,omitempty"`
	District           string   `json:"district,omitempty" example:"Fruitvale"`
	StudentSSID        string   `json:"studentSsid,omitempty"`
	StudentName        string   `json:"studentName,omitempty"`
	StudentDOB         string   `json:"studentDob,omitempty" example:"2014-09-02"`
	InsuranceType      string   `json:"insuranceType,omitempty"`
	InsuranceCarrier   string   `json:"insuranceCarrier,omitempty"`
	Modifiers          []string `json:"modifiers,omitempty"`
}

// TransitionRequest asks the engine to apply a bulk action to a selection
type TransitionRequest struct {
	Action   string  `json:"action" binding:"required,oneof=approve submit_for_billing" example:"submit_for_billing"`
	ClaimIDs []int64 `json:"claimIds" binding:"required" example:"1,2"`
}

// TransitionResponse reports a completed bulk action
type TransitionResponse struct {
	Action       string                  `json:"action"`
	UpdatedCount int                     `json:"updatedCount" example:"2"`
	NewStatus    models.ClaimStatus      `json:"newStatus" example:"Submitted"`
	Buckets      map[workflow.Bucket]int `json:"buckets"` // Tab counts after re-classification
}

// ClaimListResponse is the dashboard view: the visible rows for the active
// bucket and search term plus the per-tab counts over the whole collection
type ClaimListResponse struct {
	Claims  []*models.Claim         `json:"claims"`
	Buckets map[workflow.Bucket]int `json:"buckets"`
	Total   int                     `json:"total" example:"47"`
}

// RemittanceLine is one status row of the remittance overview rollup
type RemittanceLine struct {
	Status      models.ClaimStatus `json:"status" example:"Paid"`
	ClaimCount  int                `json:"claimCount" example:"12"`
	BilledTotal float64            `json:"billedTotal" example:"1507.25"`
	PaidTotal   float64            `json:"paidTotal" example:"1320.00"`
}

// RemittanceSummaryResponse aggregates the Remittance Overview bucket
type RemittanceSummaryResponse struct {
	Lines []RemittanceLine `json:"lines"`
}
