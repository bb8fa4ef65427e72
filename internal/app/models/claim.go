package models

import "time"

// ClaimStatus is the workflow status stored on a claim. Only these seven
// values are ever persisted; anything else is rejected at the boundary.
type ClaimStatus string

const (
	StatusDraft         ClaimStatus = "Draft"
	StatusIncomplete    ClaimStatus = "Incomplete"
	StatusNeedsApproval ClaimStatus = "Needs Approval"
	StatusApproved      ClaimStatus = "Approved"
	StatusSubmitted     ClaimStatus = "Submitted"
	StatusPaid          ClaimStatus = "Paid"
	StatusRejected      ClaimStatus = "Rejected"
)

// AllClaimStatuses lists every valid status, in lifecycle order.
var AllClaimStatuses = []ClaimStatus{
	StatusDraft,
	StatusIncomplete,
	StatusNeedsApproval,
	StatusApproved,
	StatusSubmitted,
	StatusPaid,
	StatusRejected,
}

// IsValid reports whether the status is one of the enumerated values.
func (s ClaimStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusIncomplete, StatusNeedsApproval, StatusApproved,
		StatusSubmitted, StatusPaid, StatusRejected:
		return true
	}
	return false
}

// BadgeColor maps a status to its display badge color. Total over the
// enumeration with an explicit default arm, so an unexpected value renders
// neutrally instead of panicking a template.
func (s ClaimStatus) BadgeColor() string {
	switch s {
	case StatusDraft:
		return "gray"
	case StatusIncomplete:
		return "orange"
	case StatusNeedsApproval:
		return "yellow"
	case StatusApproved:
		return "blue"
	case StatusSubmitted:
		return "purple"
	case StatusPaid:
		return "green"
	case StatusRejected:
		return "red"
	default:
		return "gray"
	}
}

// Claim defines the claim model based on the 'claims' table
type Claim struct {
	ID          int64       `json:"id" db:"id" example:"1"`
	ClaimNumber string      `json:"claimNumber" db:"claim_number" example:"CLM-2025-00017"` // Unique across all claims
	BatchNumber *string     `json:"batchNumber,omitempty" db:"batch_number"`                // Assigned at submission, nullable
	Status      ClaimStatus `json:"status" db:"status" example:"Needs Approval"`

	ServiceDate        *time.Time `json:"serviceDate,omitempty" db:"service_date"`
	BilledAmount       *float64   `json:"billedAmount,omitempty" db:"billed_amount" example:"125.50"`
	PaidAmount         *float64   `json:"paidAmount,omitempty" db:"paid_amount"`       // Meaningful only when status = Paid
	FinalizedDate      *time.Time `json:"finalizedDate,omitempty" db:"finalized_date"` // Meaningful only when status = Paid
	ServiceCode        *string    `json:"serviceCode,omitempty" db:"service_code" example:"H2019"`
	ServiceDescription *string    `json:"serviceDescription,omitempty" db:"service_description"`
	RenderingProvider  *string    `json:"renderingProvider,omitempty" db:"rendering_provider" example:"Jordan Avery, SLP"`
	District           *string    `json:"district,omitempty" db:"district" example:"Fruitvale"`

	StudentSSID *string    `json:"studentSsid,omitempty" db:"student_ssid"`
	StudentName *string    `json:"studentName,omitempty" db:"student_name"`
	StudentDOB  *time.Time `json:"studentDob,omitempty" db:"student_dob"`

	InsuranceType    *string  `json:"insuranceType,omitempty" db:"insurance_type" example:"Medicaid"`
	InsuranceCarrier *string  `json:"insuranceCarrier,omitempty" db:"insurance_carrier"`
	Modifiers        []string `json:"modifiers,omitempty" db:"modifiers"` // Ordered billing modifiers

	// Audit fields, maintained by the store
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	CreatedBy *int64    `json:"createdBy,omitempty" db:"created_by"`
	UpdatedBy *int64    `json:"updatedBy,omitempty" db:"updated_by"`
}
