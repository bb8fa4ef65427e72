package dto

// PractitionerRequest is the practitioner editor payload for create and update
type PractitionerRequest struct {
	FirstName  string `json:"firstName" binding:"required" example:"Jordan"`
	LastName   string `json:"lastName" binding:"required" example:"Avery"`
	Credential string `json:"credential,omitempty" example:"SLP"`
	NPI        string `json:"npi,omitempty"`
	DistrictID *int64 `json:"districtId,omitempty"`
	UserID     *int64 `json:"userId,omitempty"` // Optional portal account link
}
