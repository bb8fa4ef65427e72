package models

// Practitioner defines the practitioner model based on the 'practitioners'
// table. Practitioners render the services that claims bill for; the optional
// user link gives them portal access under the PRACTITIONER role.
type Practitioner struct {
	ID         int64   `json:"id" db:"id" example:"1"`
	UserID     *int64  `json:"userId,omitempty" db:"user_id"` // Portal account, nullable
	FirstName  string  `json:"firstName" db:"first_name" example:"Jordan"`
	LastName   string  `json:"lastName" db:"last_name" example:"Avery"`
	Credential *string `json:"credential,omitempty" db:"credential" example:"SLP"` // Professional credential
	NPI        *string `json:"npi,omitempty" db:"npi"`                             // National provider identifier
	DistrictID *int64  `json:"districtId,omitempty" db:"district_id"`

	// Relations (populated when needed)
	User     *User     `json:"user,omitempty"`
	District *District `json:"district,omitempty"`
}

// FullName returns the practitioner's display name.
func (p *Practitioner) FullName() string {
	return p.FirstName + " " + p.LastName
}
