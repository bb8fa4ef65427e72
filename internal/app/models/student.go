package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64      `json:"id" db:"id" example:"1"`
	SSID       string     `json:"ssid" db:"ssid" example:"1234567890"` // Statewide student identifier
	FirstName  string     `json:"firstName" db:"first_name" example:"Maya"`
	LastName   string     `json:"lastName" db:"last_name" example:"Torres"`
	DOB        *time.Time `json:"dob,omitempty" db:"dob"`
	DistrictID *int64     `json:"districtId,omitempty" db:"district_id"` // Nullable until the student is placed
	Grade      *string    `json:"grade,omitempty" db:"grade"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	District *District `json:"district,omitempty"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
