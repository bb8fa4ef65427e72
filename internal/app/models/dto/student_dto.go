package dto

// StudentRequest is the student editor payload for create and update
type StudentRequest struct {
	SSID       string `json:"ssid" binding:"required" example:"1234567890"`
	FirstName  string `json:"firstName" binding:"required" example:"Maya"`
	LastName   string `json:"lastName" binding:"required" example:"Torres"`
	DOB        string `json:"dob,omitempty" example:"2014-09-02"` // Coerced to a date or null
	DistrictID *int64 `json:"districtId,omitempty"`
	Grade      string `json:"grade,omitempty" example:"5"`
}
