package dto

// ServiceCodeRequest is the service catalog payload for create and update
type ServiceCodeRequest struct {
	Code        string   `json:"code" binding:"required" example:"H2019"`
	Description string   `json:"description" binding:"required" example:"Therapeutic behavioral services"`
	UnitRate    *float64 `json:"unitRate,omitempty" example:"31.25"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// DistrictRequest is the district lookup payload for create and update
type DistrictRequest struct {
	Name string `json:"name" binding:"required" example:"Fruitvale"`
	Code string `json:"code" binding:"required" example:"FRV"`
}
