package models

// ServiceCode defines a billable service in the catalog, based on the
// 'service_codes' table
type ServiceCode struct {
	ID          int64    `json:"id" db:"id" example:"1"`
	Code        string   `json:"code" db:"code" example:"H2019"` // Unique billing code
	Description string   `json:"description" db:"description" example:"Therapeutic behavioral services"`
	UnitRate    *float64 `json:"unitRate,omitempty" db:"unit_rate" example:"31.25"`
	IsActive    bool     `json:"isActive" db:"is_active" example:"true"`
}
