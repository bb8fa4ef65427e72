package models

// District defines the school district model based on the 'districts' table
type District struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"Fruitvale"`
	Code string `json:"code" db:"code" example:"FRV"` // Short unique code
}
