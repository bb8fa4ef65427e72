package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                              // Unique identifier for the user
	Email       string     `json:"email" db:"email" example:"billing@fruitvale.k12.us"` // User's email address
	Password    string     `json:"-" db:"password"`                                     // Hashed password (excluded from JSON)
	FirstName   string     `json:"firstName" db:"first_name" example:"Dana"`
	LastName    string     `json:"lastName" db:"last_name" example:"Whitfield"`
	RoleType    RoleType   `json:"roleType" db:"role_type" example:"BILLING_ADMINISTRATOR"`
	IsActive    bool       `json:"isActive" db:"is_active" example:"true"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"` // Timestamp of the last login (nullable)
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
