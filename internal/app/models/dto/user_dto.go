package dto

// CreateUserRequest provisions a portal account; administrator only
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email" example:"supervisor@fruitvale.k12.us"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	RoleType  string `json:"roleType" binding:"required,oneof=ADMINISTRATOR BILLING_ADMINISTRATOR SUPERVISOR PRACTITIONER"`
}

// SetActiveRequest enables or disables a portal account
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required" example:"false"`
}

// UpdateProfileRequest updates the caller's own profile
type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}
