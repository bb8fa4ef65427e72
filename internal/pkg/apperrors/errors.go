package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Claim errors
var (
	ErrClaimNotFound       = errors.New("claim not found")
	ErrClaimNumberExists   = errors.New("claim number already exists")
	ErrInvalidClaimStatus  = errors.New("invalid claim status")
	ErrClaimStatusConflict = errors.New("claim status changed by another session")
)

// Student errors
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrSSIDAlreadyExists = errors.New("student SSID already exists")
)

// Practitioner errors
var (
	ErrPractitionerNotFound = errors.New("practitioner not found")
)

// Service catalog errors
var (
	ErrServiceCodeNotFound      = errors.New("service code not found")
	ErrServiceCodeAlreadyExists = errors.New("service code already exists")
)

// District errors
var (
	ErrDistrictNotFound      = errors.New("district not found")
	ErrDistrictAlreadyExists = errors.New("district with this name or code already exists")
	ErrDistrictHasRelations  = errors.New("district has associated data and cannot be deleted")
)
