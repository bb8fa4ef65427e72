package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ebsuite/claimsportal/internal/app/models/dto"
	"github.com/ebsuite/claimsportal/internal/app/workflow"
	"github.com/ebsuite/claimsportal/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Every controller
// funnels its failure path through here so error codes stay consistent
// across the API surface.
func HandleAPIError(c *gin.Context, err error) {
	var invalidTransition *workflow.InvalidTransitionError

	switch {
	case errors.Is(err, workflow.ErrEmptySelection):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeEmptySelection, "No claims selected"),
		})
	case errors.As(err, &invalidTransition):
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidTransition, "One or more claims cannot take this transition")
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: detail.WithDetails(invalidTransition.Claims),
		})
	case errors.Is(err, workflow.ErrUnknownTransition):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unknown transition action"),
		})
	case errors.Is(err, apperrors.ErrClaimNumberExists):
		detail := dto.NewErrorDetail(dto.ErrorCodeDuplicateClaimNumber, "Claim number already exists")
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: detail.WithField("claimNumber"),
		})
	case errors.Is(err, apperrors.ErrClaimStatusConflict):
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidTransition, "A selected claim changed in another session")
		detail = detail.WithSeverity(dto.ErrorSeverityWarning)
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: detail.WithDetails("Refresh the claim list and reapply the selection"),
		})
	case errors.Is(err, apperrors.ErrInvalidClaimStatus):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid claim status"),
		})
	case errors.Is(err, apperrors.ErrClaimNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrPractitionerNotFound),
		errors.Is(err, apperrors.ErrServiceCodeNotFound),
		errors.Is(err, apperrors.ErrDistrictNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
	case errors.Is(err, apperrors.ErrSSIDAlreadyExists),
		errors.Is(err, apperrors.ErrServiceCodeAlreadyExists),
		errors.Is(err, apperrors.ErrDistrictAlreadyExists),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists"),
		})
	case errors.Is(err, apperrors.ErrDistrictHasRelations):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "District has associated data and cannot be deleted")
		c.JSON(http.StatusConflict, dto.APIResponse{Error: detail})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Account is disabled"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found"),
		})
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: detail.WithDetails(err.Error()),
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
