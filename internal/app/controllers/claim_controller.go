package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ebsuite/claimsportal/internal/app/models/dto"
	"github.com/ebsuite/claimsportal/internal/app/services"
	"github.com/ebsuite/claimsportal/internal/middleware"
)

// ClaimController handles the claims dashboard and editor operations
type ClaimController struct {
	claimService *services.ClaimService
}

// NewClaimController creates a new ClaimController
func NewClaimController(claimService *services.ClaimService) *ClaimController {
	return &ClaimController{claimService: claimService}
}

func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// ListClaims returns the dashboard view for a bucket
// @Summary List claims
// @Description Returns the claims visible for a bucket and search term, plus per-bucket counts over the whole collection
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param bucket query string false "Bucket tab" Enums(NOT_PAID, PAID, READY_TO_SUBMIT, INCOMPLETE, REMITTANCE_OVERVIEW) default(NOT_PAID)
// @Param search query string false "Case-insensitive substring match on claim number, student, provider and district"
// @Success 200 {object} dto.APIResponse{data=dto.ClaimListResponse} "Claims retrieved"
// @Failure 400 {object} dto.ErrorResponse "Unknown bucket"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /claims [get]
func (c *ClaimController) ListClaims(ctx *gin.Context) {
	resp, err := c.claimService.List(ctx, ctx.Query("bucket"), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// GetClaim retrieves a claim by ID
// @Summary Get claim by ID
// @Description Retrieves a single claim
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path int true "Claim ID"
// @Success 200 {object} dto.APIResponse{data=models.Claim} "Claim retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid claim ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Claim not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /claims/{id} [get]
func (c *ClaimController) GetClaim(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	claim, err := c.claimService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      claim,
		Timestamp: time.Now(),
	})
}

// CreateClaim creates a new claim
// @Summary Create a claim
// @Description Creates a new claim; a request without a status enters the lifecycle as Incomplete
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ClaimRequest true "Claim fields"
// @Success 201 {object} dto.APIResponse{data=models.Claim} "Claim created"
// @Failure 400 {object} dto.ErrorResponse "Invalid claim data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Claim number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /claims [post]
func (c *ClaimController) CreateClaim(ctx *gin.Context) {
	var req dto.ClaimRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	actor, _ := middleware.CurrentUserID(ctx)
	claim, err := c.claimService.Create(ctx, &req, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      claim,
		Timestamp: time.Now(),
	})
}

// UpdateClaim rewrites the editable fields of a claim
// @Summary Update a claim
// @Description Updates the editable fields of a claim; workflow status and payment fields are not editable here
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Claim ID"
// @Param request body dto.ClaimRequest true "Claim fields"
// @Success 200 {object} dto.APIResponse{data=models.Claim} "Claim updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid claim data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Claim not found"
// @Failure 409 {object} dto.ErrorResponse "Claim number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /claims/{id} [put]
func (c *ClaimController) UpdateClaim(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ClaimRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	actor, _ := middleware.CurrentUserID(ctx)
	claim, err := c.claimService.Update(ctx, id, &req, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      claim,
		Timestamp: time.Now(),
	})
}

// DeleteClaim removes a claim
// @Summary Delete a claim
// @Description Removes a claim
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Param id path int true "Claim ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Claim deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid claim ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Claim not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /claims/{id} [delete]
func (c *ClaimController) DeleteClaim(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.claimService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Claim deleted"},
		Timestamp: time.Now(),
	})
}

// ApplyTransition runs a bulk status transition
// @Summary Apply a bulk transition
// @Description Applies approve or submit_for_billing to a selection of claims. The whole batch succeeds or none of it does.
// @Tags claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.TransitionRequest true "Action and selected claim ids"
// @Success 200 {object} dto.APIResponse{data=dto.TransitionResponse} "Transition applied"
// @Failure 400 {object} dto.ErrorResponse "Empty selection or unknown action"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "One or more claims cannot take this transition"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /claims/transitions [post]
func (c *ClaimController) ApplyTransition(ctx *gin.Context) {
	var req dto.TransitionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	actor, _ := middleware.CurrentUserID(ctx)
	resp, err := c.claimService.ApplyTransition(ctx, &req, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// RemittanceSummary aggregates the remittance overview bucket
// @Summary Remittance summary
// @Description Aggregates submitted, paid and rejected claims into one line per status
// @Tags claims
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RemittanceSummaryResponse} "Summary retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /claims/remittance-summary [get]
func (c *ClaimController) RemittanceSummary(ctx *gin.Context) {
	resp, err := c.claimService.RemittanceSummary(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}
