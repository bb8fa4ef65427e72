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

// PractitionerController handles provider roster operations
type PractitionerController struct {
	practitionerService *services.PractitionerService
}

// NewPractitionerController creates a new PractitionerController
func NewPractitionerController(practitionerService *services.PractitionerService) *PractitionerController {
	return &PractitionerController{practitionerService: practitionerService}
}

// ListPractitioners lists practitioners
// @Summary List practitioners
// @Description Retrieves practitioners, optionally filtered by district
// @Tags practitioners
// @Produce json
// @Security BearerAuth
// @Param districtId query int false "Filter by district ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Practitioner} "Practitioners retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /practitioners [get]
func (c *PractitionerController) ListPractitioners(ctx *gin.Context) {
	var districtID *int64
	if raw := ctx.Query("districtId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid district ID")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		districtID = &id
	}

	practitioners, err := c.practitionerService.GetAll(ctx, districtID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      practitioners,
		Timestamp: time.Now(),
	})
}

// GetPractitioner retrieves a practitioner by ID
// @Summary Get practitioner by ID
// @Description Retrieves a single practitioner
// @Tags practitioners
// @Produce json
// @Security BearerAuth
// @Param id path int true "Practitioner ID"
// @Success 200 {object} dto.APIResponse{data=models.Practitioner} "Practitioner retrieved"
// @Failure 404 {object} dto.ErrorResponse "Practitioner not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /practitioners/{id} [get]
func (c *PractitionerController) GetPractitioner(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	practitioner, err := c.practitionerService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      practitioner,
		Timestamp: time.Now(),
	})
}

// CreatePractitioner adds a practitioner
// @Summary Create a practitioner
// @Description Adds a practitioner to the roster
// @Tags practitioners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PractitionerRequest true "Practitioner fields"
// @Success 201 {object} dto.APIResponse{data=models.Practitioner} "Practitioner created"
// @Failure 400 {object} dto.ErrorResponse "Invalid practitioner data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /practitioners [post]
func (c *PractitionerController) CreatePractitioner(ctx *gin.Context) {
	var req dto.PractitionerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid practitioner data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	practitioner, err := c.practitionerService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      practitioner,
		Timestamp: time.Now(),
	})
}

// UpdatePractitioner rewrites a practitioner record
// @Summary Update a practitioner
// @Description Updates an existing practitioner
// @Tags practitioners
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Practitioner ID"
// @Param request body dto.PractitionerRequest true "Practitioner fields"
// @Success 200 {object} dto.APIResponse{data=models.Practitioner} "Practitioner updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid practitioner data"
// @Failure 404 {object} dto.ErrorResponse "Practitioner not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /practitioners/{id} [put]
func (c *PractitionerController) UpdatePractitioner(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.PractitionerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid practitioner data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	practitioner, err := c.practitionerService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      practitioner,
		Timestamp: time.Now(),
	})
}

// DeletePractitioner removes a practitioner
// @Summary Delete a practitioner
// @Description Removes a practitioner from the roster
// @Tags practitioners
// @Produce json
// @Security BearerAuth
// @Param id path int true "Practitioner ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Practitioner deleted"
// @Failure 404 {object} dto.ErrorResponse "Practitioner not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /practitioners/{id} [delete]
func (c *PractitionerController) DeletePractitioner(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.practitionerService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Practitioner deleted"},
		Timestamp: time.Now(),
	})
}
