package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ebsuite/claimsportal/internal/app/models/dto"
	"github.com/ebsuite/claimsportal/internal/app/services"
	"github.com/ebsuite/claimsportal/internal/middleware"
)

// DistrictController handles school district lookups
type DistrictController struct {
	districtService *services.DistrictService
}

// NewDistrictController creates a new DistrictController
func NewDistrictController(districtService *services.DistrictService) *DistrictController {
	return &DistrictController{districtService: districtService}
}

// ListDistricts lists districts
// @Summary List districts
// @Description Retrieves all school districts
// @Tags districts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.District} "Districts retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /districts [get]
func (c *DistrictController) ListDistricts(ctx *gin.Context) {
	districts, err := c.districtService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      districts,
		Timestamp: time.Now(),
	})
}

// GetDistrict retrieves a district by ID
// @Summary Get district by ID
// @Description Retrieves a single district
// @Tags districts
// @Produce json
// @Security BearerAuth
// @Param id path int true "District ID"
// @Success 200 {object} dto.APIResponse{data=models.District} "District retrieved"
// @Failure 404 {object} dto.ErrorResponse "District not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /districts/{id} [get]
func (c *DistrictController) GetDistrict(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	district, err := c.districtService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      district,
		Timestamp: time.Now(),
	})
}

// CreateDistrict adds a district
// @Summary Create a district
// @Description Adds a school district
// @Tags districts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DistrictRequest true "District fields"
// @Success 201 {object} dto.APIResponse{data=models.District} "District created"
// @Failure 400 {object} dto.ErrorResponse "Invalid district data"
// @Failure 409 {object} dto.ErrorResponse "District already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /districts [post]
func (c *DistrictController) CreateDistrict(ctx *gin.Context) {
	var req dto.DistrictRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid district data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	district, err := c.districtService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      district,
		Timestamp: time.Now(),
	})
}

// UpdateDistrict rewrites a district
// @Summary Update a district
// @Description Updates an existing district
// @Tags districts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "District ID"
// @Param request body dto.DistrictRequest true "District fields"
// @Success 200 {object} dto.APIResponse{data=models.District} "District updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid district data"
// @Failure 404 {object} dto.ErrorResponse "District not found"
// @Failure 409 {object} dto.ErrorResponse "District already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /districts/{id} [put]
func (c *DistrictController) UpdateDistrict(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.DistrictRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid district data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	district, err := c.districtService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      district,
		Timestamp: time.Now(),
	})
}

// DeleteDistrict removes a district
// @Summary Delete a district
// @Description Removes a district with no enrolled students or practitioners
// @Tags districts
// @Produce json
// @Security BearerAuth
// @Param id path int true "District ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "District deleted"
// @Failure 404 {object} dto.ErrorResponse "District not found"
// @Failure 409 {object} dto.ErrorResponse "District has associated data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /districts/{id} [delete]
func (c *DistrictController) DeleteDistrict(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.districtService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "District deleted"},
		Timestamp: time.Now(),
	})
}
