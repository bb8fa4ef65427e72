package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ebsuite/claimsportal/internal/app/models/dto"
	"github.com/ebsuite/claimsportal/internal/app/services"
	"github.com/ebsuite/claimsportal/internal/middleware"
)

// ServiceCodeController handles the billing catalog
type ServiceCodeController struct {
	serviceCodeService *services.ServiceCodeService
}

// NewServiceCodeController creates a new ServiceCodeController
func NewServiceCodeController(serviceCodeService *services.ServiceCodeService) *ServiceCodeController {
	return &ServiceCodeController{serviceCodeService: serviceCodeService}
}

// ListServiceCodes lists catalog entries
// @Summary List service codes
// @Description Retrieves the billing catalog; inactive entries are hidden unless requested
// @Tags service-codes
// @Produce json
// @Security BearerAuth
// @Param includeInactive query bool false "Include deactivated codes" default(false)
// @Success 200 {object} dto.APIResponse{data=[]models.ServiceCode} "Service codes retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /service-codes [get]
func (c *ServiceCodeController) ListServiceCodes(ctx *gin.Context) {
	includeInactive := ctx.Query("includeInactive") == "true"

	codes, err := c.serviceCodeService.GetAll(ctx, includeInactive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      codes,
		Timestamp: time.Now(),
	})
}

// GetServiceCode retrieves a catalog entry by ID
// @Summary Get service code by ID
// @Description Retrieves a single catalog entry
// @Tags service-codes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service code ID"
// @Success 200 {object} dto.APIResponse{data=models.ServiceCode} "Service code retrieved"
// @Failure 404 {object} dto.ErrorResponse "Service code not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /service-codes/{id} [get]
func (c *ServiceCodeController) GetServiceCode(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	code, err := c.serviceCodeService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      code,
		Timestamp: time.Now(),
	})
}

// CreateServiceCode adds a catalog entry
// @Summary Create a service code
// @Description Adds a billing code to the catalog
// @Tags service-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ServiceCodeRequest true "Service code fields"
// @Success 201 {object} dto.APIResponse{data=models.ServiceCode} "Service code created"
// @Failure 400 {object} dto.ErrorResponse "Invalid service code data"
// @Failure 409 {object} dto.ErrorResponse "Code already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /service-codes [post]
func (c *ServiceCodeController) CreateServiceCode(ctx *gin.Context) {
	var req dto.ServiceCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid service code data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	code, err := c.serviceCodeService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      code,
		Timestamp: time.Now(),
	})
}

// UpdateServiceCode rewrites a catalog entry
// @Summary Update a service code
// @Description Updates an existing catalog entry
// @Tags service-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service code ID"
// @Param request body dto.ServiceCodeRequest true "Service code fields"
// @Success 200 {object} dto.APIResponse{data=models.ServiceCode} "Service code updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid service code data"
// @Failure 404 {object} dto.ErrorResponse "Service code not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /service-codes/{id} [put]
func (c *ServiceCodeController) UpdateServiceCode(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ServiceCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid service code data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	code, err := c.serviceCodeService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      code,
		Timestamp: time.Now(),
	})
}

// DeleteServiceCode deactivates a catalog entry
// @Summary Deactivate a service code
// @Description Deactivates a catalog entry; historical claims keep referencing it by value
// @Tags service-codes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service code ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Service code deactivated"
// @Failure 404 {object} dto.ErrorResponse "Service code not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /service-codes/{id} [delete]
func (c *ServiceCodeController) DeleteServiceCode(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.serviceCodeService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Service code deactivated"},
		Timestamp: time.Now(),
	})
}
