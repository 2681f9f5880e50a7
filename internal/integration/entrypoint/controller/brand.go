// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/application/usecase/brand"
	domainerror "github.com/trackbill/backend/internal/domain/error"
	"github.com/trackbill/backend/internal/integration/entrypoint/dto"
)

// BrandController handles brand endpoints.
type BrandController struct {
	createUseCase *brand.CreateBrandUseCase
	updateUseCase *brand.UpdateBrandUseCase
	deleteUseCase *brand.DeleteBrandUseCase
	listUseCase   *brand.ListBrandsUseCase
}

// NewBrandController creates a new brand controller instance.
func NewBrandController(
	createUseCase *brand.CreateBrandUseCase,
	updateUseCase *brand.UpdateBrandUseCase,
	deleteUseCase *brand.DeleteBrandUseCase,
	listUseCase *brand.ListBrandsUseCase,
) *BrandController {
	return &BrandController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /brands requests.
func (c *BrandController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve brands",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandListResponse(output.Brands))
}

// Create handles POST /brands requests.
func (c *BrandController) Create(ctx *gin.Context) {
	var req dto.CreateBrandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := brand.CreateBrandInput{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactName:  req.ContactName,
		CurrencyCode: req.CurrencyCode,
	}

	if req.DefaultHourlyRate != nil && *req.DefaultHourlyRate != "" {
		rate, err := decimal.NewFromString(*req.DefaultHourlyRate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid default hourly rate format",
			})
			return
		}
		input.DefaultHourlyRate = &rate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWorkspaceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBrandResponse(output.Brand))
}

// Update handles PATCH /brands/:id requests.
func (c *BrandController) Update(ctx *gin.Context) {
	brandID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid brand ID format",
		})
		return
	}

	var req dto.UpdateBrandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := brand.UpdateBrandInput{
		BrandID:         brandID,
		Name:            req.Name,
		ContactEmail:    req.ContactEmail,
		ContactName:     req.ContactName,
		CurrencyCode:    req.CurrencyCode,
		ClearHourlyRate: req.ClearHourlyRate,
	}

	if req.DefaultHourlyRate != nil && *req.DefaultHourlyRate != "" {
		rate, err := decimal.NewFromString(*req.DefaultHourlyRate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid default hourly rate format",
			})
			return
		}
		input.DefaultHourlyRate = &rate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleWorkspaceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandResponse(output.Brand))
}

// Delete handles DELETE /brands/:id requests.
func (c *BrandController) Delete(ctx *gin.Context) {
	brandID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid brand ID format",
		})
		return
	}

	input := brand.DeleteBrandInput{
		BrandID: brandID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleWorkspaceError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleWorkspaceError handles workspace errors and returns appropriate HTTP responses.
func (c *BrandController) handleWorkspaceError(ctx *gin.Context, err error) {
	var wsErr *domainerror.WorkspaceError
	if errors.As(err, &wsErr) {
		statusCode := getStatusCodeForWorkspaceError(wsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: wsErr.Message,
			Code:  string(wsErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForWorkspaceError maps workspace error codes to HTTP status codes.
func getStatusCodeForWorkspaceError(code domainerror.WorkspaceErrorCode) int {
	switch code {
	case domainerror.ErrCodeBrandNotFound,
		domainerror.ErrCodeProjectNotFound,
		domainerror.ErrCodeTaskNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBrandNameTaken:
		return http.StatusConflict
	case domainerror.ErrCodeBrandHasProjects,
		domainerror.ErrCodeProjectArchived:
		return http.StatusConflict
	case domainerror.ErrCodeMissingProjectFields,
		domainerror.ErrCodeInvalidTaskStatus:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
