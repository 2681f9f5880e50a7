// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/application/adapter"
	invoiceusecase "github.com/trackbill/backend/internal/application/usecase/invoice"
	"github.com/trackbill/backend/internal/domain/billing"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
	"github.com/trackbill/backend/internal/integration/entrypoint/dto"
)

// InvoiceController handles invoice endpoints.
type InvoiceController struct {
	createUseCase        *invoiceusecase.CreateInvoiceUseCase
	updateUseCase        *invoiceusecase.UpdateInvoiceUseCase
	listUseCase          *invoiceusecase.ListInvoicesUseCase
	getUseCase           *invoiceusecase.GetInvoiceUseCase
	sendUseCase          *invoiceusecase.SendInvoiceUseCase
	recordPaymentUseCase *invoiceusecase.RecordPaymentUseCase
	cancelUseCase        *invoiceusecase.CancelInvoiceUseCase
	userRepo             adapter.UserRepository
}

// NewInvoiceController creates a new invoice controller instance.
func NewInvoiceController(
	createUseCase *invoiceusecase.CreateInvoiceUseCase,
	updateUseCase *invoiceusecase.UpdateInvoiceUseCase,
	listUseCase *invoiceusecase.ListInvoicesUseCase,
	getUseCase *invoiceusecase.GetInvoiceUseCase,
	sendUseCase *invoiceusecase.SendInvoiceUseCase,
	recordPaymentUseCase *invoiceusecase.RecordPaymentUseCase,
	cancelUseCase *invoiceusecase.CancelInvoiceUseCase,
	userRepo adapter.UserRepository,
) *InvoiceController {
	return &InvoiceController{
		createUseCase:        createUseCase,
		updateUseCase:        updateUseCase,
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		sendUseCase:          sendUseCase,
		recordPaymentUseCase: recordPaymentUseCase,
		cancelUseCase:        cancelUseCase,
		userRepo:             userRepo,
	}
}

// List handles GET /invoices requests. Client users only see their own
// brand's invoices regardless of the filter.
func (c *InvoiceController) List(ctx *gin.Context) {
	caller, ok := resolveCaller(ctx, c.userRepo)
	if !ok {
		return
	}

	input := invoiceusecase.ListInvoicesInput{
		Caller: caller,
	}

	if brandIDStr := ctx.Query("brandId"); brandIDStr != "" {
		if brandID, err := uuid.Parse(brandIDStr); err == nil {
			input.Filter.BrandID = &brandID
		}
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.InvoiceStatus(statusStr)
		input.Filter.Status = &status
	}

	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve invoices",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(
		output.Invoices, output.Total, output.Page, output.Limit, output.TotalPages,
	))
}

// Get handles GET /invoices/:id requests.
func (c *InvoiceController) Get(ctx *gin.Context) {
	caller, ok := resolveCaller(ctx, c.userRepo)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	input := invoiceusecase.GetInvoiceInput{
		Caller:    caller,
		InvoiceID: invoiceID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(output.Invoice))
}

// Create handles POST /invoices requests.
func (c *InvoiceController) Create(ctx *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingInvoiceFields),
		})
		return
	}

	brandID, err := uuid.Parse(req.BrandID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid brand ID format",
		})
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date format. Use YYYY-MM-DD",
		})
		return
	}

	// Tax arrives as a free-typed form field; blank or half-typed input
	// degrades to zero. Negative values are still rejected downstream.
	taxAmount := billing.ParseLenientNumber(req.TaxAmount)

	items, ok := c.parseLineItems(ctx, req.Items)
	if !ok {
		return
	}

	input := invoiceusecase.CreateInvoiceInput{
		BrandID:   brandID,
		Number:    req.Number,
		DueDate:   dueDate,
		Notes:     req.Notes,
		TaxAmount: taxAmount,
		Items:     items,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, c.toResponse(output.Invoice))
}

// Update handles PATCH /invoices/:id requests. Only draft invoices accept
// edits; items replace the existing lines wholesale when present.
func (c *InvoiceController) Update(ctx *gin.Context) {
	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := invoiceusecase.UpdateInvoiceInput{
		InvoiceID: invoiceID,
		Number:    req.Number,
		Notes:     req.Notes,
	}

	if req.DueDate != nil {
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid due date format. Use YYYY-MM-DD",
			})
			return
		}
		input.DueDate = &dueDate
	}

	if req.TaxAmount != nil {
		taxAmount := billing.ParseLenientNumber(*req.TaxAmount)
		input.TaxAmount = &taxAmount
	}

	if req.Items != nil {
		items, ok := c.parseLineItems(ctx, req.Items)
		if !ok {
			return
		}
		input.Items = items
		input.SetItems = true
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.toResponse(output.Invoice))
}

// Send handles POST /invoices/:id/send requests.
func (c *InvoiceController) Send(ctx *gin.Context) {
	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	input := invoiceusecase.SendInvoiceInput{
		InvoiceID: invoiceID,
	}

	output, err := c.sendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.toResponse(output.Invoice))
}

// RecordPayment handles POST /invoices/:id/payments requests.
func (c *InvoiceController) RecordPayment(ctx *gin.Context) {
	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidPaymentAmount),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment amount format",
			Code:  string(domainerror.ErrCodeInvalidPaymentAmount),
		})
		return
	}

	input := invoiceusecase.RecordPaymentInput{
		InvoiceID: invoiceID,
		Amount:    amount,
	}

	output, err := c.recordPaymentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.toResponse(output.Invoice))
}

// Cancel handles POST /invoices/:id/cancel requests.
func (c *InvoiceController) Cancel(ctx *gin.Context) {
	invoiceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid invoice ID format",
		})
		return
	}

	input := invoiceusecase.CancelInvoiceInput{
		InvoiceID: invoiceID,
	}

	output, err := c.cancelUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvoiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, c.toResponse(output.Invoice))
}

// parseLineItems converts line item requests to use case inputs. It writes
// the error response itself; callers return immediately when ok is false.
func (c *InvoiceController) parseLineItems(ctx *gin.Context, reqs []dto.LineItemRequest) ([]invoiceusecase.LineItemInput, bool) {
	items := make([]invoiceusecase.LineItemInput, 0, len(reqs))
	for _, itemReq := range reqs {
		quantity, err := decimal.NewFromString(itemReq.Quantity)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid quantity format: " + itemReq.Quantity,
				Code:  string(domainerror.ErrCodeInvalidQuantity),
			})
			return nil, false
		}

		unitPrice, err := decimal.NewFromString(itemReq.UnitPrice)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid unit price format: " + itemReq.UnitPrice,
				Code:  string(domainerror.ErrCodeInvalidUnitPrice),
			})
			return nil, false
		}

		item := invoiceusecase.LineItemInput{
			Description: itemReq.Description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
		}

		if itemReq.ProjectID != nil && *itemReq.ProjectID != "" {
			projectID, err := uuid.Parse(*itemReq.ProjectID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid project ID format",
				})
				return nil, false
			}
			item.ProjectID = &projectID
		}

		items = append(items, item)
	}

	return items, true
}

// toResponse derives the display state for a mutated invoice at response
// time, the same way the list and get endpoints do.
func (c *InvoiceController) toResponse(inv *entity.Invoice) dto.InvoiceResponse {
	view := &invoiceusecase.InvoiceView{
		Invoice:          inv,
		DisplayOverdue:   billing.IsOverdue(inv.DueDate, inv.Status, time.Now()),
		RemainingBalance: billing.RemainingBalance(inv.TotalAmount, inv.PaidAmount),
	}
	return dto.ToInvoiceResponse(view)
}

// handleInvoiceError handles invoice errors and returns appropriate HTTP responses.
func (c *InvoiceController) handleInvoiceError(ctx *gin.Context, err error) {
	var invErr *domainerror.InvoiceError
	if errors.As(err, &invErr) {
		statusCode := c.getStatusCodeForInvoiceError(invErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: invErr.Message,
			Code:  string(invErr.Code),
		})
		return
	}

	var wsErr *domainerror.WorkspaceError
	if errors.As(err, &wsErr) {
		ctx.JSON(getStatusCodeForWorkspaceError(wsErr.Code), dto.ErrorResponse{
			Error: wsErr.Message,
			Code:  string(wsErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) && authErr.Code == domainerror.ErrCodeForbidden {
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForInvoiceError maps invoice error codes to HTTP status codes.
func (c *InvoiceController) getStatusCodeForInvoiceError(code domainerror.InvoiceErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvoiceNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateInvoiceNumber:
		return http.StatusConflict
	case domainerror.ErrCodeInvoiceNotEditable,
		domainerror.ErrCodeInvalidStatusTransition:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidQuantity,
		domainerror.ErrCodeInvalidUnitPrice,
		domainerror.ErrCodeEmptyInvoice,
		domainerror.ErrCodeEmptyLineItemDescription,
		domainerror.ErrCodeInvalidTaxAmount,
		domainerror.ErrCodeInvalidPaymentAmount,
		domainerror.ErrCodeMissingInvoiceFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
