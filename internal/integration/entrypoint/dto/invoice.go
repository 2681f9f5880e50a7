// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	invoiceusecase "github.com/trackbill/backend/internal/application/usecase/invoice"
	"github.com/trackbill/backend/internal/domain/entity"
)

// LineItemRequest represents one invoice line in create and update requests.
type LineItemRequest struct {
	Description string  `json:"description" binding:"required,max=500"`
	Quantity    string  `json:"quantity" binding:"required"`
	UnitPrice   string  `json:"unit_price" binding:"required"`
	ProjectID   *string `json:"project_id,omitempty"`
}

// CreateInvoiceRequest represents the request body for invoice creation.
type CreateInvoiceRequest struct {
	BrandID   string            `json:"brand_id" binding:"required"`
	Number    string            `json:"number" binding:"required,max=50"`
	DueDate   string            `json:"due_date" binding:"required"`
	Notes     string            `json:"notes,omitempty" binding:"omitempty,max=2000"`
	TaxAmount string            `json:"tax_amount,omitempty"`
	Items     []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest represents the request body for invoice update.
// Items replace the existing lines wholesale when present.
type UpdateInvoiceRequest struct {
	Number    *string           `json:"number,omitempty" binding:"omitempty,max=50"`
	DueDate   *string           `json:"due_date,omitempty"`
	Notes     *string           `json:"notes,omitempty" binding:"omitempty,max=2000"`
	TaxAmount *string           `json:"tax_amount,omitempty"`
	Items     []LineItemRequest `json:"items,omitempty" binding:"omitempty,dive"`
}

// RecordPaymentRequest represents the request body for recording a payment.
type RecordPaymentRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// LineItemResponse represents an invoice line in API responses.
type LineItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	UnitPrice   string  `json:"unit_price"`
	TotalPrice  string  `json:"total_price"`
	ProjectID   *string `json:"project_id,omitempty"`
}

// InvoiceResponse represents an invoice in API responses. Status carries the
// stored lifecycle state; DisplayOverdue is derived per request.
type InvoiceResponse struct {
	ID               string             `json:"id"`
	BrandID          string             `json:"brand_id"`
	Number           string             `json:"number"`
	Status           string             `json:"status"`
	DisplayOverdue   bool               `json:"display_overdue"`
	Items            []LineItemResponse `json:"items"`
	Subtotal         string             `json:"subtotal"`
	TaxAmount        string             `json:"tax_amount"`
	TotalAmount      string             `json:"total_amount"`
	PaidAmount       string             `json:"paid_amount"`
	RemainingBalance string             `json:"remaining_balance"`
	DueDate          string             `json:"due_date"`
	Notes            string             `json:"notes"`
	IssuedAt         *time.Time         `json:"issued_at,omitempty"`
	PaidAt           *time.Time         `json:"paid_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// InvoicePaginationResponse represents pagination information in API responses.
type InvoicePaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// InvoiceListResponse represents the response for listing invoices.
type InvoiceListResponse struct {
	Invoices   []InvoiceResponse         `json:"invoices"`
	Pagination InvoicePaginationResponse `json:"pagination"`
}

// ToLineItemResponse converts a domain LineItem entity to a LineItemResponse DTO.
func ToLineItemResponse(item *entity.LineItem) LineItemResponse {
	response := LineItemResponse{
		ID:          item.ID.String(),
		Description: item.Description,
		Quantity:    item.Quantity.String(),
		UnitPrice:   item.UnitPrice.StringFixed(2),
		TotalPrice:  item.TotalPrice.StringFixed(2),
	}

	if item.ProjectID != nil {
		projectID := item.ProjectID.String()
		response.ProjectID = &projectID
	}

	return response
}

// ToInvoiceResponse converts an invoice view to an InvoiceResponse DTO.
func ToInvoiceResponse(view *invoiceusecase.InvoiceView) InvoiceResponse {
	inv := view.Invoice

	items := make([]LineItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = ToLineItemResponse(item)
	}

	return InvoiceResponse{
		ID:               inv.ID.String(),
		BrandID:          inv.BrandID.String(),
		Number:           inv.Number,
		Status:           string(inv.Status),
		DisplayOverdue:   view.DisplayOverdue,
		Items:            items,
		Subtotal:         inv.Subtotal.StringFixed(2),
		TaxAmount:        inv.TaxAmount.StringFixed(2),
		TotalAmount:      inv.TotalAmount.StringFixed(2),
		PaidAmount:       inv.PaidAmount.StringFixed(2),
		RemainingBalance: view.RemainingBalance.StringFixed(2),
		DueDate:          inv.DueDate.Format("2006-01-02"),
		Notes:            inv.Notes,
		IssuedAt:         inv.IssuedAt,
		PaidAt:           inv.PaidAt,
		CreatedAt:        inv.CreatedAt,
		UpdatedAt:        inv.UpdatedAt,
	}
}

// ToInvoiceListResponse converts a list result to an InvoiceListResponse.
func ToInvoiceListResponse(views []*invoiceusecase.InvoiceView, total int64, page, limit, totalPages int) InvoiceListResponse {
	responses := make([]InvoiceResponse, len(views))
	for i, view := range views {
		responses[i] = ToInvoiceResponse(view)
	}

	return InvoiceListResponse{
		Invoices:   responses,
		Pagination: InvoicePaginationResponse{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
