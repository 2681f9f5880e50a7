// Package invoice contains invoice-related use cases.
package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/billing"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

const (
	defaultPage  = 1
	defaultLimit = 25
	maxLimit     = 100
)

// InvoiceView pairs a persisted invoice with its derived display state.
// DisplayOverdue supplements the persisted status; it never replaces it.
type InvoiceView struct {
	Invoice          *entity.Invoice
	DisplayOverdue   bool
	RemainingBalance decimal.Decimal
}

// newInvoiceView derives the display state for one invoice at the given
// instant. Derivation happens on every request; it is never cached.
func newInvoiceView(inv *entity.Invoice, now time.Time) *InvoiceView {
	return &InvoiceView{
		Invoice:          inv,
		DisplayOverdue:   billing.IsOverdue(inv.DueDate, inv.Status, now),
		RemainingBalance: billing.RemainingBalance(inv.TotalAmount, inv.PaidAmount),
	}
}

// ListInvoicesInput represents the input for listing invoices.
type ListInvoicesInput struct {
	Caller *entity.User
	Filter adapter.InvoiceFilter
	Page   int
	Limit  int
}

// ListInvoicesOutput represents the output of listing invoices.
type ListInvoicesOutput struct {
	Invoices   []*InvoiceView
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ListInvoicesUseCase handles listing invoices.
type ListInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewListInvoicesUseCase creates a new ListInvoicesUseCase instance.
func NewListInvoicesUseCase(invoiceRepo adapter.InvoiceRepository) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute retrieves invoices with derived display state. Client users are
// always scoped to their own brand; a client without a brand has nothing to
// be scoped to and is refused outright.
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, input ListInvoicesInput) (*ListInvoicesOutput, error) {
	filter := input.Filter
	if input.Caller.Role == entity.UserRoleClient {
		if input.Caller.BrandID == nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeForbidden,
				"client user is not linked to a brand",
				domainerror.ErrForbidden,
			)
		}
		filter.BrandID = input.Caller.BrandID
	}

	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	result, err := uc.invoiceRepo.FindByFilter(ctx, filter, adapter.InvoicePagination{Page: page, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	now := time.Now().UTC()
	views := make([]*InvoiceView, 0, len(result.Invoices))
	for _, inv := range result.Invoices {
		views = append(views, newInvoiceView(inv, now))
	}

	return &ListInvoicesOutput{
		Invoices:   views,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}
