package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

// fakeInvoiceStore honors the brand filter so tenant scoping is observable.
type fakeInvoiceStore struct {
	invoices []*entity.Invoice
}

func (f *fakeInvoiceStore) Create(ctx context.Context, invoice *entity.Invoice) error { return nil }

func (f *fakeInvoiceStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return nil, errors.New("record not found")
}

func (f *fakeInvoiceStore) FindByFilter(ctx context.Context, filter adapter.InvoiceFilter, pagination adapter.InvoicePagination) (*entity.InvoiceListResult, error) {
	matched := make([]*entity.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		if filter.BrandID != nil && inv.BrandID != *filter.BrandID {
			continue
		}
		if filter.Status != nil && inv.Status != *filter.Status {
			continue
		}
		matched = append(matched, inv)
	}
	return &entity.InvoiceListResult{Invoices: matched, Total: int64(len(matched))}, nil
}

func (f *fakeInvoiceStore) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return false, nil
}

func (f *fakeInvoiceStore) Update(ctx context.Context, invoice *entity.Invoice) error { return nil }

func (f *fakeInvoiceStore) ReplaceItems(ctx context.Context, invoice *entity.Invoice) error {
	return nil
}

func (f *fakeInvoiceStore) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func twoBrandStore() (*fakeInvoiceStore, uuid.UUID, uuid.UUID) {
	brandA := uuid.New()
	brandB := uuid.New()
	due := time.Now().AddDate(0, 0, 14)
	return &fakeInvoiceStore{
		invoices: []*entity.Invoice{
			entity.NewInvoice(brandA, "INV-A-001", due, ""),
			entity.NewInvoice(brandB, "INV-B-001", due, ""),
		},
	}, brandA, brandB
}

func TestListInvoices_ClientScopedToOwnBrand(t *testing.T) {
	store, brandA, _ := twoBrandStore()
	client := &entity.User{ID: uuid.New(), Role: entity.UserRoleClient, BrandID: &brandA, IsActive: true}
	uc := NewListInvoicesUseCase(store)

	output, err := uc.Execute(context.Background(), ListInvoicesInput{Caller: client})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(output.Invoices) != 1 {
		t.Fatalf("listed %d invoices, want 1", len(output.Invoices))
	}
	if output.Invoices[0].Invoice.BrandID != brandA {
		t.Error("listed an invoice from another brand")
	}
}

func TestListInvoices_ClientWithoutBrandRefused(t *testing.T) {
	store, _, _ := twoBrandStore()
	client := &entity.User{ID: uuid.New(), Role: entity.UserRoleClient, IsActive: true}
	uc := NewListInvoicesUseCase(store)

	_, err := uc.Execute(context.Background(), ListInvoicesInput{Caller: client})
	if err == nil {
		t.Fatal("Execute() succeeded, want error")
	}

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error type = %T, want *domainerror.AuthError", err)
	}
	if authErr.Code != domainerror.ErrCodeForbidden {
		t.Errorf("code = %s, want %s", authErr.Code, domainerror.ErrCodeForbidden)
	}
}

func TestListInvoices_AdminSeesAllBrands(t *testing.T) {
	store, _, _ := twoBrandStore()
	admin := &entity.User{ID: uuid.New(), Role: entity.UserRoleAdmin, IsActive: true}
	uc := NewListInvoicesUseCase(store)

	output, err := uc.Execute(context.Background(), ListInvoicesInput{Caller: admin})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(output.Invoices) != 2 {
		t.Errorf("listed %d invoices, want 2", len(output.Invoices))
	}
}
