package invoice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/application/adapter"
	"github.com/trackbill/backend/internal/domain/entity"
	domainerror "github.com/trackbill/backend/internal/domain/error"
)

type fakeInvoiceRepo struct {
	invoice *entity.Invoice
	updated bool
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	return nil
}

func (f *fakeInvoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	if f.invoice == nil || f.invoice.ID != id {
		return nil, errors.New("record not found")
	}
	return f.invoice, nil
}

func (f *fakeInvoiceRepo) FindByFilter(ctx context.Context, filter adapter.InvoiceFilter, pagination adapter.InvoicePagination) (*entity.InvoiceListResult, error) {
	return &entity.InvoiceListResult{}, nil
}

func (f *fakeInvoiceRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	return false, nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	f.invoice = invoice
	f.updated = true
	return nil
}

func (f *fakeInvoiceRepo) ReplaceItems(ctx context.Context, invoice *entity.Invoice) error {
	return nil
}

func (f *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeBrandRepo struct {
	brand *entity.Brand
}

func (f *fakeBrandRepo) Create(ctx context.Context, brand *entity.Brand) error { return nil }

func (f *fakeBrandRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	if f.brand == nil {
		return nil, errors.New("record not found")
	}
	return f.brand, nil
}

func (f *fakeBrandRepo) FindAll(ctx context.Context) ([]*entity.Brand, error) { return nil, nil }

func (f *fakeBrandRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	return false, nil
}

func (f *fakeBrandRepo) Update(ctx context.Context, brand *entity.Brand) error { return nil }

func (f *fakeBrandRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeBrandRepo) CountProjects(ctx context.Context, brandID uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeEmailQueue struct {
	jobs []*entity.EmailJob
}

func (f *fakeEmailQueue) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeEmailQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	return nil, nil
}

func (f *fakeEmailQueue) Update(ctx context.Context, job *entity.EmailJob) error { return nil }

func (f *fakeEmailQueue) FindByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	return nil, errors.New("record not found")
}

func sentInvoice(total decimal.Decimal) *entity.Invoice {
	inv := entity.NewInvoice(uuid.New(), "INV-001", time.Now().AddDate(0, 0, 14), "")
	inv.TotalAmount = total
	inv.MarkSent()
	return inv
}

func testBrand() *entity.Brand {
	return &entity.Brand{
		ID:           uuid.New(),
		Name:         "Acme",
		ContactEmail: "billing@acme.test",
		ContactName:  "Acme Billing",
		CurrencyCode: "USD",
	}
}

func TestRecordPayment_PartialPaymentKeepsStatus(t *testing.T) {
	inv := sentInvoice(decimal.NewFromInt(1000))
	repo := &fakeInvoiceRepo{invoice: inv}
	queue := &fakeEmailQueue{}
	uc := NewRecordPaymentUseCase(repo, &fakeBrandRepo{brand: testBrand()}, queue)

	output, err := uc.Execute(context.Background(), RecordPaymentInput{
		InvoiceID: inv.ID,
		Amount:    decimal.NewFromInt(400),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Invoice.Status != entity.InvoiceStatusSent {
		t.Errorf("status = %s, want %s", output.Invoice.Status, entity.InvoiceStatusSent)
	}
	if got := output.RemainingBalance.StringFixed(2); got != "600.00" {
		t.Errorf("remaining = %s, want 600.00", got)
	}
	if !repo.updated {
		t.Error("invoice was not persisted")
	}
	if len(queue.jobs) != 0 {
		t.Errorf("enqueued %d emails, want 0", len(queue.jobs))
	}
}

func TestRecordPayment_FullPaymentMarksPaidAndQueuesReceipt(t *testing.T) {
	inv := sentInvoice(decimal.NewFromInt(1000))
	repo := &fakeInvoiceRepo{invoice: inv}
	queue := &fakeEmailQueue{}
	uc := NewRecordPaymentUseCase(repo, &fakeBrandRepo{brand: testBrand()}, queue)

	output, err := uc.Execute(context.Background(), RecordPaymentInput{
		InvoiceID: inv.ID,
		Amount:    decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Invoice.Status != entity.InvoiceStatusPaid {
		t.Errorf("status = %s, want %s", output.Invoice.Status, entity.InvoiceStatusPaid)
	}
	if output.Invoice.PaidAt == nil {
		t.Error("PaidAt was not set")
	}
	if got := output.RemainingBalance.StringFixed(2); got != "0.00" {
		t.Errorf("remaining = %s, want 0.00", got)
	}
	if len(queue.jobs) != 1 {
		t.Fatalf("enqueued %d emails, want 1", len(queue.jobs))
	}
	if queue.jobs[0].TemplateType != entity.TemplatePaymentReceived {
		t.Errorf("template = %s, want %s", queue.jobs[0].TemplateType, entity.TemplatePaymentReceived)
	}
}

func TestRecordPayment_OverpaymentReportsNegativeRemainder(t *testing.T) {
	inv := sentInvoice(decimal.NewFromInt(1000))
	repo := &fakeInvoiceRepo{invoice: inv}
	uc := NewRecordPaymentUseCase(repo, &fakeBrandRepo{brand: testBrand()}, &fakeEmailQueue{})

	output, err := uc.Execute(context.Background(), RecordPaymentInput{
		InvoiceID: inv.ID,
		Amount:    decimal.NewFromInt(1200),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if output.Invoice.Status != entity.InvoiceStatusPaid {
		t.Errorf("status = %s, want %s", output.Invoice.Status, entity.InvoiceStatusPaid)
	}
	if got := output.RemainingBalance.StringFixed(2); got != "-200.00" {
		t.Errorf("remaining = %s, want -200.00", got)
	}
}

func TestRecordPayment_Rejections(t *testing.T) {
	draft := entity.NewInvoice(uuid.New(), "INV-002", time.Now().AddDate(0, 0, 14), "")
	draft.TotalAmount = decimal.NewFromInt(500)

	tests := []struct {
		name     string
		invoice  *entity.Invoice
		input    RecordPaymentInput
		wantCode domainerror.InvoiceErrorCode
	}{
		{
			name:     "zero amount",
			invoice:  sentInvoice(decimal.NewFromInt(100)),
			input:    RecordPaymentInput{Amount: decimal.Zero},
			wantCode: domainerror.ErrCodeInvalidPaymentAmount,
		},
		{
			name:     "negative amount",
			invoice:  sentInvoice(decimal.NewFromInt(100)),
			input:    RecordPaymentInput{Amount: decimal.NewFromInt(-50)},
			wantCode: domainerror.ErrCodeInvalidPaymentAmount,
		},
		{
			name:     "unknown invoice",
			invoice:  nil,
			input:    RecordPaymentInput{InvoiceID: uuid.New(), Amount: decimal.NewFromInt(50)},
			wantCode: domainerror.ErrCodeInvoiceNotFound,
		},
		{
			name:     "draft invoice",
			invoice:  draft,
			input:    RecordPaymentInput{InvoiceID: draft.ID, Amount: decimal.NewFromInt(50)},
			wantCode: domainerror.ErrCodeInvalidStatusTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeInvoiceRepo{invoice: tt.invoice}
			if tt.invoice != nil {
				tt.input.InvoiceID = tt.invoice.ID
			}
			uc := NewRecordPaymentUseCase(repo, &fakeBrandRepo{brand: testBrand()}, &fakeEmailQueue{})

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("Execute() succeeded, want error")
			}

			var invErr *domainerror.InvoiceError
			if !errors.As(err, &invErr) {
				t.Fatalf("error type = %T, want *domainerror.InvoiceError", err)
			}
			if invErr.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", invErr.Code, tt.wantCode)
			}
			if repo.updated {
				t.Error("invoice was persisted despite rejection")
			}
		})
	}
}
