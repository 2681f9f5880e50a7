package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trackbill/backend/internal/domain/entity"
)

// IsOverdue derives the display-only overdue flag: true iff the invoice is
// SENT and its due date has passed. Invoices already persisted as OVERDUE are
// not flagged again, and PAID, CANCELLED and DRAFT invoices never are. The
// persisted status transition to OVERDUE belongs to a time-based job, not to
// this check. The caller passes now on every evaluation; results are never
// cached.
func IsOverdue(dueDate time.Time, status entity.InvoiceStatus, now time.Time) bool {
	return status == entity.InvoiceStatusSent && dueDate.Before(now)
}

// RemainingBalance returns round2(total - paid). Overpaid invoices yield a
// negative remainder; clamping or color-coding is left to presentation.
func RemainingBalance(totalAmount, paidAmount decimal.Decimal) decimal.Decimal {
	return Round2(totalAmount.Sub(paidAmount))
}
