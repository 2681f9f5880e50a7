package billing

import (
	"testing"
	"time"

	"github.com/trackbill/backend/internal/domain/entity"
)

func TestIsOverdue(t *testing.T) {
	now := day("2026-03-15")

	tests := []struct {
		name     string
		dueDate  time.Time
		status   entity.InvoiceStatus
		expected bool
	}{
		{name: "sent and past due", dueDate: day("2026-03-10"), status: entity.InvoiceStatusSent, expected: true},
		{name: "sent and due today", dueDate: day("2026-03-15"), status: entity.InvoiceStatusSent, expected: false},
		{name: "sent and due later", dueDate: day("2026-03-20"), status: entity.InvoiceStatusSent, expected: false},
		{name: "draft never overdue", dueDate: day("2026-03-10"), status: entity.InvoiceStatusDraft, expected: false},
		{name: "paid never overdue", dueDate: day("2026-03-10"), status: entity.InvoiceStatusPaid, expected: false},
		{name: "cancelled never overdue", dueDate: day("2026-03-10"), status: entity.InvoiceStatusCancelled, expected: false},
		{name: "stored overdue not re-flagged", dueDate: day("2026-03-10"), status: entity.InvoiceStatusOverdue, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsOverdue(tt.dueDate, tt.status, now)
			if got != tt.expected {
				t.Errorf("IsOverdue(%s, %s) = %v, want %v", tt.dueDate.Format("2006-01-02"), tt.status, got, tt.expected)
			}
		})
	}
}

func TestRemainingBalance(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		paid     string
		expected string
	}{
		{name: "unpaid", total: "1000", paid: "0", expected: "1000.00"},
		{name: "partially paid", total: "1000", paid: "400", expected: "600.00"},
		{name: "fully paid", total: "1000", paid: "1000", expected: "0.00"},
		{name: "overpaid goes negative", total: "1000", paid: "1200", expected: "-200.00"},
		{name: "rounds to cents", total: "100.555", paid: "0.55", expected: "100.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemainingBalance(dec(tt.total), dec(tt.paid))
			if got.StringFixed(2) != tt.expected {
				t.Errorf("RemainingBalance(%s, %s) = %s, want %s", tt.total, tt.paid, got.StringFixed(2), tt.expected)
			}
		})
	}
}
