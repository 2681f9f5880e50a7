// Package error defines domain-specific errors for the Trackbill application.
package error

import "errors"

// Invoice domain errors.
var (
	// ErrInvoiceNotFound is returned when an invoice is not found in the system.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrInvalidQuantity is returned when a line item's quantity is zero or negative
	// at submission time. Draft edits tolerate it; submission does not.
	ErrInvalidQuantity = errors.New("line item quantity must be positive")

	// ErrInvalidUnitPrice is returned when a line item's unit price is negative.
	ErrInvalidUnitPrice = errors.New("line item unit price must not be negative")

	// ErrEmptyLineItemDescription is returned when a line item has no description.
	ErrEmptyLineItemDescription = errors.New("line item description must not be empty")

	// ErrEmptyInvoice is returned when an invoice is submitted without line items.
	ErrEmptyInvoice = errors.New("invoice must contain at least one line item")

	// ErrInvalidTaxAmount is returned when the tax amount is negative.
	ErrInvalidTaxAmount = errors.New("tax amount must not be negative")

	// ErrInvalidPaymentAmount is returned when a recorded payment is not positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

	// ErrInvoiceNotEditable is returned when items are modified after submission.
	ErrInvoiceNotEditable = errors.New("invoice items can only be edited while draft")

	// ErrInvalidStatusTransition is returned when a lifecycle transition is not allowed.
	ErrInvalidStatusTransition = errors.New("invalid invoice status transition")

	// ErrDuplicateInvoiceNumber is returned when the invoice number is already taken.
	ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")
)

// InvoiceErrorCode defines error codes for invoice errors.
// Format: INV-XXYYYY where XX is category and YYYY is specific error.
type InvoiceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidQuantity          InvoiceErrorCode = "INV-010001"
	ErrCodeInvalidUnitPrice         InvoiceErrorCode = "INV-010002"
	ErrCodeEmptyInvoice             InvoiceErrorCode = "INV-010003"
	ErrCodeEmptyLineItemDescription InvoiceErrorCode = "INV-010004"
	ErrCodeInvalidTaxAmount         InvoiceErrorCode = "INV-010005"
	ErrCodeInvalidPaymentAmount     InvoiceErrorCode = "INV-010006"
	ErrCodeMissingInvoiceFields     InvoiceErrorCode = "INV-010007"

	// Lifecycle errors (02XXXX)
	ErrCodeInvoiceNotFound         InvoiceErrorCode = "INV-020001"
	ErrCodeInvoiceNotEditable      InvoiceErrorCode = "INV-020002"
	ErrCodeInvalidStatusTransition InvoiceErrorCode = "INV-020003"
	ErrCodeDuplicateInvoiceNumber  InvoiceErrorCode = "INV-020004"
)

// InvoiceError represents an invoice error with code and message.
type InvoiceError struct {
	Code    InvoiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvoiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvoiceError) Unwrap() error {
	return e.Err
}

// NewInvoiceError creates a new InvoiceError with the given code and message.
func NewInvoiceError(code InvoiceErrorCode, message string, err error) *InvoiceError {
	return &InvoiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
