// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/trackbill/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for the outbound email queue.
type EmailQueueRepository interface {
	// Enqueue adds a new email job to the queue.
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves up to limit pending jobs whose scheduled time
	// has passed, oldest first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update persists the job's current status and bookkeeping fields.
	Update(ctx context.Context, job *entity.EmailJob) error

	// FindByID retrieves an email job by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error)
}

// SendEmailInput holds the rendered content of an outbound email.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult holds the provider's response for a sent email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for the email delivery provider.
type EmailSender interface {
	// Send delivers a single email.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}
