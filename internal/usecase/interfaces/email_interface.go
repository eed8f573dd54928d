package interfaces

import (
	"context"

	"buyback_service/internal/domain/entities"
)

// IEmailSender delivers a message with bounded retries. It reports false only
// after every attempt failed.
type IEmailSender interface {
	SendWithRetry(ctx context.Context, msg entities.EmailMessage, maxRetries int) bool
}

// IEmailRenderer builds the quote emails.
type IEmailRenderer interface {
	QuoteConfirmation(q entities.Quote) (entities.EmailMessage, error)
	Reminder(q entities.Quote, emailType entities.EmailType) (entities.EmailMessage, error)
	AdminNotification(q entities.Quote, failed entities.EmailType, reason string) (entities.EmailMessage, error)
}
