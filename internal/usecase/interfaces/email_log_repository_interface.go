package interfaces

import (
	"context"
	"errors"
	"time"

	"buyback_service/internal/domain/entities"
)

// ErrEmailAlreadyClaimed means a (quote, type) pair is already sent or in flight.
var ErrEmailAlreadyClaimed = errors.New("email already claimed for quote")

// IEmailLogRepository stores email delivery history.
//
// The store holds at most one sent-or-sending entry per (quote, type); Claim
// is the conditional insert that enforces it.
type IEmailLogRepository interface {
	Record(ctx context.Context, log entities.EmailLog) error
	Claim(ctx context.Context, log entities.EmailLog) error
	MarkSent(ctx context.Context, quoteID string, emailType entities.EmailType, at time.Time) error
	Release(ctx context.Context, quoteID string, emailType entities.EmailType) error
	ListSentTypes(ctx context.Context, quoteID string) (map[entities.EmailType]bool, error)
	ListByQuote(ctx context.Context, quoteID string) ([]entities.EmailLog, error)
}
