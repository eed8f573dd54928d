package interfaces

import (
	"context"
	"errors"
	"time"

	"buyback_service/internal/domain/entities"
)

// ErrQuoteNumberTaken is returned by Create when another quote already owns the number.
var ErrQuoteNumberTaken = errors.New("quote number already taken")

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Lookups return a zero-value quote (empty ID) when nothing matches.
// UpdateStatus only applies when the stored status equals from; otherwise it
// returns a zero-value quote.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus, at time.Time) (entities.Quote, error)
	ListPendingExpiringAfter(ctx context.Context, now time.Time) ([]entities.Quote, error)
	ListPendingExpiredAt(ctx context.Context, now time.Time) ([]entities.Quote, error)
}
