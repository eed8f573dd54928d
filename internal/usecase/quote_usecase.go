package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"net/mail"
	"strconv"
	"strings"
	"sync"
	"time"

	"buyback_service/internal/clock"
	"buyback_service/internal/domain/entities"
	"buyback_service/internal/domain/pricing"
	"buyback_service/internal/infrastructure/metrics"
	"buyback_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCustomer      = errors.New("customer name and a valid email are required")
	ErrInvalidQuoteNumber   = errors.New("invalid quote number")
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrQuoteNotPending      = errors.New("quote is no longer pending")
	ErrQuoteNumberExhausted = errors.New("could not allocate a unique quote number")
)

// maxQuoteNumberAttempts bounds regeneration when a quote number is already taken.
const maxQuoteNumberAttempts = 3

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CreateQuoteInput is the customer's quote request.
type CreateQuoteInput struct {
	Model     string
	Storage   string
	Network   string
	Condition string
	Customer  entities.Customer
}

// IQuoteUseCase exposes quote lifecycle operations.
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	GetByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error)
	Complete(ctx context.Context, quoteNumber string) (entities.Quote, error)
	Cancel(ctx context.Context, quoteNumber string) (entities.Quote, error)
}

type QuoteUseCase struct {
	offerResolver
	quotes   interfaces.IQuoteRepository
	notifier INotificationUseCase
	clock    clock.Clock
	log      *zap.Logger
	metrics  *metrics.Metrics

	// async runs the confirmation email outside the request. Tests replace it
	// to run inline.
	async     func(func())
	newNumber func(time.Time) (string, error)
	inflight  sync.WaitGroup
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	records interfaces.IPricingRecordRepository,
	policies interfaces.IMarginPolicyRepository,
	engine *pricing.Engine,
	notifier INotificationUseCase,
	clk clock.Clock,
	log *zap.Logger,
	mt *metrics.Metrics,
) *QuoteUseCase {
	if clk == nil {
		clk = clock.System{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if engine == nil {
		engine = pricing.NewEngine(log)
	}
	u := &QuoteUseCase{
		offerResolver: offerResolver{records: records, policies: policies, engine: engine},
		quotes:        quotes,
		notifier:      notifier,
		clock:         clk,
		log:           log.Named("quotes"),
		metrics:       mt,
		newNumber:     newQuoteNumber,
	}
	u.async = u.track
	return u
}

func (u *QuoteUseCase) track(f func()) {
	u.inflight.Add(1)
	go func() {
		defer u.inflight.Done()
		f()
	}()
}

// Wait blocks until background confirmation emails finish or ctx is done.
// Call it during shutdown after the HTTP server stops accepting requests.
func (u *QuoteUseCase) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		u.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CreateQuote prices the device, persists the quote and then sends the
// confirmation email in the background. Email failures never fail creation.
func (u *QuoteUseCase) CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	customer, err := normalizeCustomer(in.Customer)
	if err != nil {
		return entities.Quote{}, err
	}

	offer, err := u.resolve(ctx, in.Model, in.Storage, in.Network, in.Condition)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.clock.Now().UTC()
	q := entities.Quote{
		ID:         uuid.NewString(),
		Customer:   customer,
		Model:      offer.Model,
		Storage:    offer.Storage,
		Network:    offer.Network,
		Condition:  offer.Condition,
		Grade:      offer.Grade,
		AtlasPrice: offer.AtlasPrice,
		OfferPrice: offer.OfferPrice,
		Margin:     offer.Margin,
		Status:     entities.QuoteStatusPending,
		CreatedAt:  now,
		ExpiresAt:  now.Add(entities.QuoteValidity),
		UpdatedAt:  now,
	}

	created, err := u.persist(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	u.metrics.IncQuotesCreated()
	u.log.Info("quote created",
		zap.String("quote_id", created.ID),
		zap.String("quote_number", created.QuoteNumber),
		zap.String("item_id", offer.ItemID),
		zap.String("grade", string(created.Grade)),
		zap.Float64("offer_price", created.OfferPrice),
	)

	if u.notifier != nil {
		bg := context.WithoutCancel(ctx)
		u.async(func() {
			if err := u.notifier.SendQuoteConfirmation(bg, created); err != nil {
				u.log.Warn("quote confirmation not delivered",
					zap.String("quote_number", created.QuoteNumber),
					zap.Error(err),
				)
			}
		})
	}
	return created, nil
}

func (u *QuoteUseCase) persist(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	for attempt := 1; attempt <= maxQuoteNumberAttempts; attempt++ {
		number, err := u.newNumber(q.CreatedAt)
		if err != nil {
			return entities.Quote{}, err
		}
		q.QuoteNumber = number

		created, err := u.quotes.Create(ctx, q)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, interfaces.ErrQuoteNumberTaken) {
			return entities.Quote{}, fmt.Errorf("persist quote: %w", err)
		}
		u.log.Warn("quote number collision, regenerating",
			zap.String("quote_number", number),
			zap.Int("attempt", attempt),
		)
	}
	return entities.Quote{}, ErrQuoteNumberExhausted
}

func (u *QuoteUseCase) GetByNumber(ctx context.Context, quoteNumber string) (entities.Quote, error) {
	quoteNumber = strings.ToUpper(strings.TrimSpace(quoteNumber))
	if quoteNumber == "" {
		return entities.Quote{}, ErrInvalidQuoteNumber
	}
	q, err := u.quotes.GetByNumber(ctx, quoteNumber)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Complete(ctx context.Context, quoteNumber string) (entities.Quote, error) {
	return u.transition(ctx, quoteNumber, entities.QuoteStatusCompleted)
}

func (u *QuoteUseCase) Cancel(ctx context.Context, quoteNumber string) (entities.Quote, error) {
	return u.transition(ctx, quoteNumber, entities.QuoteStatusCancelled)
}

// transition moves a pending, unexpired quote to a terminal status.
func (u *QuoteUseCase) transition(ctx context.Context, quoteNumber string, to entities.QuoteStatus) (entities.Quote, error) {
	q, err := u.GetByNumber(ctx, quoteNumber)
	if err != nil {
		return entities.Quote{}, err
	}
	now := u.clock.Now().UTC()
	if q.Status != entities.QuoteStatusPending || !q.ExpiresAt.After(now) {
		return entities.Quote{}, ErrQuoteNotPending
	}

	updated, err := u.quotes.UpdateStatus(ctx, q.ID, entities.QuoteStatusPending, to, now)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotPending
	}
	u.log.Info("quote status changed",
		zap.String("quote_number", updated.QuoteNumber),
		zap.String("status", string(updated.Status)),
	)
	return updated, nil
}

func normalizeCustomer(c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Name == "" || c.Email == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}
	addr, err := mail.ParseAddress(c.Email)
	if err != nil || addr.Address != c.Email {
		return entities.Customer{}, ErrInvalidCustomer
	}
	return c, nil
}

// newQuoteNumber builds Q-{base36 unix millis}-{3 random base36 chars}.
func newQuoteNumber(now time.Time) (string, error) {
	suffix := make([]byte, 3)
	limit := big.NewInt(int64(len(base36)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("quote number: %w", err)
		}
		suffix[i] = base36[n.Int64()]
	}
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return "Q-" + ts + "-" + string(suffix), nil
}
