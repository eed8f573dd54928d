package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"buyback_service/internal/clock"
	"buyback_service/internal/domain/entities"
	"buyback_service/internal/domain/pricing"
	"buyback_service/internal/infrastructure/metrics"
	"buyback_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidItemID         = errors.New("invalid item id")
	ErrPricingRecordNotFound = errors.New("pricing record not found")
	ErrInvalidDevice         = errors.New("model and storage are required")
	ErrInvalidCondition      = errors.New("invalid device condition")
	ErrInvalidNetwork        = errors.New("invalid network carrier")
	ErrPricingUnavailable    = errors.New("pricing not available")
	ErrInvalidOverrides      = errors.New("invalid overrides")
	ErrInvalidMarginPolicy   = errors.New("invalid margin policy")
	ErrEmptyImport           = errors.New("no price rows to import")
	ErrFeedNotConfigured     = errors.New("price feed not configured")
)

// GradePrice is one row of the admin pricing view.
type GradePrice struct {
	Grade        entities.Grade
	SourcePrice  *float64
	Price        *float64
	IsOverridden bool
	Source       pricing.PriceSource
}

// RecordPrices is a pricing record together with its resolved display prices.
type RecordPrices struct {
	Record entities.PricingRecord
	Prices []GradePrice
}

// Offer is the customer-facing price for one device configuration.
type Offer struct {
	ItemID       string
	Model        string
	Storage      string
	Network      string
	Condition    string
	Grade        entities.Grade
	AtlasPrice   float64
	OfferPrice   float64
	Margin       float64
	IsOverridden bool
	Source       pricing.PriceSource
}

// SyncResult summarizes a source price import.
type SyncResult struct {
	Received int
	Created  int
	Updated  int
	Skipped  int
}

// IPricingUseCase exposes pricing administration and offer lookup.
type IPricingUseCase interface {
	GetDisplayPrices(ctx context.Context, itemID string) (RecordPrices, error)
	GetOffer(ctx context.Context, model, storage, network, condition string) (Offer, error)
	SaveOverrides(ctx context.Context, itemID string, overrides map[entities.Grade]*float64, userID string) (RecordPrices, error)
	GetMarginPolicy(ctx context.Context) (entities.MarginPolicy, error)
	SaveMarginPolicy(ctx context.Context, policy entities.MarginPolicy, userID string) (entities.MarginPolicy, error)
	RecomputeAll(ctx context.Context) (int, error)
	SyncSourcePrices(ctx context.Context, rows []entities.SourcePriceRow) (SyncResult, error)
	SyncFromFeed(ctx context.Context) (SyncResult, error)
}

// offerResolver loads the active policy and prices a device configuration.
// Quote creation and the offer preview share it.
type offerResolver struct {
	records  interfaces.IPricingRecordRepository
	policies interfaces.IMarginPolicyRepository
	engine   *pricing.Engine
}

func (r offerResolver) activePolicy(ctx context.Context) (entities.MarginPolicy, error) {
	p, found, err := r.policies.Get(ctx)
	if err != nil {
		return entities.MarginPolicy{}, fmt.Errorf("load margin policy: %w", err)
	}
	if !found {
		return entities.DefaultMarginPolicy(), nil
	}
	return p, nil
}

func (r offerResolver) resolve(ctx context.Context, model, storage, network, condition string) (Offer, error) {
	model, storage = strings.TrimSpace(model), strings.TrimSpace(storage)
	if model == "" || storage == "" {
		return Offer{}, ErrInvalidDevice
	}
	grade, canonicalCondition, ok := entities.GradeForCondition(condition)
	if !ok {
		return Offer{}, ErrInvalidCondition
	}
	canonicalNetwork, ok := entities.NormalizeNetwork(network)
	if !ok {
		return Offer{}, ErrInvalidNetwork
	}

	id := entities.VariantKey(model, storage, canonicalNetwork)
	record, err := r.records.GetByID(ctx, id)
	if err != nil {
		return Offer{}, err
	}
	if record.ID == "" {
		return Offer{}, ErrPricingRecordNotFound
	}

	policy, err := r.activePolicy(ctx)
	if err != nil {
		return Offer{}, err
	}
	display, err := r.engine.ResolveDisplayPrice(record, grade, policy)
	if err != nil {
		return Offer{}, err
	}
	if display.Price == nil {
		return Offer{}, ErrPricingUnavailable
	}

	offer := Offer{
		ItemID:       record.ID,
		Model:        record.Model,
		Storage:      record.Storage,
		Network:      canonicalNetwork,
		Condition:    canonicalCondition,
		Grade:        grade,
		OfferPrice:   *display.Price,
		IsOverridden: display.IsOverridden,
		Source:       display.Source,
	}
	if src := record.SourcePrice(grade); src != nil {
		offer.AtlasPrice = *src
		// An override above the source price yields a negative margin.
		offer.Margin = math.Round((*src-offer.OfferPrice)*100) / 100
	}
	return offer, nil
}

type PricingUseCase struct {
	offerResolver
	feed    interfaces.IPriceFeed
	clock   clock.Clock
	log     *zap.Logger
	metrics *metrics.Metrics
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

// NewPricingUseCase wires the pricing use case. feed may be nil when no upstream
// feed is configured.
func NewPricingUseCase(
	records interfaces.IPricingRecordRepository,
	policies interfaces.IMarginPolicyRepository,
	engine *pricing.Engine,
	feed interfaces.IPriceFeed,
	clk clock.Clock,
	log *zap.Logger,
	mt *metrics.Metrics,
) *PricingUseCase {
	if clk == nil {
		clk = clock.System{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	if engine == nil {
		engine = pricing.NewEngine(log)
	}
	return &PricingUseCase{
		offerResolver: offerResolver{records: records, policies: policies, engine: engine},
		feed:          feed,
		clock:         clk,
		log:           log.Named("pricing_usecase"),
		metrics:       mt,
	}
}

func (u *PricingUseCase) GetDisplayPrices(ctx context.Context, itemID string) (RecordPrices, error) {
	record, err := u.loadRecord(ctx, itemID)
	if err != nil {
		return RecordPrices{}, err
	}
	policy, err := u.activePolicy(ctx)
	if err != nil {
		return RecordPrices{}, err
	}
	return u.displayPrices(record, policy)
}

func (u *PricingUseCase) GetOffer(ctx context.Context, model, storage, network, condition string) (Offer, error) {
	return u.resolve(ctx, model, storage, network, condition)
}

// SaveOverrides applies admin edits. A nil value clears the grade's override;
// grades missing from the map are left untouched. Edits that match the computed
// price within a cent are not stored as overrides.
func (u *PricingUseCase) SaveOverrides(ctx context.Context, itemID string, overrides map[entities.Grade]*float64, userID string) (RecordPrices, error) {
	if len(overrides) == 0 {
		return RecordPrices{}, fmt.Errorf("%w: no grades given", ErrInvalidOverrides)
	}
	for g := range overrides {
		if !g.Valid() {
			return RecordPrices{}, fmt.Errorf("%w: unknown grade %q", ErrInvalidOverrides, g)
		}
	}

	record, err := u.loadRecord(ctx, itemID)
	if err != nil {
		return RecordPrices{}, err
	}
	policy, err := u.activePolicy(ctx)
	if err != nil {
		return RecordPrices{}, err
	}

	for _, g := range entities.AllGrades {
		edited, ok := overrides[g]
		if !ok {
			continue
		}
		decision, err := u.engine.ReconcileOverride(edited, record, g, policy)
		if err != nil {
			if errors.Is(err, pricing.ErrInvalidOverride) {
				return RecordPrices{}, fmt.Errorf("%w: %w", ErrInvalidOverrides, err)
			}
			return RecordPrices{}, err
		}
		record.SetOverride(g, decision.Value)
	}

	now := u.clock.Now()
	if record.HasOverrides() {
		record.OverrideSetAt = &now
		record.OverrideSetBy = strings.TrimSpace(userID)
	} else {
		record.OverrideSetAt = nil
		record.OverrideSetBy = ""
	}
	if err := u.engine.ComputeOffers(&record, policy, now); err != nil {
		return RecordPrices{}, err
	}
	record.UpdatedAt = now

	if err := u.records.Save(ctx, record); err != nil {
		return RecordPrices{}, err
	}
	u.log.Info("pricing overrides saved",
		zap.String("item_id", record.ID),
		zap.String("user_id", userID),
		zap.Bool("has_overrides", record.HasOverrides()),
	)
	return u.displayPrices(record, policy)
}

func (u *PricingUseCase) GetMarginPolicy(ctx context.Context) (entities.MarginPolicy, error) {
	return u.activePolicy(ctx)
}

// SaveMarginPolicy replaces the active policy and then refreshes every cached
// offer. Reads also ignore caches older than the policy, so a failed refresh
// only costs live computation.
func (u *PricingUseCase) SaveMarginPolicy(ctx context.Context, policy entities.MarginPolicy, userID string) (entities.MarginPolicy, error) {
	if policy.PercentageMargins == nil {
		policy.PercentageMargins = entities.GradeMargins{}
	}
	if policy.SeriesOverrides == nil {
		policy.SeriesOverrides = map[string]entities.SeriesOverride{}
	}
	if err := policy.Validate(); err != nil {
		return entities.MarginPolicy{}, fmt.Errorf("%w: %w", ErrInvalidMarginPolicy, err)
	}

	policy.UpdatedAt = u.clock.Now()
	policy.UpdatedBy = strings.TrimSpace(userID)
	if err := u.policies.Save(ctx, policy); err != nil {
		return entities.MarginPolicy{}, err
	}
	u.log.Info("margin policy saved",
		zap.String("mode", string(policy.Mode)),
		zap.String("user_id", policy.UpdatedBy),
	)

	if _, err := u.recompute(ctx, policy); err != nil {
		u.log.Error("recompute cached offers after policy change failed", zap.Error(err))
	}
	return policy, nil
}

// RecomputeAll refreshes the cached offers of every record under the active policy.
func (u *PricingUseCase) RecomputeAll(ctx context.Context) (int, error) {
	policy, err := u.activePolicy(ctx)
	if err != nil {
		return 0, err
	}
	return u.recompute(ctx, policy)
}

func (u *PricingUseCase) recompute(ctx context.Context, policy entities.MarginPolicy) (int, error) {
	records, err := u.records.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pricing records: %w", err)
	}

	now := u.clock.Now()
	updated := 0
	for i := range records {
		rec := records[i]
		if err := u.engine.ComputeOffers(&rec, policy, now); err != nil {
			u.log.Warn("skipping record with invalid source prices", zap.String("item_id", rec.ID), zap.Error(err))
			continue
		}
		rec.UpdatedAt = now
		if err := u.records.Save(ctx, rec); err != nil {
			return updated, fmt.Errorf("save pricing record %s: %w", rec.ID, err)
		}
		updated++
	}
	u.metrics.AddOffersRecomputed(updated)
	u.log.Info("cached offers recomputed", zap.Int("records", updated), zap.Int("total", len(records)))
	return updated, nil
}

// SyncSourcePrices upserts wholesale rows. Overrides on existing records are kept
// and cached offers are recomputed for every touched record.
func (u *PricingUseCase) SyncSourcePrices(ctx context.Context, rows []entities.SourcePriceRow) (SyncResult, error) {
	if len(rows) == 0 {
		return SyncResult{}, ErrEmptyImport
	}
	policy, err := u.activePolicy(ctx)
	if err != nil {
		return SyncResult{}, err
	}

	res := SyncResult{Received: len(rows)}
	now := u.clock.Now()
	for _, row := range rows {
		row, ok := normalizeRow(row)
		if !ok {
			res.Skipped++
			u.log.Warn("skipping invalid price row", zap.String("model", row.Model), zap.String("storage", row.Storage))
			continue
		}

		id := entities.VariantKey(row.Model, row.Storage, row.Network)
		record, err := u.records.GetByID(ctx, id)
		if err != nil {
			return res, err
		}
		created := record.ID == ""
		record.ID = id
		record.ApplySource(row)
		record.SyncedAt = now
		record.UpdatedAt = now
		if err := u.engine.ComputeOffers(&record, policy, now); err != nil {
			res.Skipped++
			u.log.Warn("skipping price row", zap.String("item_id", id), zap.Error(err))
			continue
		}
		if err := u.records.Save(ctx, record); err != nil {
			return res, fmt.Errorf("save pricing record %s: %w", id, err)
		}
		if created {
			res.Created++
		} else {
			res.Updated++
		}
	}

	u.log.Info("source prices synced",
		zap.Int("received", res.Received),
		zap.Int("created", res.Created),
		zap.Int("updated", res.Updated),
		zap.Int("skipped", res.Skipped),
	)
	return res, nil
}

func (u *PricingUseCase) SyncFromFeed(ctx context.Context) (SyncResult, error) {
	if u.feed == nil {
		return SyncResult{}, ErrFeedNotConfigured
	}
	rows, err := u.feed.FetchPrices(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("fetch price feed: %w", err)
	}
	return u.SyncSourcePrices(ctx, rows)
}

func (u *PricingUseCase) loadRecord(ctx context.Context, itemID string) (entities.PricingRecord, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.PricingRecord{}, ErrInvalidItemID
	}
	record, err := u.records.GetByID(ctx, itemID)
	if err != nil {
		return entities.PricingRecord{}, err
	}
	if record.ID == "" {
		return entities.PricingRecord{}, ErrPricingRecordNotFound
	}
	return record, nil
}

func (u *PricingUseCase) displayPrices(record entities.PricingRecord, policy entities.MarginPolicy) (RecordPrices, error) {
	out := RecordPrices{Record: record, Prices: make([]GradePrice, 0, len(entities.AllGrades))}
	for _, g := range entities.AllGrades {
		dp, err := u.engine.ResolveDisplayPrice(record, g, policy)
		if err != nil {
			return RecordPrices{}, err
		}
		out.Prices = append(out.Prices, GradePrice{
			Grade:        g,
			SourcePrice:  record.SourcePrice(g),
			Price:        dp.Price,
			IsOverridden: dp.IsOverridden,
			Source:       dp.Source,
		})
	}
	return out, nil
}

// normalizeRow trims identifying fields and canonicalizes known carriers. Rows
// without model, storage or network are rejected.
func normalizeRow(row entities.SourcePriceRow) (entities.SourcePriceRow, bool) {
	row.Model = strings.TrimSpace(row.Model)
	row.Storage = strings.TrimSpace(row.Storage)
	row.Network = strings.TrimSpace(row.Network)
	row.Series = strings.TrimSpace(row.Series)
	if row.Model == "" || row.Storage == "" || row.Network == "" {
		return row, false
	}
	if n, ok := entities.NormalizeNetwork(row.Network); ok {
		row.Network = n
	}
	return row, true
}
