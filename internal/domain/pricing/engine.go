// Package pricing turns wholesale source prices into customer offers.
//
// Every function is pure with respect to storage: the margin policy is passed in
// explicitly and callers persist whatever they need.
package pricing

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"buyback_service/internal/domain/entities"

	"go.uber.org/zap"
)

// OverrideEpsilon is the tolerance under which an edited price is considered
// equal to the computed one.
const OverrideEpsilon = 0.01

var (
	ErrInvalidGrade       = errors.New("invalid grade")
	ErrInvalidSourcePrice = errors.New("invalid source price")
	ErrInvalidOverride    = errors.New("invalid override price")
)

// PriceSource tells where a displayed price came from.
type PriceSource string

const (
	PriceSourceOverride PriceSource = "override"
	PriceSourceCache    PriceSource = "cache"
	PriceSourceLive     PriceSource = "live"
	PriceSourceNone     PriceSource = "none"
)

// DisplayPrice is the price shown for one grade of a record.
type DisplayPrice struct {
	Price        *float64
	IsOverridden bool
	Source       PriceSource
}

// Engine applies margin policies. It carries no policy state of its own.
type Engine struct {
	log *zap.Logger
}

func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log.Named("pricing")}
}

// CalculateOfferPrice applies the series override (when given and enabled) or the
// global policy to a source price. A nil source yields a nil offer.
func (e *Engine) CalculateOfferPrice(source *float64, grade entities.Grade, policy entities.MarginPolicy, series *entities.SeriesOverride) (*float64, error) {
	if !grade.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGrade, grade)
	}
	if source == nil {
		return nil, nil
	}
	price := *source
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSourcePrice, price)
	}

	var offer float64
	switch {
	case series != nil && series.Enabled:
		offer = price - price*(e.margin(series.Margins, grade, "series")/100)
	case policy.Mode == entities.MarginModeTiered:
		tier, ok := selectTier(policy.TieredMargins, price)
		if !ok {
			return nil, fmt.Errorf("%w: tiered policy has no tiers", entities.ErrInvalidTierTable)
		}
		offer = price - e.margin(tier.Deductions, grade, "tier")
	default:
		offer = price - price*(e.margin(policy.PercentageMargins, grade, "percentage")/100)
	}

	offer = clamp(roundCents(offer), 0, price)
	return &offer, nil
}

// ResolveOffer computes the offer for a record: manual override first, then an
// enabled series override for the record's series, then the global policy.
func (e *Engine) ResolveOffer(record entities.PricingRecord, grade entities.Grade, policy entities.MarginPolicy) (*float64, error) {
	if !grade.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGrade, grade)
	}
	if o := record.Override(grade); o != nil {
		v := *o
		return &v, nil
	}
	return e.CalculateOfferPrice(record.SourcePrice(grade), grade, policy, policy.SeriesOverrideFor(record.Series))
}

// ResolveDisplayPrice picks the displayed price: manual override, then the cached
// offer when it was computed under the current policy revision, then a live
// computation.
func (e *Engine) ResolveDisplayPrice(record entities.PricingRecord, grade entities.Grade, policy entities.MarginPolicy) (DisplayPrice, error) {
	if !grade.Valid() {
		return DisplayPrice{}, fmt.Errorf("%w: %q", ErrInvalidGrade, grade)
	}
	if o := record.Override(grade); o != nil {
		v := *o
		return DisplayPrice{Price: &v, IsOverridden: true, Source: PriceSourceOverride}, nil
	}
	if cached := record.CachedOffer(grade); cached != nil && CacheFresh(record, policy) {
		v := *cached
		return DisplayPrice{Price: &v, Source: PriceSourceCache}, nil
	}
	live, err := e.CalculateOfferPrice(record.SourcePrice(grade), grade, policy, policy.SeriesOverrideFor(record.Series))
	if err != nil {
		return DisplayPrice{}, err
	}
	if live == nil {
		return DisplayPrice{Source: PriceSourceNone}, nil
	}
	return DisplayPrice{Price: live, Source: PriceSourceLive}, nil
}

// CacheFresh reports whether the record's cached offers were computed at or after
// the policy's last change.
func CacheFresh(record entities.PricingRecord, policy entities.MarginPolicy) bool {
	if record.OffersCalculatedAt == nil {
		return false
	}
	return !record.OffersCalculatedAt.Before(policy.UpdatedAt)
}

// ComputeOffers refreshes the cached offers of a record in place. Overrides are not
// folded into the cache; they are resolved on read.
func (e *Engine) ComputeOffers(record *entities.PricingRecord, policy entities.MarginPolicy, calculatedAt time.Time) error {
	series := policy.SeriesOverrideFor(record.Series)
	for _, g := range entities.AllGrades {
		offer, err := e.CalculateOfferPrice(record.SourcePrice(g), g, policy, series)
		if err != nil {
			return fmt.Errorf("record %s %s: %w", record.ID, g, err)
		}
		record.SetCachedOffer(g, offer)
	}
	t := calculatedAt
	record.OffersCalculatedAt = &t
	return nil
}

// OverrideDecision is the outcome of reconciling an admin edit.
type OverrideDecision struct {
	Grade    entities.Grade
	Value    *float64
	Computed *float64
	Cleared  bool
}

// ReconcileOverride decides whether an edited price becomes a manual override.
// A nil edit clears the override. An edit within OverrideEpsilon of the price the
// global policy would compute (series overrides ignored) also clears it.
func (e *Engine) ReconcileOverride(edited *float64, record entities.PricingRecord, grade entities.Grade, policy entities.MarginPolicy) (OverrideDecision, error) {
	if !grade.Valid() {
		return OverrideDecision{}, fmt.Errorf("%w: %q", ErrInvalidGrade, grade)
	}
	if edited == nil {
		return OverrideDecision{Grade: grade, Cleared: true}, nil
	}
	if *edited < 0 || math.IsNaN(*edited) || math.IsInf(*edited, 0) {
		return OverrideDecision{}, fmt.Errorf("%w: %v", ErrInvalidOverride, *edited)
	}

	computed, err := e.CalculateOfferPrice(record.SourcePrice(grade), grade, policy, nil)
	if err != nil {
		return OverrideDecision{}, err
	}
	if computed != nil && math.Abs(*edited-*computed) < OverrideEpsilon {
		return OverrideDecision{Grade: grade, Computed: computed, Cleared: true}, nil
	}
	v := roundCents(*edited)
	return OverrideDecision{Grade: grade, Value: &v, Computed: computed}, nil
}

func (e *Engine) margin(m entities.GradeMargins, grade entities.Grade, table string) float64 {
	v, ok := m[grade]
	if !ok {
		e.log.Warn("grade missing from margin table, using zero margin",
			zap.String("table", table),
			zap.String("grade", string(grade)),
		)
		return 0
	}
	return v
}

// selectTier walks tiers from the highest minimum down and returns the first tier
// whose minimum is at or below the price. When nothing matches the highest tier
// is used.
func selectTier(tiers []entities.MarginTier, price float64) (entities.MarginTier, bool) {
	if len(tiers) == 0 {
		return entities.MarginTier{}, false
	}
	ordered := make([]entities.MarginTier, len(tiers))
	copy(ordered, tiers)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Min > ordered[j].Min })

	for _, t := range ordered {
		if price >= t.Min {
			return t, true
		}
	}
	return ordered[0], true
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
