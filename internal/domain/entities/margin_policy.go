package entities

import (
	"errors"
	"fmt"
	"time"
)

type MarginMode string

const (
	MarginModePercentage MarginMode = "percentage"
	MarginModeTiered     MarginMode = "tiered"
)

// TierCount is the number of tiers a tiered policy must define.
const TierCount = 5

var (
	ErrInvalidMarginMode   = errors.New("invalid margin mode")
	ErrInvalidPercentage   = errors.New("percentage margin must be between 0 and 100")
	ErrInvalidTierTable    = errors.New("invalid tier table")
	ErrInvalidDeduction    = errors.New("tier deduction must not be negative")
	ErrUnknownGradeInTable = errors.New("unknown grade in margin table")
)

// MarginTier deducts a flat amount per grade for source prices in [Min, Max).
// A nil Max means the tier is unbounded.
type MarginTier struct {
	Min        float64      `json:"min"`
	Max        *float64     `json:"max"`
	Deductions GradeMargins `json:"deductions"`
}

// SeriesOverride replaces the global percentage margins for records of one series
// while Enabled is set.
type SeriesOverride struct {
	Enabled bool         `json:"enabled"`
	Margins GradeMargins `json:"margins"`
}

// MarginPolicy is the active rule set for turning source prices into offers.
//
// Storage model (DynamoDB):
//   - single item, PK: id = "active"
//
// The policy is threaded explicitly through every pricing call. UpdatedAt is the
// revision marker used to decide whether cached offers on a PricingRecord are fresh.
type MarginPolicy struct {
	Mode              MarginMode                `json:"mode"`
	PercentageMargins GradeMargins              `json:"percentage_margins"`
	TieredMargins     []MarginTier              `json:"tiered_margins"`
	SeriesOverrides   map[string]SeriesOverride `json:"series_overrides"`
	UpdatedAt         time.Time                 `json:"updated_at"`
	UpdatedBy         string                    `json:"updated_by,omitempty"`
}

// SeriesOverrideFor returns the enabled override for a series, if any.
func (p MarginPolicy) SeriesOverrideFor(series string) *SeriesOverride {
	if series == "" || len(p.SeriesOverrides) == 0 {
		return nil
	}
	o, ok := p.SeriesOverrides[series]
	if !ok || !o.Enabled {
		return nil
	}
	return &o
}

// Validate checks the policy invariants: known mode, percentages within [0,100],
// and a contiguous ascending tier table that covers [0, ∞).
func (p MarginPolicy) Validate() error {
	switch p.Mode {
	case MarginModePercentage, MarginModeTiered:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMarginMode, p.Mode)
	}

	if err := validatePercentages(p.PercentageMargins); err != nil {
		return err
	}
	for name, o := range p.SeriesOverrides {
		if err := validatePercentages(o.Margins); err != nil {
			return fmt.Errorf("series %q: %w", name, err)
		}
	}

	// A stored tier table must be well-formed even while percentage mode is active.
	if p.Mode == MarginModeTiered || len(p.TieredMargins) > 0 {
		if err := validateTiers(p.TieredMargins); err != nil {
			return err
		}
	}
	return nil
}

func validatePercentages(m GradeMargins) error {
	for g, v := range m {
		if !g.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownGradeInTable, g)
		}
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: %s=%v", ErrInvalidPercentage, g, v)
		}
	}
	return nil
}

func validateTiers(tiers []MarginTier) error {
	if len(tiers) != TierCount {
		return fmt.Errorf("%w: expected %d tiers, got %d", ErrInvalidTierTable, TierCount, len(tiers))
	}
	if tiers[0].Min != 0 {
		return fmt.Errorf("%w: first tier must start at 0", ErrInvalidTierTable)
	}
	for i, t := range tiers {
		for g, d := range t.Deductions {
			if !g.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownGradeInTable, g)
			}
			if d < 0 {
				return fmt.Errorf("%w: tier %d %s=%v", ErrInvalidDeduction, i+1, g, d)
			}
		}
		last := i == len(tiers)-1
		if last {
			if t.Max != nil {
				return fmt.Errorf("%w: last tier must be unbounded", ErrInvalidTierTable)
			}
			continue
		}
		if t.Max == nil || *t.Max <= t.Min {
			return fmt.Errorf("%w: tier %d must have max greater than min", ErrInvalidTierTable, i+1)
		}
		if tiers[i+1].Min != *t.Max {
			return fmt.Errorf("%w: tier %d must start where tier %d ends", ErrInvalidTierTable, i+2, i+1)
		}
	}
	return nil
}

// DefaultMarginPolicy is used until an admin saves a policy.
func DefaultMarginPolicy() MarginPolicy {
	bound := func(v float64) *float64 { return &v }
	return MarginPolicy{
		Mode: MarginModePercentage,
		PercentageMargins: GradeMargins{
			GradeA:   25,
			GradeB:   25,
			GradeC:   30,
			GradeD:   35,
			GradeDOA: 40,
		},
		TieredMargins: []MarginTier{
			{Min: 0, Max: bound(100), Deductions: GradeMargins{GradeA: 20, GradeB: 25, GradeC: 30, GradeD: 35, GradeDOA: 40}},
			{Min: 100, Max: bound(300), Deductions: GradeMargins{GradeA: 40, GradeB: 50, GradeC: 60, GradeD: 70, GradeDOA: 80}},
			{Min: 300, Max: bound(500), Deductions: GradeMargins{GradeA: 60, GradeB: 80, GradeC: 90, GradeD: 100, GradeDOA: 110}},
			{Min: 500, Max: bound(800), Deductions: GradeMargins{GradeA: 90, GradeB: 110, GradeC: 130, GradeD: 150, GradeDOA: 170}},
			{Min: 800, Max: nil, Deductions: GradeMargins{GradeA: 120, GradeB: 150, GradeC: 180, GradeD: 210, GradeDOA: 240}},
		},
		SeriesOverrides: map[string]SeriesOverride{},
	}
}
