package request

import (
	"errors"
	"fmt"
	"strings"

	"buyback_service/internal/domain/entities"
)

var ErrUnknownGrade = errors.New("unknown grade")

// OverridesRequest carries admin edits per grade. A key mapped to null clears
// that grade's override; grades left out are not touched.
type OverridesRequest struct {
	Overrides map[string]*float64 `json:"overrides" binding:"required"`
	UserID    string              `json:"user_id"`
}

func (r OverridesRequest) ToGrades() (map[entities.Grade]*float64, error) {
	out := make(map[entities.Grade]*float64, len(r.Overrides))
	for k, v := range r.Overrides {
		g := entities.Grade(strings.TrimSpace(k))
		if !g.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownGrade, k)
		}
		out[g] = v
	}
	return out, nil
}

type MarginTierRequest struct {
	Min        float64            `json:"min"`
	Max        *float64           `json:"max"`
	Deductions map[string]float64 `json:"deductions"`
}

type SeriesOverrideRequest struct {
	Enabled bool               `json:"enabled"`
	Margins map[string]float64 `json:"margins"`
}

// MarginPolicyRequest replaces the whole active policy.
type MarginPolicyRequest struct {
	Mode              string                           `json:"mode" binding:"required,oneof=percentage tiered"`
	PercentageMargins map[string]float64               `json:"percentage_margins"`
	TieredMargins     []MarginTierRequest              `json:"tiered_margins"`
	SeriesOverrides   map[string]SeriesOverrideRequest `json:"series_overrides"`
	UserID            string                           `json:"user_id"`
}

func (r MarginPolicyRequest) ToEntity() entities.MarginPolicy {
	p := entities.MarginPolicy{
		Mode:              entities.MarginMode(r.Mode),
		PercentageMargins: toGradeMargins(r.PercentageMargins),
		SeriesOverrides:   make(map[string]entities.SeriesOverride, len(r.SeriesOverrides)),
	}
	for _, t := range r.TieredMargins {
		p.TieredMargins = append(p.TieredMargins, entities.MarginTier{
			Min:        t.Min,
			Max:        t.Max,
			Deductions: toGradeMargins(t.Deductions),
		})
	}
	for name, o := range r.SeriesOverrides {
		p.SeriesOverrides[strings.TrimSpace(name)] = entities.SeriesOverride{
			Enabled: o.Enabled,
			Margins: toGradeMargins(o.Margins),
		}
	}
	return p
}

// ImportPricesRequest is a batch of wholesale rows pushed by an admin.
type ImportPricesRequest struct {
	Rows []entities.SourcePriceRow `json:"rows" binding:"required,min=1"`
}

func toGradeMargins(m map[string]float64) entities.GradeMargins {
	out := make(entities.GradeMargins, len(m))
	for k, v := range m {
		out[entities.Grade(strings.TrimSpace(k))] = v
	}
	return out
}
