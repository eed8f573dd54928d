package response

import (
	"time"

	"buyback_service/internal/domain/entities"
	"buyback_service/internal/usecase"
)

type GradePriceResponse struct {
	Grade        string   `json:"grade"`
	SourcePrice  *float64 `json:"source_price"`
	Price        *float64 `json:"price"`
	IsOverridden bool     `json:"is_overridden"`
	Source       string   `json:"source"`
}

// RecordPricesResponse is the admin view of one pricing record.
type RecordPricesResponse struct {
	ItemID             string               `json:"item_id"`
	Model              string               `json:"model"`
	DeviceType         string               `json:"device_type,omitempty"`
	Storage            string               `json:"storage"`
	Network            string               `json:"network"`
	Series             string               `json:"series,omitempty"`
	PriceSwap          *float64             `json:"price_swap"`
	CrackedBack        *float64             `json:"cracked_back"`
	CrackedLens        *float64             `json:"cracked_lens"`
	Grades             []GradePriceResponse `json:"grades"`
	OverrideSetAt      *time.Time           `json:"override_set_at,omitempty"`
	OverrideSetBy      string               `json:"override_set_by,omitempty"`
	OffersCalculatedAt *time.Time           `json:"offers_calculated_at,omitempty"`
	SyncedAt           time.Time            `json:"synced_at"`
}

func FromRecordPrices(rp usecase.RecordPrices) RecordPricesResponse {
	r := rp.Record
	out := RecordPricesResponse{
		ItemID:             r.ID,
		Model:              r.Model,
		DeviceType:         r.DeviceType,
		Storage:            r.Storage,
		Network:            r.Network,
		Series:             r.Series,
		PriceSwap:          r.PriceSwap,
		CrackedBack:        r.CrackedBack,
		CrackedLens:        r.CrackedLens,
		Grades:             make([]GradePriceResponse, 0, len(rp.Prices)),
		OverrideSetAt:      r.OverrideSetAt,
		OverrideSetBy:      r.OverrideSetBy,
		OffersCalculatedAt: r.OffersCalculatedAt,
		SyncedAt:           r.SyncedAt,
	}
	for _, p := range rp.Prices {
		out.Grades = append(out.Grades, GradePriceResponse{
			Grade:        string(p.Grade),
			SourcePrice:  p.SourcePrice,
			Price:        p.Price,
			IsOverridden: p.IsOverridden,
			Source:       string(p.Source),
		})
	}
	return out
}

type MarginTierResponse struct {
	Min        float64            `json:"min"`
	Max        *float64           `json:"max"`
	Deductions map[string]float64 `json:"deductions"`
}

type SeriesOverrideResponse struct {
	Enabled bool               `json:"enabled"`
	Margins map[string]float64 `json:"margins"`
}

type MarginPolicyResponse struct {
	Mode              string                            `json:"mode"`
	PercentageMargins map[string]float64                `json:"percentage_margins"`
	TieredMargins     []MarginTierResponse              `json:"tiered_margins"`
	SeriesOverrides   map[string]SeriesOverrideResponse `json:"series_overrides"`
	UpdatedAt         time.Time                         `json:"updated_at"`
	UpdatedBy         string                            `json:"updated_by,omitempty"`
}

func FromMarginPolicy(p entities.MarginPolicy) MarginPolicyResponse {
	out := MarginPolicyResponse{
		Mode:              string(p.Mode),
		PercentageMargins: fromGradeMargins(p.PercentageMargins),
		TieredMargins:     make([]MarginTierResponse, 0, len(p.TieredMargins)),
		SeriesOverrides:   make(map[string]SeriesOverrideResponse, len(p.SeriesOverrides)),
		UpdatedAt:         p.UpdatedAt,
		UpdatedBy:         p.UpdatedBy,
	}
	for _, t := range p.TieredMargins {
		out.TieredMargins = append(out.TieredMargins, MarginTierResponse{
			Min:        t.Min,
			Max:        t.Max,
			Deductions: fromGradeMargins(t.Deductions),
		})
	}
	for name, o := range p.SeriesOverrides {
		out.SeriesOverrides[name] = SeriesOverrideResponse{Enabled: o.Enabled, Margins: fromGradeMargins(o.Margins)}
	}
	return out
}

type SyncResultResponse struct {
	Received int `json:"received"`
	Created  int `json:"created"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
}

func FromSyncResult(r usecase.SyncResult) SyncResultResponse {
	return SyncResultResponse{Received: r.Received, Created: r.Created, Updated: r.Updated, Skipped: r.Skipped}
}

func fromGradeMargins(m entities.GradeMargins) map[string]float64 {
	out := make(map[string]float64, len(m))
	for g, v := range m {
		out[string(g)] = v
	}
	return out
}
