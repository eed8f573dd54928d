package entities

import (
	"strings"
	"time"
)

// PricingRecord holds wholesale source prices, admin overrides and cached offers
// for one device variant (model + storage + network).
//
// Storage model (DynamoDB):
//   - PK: id (variant key, see VariantKey)
//
// Source prices come from the wholesale feed and are nil when the feed has no
// price for that grade. Cached offers are a materialized view of the margin
// policy applied to the source prices; OffersCalculatedAt tells which policy
// revision produced them.
type PricingRecord struct {
	ID         string `json:"id"`
	Model      string `json:"model"`
	DeviceType string `json:"device_type"`
	Storage    string `json:"storage"`
	Network    string `json:"network"`
	Series     string `json:"series,omitempty"`

	PriceSwap   *float64 `json:"price_swap"`
	PriceGradeA *float64 `json:"price_grade_a"`
	PriceGradeB *float64 `json:"price_grade_b"`
	PriceGradeC *float64 `json:"price_grade_c"`
	PriceGradeD *float64 `json:"price_grade_d"`
	PriceDOA    *float64 `json:"price_doa"`
	CrackedBack *float64 `json:"cracked_back"`
	CrackedLens *float64 `json:"cracked_lens"`

	OverrideGradeA *float64   `json:"override_grade_a"`
	OverrideGradeB *float64   `json:"override_grade_b"`
	OverrideGradeC *float64   `json:"override_grade_c"`
	OverrideGradeD *float64   `json:"override_grade_d"`
	OverrideDOA    *float64   `json:"override_doa"`
	OverrideSetAt  *time.Time `json:"override_set_at,omitempty"`
	OverrideSetBy  string     `json:"override_set_by,omitempty"`

	OfferGradeA        *float64   `json:"offer_grade_a"`
	OfferGradeB        *float64   `json:"offer_grade_b"`
	OfferGradeC        *float64   `json:"offer_grade_c"`
	OfferGradeD        *float64   `json:"offer_grade_d"`
	OfferDOA           *float64   `json:"offer_doa"`
	OffersCalculatedAt *time.Time `json:"offers_calculated_at,omitempty"`

	SyncedAt  time.Time `json:"synced_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VariantKey builds the stable record id for a model/storage/network combination.
func VariantKey(model, storage, network string) string {
	norm := func(s string) string {
		return strings.Join(strings.Fields(strings.ToLower(s)), "-")
	}
	return norm(model) + "|" + norm(storage) + "|" + norm(network)
}

func (r *PricingRecord) SourcePrice(g Grade) *float64 {
	switch g {
	case GradeA:
		return r.PriceGradeA
	case GradeB:
		return r.PriceGradeB
	case GradeC:
		return r.PriceGradeC
	case GradeD:
		return r.PriceGradeD
	case GradeDOA:
		return r.PriceDOA
	}
	return nil
}

func (r *PricingRecord) Override(g Grade) *float64 {
	switch g {
	case GradeA:
		return r.OverrideGradeA
	case GradeB:
		return r.OverrideGradeB
	case GradeC:
		return r.OverrideGradeC
	case GradeD:
		return r.OverrideGradeD
	case GradeDOA:
		return r.OverrideDOA
	}
	return nil
}

func (r *PricingRecord) SetOverride(g Grade, v *float64) {
	switch g {
	case GradeA:
		r.OverrideGradeA = v
	case GradeB:
		r.OverrideGradeB = v
	case GradeC:
		r.OverrideGradeC = v
	case GradeD:
		r.OverrideGradeD = v
	case GradeDOA:
		r.OverrideDOA = v
	}
}

func (r *PricingRecord) CachedOffer(g Grade) *float64 {
	switch g {
	case GradeA:
		return r.OfferGradeA
	case GradeB:
		return r.OfferGradeB
	case GradeC:
		return r.OfferGradeC
	case GradeD:
		return r.OfferGradeD
	case GradeDOA:
		return r.OfferDOA
	}
	return nil
}

func (r *PricingRecord) SetCachedOffer(g Grade, v *float64) {
	switch g {
	case GradeA:
		r.OfferGradeA = v
	case GradeB:
		r.OfferGradeB = v
	case GradeC:
		r.OfferGradeC = v
	case GradeD:
		r.OfferGradeD = v
	case GradeDOA:
		r.OfferDOA = v
	}
}

// HasOverrides reports whether any grade carries a manual override.
func (r *PricingRecord) HasOverrides() bool {
	for _, g := range AllGrades {
		if r.Override(g) != nil {
			return true
		}
	}
	return false
}

// SourcePriceRow is one wholesale feed entry for a device variant.
type SourcePriceRow struct {
	Model       string   `json:"model"`
	DeviceType  string   `json:"device_type"`
	Storage     string   `json:"storage"`
	Network     string   `json:"network"`
	Series      string   `json:"series"`
	PriceSwap   *float64 `json:"price_swap"`
	PriceGradeA *float64 `json:"price_grade_a"`
	PriceGradeB *float64 `json:"price_grade_b"`
	PriceGradeC *float64 `json:"price_grade_c"`
	PriceGradeD *float64 `json:"price_grade_d"`
	PriceDOA    *float64 `json:"price_doa"`
	CrackedBack *float64 `json:"cracked_back"`
	CrackedLens *float64 `json:"cracked_lens"`
}

// ApplySource copies feed prices and descriptive fields onto the record. Overrides
// and cached offers are left alone.
func (r *PricingRecord) ApplySource(row SourcePriceRow) {
	r.Model = row.Model
	r.DeviceType = row.DeviceType
	r.Storage = row.Storage
	r.Network = row.Network
	r.Series = row.Series
	r.PriceSwap = row.PriceSwap
	r.PriceGradeA = row.PriceGradeA
	r.PriceGradeB = row.PriceGradeB
	r.PriceGradeC = row.PriceGradeC
	r.PriceGradeD = row.PriceGradeD
	r.PriceDOA = row.PriceDOA
	r.CrackedBack = row.CrackedBack
	r.CrackedLens = row.CrackedLens
}
