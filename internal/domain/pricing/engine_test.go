package pricing

import (
	"errors"
	"testing"
	"time"

	"buyback_service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptr(v float64) *float64 { return &v }

func percentagePolicy() entities.MarginPolicy {
	p := entities.DefaultMarginPolicy()
	p.Mode = entities.MarginModePercentage
	p.PercentageMargins = entities.GradeMargins{
		entities.GradeA:   25,
		entities.GradeB:   30,
		entities.GradeC:   35,
		entities.GradeD:   50,
		entities.GradeDOA: 60,
	}
	return p
}

func tieredPolicy() entities.MarginPolicy {
	p := entities.DefaultMarginPolicy()
	p.Mode = entities.MarginModeTiered
	p.TieredMargins = []entities.MarginTier{
		{Min: 0, Max: ptr(100), Deductions: entities.GradeMargins{entities.GradeA: 10, entities.GradeB: 20, entities.GradeC: 30, entities.GradeD: 40, entities.GradeDOA: 50}},
		{Min: 100, Max: ptr(300), Deductions: entities.GradeMargins{entities.GradeA: 30, entities.GradeB: 40, entities.GradeC: 50, entities.GradeD: 60, entities.GradeDOA: 70}},
		{Min: 300, Max: ptr(500), Deductions: entities.GradeMargins{entities.GradeA: 60, entities.GradeB: 80, entities.GradeC: 90, entities.GradeD: 100, entities.GradeDOA: 110}},
		{Min: 500, Max: ptr(800), Deductions: entities.GradeMargins{entities.GradeA: 90, entities.GradeB: 110, entities.GradeC: 130, entities.GradeD: 150, entities.GradeDOA: 170}},
		{Min: 800, Deductions: entities.GradeMargins{entities.GradeA: 120, entities.GradeB: 150, entities.GradeC: 180, entities.GradeD: 210, entities.GradeDOA: 240}},
	}
	return p
}

func TestCalculateOfferPrice_Percentage(t *testing.T) {
	e := NewEngine(zap.NewNop())

	offer, err := e.CalculateOfferPrice(ptr(500), entities.GradeA, percentagePolicy(), nil)
	require.NoError(t, err)
	require.NotNil(t, offer)
	assert.Equal(t, 375.0, *offer)

	offer, err = e.CalculateOfferPrice(ptr(199.99), entities.GradeB, percentagePolicy(), nil)
	require.NoError(t, err)
	assert.Equal(t, 139.99, *offer)
}

func TestCalculateOfferPrice_Tiered(t *testing.T) {
	e := NewEngine(zap.NewNop())

	offer, err := e.CalculateOfferPrice(ptr(450), entities.GradeB, tieredPolicy(), nil)
	require.NoError(t, err)
	assert.Equal(t, 370.0, *offer)

	t.Run("boundaries pick the highest applicable tier", func(t *testing.T) {
		cases := []struct {
			price float64
			want  float64
		}{
			{price: 0, want: 0},
			{price: 99.99, want: 89.99},
			{price: 100, want: 70},
			{price: 299.99, want: 269.99},
			{price: 300, want: 240},
			{price: 500, want: 410},
			{price: 800, want: 680},
			{price: 5000, want: 4880},
		}
		for _, tc := range cases {
			offer, err := e.CalculateOfferPrice(ptr(tc.price), entities.GradeA, tieredPolicy(), nil)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, *offer, 0.0001, "price %v", tc.price)
		}
	})

	t.Run("unsorted tier table still selects by descending minimum", func(t *testing.T) {
		p := tieredPolicy()
		p.TieredMargins[0], p.TieredMargins[4] = p.TieredMargins[4], p.TieredMargins[0]
		offer, err := e.CalculateOfferPrice(ptr(450), entities.GradeB, p, nil)
		require.NoError(t, err)
		assert.Equal(t, 370.0, *offer)
	})

	t.Run("no matching tier falls back to the highest tier", func(t *testing.T) {
		p := tieredPolicy()
		p.TieredMargins = p.TieredMargins[2:]
		offer, err := e.CalculateOfferPrice(ptr(250), entities.GradeA, p, nil)
		require.NoError(t, err)
		assert.Equal(t, 130.0, *offer)
	})

	t.Run("empty tier table is an error", func(t *testing.T) {
		p := tieredPolicy()
		p.TieredMargins = nil
		_, err := e.CalculateOfferPrice(ptr(250), entities.GradeA, p, nil)
		assert.ErrorIs(t, err, entities.ErrInvalidTierTable)
	})
}

func TestCalculateOfferPrice_EdgeCases(t *testing.T) {
	e := NewEngine(zap.NewNop())

	t.Run("nil source yields nil", func(t *testing.T) {
		for _, p := range []entities.MarginPolicy{percentagePolicy(), tieredPolicy()} {
			offer, err := e.CalculateOfferPrice(nil, entities.GradeC, p, nil)
			require.NoError(t, err)
			assert.Nil(t, offer)
		}
	})

	t.Run("invalid grade", func(t *testing.T) {
		_, err := e.CalculateOfferPrice(ptr(10), entities.Grade("gradeZ"), percentagePolicy(), nil)
		assert.True(t, errors.Is(err, ErrInvalidGrade))
	})

	t.Run("negative source", func(t *testing.T) {
		_, err := e.CalculateOfferPrice(ptr(-1), entities.GradeA, percentagePolicy(), nil)
		assert.ErrorIs(t, err, ErrInvalidSourcePrice)
	})

	t.Run("deduction larger than price floors at zero", func(t *testing.T) {
		offer, err := e.CalculateOfferPrice(ptr(25), entities.GradeDOA, tieredPolicy(), nil)
		require.NoError(t, err)
		assert.Equal(t, 0.0, *offer)
	})

	t.Run("missing grade means zero margin", func(t *testing.T) {
		p := percentagePolicy()
		delete(p.PercentageMargins, entities.GradeC)
		offer, err := e.CalculateOfferPrice(ptr(120), entities.GradeC, p, nil)
		require.NoError(t, err)
		assert.Equal(t, 120.0, *offer)
	})
}

func TestCalculateOfferPrice_StaysWithinSource(t *testing.T) {
	e := NewEngine(zap.NewNop())
	policies := []entities.MarginPolicy{percentagePolicy(), tieredPolicy(), entities.DefaultMarginPolicy()}
	series := &entities.SeriesOverride{Enabled: true, Margins: entities.GradeMargins{entities.GradeA: 100, entities.GradeB: 0}}

	for _, p := range policies {
		for price := 0.0; price <= 1500; price += 7.37 {
			for _, g := range entities.AllGrades {
				for _, s := range []*entities.SeriesOverride{nil, series} {
					offer, err := e.CalculateOfferPrice(ptr(price), g, p, s)
					require.NoError(t, err)
					require.NotNil(t, offer)
					assert.GreaterOrEqual(t, *offer, 0.0)
					assert.LessOrEqual(t, *offer, price)
				}
			}
		}
	}
}

func TestResolveOffer_Precedence(t *testing.T) {
	e := NewEngine(zap.NewNop())
	policy := percentagePolicy()
	policy.SeriesOverrides = map[string]entities.SeriesOverride{
		"iPhone 16 Series": {Enabled: true, Margins: entities.GradeMargins{entities.GradeA: 10}},
		"iPhone 15 Series": {Enabled: false, Margins: entities.GradeMargins{entities.GradeA: 10}},
	}

	t.Run("enabled series override supersedes global", func(t *testing.T) {
		r := entities.PricingRecord{Series: "iPhone 16 Series", PriceGradeA: ptr(500)}
		offer, err := e.ResolveOffer(r, entities.GradeA, policy)
		require.NoError(t, err)
		assert.Equal(t, 450.0, *offer)
	})

	t.Run("disabled series override is ignored", func(t *testing.T) {
		r := entities.PricingRecord{Series: "iPhone 15 Series", PriceGradeA: ptr(500)}
		offer, err := e.ResolveOffer(r, entities.GradeA, policy)
		require.NoError(t, err)
		assert.Equal(t, 375.0, *offer)
	})

	t.Run("manual override wins in every mode", func(t *testing.T) {
		for _, p := range []entities.MarginPolicy{policy, tieredPolicy()} {
			for _, g := range entities.AllGrades {
				r := entities.PricingRecord{Series: "iPhone 16 Series", PriceGradeA: ptr(500), PriceDOA: ptr(50)}
				r.SetOverride(g, ptr(400))
				offer, err := e.ResolveOffer(r, g, p)
				require.NoError(t, err)
				assert.Equal(t, 400.0, *offer)
			}
		}
	})
}

func TestResolveDisplayPrice(t *testing.T) {
	e := NewEngine(zap.NewNop())
	policy := percentagePolicy()
	policy.UpdatedAt = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("override", func(t *testing.T) {
		r := entities.PricingRecord{PriceGradeA: ptr(500), OverrideGradeA: ptr(400)}
		got, err := e.ResolveDisplayPrice(r, entities.GradeA, policy)
		require.NoError(t, err)
		assert.True(t, got.IsOverridden)
		assert.Equal(t, PriceSourceOverride, got.Source)
		assert.Equal(t, 400.0, *got.Price)
	})

	t.Run("fresh cache", func(t *testing.T) {
		at := policy.UpdatedAt.Add(time.Hour)
		r := entities.PricingRecord{PriceGradeA: ptr(500), OfferGradeA: ptr(380), OffersCalculatedAt: &at}
		got, err := e.ResolveDisplayPrice(r, entities.GradeA, policy)
		require.NoError(t, err)
		assert.Equal(t, PriceSourceCache, got.Source)
		assert.Equal(t, 380.0, *got.Price)
	})

	t.Run("stale cache is recomputed live", func(t *testing.T) {
		at := policy.UpdatedAt.Add(-time.Hour)
		r := entities.PricingRecord{PriceGradeA: ptr(500), OfferGradeA: ptr(380), OffersCalculatedAt: &at}
		got, err := e.ResolveDisplayPrice(r, entities.GradeA, policy)
		require.NoError(t, err)
		assert.Equal(t, PriceSourceLive, got.Source)
		assert.Equal(t, 375.0, *got.Price)
		assert.False(t, got.IsOverridden)
	})

	t.Run("no source price", func(t *testing.T) {
		got, err := e.ResolveDisplayPrice(entities.PricingRecord{}, entities.GradeB, policy)
		require.NoError(t, err)
		assert.Nil(t, got.Price)
		assert.Equal(t, PriceSourceNone, got.Source)
	})
}

func TestComputeOffers(t *testing.T) {
	e := NewEngine(zap.NewNop())
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	r := entities.PricingRecord{ID: "x", PriceGradeA: ptr(500), PriceGradeC: ptr(100), OverrideGradeA: ptr(999)}

	require.NoError(t, e.ComputeOffers(&r, percentagePolicy(), now))

	assert.Equal(t, 375.0, *r.OfferGradeA)
	assert.Nil(t, r.OfferGradeB)
	assert.Equal(t, 65.0, *r.OfferGradeC)
	require.NotNil(t, r.OffersCalculatedAt)
	assert.True(t, r.OffersCalculatedAt.Equal(now))
}

func TestReconcileOverride(t *testing.T) {
	e := NewEngine(zap.NewNop())
	policy := percentagePolicy()
	policy.SeriesOverrides = map[string]entities.SeriesOverride{
		"iPhone 16 Series": {Enabled: true, Margins: entities.GradeMargins{entities.GradeA: 10}},
	}
	r := entities.PricingRecord{Series: "iPhone 16 Series", PriceGradeA: ptr(500)}

	t.Run("nil clears", func(t *testing.T) {
		d, err := e.ReconcileOverride(nil, r, entities.GradeA, policy)
		require.NoError(t, err)
		assert.True(t, d.Cleared)
	})

	t.Run("within epsilon of global computation clears", func(t *testing.T) {
		d, err := e.ReconcileOverride(ptr(375.004), r, entities.GradeA, policy)
		require.NoError(t, err)
		assert.True(t, d.Cleared)
		assert.Equal(t, 375.0, *d.Computed)
	})

	t.Run("series price is still an override", func(t *testing.T) {
		d, err := e.ReconcileOverride(ptr(450), r, entities.GradeA, policy)
		require.NoError(t, err)
		assert.False(t, d.Cleared)
		assert.Equal(t, 450.0, *d.Value)
	})

	t.Run("different value is kept", func(t *testing.T) {
		d, err := e.ReconcileOverride(ptr(400), r, entities.GradeA, policy)
		require.NoError(t, err)
		assert.False(t, d.Cleared)
		assert.Equal(t, 400.0, *d.Value)
	})

	t.Run("override without source price is kept", func(t *testing.T) {
		d, err := e.ReconcileOverride(ptr(20), r, entities.GradeDOA, policy)
		require.NoError(t, err)
		assert.False(t, d.Cleared)
		assert.Nil(t, d.Computed)
	})

	t.Run("negative rejected", func(t *testing.T) {
		_, err := e.ReconcileOverride(ptr(-5), r, entities.GradeA, policy)
		assert.ErrorIs(t, err, ErrInvalidOverride)
	})
}
