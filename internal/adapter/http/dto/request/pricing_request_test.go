package request

import (
	"encoding/json"
	"errors"
	"testing"

	"buyback_service/internal/domain/entities"
)

func TestOverridesRequest_ToGrades(t *testing.T) {
	var r OverridesRequest
	if err := json.Unmarshal([]byte(`{"overrides":{"gradeA":410.5,"gradeB":null}}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got, err := r.ToGrades()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 grades, got %d", len(got))
	}
	if v := got[entities.GradeA]; v == nil || *v != 410.5 {
		t.Fatalf("unexpected gradeA: %v", v)
	}
	if v, ok := got[entities.GradeB]; !ok || v != nil {
		t.Fatalf("expected explicit null for gradeB, got %v (present=%v)", v, ok)
	}
	if _, ok := got[entities.GradeC]; ok {
		t.Fatalf("gradeC must stay absent")
	}
}

func TestOverridesRequest_ToGradesUnknown(t *testing.T) {
	v := 1.0
	r := OverridesRequest{Overrides: map[string]*float64{"gradeE": &v}}
	if _, err := r.ToGrades(); !errors.Is(err, ErrUnknownGrade) {
		t.Fatalf("expected ErrUnknownGrade, got %v", err)
	}
}

func TestMarginPolicyRequest_ToEntity(t *testing.T) {
	bound := 100.0
	r := MarginPolicyRequest{
		Mode:              "tiered",
		PercentageMargins: map[string]float64{"gradeA": 20},
		TieredMargins: []MarginTierRequest{
			{Min: 0, Max: &bound, Deductions: map[string]float64{"gradeA": 15}},
			{Min: 100, Deductions: map[string]float64{"gradeA": 30}},
		},
		SeriesOverrides: map[string]SeriesOverrideRequest{
			" iPhone 15 Series ": {Enabled: true, Margins: map[string]float64{"gradeB": 10}},
		},
	}

	p := r.ToEntity()
	if p.Mode != entities.MarginModeTiered {
		t.Fatalf("unexpected mode %q", p.Mode)
	}
	if p.PercentageMargins[entities.GradeA] != 20 {
		t.Fatalf("unexpected percentage margins: %+v", p.PercentageMargins)
	}
	if len(p.TieredMargins) != 2 || p.TieredMargins[0].Deductions[entities.GradeA] != 15 || p.TieredMargins[1].Max != nil {
		t.Fatalf("unexpected tiers: %+v", p.TieredMargins)
	}
	o, ok := p.SeriesOverrides["iPhone 15 Series"]
	if !ok || !o.Enabled || o.Margins[entities.GradeB] != 10 {
		t.Fatalf("unexpected series overrides: %+v", p.SeriesOverrides)
	}
}
