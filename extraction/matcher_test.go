package extraction

import (
	"testing"

	"roadcost/pkg/catalog"
	"roadcost/pkg/units"
)

func newTestMatcher() *Matcher {
	return NewMatcher(catalog.Patterns())
}

func TestMatch_CrashBarrierWithExplicitStandard(t *testing.T) {
	m := newTestMatcher()

	iv, ok := m.Match("Install metal crash barrier as per IRC 119 for 500 meters on both sides")
	if !ok {
		t.Fatal("expected a match")
	}
	if iv.Type != "crash_barrier" {
		t.Errorf("expected type crash_barrier, got %q", iv.Type)
	}
	if iv.Standard != "IRC:119" {
		t.Errorf("expected explicit standard IRC:119, got %q", iv.Standard)
	}
	if iv.Quantity != 500 {
		t.Errorf("expected quantity 500, got %g", iv.Quantity)
	}
	if iv.Unit != units.UnitMeter {
		t.Errorf("expected unit m, got %q", iv.Unit)
	}
	if len(iv.Keywords) == 0 {
		t.Error("expected trigger keywords to be recorded")
	}
}

func TestMatch_DefaultStandardWhenNotMentioned(t *testing.T) {
	m := newTestMatcher()

	iv, ok := m.Match("Provide guard rail for 200 meters")
	if !ok {
		t.Fatal("expected a match")
	}
	if iv.Standard != "IRC:119-2015" {
		t.Errorf("expected pattern default standard, got %q", iv.Standard)
	}
}

func TestMatch_QuantityFallbackToPatternDefault(t *testing.T) {
	m := newTestMatcher()

	// No digits anywhere: the pattern default and its implied unit apply.
	iv, ok := m.Match("Provide speed breakers near the school zone")
	if !ok {
		t.Fatal("expected a match")
	}
	if iv.Type != "speed_breaker" {
		t.Fatalf("expected speed_breaker, got %q", iv.Type)
	}
	if iv.Quantity != 3.5 {
		t.Errorf("expected default quantity 3.5, got %g", iv.Quantity)
	}
	if iv.Unit != units.UnitMeter {
		t.Errorf("expected default unit m, got %q", iv.Unit)
	}
}

func TestMatch_BareNumberIsUsedWithCountUnit(t *testing.T) {
	m := newTestMatcher()

	iv, ok := m.Match("Speed breakers at 3 locations")
	if !ok {
		t.Fatal("expected a match")
	}
	if iv.Quantity != 3 {
		t.Errorf("expected quantity 3, got %g", iv.Quantity)
	}
	if iv.Unit != units.UnitCount {
		t.Errorf("expected unit nos, got %q", iv.Unit)
	}
}

func TestMatch_FirstMatchWins(t *testing.T) {
	m := newTestMatcher()

	// "median" and "kerb" both trigger; median is earlier in dispatch
	// order, so the statement maps to exactly that one pattern.
	iv, ok := m.Match("Construct median and kerb along the corridor")
	if !ok {
		t.Fatal("expected a match")
	}
	if iv.Type != "median" {
		t.Errorf("expected median (declared before kerb), got %q", iv.Type)
	}
}

func TestMatch_NoKeywords(t *testing.T) {
	m := newTestMatcher()

	if iv, ok := m.Match("Resurface the carriageway with bituminous concrete"); ok {
		t.Errorf("expected no match, got %+v", iv)
	}
}

func TestMatch_CountPatternDefault(t *testing.T) {
	m := newTestMatcher()

	iv, ok := m.Match("Provide cat eye studs along the curve")
	if !ok {
		t.Fatal("expected a match")
	}
	if iv.Type != "cat_eye" {
		t.Fatalf("expected cat_eye, got %q", iv.Type)
	}
	if iv.Quantity != 100 || iv.Unit != units.UnitCount {
		t.Errorf("expected default 100 nos, got %g %s", iv.Quantity, iv.Unit)
	}
}

func TestExtractAll_StatementOrder(t *testing.T) {
	m := newTestMatcher()

	text := "Install crash barrier for 500 meters. Unrelated drainage work. Paint zebra crossing of 50 sqm."
	ivs := m.ExtractAll(text)

	if len(ivs) != 2 {
		t.Fatalf("expected 2 interventions, got %d", len(ivs))
	}
	if ivs[0].Type != "crash_barrier" || ivs[1].Type != "road_marking" {
		t.Errorf("expected [crash_barrier road_marking], got [%s %s]", ivs[0].Type, ivs[1].Type)
	}
}

func TestExtractAll_NoRecognizedKeywords(t *testing.T) {
	m := newTestMatcher()

	if ivs := m.ExtractAll("Widen the shoulder and regrade the embankment slope."); len(ivs) != 0 {
		t.Errorf("expected no interventions, got %d", len(ivs))
	}
}

func TestMatch_QuantityAlwaysPositive(t *testing.T) {
	m := newTestMatcher()

	statements := []string{
		"Install crash barrier for 0 meters", // degenerate quantity falls back
		"Provide guard rail",
		"zebra crossing of 50 sqm",
		"Speed breakers at 3 locations",
	}
	for _, stmt := range statements {
		iv, ok := m.Match(stmt)
		if !ok {
			t.Fatalf("%q: expected a match", stmt)
		}
		if iv.Quantity <= 0 {
			t.Errorf("%q: expected positive quantity, got %g", stmt, iv.Quantity)
		}
		if !units.Valid(iv.Unit) {
			t.Errorf("%q: unexpected unit %q", stmt, iv.Unit)
		}
	}
}
