package costing

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"roadcost/pkg/catalog"
	"roadcost/pkg/units"
)

const sampleReport = `Install metal crash barrier as per IRC 119 for 500 meters on both sides.
Provide zebra crossing of 50 sqm at the junction.
Routine pothole patching on the service road.`

func TestEstimate_UnknownSourceRejected(t *testing.T) {
	e := DefaultEstimator()

	if _, err := e.Estimate(sampleReport, catalog.RateSource("dsr")); err == nil {
		t.Fatal("expected an error for an unconfigured rate source")
	}
}

func TestEstimate_EmptyReport(t *testing.T) {
	e := DefaultEstimator()

	result, err := e.Estimate("", catalog.SourceCPWD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Estimates) != 0 {
		t.Errorf("expected no estimates, got %d", len(result.Estimates))
	}
	if !result.TotalCost.IsZero() {
		t.Errorf("expected zero total, got %s", result.TotalCost)
	}
	if result.IsIncomplete {
		t.Error("an empty run is not incomplete")
	}
}

func TestEstimate_NoRecognizedInterventions(t *testing.T) {
	e := DefaultEstimator()

	result, err := e.Estimate("Regrade the embankment and clear vegetation.", catalog.SourceCPWD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Estimates) != 0 {
		t.Errorf("expected no estimates, got %d", len(result.Estimates))
	}
}

func TestEstimate_TotalsAndOrdering(t *testing.T) {
	e := DefaultEstimator()

	result, err := e.Estimate(sampleReport, catalog.SourceCPWD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Estimates) != 2 {
		t.Fatalf("expected 2 estimates, got %d", len(result.Estimates))
	}

	first := result.Estimates[0]
	if first.Intervention.Type != "crash_barrier" {
		t.Errorf("expected crash_barrier first, got %q", first.Intervention.Type)
	}
	if first.Standard != "IRC:119" {
		t.Errorf("expected explicit standard IRC:119, got %q", first.Standard)
	}
	if want := decimal.NewFromInt(3085000); !first.TotalCost.Equal(want) {
		t.Errorf("crash barrier total: expected %s, got %s", want, first.TotalCost)
	}

	sum := decimal.Zero
	for _, est := range result.Estimates {
		sum = sum.Add(est.TotalCost)
	}
	if !result.TotalCost.Equal(sum) {
		t.Errorf("run total %s != estimate sum %s", result.TotalCost, sum)
	}

	if result.IsIncomplete {
		t.Errorf("full CPWD pricing should be complete, warnings: %v", result.Warnings)
	}
	if result.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %g", result.Confidence)
	}
}

func TestEstimate_DeterministicForIdenticalInput(t *testing.T) {
	e := DefaultEstimator()

	a, err := e.Estimate(sampleReport, catalog.SourceCPWD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := e.Estimate(sampleReport, catalog.SourceCPWD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Run metadata differs; the estimates themselves must not.
	aj, err := json.Marshal(a.Estimates)
	if err != nil {
		t.Fatal(err)
	}
	bj, err := json.Marshal(b.Estimates)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(aj, bj) {
		t.Error("identical input produced different estimates")
	}
	if a.Estimates[0].ID != "estimate-0" {
		t.Errorf("expected deterministic id estimate-0, got %q", a.Estimates[0].ID)
	}
}

func TestEstimate_PartialPricingSurfaces(t *testing.T) {
	e := DefaultEstimator()

	result, err := e.Estimate("Install crash barrier for 100 meters.", catalog.SourceGeM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Estimates) != 1 {
		t.Fatalf("expected 1 estimate, got %d", len(result.Estimates))
	}

	est := result.Estimates[0]
	if est.IsComplete() {
		t.Error("GeM lacks the SOR barrier codes; estimate should be partial")
	}
	if !est.TotalCost.IsZero() {
		t.Errorf("expected zero total for fully omitted template, got %s", est.TotalCost)
	}
	if est.Coverage != 0 {
		t.Errorf("expected zero coverage, got %g", est.Coverage)
	}
	if !result.IsIncomplete {
		t.Error("run should be flagged incomplete")
	}
	if len(result.Warnings) == 0 {
		t.Error("expected per-code warnings")
	}
	if result.LinesOmitted != 2 {
		t.Errorf("expected 2 omitted lines, got %d", result.LinesOmitted)
	}
}

func TestEstimate_BreakdownAccumulatesSharedDescriptions(t *testing.T) {
	rate := decimal.NewFromInt(100)
	cat := catalog.Catalog{
		"T.1": {Code: "T.1", Description: "Galvanized Fastener Set", Unit: units.UnitEach, Rate: rate},
		"T.2": {Code: "T.2", Description: "Galvanized Fastener Set", Unit: units.UnitEach, Rate: rate},
	}
	patterns := []catalog.Pattern{{
		ID:              "bollard",
		Keywords:        []string{"bollard"},
		Standard:        "IRC:103-2012",
		Policy:          catalog.PolicyCount,
		DefaultQuantity: 1,
		Materials: []catalog.BOMItem{
			{Code: "T.1", Multiplier: 1.0},
			{Code: "T.2", Multiplier: 2.0},
		},
	}}
	e := NewEstimator(patterns, catalog.SourceSet{catalog.SourceCPWD: cat})

	result, err := e.Estimate("Install bollard at the approach.", catalog.SourceCPWD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Estimates) != 1 {
		t.Fatalf("expected 1 estimate, got %d", len(result.Estimates))
	}

	breakdown := result.Estimates[0].Breakdown
	if len(breakdown) != 1 {
		t.Fatalf("expected a single accumulated breakdown entry, got %v", breakdown)
	}
	if want := decimal.NewFromInt(300); !breakdown["Galvanized Fastener Set"].Equal(want) {
		t.Errorf("expected accumulated %s, got %s", want, breakdown["Galvanized Fastener Set"])
	}
}
