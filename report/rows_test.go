package report

import (
	"bytes"
	"strings"
	"testing"

	"roadcost/costing"
	"roadcost/pkg/catalog"
)

func sampleEstimates(t *testing.T) []costing.CostEstimate {
	t.Helper()
	e := costing.DefaultEstimator()
	result, err := e.Estimate(
		"Install metal crash barrier as per IRC 119 for 500 meters. Provide zebra crossing of 50 sqm.",
		catalog.SourceCPWD,
	)
	if err != nil {
		t.Fatalf("fixture estimate failed: %v", err)
	}
	if len(result.Estimates) != 2 {
		t.Fatalf("fixture produced %d estimates, expected 2", len(result.Estimates))
	}
	return result.Estimates
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"crash_barrier", "Crash Barrier"},
		{"sign_board", "Sign Board"},
		{"cat_eye", "Cat Eye"},
		{"median", "Median"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildSummary(t *testing.T) {
	rows := BuildSummary(sampleEstimates(t))

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	first := rows[0]
	if first.Type != "Crash Barrier" {
		t.Errorf("unexpected type %q", first.Type)
	}
	if first.Standard != "IRC:119" {
		t.Errorf("unexpected standard %q", first.Standard)
	}
	if first.Quantity != "500 m" {
		t.Errorf("unexpected quantity %q", first.Quantity)
	}
	if first.TotalCost != "3085000.00" {
		t.Errorf("unexpected total %q", first.TotalCost)
	}
	if first.MaterialCount != 2 {
		t.Errorf("unexpected material count %d", first.MaterialCount)
	}
}

func TestBuildDetails_SerialNumbersFollowEstimates(t *testing.T) {
	rows := BuildDetails(sampleEstimates(t))

	// crash barrier contributes 2 lines, road marking 1.
	if len(rows) != 3 {
		t.Fatalf("expected 3 detail rows, got %d", len(rows))
	}
	if rows[0].SerialNo != 1 || rows[1].SerialNo != 1 || rows[2].SerialNo != 2 {
		t.Errorf("serial numbers %d %d %d do not follow estimate order",
			rows[0].SerialNo, rows[1].SerialNo, rows[2].SerialNo)
	}
	if rows[0].Code != "26.20.1" {
		t.Errorf("expected w-beam first, got code %q", rows[0].Code)
	}
	if rows[0].Source != "CPWD SOR 2024" {
		t.Errorf("unexpected source %q", rows[0].Source)
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummaryCSV(&buf, sampleEstimates(t)); err != nil {
		t.Fatalf("WriteSummaryCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Intervention,Type,IRC Standard") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "3085000.00") {
		t.Errorf("expected crash barrier total in %q", lines[1])
	}
}

func TestWriteDetailsCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDetailsCSV(&buf, sampleEstimates(t)); err != nil {
		t.Fatalf("WriteDetailsCSV: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "26.20.4") {
		t.Error("expected terminal-end code in details")
	}
	if !strings.Contains(out, "S.No,Intervention,Material") {
		t.Error("missing header")
	}
}

func TestRenderTable_WritesTotals(t *testing.T) {
	e := costing.DefaultEstimator()
	result, err := e.Estimate("Install crash barrier for 500 meters.", catalog.SourceCPWD)
	if err != nil {
		t.Fatalf("fixture estimate failed: %v", err)
	}

	var buf bytes.Buffer
	RenderTable(&buf, result)
	if !strings.Contains(buf.String(), "3085000.00") {
		t.Error("expected run total in table output")
	}
}

func TestRenderMarkdown(t *testing.T) {
	e := costing.DefaultEstimator()
	result, err := e.Estimate("Install crash barrier for 100 meters.", catalog.SourceGeM)
	if err != nil {
		t.Fatalf("fixture estimate failed: %v", err)
	}

	var buf bytes.Buffer
	RenderMarkdown(&buf, result)
	out := buf.String()
	if !strings.Contains(out, "| Intervention |") {
		t.Error("expected a markdown summary table")
	}
	// A partially priced run surfaces its warnings in the report body.
	if !strings.Contains(out, "could not be priced") {
		t.Error("expected incompleteness warning in markdown output")
	}
}
