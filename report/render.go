package report

import (
	"fmt"
	"io"

	"roadcost/costing"
)

// RenderTable writes a boxed summary of an estimation run.
func RenderTable(w io.Writer, result *costing.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════════════╗")
	fmt.Fprintln(w, "║                 ROAD SAFETY COST ESTIMATE                    ║")
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")
	fmt.Fprintf(w, "║  Rate Source:        %-40s║\n", result.Source)
	fmt.Fprintf(w, "║  Interventions:      %-40d║\n", len(result.Estimates))
	fmt.Fprintf(w, "║  Total Cost (₹):     %-40s║\n", result.TotalCost.StringFixed(2))
	fmt.Fprintf(w, "║  Pricing Confidence: %-40s║\n", fmt.Sprintf("%.0f%%", result.Confidence*100))
	fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")

	for _, est := range result.Estimates {
		name := truncate(TitleCase(est.Intervention.Type), 26)
		qty := fmt.Sprintf("%g %s", est.Intervention.Quantity, est.Intervention.Unit)
		fmt.Fprintf(w, "║  %-26s %-12s ₹%-19s ║\n", name, qty, est.TotalCost.StringFixed(2))
	}

	if result.IsIncomplete {
		fmt.Fprintln(w, "╠══════════════════════════════════════════════════════════════╣")
		fmt.Fprintf(w, "║  ⚠ %-59s║\n",
			fmt.Sprintf("%d material lines unpriced; totals understate", result.LinesOmitted))
	}

	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════════════╝")
}

// RenderMarkdown writes the run as a markdown report with a summary
// table and a material breakdown table.
func RenderMarkdown(w io.Writer, result *costing.Result) {
	fmt.Fprintln(w, "## Road Safety Intervention Cost Estimate")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- **Rate Source**: %s\n", result.Source)
	fmt.Fprintf(w, "- **Total Cost**: ₹%s\n", result.TotalCost.StringFixed(2))
	fmt.Fprintf(w, "- **Pricing Confidence**: %.0f%%\n", result.Confidence*100)
	if result.IsIncomplete {
		fmt.Fprintf(w, "- **Warning**: %d material lines could not be priced\n", result.LinesOmitted)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "### Summary")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Intervention | Type | IRC Standard | Quantity | Total Cost (₹) | Materials |")
	fmt.Fprintln(w, "|--------------|------|--------------|----------|----------------|-----------|")
	for _, row := range BuildSummary(result.Estimates) {
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %d |\n",
			row.Intervention, row.Type, row.Standard, row.Quantity, row.TotalCost, row.MaterialCount)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "### Material Breakdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| # | Intervention | Material | Code | Qty | Unit | Rate (₹) | Cost (₹) | Source |")
	fmt.Fprintln(w, "|---|--------------|----------|------|-----|------|----------|----------|--------|")
	for _, row := range BuildDetails(result.Estimates) {
		fmt.Fprintf(w, "| %d | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			row.SerialNo, row.Intervention, truncate(row.Material, 45), row.Code,
			row.Quantity, row.Unit, row.Rate, row.Cost, row.Source)
	}
}
