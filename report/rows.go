// Package report renders estimation results into summary and detailed
// tabular views, plus CSV and Excel artifacts.
package report

import (
	"fmt"
	"strings"

	"roadcost/costing"
)

// SummaryRow is one line of the per-intervention summary table.
type SummaryRow struct {
	Intervention  string `json:"intervention"`
	Type          string `json:"type"`
	Standard      string `json:"standard"`
	Quantity      string `json:"quantity"`
	TotalCost     string `json:"total_cost"`
	MaterialCount int    `json:"material_count"`
}

// DetailRow is one line of the material-wise breakdown table.
type DetailRow struct {
	SerialNo     int    `json:"s_no"`
	Intervention string `json:"intervention"`
	Material     string `json:"material"`
	Code         string `json:"code"`
	Quantity     string `json:"quantity"`
	Unit         string `json:"unit"`
	Rate         string `json:"rate"`
	Cost         string `json:"cost"`
	Source       string `json:"source"`
	Reference    string `json:"reference"`
}

// BuildSummary produces one row per estimate, in estimate order.
func BuildSummary(estimates []costing.CostEstimate) []SummaryRow {
	rows := make([]SummaryRow, 0, len(estimates))
	for _, est := range estimates {
		rows = append(rows, SummaryRow{
			Intervention:  truncate(est.Intervention.RawText, 50),
			Type:          TitleCase(est.Intervention.Type),
			Standard:      est.Standard,
			Quantity:      fmt.Sprintf("%g %s", est.Intervention.Quantity, est.Intervention.Unit),
			TotalCost:     est.TotalCost.StringFixed(2),
			MaterialCount: len(est.Materials),
		})
	}
	return rows
}

// BuildDetails produces one row per priced material line, numbered by
// estimate.
func BuildDetails(estimates []costing.CostEstimate) []DetailRow {
	var rows []DetailRow
	for i, est := range estimates {
		for _, line := range est.Materials {
			rows = append(rows, DetailRow{
				SerialNo:     i + 1,
				Intervention: TitleCase(est.Intervention.Type),
				Material:     line.Entry.Description,
				Code:         line.Entry.Code,
				Quantity:     fmt.Sprintf("%.2f", line.Quantity),
				Unit:         string(line.Entry.Unit),
				Rate:         line.Entry.Rate.StringFixed(2),
				Cost:         line.Cost.StringFixed(2),
				Source:       line.Entry.Source,
				Reference:    line.Entry.Reference,
			})
		}
	}
	return rows
}

// TitleCase converts a pattern ID like "crash_barrier" into a display
// name like "Crash Barrier".
func TitleCase(id string) string {
	words := strings.Split(strings.ReplaceAll(id, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
