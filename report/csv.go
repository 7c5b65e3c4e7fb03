package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"roadcost/costing"
)

// WriteSummaryCSV writes the summary table as CSV.
func WriteSummaryCSV(w io.Writer, estimates []costing.CostEstimate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Intervention", "Type", "IRC Standard", "Quantity", "Total Cost", "Materials Count"}); err != nil {
		return err
	}
	for _, row := range BuildSummary(estimates) {
		rec := []string{row.Intervention, row.Type, row.Standard, row.Quantity, row.TotalCost, strconv.Itoa(row.MaterialCount)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDetailsCSV writes the material breakdown table as CSV.
func WriteDetailsCSV(w io.Writer, estimates []costing.CostEstimate) error {
	cw := csv.NewWriter(w)
	header := []string{"S.No", "Intervention", "Material", "Item Code", "Quantity", "Unit", "Rate", "Cost", "Source", "Reference"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range BuildDetails(estimates) {
		rec := []string{
			strconv.Itoa(row.SerialNo), row.Intervention, row.Material, row.Code,
			row.Quantity, row.Unit, row.Rate, row.Cost, row.Source, row.Reference,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
