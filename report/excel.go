package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"roadcost/costing"
	"roadcost/pkg/catalog"
)

// GenerateWorkbook creates a three-sheet Excel workbook (Summary,
// Material Breakdown, IRC Standards) and returns the file contents.
func GenerateWorkbook(result *costing.Result, standards map[string]catalog.Standard) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), "Summary"); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := writeSummarySheet(f, headerStyle, result); err != nil {
		return nil, err
	}
	if err := writeBreakdownSheet(f, headerStyle, result.Estimates); err != nil {
		return nil, err
	}
	if err := writeStandardsSheet(f, headerStyle, standards); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, headerStyle int, result *costing.Result) error {
	const sheet = "Summary"

	header := []any{"Intervention", "Type", "IRC Standard", "Quantity", "Total Cost (₹)", "Materials Count"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("summary header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "F1", headerStyle); err != nil {
		return fmt.Errorf("summary header style: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "A", 50); err != nil {
		return fmt.Errorf("summary col width: %w", err)
	}

	for i, row := range BuildSummary(result.Estimates) {
		cell := fmt.Sprintf("A%d", i+2)
		values := []any{row.Intervention, row.Type, row.Standard, row.Quantity, row.TotalCost, row.MaterialCount}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("summary row %d: %w", i+2, err)
		}
	}

	// Grand total under the table.
	totalRow := len(result.Estimates) + 3
	if err := f.SetSheetRow(sheet, fmt.Sprintf("D%d", totalRow),
		&[]any{"Grand Total (₹)", result.TotalCost.StringFixed(2)}); err != nil {
		return fmt.Errorf("summary total: %w", err)
	}
	return nil
}

func writeBreakdownSheet(f *excelize.File, headerStyle int, estimates []costing.CostEstimate) error {
	const sheet = "Material Breakdown"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("breakdown sheet: %w", err)
	}

	header := []any{"S.No", "Intervention", "Material", "Item Code", "Quantity", "Unit", "Rate (₹)", "Cost (₹)", "Source", "Reference"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("breakdown header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "J1", headerStyle); err != nil {
		return fmt.Errorf("breakdown header style: %w", err)
	}
	if err := f.SetColWidth(sheet, "C", "C", 60); err != nil {
		return fmt.Errorf("breakdown col width: %w", err)
	}

	for i, row := range BuildDetails(estimates) {
		cell := fmt.Sprintf("A%d", i+2)
		values := []any{row.SerialNo, row.Intervention, row.Material, row.Code,
			row.Quantity, row.Unit, row.Rate, row.Cost, row.Source, row.Reference}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("breakdown row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeStandardsSheet(f *excelize.File, headerStyle int, standards map[string]catalog.Standard) error {
	const sheet = "IRC Standards"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("standards sheet: %w", err)
	}

	header := []any{"IRC Code", "Title", "Keywords"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("standards header: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "C1", headerStyle); err != nil {
		return fmt.Errorf("standards header style: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "C", 55); err != nil {
		return fmt.Errorf("standards col width: %w", err)
	}

	// Stable row order for reproducible workbooks.
	codes := make([]string, 0, len(standards))
	for code := range standards {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for i, code := range codes {
		std := standards[code]
		keywords := std.Keywords
		if len(keywords) > 5 {
			keywords = keywords[:5]
		}
		values := []any{std.Code, std.Title, strings.Join(keywords, ", ")}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return fmt.Errorf("standards row %d: %w", i+2, err)
		}
	}
	return nil
}
