// Package costing expands matched interventions into priced material
// lines and aggregates them into cost estimates.
package costing

import (
	"github.com/shopspring/decimal"

	"roadcost/extraction"
	"roadcost/pkg/catalog"
	"roadcost/pkg/units"
)

// MaterialLine is one priced bill-of-materials line. Quantity is
// already converted to the catalog entry's unit.
type MaterialLine struct {
	Entry    catalog.MaterialEntry `json:"entry"`
	Quantity float64               `json:"quantity"`
	Cost     decimal.Decimal       `json:"cost"`
}

// Expansion is the result of expanding one intervention's template
// against the active rate catalog.
type Expansion struct {
	Lines []MaterialLine `json:"lines"`

	// OmittedCodes lists template references absent from the catalog.
	// Omitted lines are excluded from totals; callers use this to
	// detect partial pricing.
	OmittedCodes []string `json:"omitted_codes,omitempty"`
}

// Expand resolves each (code, multiplier) pair of the pattern template
// against the catalog. Codes the catalog does not carry are skipped and
// recorded; rate tables do not cover every source's codes.
func Expand(iv extraction.Intervention, pattern catalog.Pattern, cat catalog.Catalog) Expansion {
	exp := Expansion{Lines: make([]MaterialLine, 0, len(pattern.Materials))}

	for _, item := range pattern.Materials {
		entry, ok := cat.Lookup(item.Code)
		if !ok {
			exp.OmittedCodes = append(exp.OmittedCodes, item.Code)
			continue
		}

		quantity := iv.Quantity * item.Multiplier
		quantity *= units.ConversionFactor(iv.Unit, entry.Unit)

		cost := decimal.NewFromFloat(quantity).Mul(entry.Rate).Round(2)

		exp.Lines = append(exp.Lines, MaterialLine{
			Entry:    entry,
			Quantity: quantity,
			Cost:     cost,
		})
	}

	return exp
}
