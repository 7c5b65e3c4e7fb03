package costing

import "github.com/shopspring/decimal"

// Aggregate sums material lines into a total and a per-description
// breakdown. Lines sharing a description accumulate into one breakdown
// entry rather than overwriting each other. Pure and deterministic.
func Aggregate(lines []MaterialLine) (decimal.Decimal, map[string]decimal.Decimal) {
	total := decimal.Zero
	breakdown := make(map[string]decimal.Decimal, len(lines))

	for _, line := range lines {
		total = total.Add(line.Cost)
		breakdown[line.Entry.Description] = breakdown[line.Entry.Description].Add(line.Cost)
	}

	return total, breakdown
}
