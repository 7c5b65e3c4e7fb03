// Package catalog holds the reference data the estimator runs against:
// the IRC standards map, the rate tables keyed by source, and the
// intervention pattern templates. All tables are built once and treated
// as read-only; the pipeline receives them as explicit parameters.
package catalog

import (
	"github.com/shopspring/decimal"

	"roadcost/pkg/errors"
	"roadcost/pkg/units"
)

// RateSource selects which rate table prices an estimate.
type RateSource string

const (
	// SourceCPWD is the CPWD Schedule of Rates.
	SourceCPWD RateSource = "cpwd"
	// SourceGeM is the Government e-Marketplace.
	SourceGeM RateSource = "gem"
)

// ParseSource validates a rate-source selector. Unknown selectors are a
// caller error: defaulting silently would price against the wrong table.
func ParseSource(s string) (RateSource, error) {
	switch RateSource(s) {
	case SourceCPWD, SourceGeM:
		return RateSource(s), nil
	}
	return "", errors.NewUnknownSourceError(s)
}

// MaterialEntry is a priced material within one rate source.
type MaterialEntry struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Unit        units.Unit      `json:"unit"`
	Rate        decimal.Decimal `json:"rate"`
	Source      string          `json:"source"`
	Reference   string          `json:"reference"` // SOR item code or GeM listing id
	Category    string          `json:"category,omitempty"`
	Supplier    string          `json:"supplier,omitempty"`
}

// Catalog maps material codes to entries for one rate source.
type Catalog map[string]MaterialEntry

// Lookup fetches an entry by code. A miss is expected for codes the
// source does not carry.
func (c Catalog) Lookup(code string) (MaterialEntry, bool) {
	entry, ok := c[code]
	return entry, ok
}

// SourceSet maps rate-source selectors to their catalogs.
type SourceSet map[RateSource]Catalog

// Catalog returns the catalog for a source, or an error for an
// unrecognized selector.
func (s SourceSet) Catalog(source RateSource) (Catalog, error) {
	cat, ok := s[source]
	if !ok {
		return nil, errors.NewUnknownSourceError(string(source))
	}
	return cat, nil
}

// DefaultSources returns the built-in rate tables for both supported
// sources.
func DefaultSources() SourceSet {
	return SourceSet{
		SourceCPWD: CPWDRates(),
		SourceGeM:  GeMRates(),
	}
}

// Standard describes one IRC code of practice.
type Standard struct {
	Code      string   `json:"code"`
	Title     string   `json:"title"`
	Keywords  []string `json:"keywords"`
	Materials []string `json:"materials"`
}

// QuantityPolicy names the default-quantity dimension of a pattern.
// Exactly one policy applies per pattern.
type QuantityPolicy string

const (
	PolicyLength QuantityPolicy = "length"
	PolicyArea   QuantityPolicy = "area"
	PolicySize   QuantityPolicy = "size"
	PolicyCount  QuantityPolicy = "count"
)

// DefaultUnit is the unit implied when a statement carries no quantity
// and the pattern default is used instead.
func (p QuantityPolicy) DefaultUnit() units.Unit {
	switch p {
	case PolicyLength:
		return units.UnitMeter
	case PolicyArea, PolicySize:
		return units.UnitSquareMeter
	default:
		return units.UnitCount
	}
}

// BOMItem is one line of a pattern's bill-of-materials template.
type BOMItem struct {
	Code       string  `json:"code"`
	Multiplier float64 `json:"multiplier"`
}

// Pattern is an intervention template: the keywords that trigger it,
// the governing IRC standard, the default quantity policy, and the
// bill-of-materials expanded per unit of quantity.
type Pattern struct {
	ID              string         `json:"id"`
	Keywords        []string       `json:"keywords"`
	Standard        string         `json:"standard"`
	Policy          QuantityPolicy `json:"policy"`
	DefaultQuantity float64        `json:"default_quantity"`
	Materials       []BOMItem      `json:"materials"`
}

// PatternByID finds a pattern in a declaration-ordered slice.
func PatternByID(patterns []Pattern, id string) (Pattern, bool) {
	for _, p := range patterns {
		if p.ID == id {
			return p, true
		}
	}
	return Pattern{}, false
}
