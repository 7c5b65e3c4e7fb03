package catalog

import (
	"github.com/shopspring/decimal"

	"roadcost/pkg/units"
)

// GeMSourceName labels entries from the Government e-Marketplace.
const GeMSourceName = "GeM Portal"

// GeMRates returns the built-in GeM marketplace sample, keyed by
// listing id. GeM carries fewer codes than the SOR; patterns whose
// template references an absent code are priced partially.
func GeMRates() Catalog {
	entries := []MaterialEntry{
		{Code: "GEM/2024/B/4523891", Description: "Aluminum Traffic Sign Board - Grade II - 900x900mm",
			Unit: units.UnitEach, Rate: decimal.NewFromFloat(3850.00), Supplier: "Signage India Pvt Ltd"},
		{Code: "GEM/2024/B/4523892", Description: "Retro Reflective Sheeting Type IV - White",
			Unit: units.UnitSquareMeter, Rate: decimal.NewFromFloat(2650.00), Supplier: "Avery Dennison India"},
		{Code: "GEM/2024/B/4523893", Description: "W-Beam Crash Barrier with Posts (Complete Kit)",
			Unit: units.UnitMeter, Rate: decimal.NewFromFloat(4500.00), Supplier: "Safeguard Barriers Ltd"},
		{Code: "GEM/2024/B/4523894", Description: "Thermoplastic Road Marking Paint - White (MoRTH Approved)",
			Unit: units.UnitKilogram, Rate: decimal.NewFromFloat(195.00), Supplier: "Asian Paints PPG Pvt Ltd"},
		{Code: "GEM/2024/B/4523895", Description: "Solar LED Blinker - Red/Amber",
			Unit: units.UnitEach, Rate: decimal.NewFromFloat(2950.00), Supplier: "Solar Solutions India"},
		{Code: "GEM/2024/B/4523896", Description: "Concrete Kerb Stone - Precast 600x300x150mm",
			Unit: units.UnitEach, Rate: decimal.NewFromFloat(285.00), Supplier: "Precast Concrete Products"},
		{Code: "GEM/2024/B/4523897", Description: "Cat Eye Road Stud - Aluminum Body with Reflector",
			Unit: units.UnitEach, Rate: decimal.NewFromFloat(265.00), Supplier: "Highway Products India"},
		{Code: "GEM/2024/B/4523898", Description: "Rubber Speed Hump - 50mm Height - Modular",
			Unit: units.UnitMeter, Rate: decimal.NewFromFloat(2150.00), Supplier: "Safe Roads India Pvt Ltd"},
	}

	cat := make(Catalog, len(entries))
	for _, e := range entries {
		e.Source = GeMSourceName
		e.Reference = e.Code
		e.Category = "GeM Marketplace"
		cat[e.Code] = e
	}
	return cat
}
