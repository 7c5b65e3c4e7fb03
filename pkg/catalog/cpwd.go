package catalog

import (
	"github.com/shopspring/decimal"

	"roadcost/pkg/units"
)

// CPWDSourceName labels entries from the CPWD Schedule of Rates 2024.
const CPWDSourceName = "CPWD SOR 2024"

// CPWDRates returns the built-in CPWD Schedule of Rates sample,
// keyed by SOR item code.
func CPWDRates() Catalog {
	entries := []MaterialEntry{
		// Road furniture & safety items
		{Code: "26.13.1", Description: "Aluminum sign board (Grade-II) with retro-reflective sheeting Type-IV (Red/White/Green)",
			Unit: units.UnitSquareMeter, Rate: decimal.NewFromFloat(4250.00), Category: "Traffic Signs"},
		{Code: "26.13.2", Description: "Aluminum sign board (Grade-II) with retro-reflective sheeting Type-IV (Yellow/Black)",
			Unit: units.UnitSquareMeter, Rate: decimal.NewFromFloat(4450.00), Category: "Traffic Signs"},
		{Code: "26.14.1", Description: "MS pipe (GI coated) support post for sign board - 65mm dia",
			Unit: units.UnitMeter, Rate: decimal.NewFromFloat(1850.00), Category: "Sign Posts"},
		{Code: "26.14.2", Description: "MS pipe (GI coated) support post for sign board - 80mm dia",
			Unit: units.UnitMeter, Rate: decimal.NewFromFloat(2250.00), Category: "Sign Posts"},

		// Crash barriers
		{Code: "26.20.1", Description: "W-beam metal crash barrier (Thrie beam) complete with posts @ 4m c/c",
			Unit: units.UnitMeter, Rate: decimal.NewFromFloat(5800.00), Category: "Crash Barriers"},
		{Code: "26.20.2", Description: "W-beam metal crash barrier (W-beam) complete with posts @ 2m c/c",
			Unit: units.UnitMeter, Rate: decimal.NewFromFloat(4200.00), Category: "Crash Barriers"},
		{Code: "26.20.3", Description: "Concrete crash barrier - New Jersey profile (precast)",
			Unit: units.UnitMeter, Rate: decimal.NewFromFloat(3500.00), Category: "Crash Barriers"},
		{Code: "26.20.4", Description: "Steel terminal end for crash barrier system",
			Unit: units.UnitEach, Rate: decimal.NewFromFloat(18500.00), Category: "Crash Barriers"},

		// Road markings
		{Code: "26.25.1", Description: "Thermoplastic road marking paint (white) 2.5mm thick with glass beads",
			Unit: units.UnitSquareMeter, Rate: decimal.NewFromFloat(485.00), Category: "Road Markings"},
		{Code: "26.25.2", Description: "Thermoplastic road marking paint (yellow) 2.5mm thick with glass beads",
			Unit: units.UnitSquareMeter, Rate: decimal.NewFromFloat(495.00), Category: "Road Markings"},
		{Code: "26.25.3", Description: "Cold plastic road marking paint (white) 3mm thick",
			Unit: units.UnitSquareMeter, Rate: decimal.NewFromFloat(650.00), Category: "Road Markings"},
		{Code: "26.25.4", Description: "Retro-reflective raised pavement markers (RPM) - Cat eye",
			Unit: units.UnitEach, Rate: decimal.NewFromFloat(285.00), Category: "Road Markings"},

		// Medians & kerbs
		{Code: "26.30.1", Description: "RCC median barrier casting in-situ M-25 grade",
			Unit: units.UnitCubicMeter, Rate: decimal.NewFromFloat(8500.00), Category: "Medians"},
		{Code: "26.30.2", Description: "Precast concrete kerb stones 600x300x150mm",
			Unit: units.UnitMeter, Rate: decimal.NewFromFloat(450.00), Category: "Kerbs"},
		{Code: "26.30.3", Description: "Interlocking concrete paver blocks 60mm thick",
			Unit: units.UnitSquareMeter, Rate: decimal.NewFromFloat(725.00), Category: "Footpath"},

		// Speed control devices
		{Code: "26.35.1", Description: "Speed breaker (Rumble strip) - Thermoplastic marking 15mm thick",
			Unit: units.UnitMeter, Rate: decimal.NewFromFloat(1850.00), Category: "Speed Control"},
		{Code: "26.35.2", Description: "Speed hump - Precast rubber composite 50mm height",
			Unit: units.UnitMeter, Rate: decimal.NewFromFloat(2250.00), Category: "Speed Control"},
		{Code: "26.35.3", Description: "Speed breaker - Cast in-situ concrete with retro-reflective tape",
			Unit: units.UnitMeter, Rate: decimal.NewFromFloat(1650.00), Category: "Speed Control"},

		// Foundation & supporting materials
		{Code: "10.5.1", Description: "Plain cement concrete M-15 grade for foundation",
			Unit: units.UnitCubicMeter, Rate: decimal.NewFromFloat(5200.00), Category: "Concrete Works"},
		{Code: "10.5.2", Description: "Reinforced cement concrete M-25 grade",
			Unit: units.UnitCubicMeter, Rate: decimal.NewFromFloat(6800.00), Category: "Concrete Works"},
		{Code: "10.6.1", Description: "Steel reinforcement (HYSD bars) including binding",
			Unit: units.UnitKilogram, Rate: decimal.NewFromFloat(72.00), Category: "Reinforcement"},

		// Reflective materials
		{Code: "26.40.1", Description: "Retro-reflective sheeting Type-IV (High intensity prismatic)",
			Unit: units.UnitSquareMeter, Rate: decimal.NewFromFloat(2850.00), Category: "Reflective Materials"},
		{Code: "26.40.2", Description: "Retro-reflective sheeting Type-V (Engineering grade)",
			Unit: units.UnitSquareMeter, Rate: decimal.NewFromFloat(1650.00), Category: "Reflective Materials"},

		// LED & electronic items
		{Code: "26.45.1", Description: "Solar powered LED blinker for sign board (Red)",
			Unit: units.UnitEach, Rate: decimal.NewFromFloat(3250.00), Category: "Electronic"},
		{Code: "26.45.2", Description: "Variable message sign board (LED) - 2m x 1m",
			Unit: units.UnitEach, Rate: decimal.NewFromFloat(285000.00), Category: "Electronic"},
	}

	cat := make(Catalog, len(entries))
	for _, e := range entries {
		e.Source = CPWDSourceName
		e.Reference = e.Code
		cat[e.Code] = e
	}
	return cat
}
