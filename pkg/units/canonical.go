// Package units provides canonical measurement units and conversions.
package units

// Unit represents a measurable quantity symbol.
type Unit string

const (
	// Length units
	UnitMeter     Unit = "m"
	UnitKilometer Unit = "km"

	// Area and volume units
	UnitSquareMeter Unit = "sqm"
	UnitCubicMeter  Unit = "cum"

	// Mass units
	UnitKilogram Unit = "kg"

	// Count units
	UnitCount Unit = "nos"
	UnitEach  Unit = "each"
)

// MetersPerKilometer is the only conversion factor applied during
// material expansion.
const MetersPerKilometer = 1000.0

// Valid reports whether u is one of the units the matcher can produce.
func Valid(u Unit) bool {
	switch u {
	case UnitMeter, UnitSquareMeter, UnitKilometer, UnitCount:
		return true
	}
	return false
}

// ConversionFactor returns the multiplier to convert a quantity measured
// in 'from' into 'to'. Only km->m is defined; everything else passes
// through at 1.0 and mismatched units are used as-is, a documented
// limitation rather than a silent fix.
func ConversionFactor(from, to Unit) float64 {
	if from == UnitKilometer && to == UnitMeter {
		return MetersPerKilometer
	}
	return 1.0
}

// KmToMeters converts kilometers to meters.
func KmToMeters(km float64) float64 {
	return km * MetersPerKilometer
}

// MetersToKm converts meters to kilometers.
func MetersToKm(m float64) float64 {
	return m / MetersPerKilometer
}
