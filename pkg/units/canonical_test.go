package units

import "testing"

func TestConversionFactor(t *testing.T) {
	tests := []struct {
		from, to Unit
		want     float64
	}{
		{UnitKilometer, UnitMeter, 1000},
		{UnitMeter, UnitKilometer, 1}, // only km->m is defined
		{UnitMeter, UnitMeter, 1},
		{UnitSquareMeter, UnitMeter, 1},
		{UnitCount, UnitEach, 1},
	}
	for _, tt := range tests {
		if got := ConversionFactor(tt.from, tt.to); got != tt.want {
			t.Errorf("ConversionFactor(%s, %s) = %g, want %g", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestKmRoundTrip(t *testing.T) {
	if got := KmToMeters(2.5); got != 2500 {
		t.Errorf("KmToMeters(2.5) = %g", got)
	}
	if got := MetersToKm(2500); got != 2.5 {
		t.Errorf("MetersToKm(2500) = %g", got)
	}
}

func TestValid(t *testing.T) {
	for _, u := range []Unit{UnitMeter, UnitKilometer, UnitSquareMeter, UnitCount} {
		if !Valid(u) {
			t.Errorf("expected %q to be valid", u)
		}
	}
	if Valid(Unit("parsec")) {
		t.Error("expected unknown unit to be invalid")
	}
}
