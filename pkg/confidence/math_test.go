package confidence

import (
	"math"
	"testing"
)

func TestCoverage(t *testing.T) {
	tests := []struct {
		priced, total int
		want          float64
	}{
		{2, 2, 1.0},
		{1, 2, 0.5},
		{0, 2, 0},
		{0, 0, 0},
		{3, 2, 1.0}, // clamped
	}
	for _, tt := range tests {
		if got := Coverage(tt.priced, tt.total); got != tt.want {
			t.Errorf("Coverage(%d, %d) = %g, want %g", tt.priced, tt.total, got, tt.want)
		}
	}
}

func TestAggregate(t *testing.T) {
	if got := Aggregate(nil); got != 0 {
		t.Errorf("Aggregate(nil) = %g, want 0", got)
	}
	if got := Aggregate([]float64{1, 1, 1}); got != 1 {
		t.Errorf("Aggregate(all ones) = %g, want 1", got)
	}
	if got := Aggregate([]float64{1, 0}); got != 0 {
		t.Errorf("a zero coverage zeroes the aggregate, got %g", got)
	}

	got := Aggregate([]float64{0.5, 1})
	want := math.Sqrt(0.5)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Aggregate(0.5, 1) = %g, want %g", got, want)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-0.2) != 0 || Clamp(1.4) != 1 || Clamp(0.7) != 0.7 {
		t.Error("Clamp out of range")
	}
}

func TestAboveThreshold(t *testing.T) {
	if !AboveThreshold(0.8, 0.8) {
		t.Error("threshold is inclusive")
	}
	if AboveThreshold(0.79, 0.8) {
		t.Error("below threshold should fail")
	}
}
