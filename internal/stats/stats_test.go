package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 4}); !almostEqual(got, 2.5) {
		t.Errorf("Mean = %v, want 2.5", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
}

func TestWeightedMean(t *testing.T) {
	got := WeightedMean([]float64{5, 7}, []float64{2, 4})
	if !almostEqual(got, 39.0/6.0) {
		t.Errorf("WeightedMean = %v, want %v", got, 39.0/6.0)
	}

	// Missing weights default to 1
	got = WeightedMean([]float64{2, 4, 6}, []float64{1})
	if !almostEqual(got, 4.0) {
		t.Errorf("WeightedMean with short weights = %v, want 4.0", got)
	}

	// All-zero weights fall back to the plain mean
	got = WeightedMean([]float64{2, 4}, []float64{0, 0})
	if !almostEqual(got, 3.0) {
		t.Errorf("WeightedMean with zero weights = %v, want 3.0", got)
	}
}

func TestMedian(t *testing.T) {
	if got := Median([]float64{3, 1, 2}); !almostEqual(got, 2) {
		t.Errorf("Median odd = %v, want 2", got)
	}
	if got := Median([]float64{4, 1, 3, 2}); !almostEqual(got, 2.5) {
		t.Errorf("Median even = %v, want 2.5", got)
	}
}

func TestQuantile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	if got := Quantile(values, 0); !almostEqual(got, 1) {
		t.Errorf("Quantile(0) = %v, want 1", got)
	}
	if got := Quantile(values, 1); !almostEqual(got, 5) {
		t.Errorf("Quantile(1) = %v, want 5", got)
	}
	if got := Quantile(values, 0.25); !almostEqual(got, 2) {
		t.Errorf("Quantile(0.25) = %v, want 2", got)
	}
	if got := Quantile(values, 0.5); !almostEqual(got, 3) {
		t.Errorf("Quantile(0.5) = %v, want 3", got)
	}

	// Interpolation between ranks
	if got := Quantile([]float64{1, 2}, 0.5); !almostEqual(got, 1.5) {
		t.Errorf("Quantile interpolated = %v, want 1.5", got)
	}
}

func TestQuantileDoesNotMutate(t *testing.T) {
	values := []float64{3, 1, 2}
	Quantile(values, 0.5)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("Quantile mutated input: %v", values)
	}
}

func TestQuartilesOrdered(t *testing.T) {
	q1, q2, q3 := Quartiles([]float64{5, 1, 9, 3, 7, 2, 8})
	if q1 > q2 || q2 > q3 {
		t.Errorf("quartiles out of order: %v %v %v", q1, q2, q3)
	}
}

func TestRemoveOutliers(t *testing.T) {
	values := []float64{6.0, 6.1, 6.2, 6.3, 6.4, 25.0}
	filtered := RemoveOutliers(values)

	if len(filtered) != 5 {
		t.Fatalf("expected 5 values after filtering, got %d: %v", len(filtered), filtered)
	}
	for _, v := range filtered {
		if v == 25.0 {
			t.Errorf("outlier 25.0 survived filtering")
		}
	}
}

func TestRemoveOutliersKeepsTightData(t *testing.T) {
	values := []float64{6.0, 6.1, 6.2, 6.3}
	if got := RemoveOutliers(values); len(got) != 4 {
		t.Errorf("tight data lost values: %v", got)
	}
}

func TestOutlierBounds(t *testing.T) {
	lower, upper := OutlierBounds([]float64{1, 2, 3, 4, 5})
	// Q1=2, Q3=4, IQR=2
	if !almostEqual(lower, -1) || !almostEqual(upper, 7) {
		t.Errorf("OutlierBounds = (%v, %v), want (-1, 7)", lower, upper)
	}
}
