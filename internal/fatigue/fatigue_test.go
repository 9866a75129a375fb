package fatigue

import (
	"math"
	"testing"
)

func TestMultiplierBeforeOnset(t *testing.T) {
	m := Hiking()
	for _, h := range []float64{0, 1, 2.5, 3.0} {
		if got := m.Multiplier(h); got != 1.0 {
			t.Errorf("Multiplier(%v) = %v, want 1.0", h, got)
		}
	}
}

func TestMultiplierContinuousAtOnset(t *testing.T) {
	m := Hiking()
	just := m.Multiplier(m.OnsetHours + 1e-9)
	if math.Abs(just-1.0) > 1e-6 {
		t.Errorf("multiplier jumps at onset: %v", just)
	}
}

func TestHikingMultiplier(t *testing.T) {
	m := Hiking()
	// One hour past onset: 1 + 0.03 + 0.005
	if got := m.Multiplier(4.0); math.Abs(got-1.035) > 1e-9 {
		t.Errorf("Multiplier(4) = %v, want 1.035", got)
	}
	// Three hours past onset: 1 + 0.09 + 0.045
	if got := m.Multiplier(6.0); math.Abs(got-1.135) > 1e-9 {
		t.Errorf("Multiplier(6) = %v, want 1.135", got)
	}
}

func TestRunningMultiplier(t *testing.T) {
	m := Running(20)
	if m.OnsetHours != RunningOnsetHours {
		t.Fatalf("onset = %v, want %v", m.OnsetHours, RunningOnsetHours)
	}
	// One hour past onset: 1 + 0.05 + 0.008
	if got := m.Multiplier(3.0); math.Abs(got-1.058) > 1e-9 {
		t.Errorf("Multiplier(3) = %v, want 1.058", got)
	}
}

func TestUltraOnsets(t *testing.T) {
	if got := Running(49).OnsetHours; got != 2.0 {
		t.Errorf("onset at 49 km = %v, want 2.0", got)
	}
	if got := Running(50).OnsetHours; got != 3.0 {
		t.Errorf("onset at 50 km = %v, want 3.0", got)
	}
	if got := Running(100).OnsetHours; got != 4.0 {
		t.Errorf("onset at 100 km = %v, want 4.0", got)
	}
}

func TestMultiplierMonotonic(t *testing.T) {
	m := Running(20)
	prev := 0.0
	for h := 0.0; h < 10; h += 0.25 {
		got := m.Multiplier(h)
		if got < prev {
			t.Errorf("multiplier decreased at %v h: %v < %v", h, got, prev)
		}
		prev = got
	}
}

func TestSegmentMultiplierDownhillPenalty(t *testing.T) {
	m := Running(20)

	// Tired and descending steeply: extra muscle-damage factor
	tired := m.SegmentMultiplier(0, 3.0, -10)
	want := 1.058 * 1.5
	if math.Abs(tired-want) > 1e-9 {
		t.Errorf("tired steep descent = %v, want %v", tired, want)
	}

	// Fresh: no penalty even on a steep descent
	if got := m.SegmentMultiplier(0, 1.0, -10); got != 1.0 {
		t.Errorf("fresh steep descent = %v, want 1.0", got)
	}

	// Hiking never applies the downhill factor
	h := Hiking()
	if got := h.SegmentMultiplier(0, 4.0, -10); math.Abs(got-1.035) > 1e-9 {
		t.Errorf("hiking steep descent = %v, want 1.035", got)
	}
}

func TestSegmentMultiplierMidpoint(t *testing.T) {
	m := Hiking()
	// Starting right at the onset, a 2 h segment is evaluated 1 h in
	got := m.SegmentMultiplier(2.0, 3.0, 0)
	if math.Abs(got-1.035) > 1e-9 {
		t.Errorf("midpoint multiplier = %v, want 1.035", got)
	}
}

func TestDisabled(t *testing.T) {
	m := Disabled()
	if got := m.Multiplier(100); got != 1.0 {
		t.Errorf("disabled Multiplier = %v, want 1.0", got)
	}
	if got := m.SegmentMultiplier(5, 100, -20); got != 1.0 {
		t.Errorf("disabled SegmentMultiplier = %v, want 1.0", got)
	}
}

func TestApplyToRoute(t *testing.T) {
	m := Hiking()
	hours := []float64{2, 2, 2}
	gradients := []float64{5, 0, -5}

	adjusted, multipliers, total := m.ApplyToRoute(hours, gradients)

	if len(adjusted) != 3 || len(multipliers) != 3 {
		t.Fatalf("unexpected lengths: %d, %d", len(adjusted), len(multipliers))
	}

	// First segment midpoint is 1 h, before onset
	if multipliers[0] != 1.0 {
		t.Errorf("first multiplier = %v, want 1.0", multipliers[0])
	}
	// Second segment midpoint is 3 h, right at onset
	if math.Abs(multipliers[1]-1.0) > 1e-6 {
		t.Errorf("second multiplier = %v, want 1.0", multipliers[1])
	}
	// Third segment midpoint is past onset
	if multipliers[2] <= 1.0 {
		t.Errorf("third multiplier = %v, want > 1.0", multipliers[2])
	}

	sum := adjusted[0] + adjusted[1] + adjusted[2]
	if math.Abs(total-sum) > 1e-9 {
		t.Errorf("total %v != sum %v", total, sum)
	}
	if total <= 6.0 {
		t.Errorf("fatigue should lengthen the route: %v", total)
	}
}
