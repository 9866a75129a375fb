package models

import (
	"math"
	"testing"
)

func TestSegmentGradient(t *testing.T) {
	seg := Segment{
		Type:           SegmentAscent,
		DistanceKm:     2.0,
		ElevationGainM: 200,
	}

	if got := seg.GradientPercent(); math.Abs(got-10.0) > 1e-9 {
		t.Errorf("GradientPercent() = %v, want 10.0", got)
	}

	wantDeg := math.Atan(0.1) * 180 / math.Pi
	if got := seg.GradientDegrees(); math.Abs(got-wantDeg) > 1e-9 {
		t.Errorf("GradientDegrees() = %v, want %v", got, wantDeg)
	}

	if got := seg.Category(); got != Up8_12 {
		t.Errorf("Category() = %v, want %v", got, Up8_12)
	}
}

func TestSegmentGradientZeroDistance(t *testing.T) {
	seg := Segment{ElevationGainM: 100}
	if got := seg.GradientPercent(); got != 0 {
		t.Errorf("GradientPercent() with zero distance = %v, want 0", got)
	}
}

func TestSegmentElevationChange(t *testing.T) {
	seg := Segment{ElevationGainM: 50, ElevationLossM: 120}
	if got := seg.ElevationChangeM(); got != -70 {
		t.Errorf("ElevationChangeM() = %v, want -70", got)
	}
}

func TestSplitGradient(t *testing.T) {
	s := Split{DistanceKm: 1.0, ElevationChangeM: -80}
	if got := s.GradientPercent(); math.Abs(got-(-8.0)) > 1e-9 {
		t.Errorf("GradientPercent() = %v, want -8.0", got)
	}

	zero := Split{ElevationChangeM: 100}
	if got := zero.GradientPercent(); got != 0 {
		t.Errorf("GradientPercent() with zero distance = %v, want 0", got)
	}
}
