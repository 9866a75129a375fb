package pacemodel

import (
	"math"
	"testing"
)

func TestNaismithBaseHours(t *testing.T) {
	// 10 flat kilometers at 5 km/h
	if got := NaismithBaseHours(10, 0); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("flat 10 km = %v, want 2.0", got)
	}

	// 600 m of climb adds exactly one hour
	if got := NaismithBaseHours(10, 600); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("10 km + 600 m = %v, want 3.0", got)
	}
}

func TestNaismithLangmuirAscent(t *testing.T) {
	seg := SegmentInput{DistanceKm: 4, ElevationGainM: 600, IsAscent: true}
	result := NaismithLangmuir{}.Segment(seg, 1.0)

	want := 4.0/5.0 + 1.0
	if math.Abs(result.TimeHours-want) > 1e-9 {
		t.Errorf("ascent time = %v, want %v", result.TimeHours, want)
	}
}

func TestNaismithLangmuirDescents(t *testing.T) {
	degrees := func(gradientPercent float64) float64 {
		return math.Atan(gradientPercent/100) * 180 / math.Pi
	}

	tests := []struct {
		name       string
		distanceKm float64
		lossM      float64
		want       float64
	}{
		// ~1.9 degrees: too gentle for any correction
		{"shallow", 3, 100, 0.6},
		// ~5.7 degrees: gentle window, 10 min saved per 300 m
		{"gentle", 3, 300, 0.6 - 10.0/60.0},
		// ~16.7 degrees: steep, 10 min added per 300 m
		{"steep", 1, 300, 0.2 + 10.0/60.0},
	}

	for _, tt := range tests {
		gradient := -tt.lossM / (tt.distanceKm * 1000) * 100
		seg := SegmentInput{
			DistanceKm:      tt.distanceKm,
			ElevationLossM:  tt.lossM,
			GradientPercent: gradient,
			GradientDegrees: degrees(gradient),
			IsDescent:       true,
		}
		result := NaismithLangmuir{}.Segment(seg, 1.0)
		if math.Abs(result.TimeHours-tt.want) > 1e-9 {
			t.Errorf("%s descent = %v, want %v", tt.name, result.TimeHours, tt.want)
		}
	}
}

func TestNaismithTranter(t *testing.T) {
	// Every descent costs 10 min per 300 m, regardless of steepness
	seg := SegmentInput{
		DistanceKm:     10,
		ElevationGainM: 500,
		ElevationLossM: 300,
	}
	result := NaismithTranter{}.Segment(seg, 1.0)

	want := 2.0 + 500.0/600.0 + 10.0/60.0
	if math.Abs(result.TimeHours-want) > 1e-9 {
		t.Errorf("tranter time = %v, want %v", result.TimeHours, want)
	}
}

func TestNaismithBaseIgnoresDescent(t *testing.T) {
	seg := SegmentInput{
		DistanceKm:      3,
		ElevationLossM:  300,
		GradientPercent: -10,
		IsDescent:       true,
	}
	result := NaismithBase{}.Segment(seg, 1.0)

	// Flat speed only, no descent correction either way
	if math.Abs(result.TimeHours-0.6) > 1e-9 {
		t.Errorf("base descent = %v, want 0.6", result.TimeHours)
	}
}

func TestNaismithVariantsDiffer(t *testing.T) {
	// A gentle descent: Langmuir subtracts time, Tranter adds it
	seg := SegmentInput{
		DistanceKm:      3,
		ElevationLossM:  300,
		GradientPercent: -10,
		GradientDegrees: math.Atan(-0.1) * 180 / math.Pi,
		IsDescent:       true,
	}

	langmuir := NaismithLangmuir{}.Segment(seg, 1.0)
	tranter := NaismithTranter{}.Segment(seg, 1.0)

	if langmuir.TimeHours >= tranter.TimeHours {
		t.Errorf("expected Langmuir faster than Tranter on gentle descent: %v vs %v",
			langmuir.TimeHours, tranter.TimeHours)
	}
}
