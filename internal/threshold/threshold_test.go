package threshold

import (
	"math"
	"testing"

	"github.com/renatmannanov/gpx-predict/internal/models"
)

func TestDecideDefaults(t *testing.T) {
	c := Default()

	tests := []struct {
		gradient float64
		want     Mode
	}{
		{30, ModeHike},  // above the uphill cutoff
		{25, ModeHike},  // cutoff is inclusive
		{20, ModeRun},   // steep but runnable
		{0, ModeRun},    // flat
		{-20, ModeRun},  // runnable descent
		{-30, ModeHike}, // cutoff is inclusive
		{-35, ModeHike}, // too steep down to run
	}

	for _, tt := range tests {
		if got := c.Decide(tt.gradient, 0, 0); got != tt.want {
			t.Errorf("Decide(%v, fresh) = %v, want %v", tt.gradient, got, tt.want)
		}
	}
}

func TestEffectiveUphill(t *testing.T) {
	c := Default()

	// Fresh: full threshold
	if got := c.EffectiveUphill(1, 10); got != 25.0 {
		t.Errorf("fresh threshold = %v, want 25.0", got)
	}

	// Two hours past the fatigue onset: 1.5 points per hour
	if got := c.EffectiveUphill(4, 10); math.Abs(got-22.0) > 1e-9 {
		t.Errorf("threshold after 4 h = %v, want 22.0", got)
	}

	// Fatigue reduction caps at 5
	if got := c.EffectiveUphill(20, 10); math.Abs(got-20.0) > 1e-9 {
		t.Errorf("threshold after 20 h = %v, want 20.0", got)
	}

	// Ultra distance lowers it further, floor at 20
	if got := c.EffectiveUphill(20, 200); math.Abs(got-20.0) > 1e-9 {
		t.Errorf("ultra threshold = %v, want floor 20.0", got)
	}

	// Distance reduction alone: 2 points at 100 km
	if got := c.EffectiveUphill(1, 100); math.Abs(got-23.0) > 1e-9 {
		t.Errorf("threshold at 100 km fresh = %v, want 23.0", got)
	}
}

func TestDecideFatigued(t *testing.T) {
	c := Default()

	// 23% climb: runnable fresh, hiked when tired
	if got := c.Decide(23, 0, 0); got != ModeRun {
		t.Errorf("fresh 23%% = %v, want run", got)
	}
	if got := c.Decide(23, 5, 0); got != ModeHike {
		t.Errorf("tired 23%% = %v, want hike", got)
	}
}

func TestClassifyRoute(t *testing.T) {
	segments := []models.Segment{
		{DistanceKm: 2, ElevationGainM: 60},  // 3%, run
		{DistanceKm: 1, ElevationGainM: 300}, // 30%, hike
		{DistanceKm: 2, ElevationLossM: 100}, // -5%, run
	}

	modes := Default().ClassifyRoute(segments)
	want := []Mode{ModeRun, ModeHike, ModeRun}
	for i := range want {
		if modes[i] != want[i] {
			t.Errorf("segment %d mode = %v, want %v", i, modes[i], want[i])
		}
	}
}

func TestDetectFromSplitsFallback(t *testing.T) {
	// Too few splits overall
	few := make([]models.Split, 5)
	for i := range few {
		few[i] = models.Split{DistanceKm: 1, ElevationChangeM: 100, PaceMinKm: 8}
	}
	if got := DetectFromSplits(few); got != DefaultUphillPercent {
		t.Errorf("threshold with 5 splits = %v, want default", got)
	}

	// Enough splits but too few on climbs
	flat := make([]models.Split, 12)
	for i := range flat {
		flat[i] = models.Split{DistanceKm: 1, ElevationChangeM: 0, PaceMinKm: 6}
	}
	if got := DetectFromSplits(flat); got != DefaultUphillPercent {
		t.Errorf("threshold with flat splits = %v, want default", got)
	}
}

func TestDetectFromSplits(t *testing.T) {
	// Pace jumps sharply between the 24% and 32% climbs; the detected
	// transition is their midpoint
	uphill := []struct {
		gradient, pace float64
	}{
		{6, 7.0}, {10, 7.3}, {20, 8.0}, {24, 8.3}, {32, 13.0}, {40, 13.5},
	}

	var splits []models.Split
	for _, u := range uphill {
		splits = append(splits, models.Split{
			DistanceKm:       1,
			ElevationChangeM: u.gradient * 10,
			PaceMinKm:        u.pace,
		})
	}
	for i := 0; i < 4; i++ {
		splits = append(splits, models.Split{DistanceKm: 1, PaceMinKm: 6})
	}

	if got := DetectFromSplits(splits); math.Abs(got-28.0) > 1e-9 {
		t.Errorf("detected threshold = %v, want 28.0", got)
	}
}

func TestDetectFromSplitsClamped(t *testing.T) {
	// The steepest transition sits below the plausible range
	uphill := []struct {
		gradient, pace float64
	}{
		{6, 7.0}, {8, 7.1}, {10, 7.2}, {14, 12.0}, {30, 12.5}, {40, 13.0},
	}

	var splits []models.Split
	for _, u := range uphill {
		splits = append(splits, models.Split{
			DistanceKm:       1,
			ElevationChangeM: u.gradient * 10,
			PaceMinKm:        u.pace,
		})
	}
	for i := 0; i < 4; i++ {
		splits = append(splits, models.Split{DistanceKm: 1, PaceMinKm: 6})
	}

	if got := DetectFromSplits(splits); got != 25.0 {
		t.Errorf("clamped threshold = %v, want 25.0", got)
	}
}
