// Package threshold decides, per segment, whether a trail runner is
// still running or has dropped to a hike. Steep climbs and very steep
// descents get hiking pace even for runners, with the uphill cutoff
// lowered as fatigue and distance accumulate.
package threshold

import (
	"github.com/renatmannanov/gpx-predict/internal/models"
)

// Default gradient cutoffs in percent
const (
	DefaultUphillPercent   = 25.0
	DefaultDownhillPercent = -30.0

	// Detected uphill thresholds are clamped to this range
	minUphillPercent = 25.0
	maxUphillPercent = 35.0
)

// Dynamic lowering of the uphill cutoff
const (
	fatigueOnsetHours   = 2.0
	fatiguePerHour      = 1.5
	maxFatigueReduction = 5.0

	ultraDistanceKm    = 50.0
	ultraPerKm         = 1.0 / 25.0
	maxUltraReduction  = 3.0
	minLoweredUphill   = 20.0
)

// Rough speeds used to estimate elapsed time before pacing is known
const (
	roughRunSpeedKmh  = 9.0
	roughHikeSpeedKmh = 4.5
)

// Mode is the movement regime assigned to a segment
type Mode string

const (
	ModeRun  Mode = "run"
	ModeHike Mode = "hike"
)

// Classifier holds the gradient cutoffs separating running from hiking
type Classifier struct {
	UphillPercent   float64
	DownhillPercent float64
}

// Default returns the literature-backed cutoffs
func Default() Classifier {
	return Classifier{
		UphillPercent:   DefaultUphillPercent,
		DownhillPercent: DefaultDownhillPercent,
	}
}

// EffectiveUphill lowers the uphill cutoff with accumulated time and
// distance. After two hours the cutoff drops 1.5 points per extra
// hour, capped at 5. Past 50 km it drops another point per 25 km,
// capped at 3. The result never goes below 20 percent.
func (c Classifier) EffectiveUphill(elapsedHours, coveredKm float64) float64 {
	threshold := c.UphillPercent

	if elapsedHours > fatigueOnsetHours {
		reduction := (elapsedHours - fatigueOnsetHours) * fatiguePerHour
		if reduction > maxFatigueReduction {
			reduction = maxFatigueReduction
		}
		threshold -= reduction
	}

	if coveredKm > ultraDistanceKm {
		reduction := (coveredKm - ultraDistanceKm) * ultraPerKm
		if reduction > maxUltraReduction {
			reduction = maxUltraReduction
		}
		threshold -= reduction
	}

	if threshold < minLoweredUphill {
		threshold = minLoweredUphill
	}
	return threshold
}

// Decide classifies one segment given progress so far
func (c Classifier) Decide(gradientPercent, elapsedHours, coveredKm float64) Mode {
	if gradientPercent >= c.EffectiveUphill(elapsedHours, coveredKm) {
		return ModeHike
	}
	if gradientPercent <= c.DownhillPercent {
		return ModeHike
	}
	return ModeRun
}

// ClassifyRoute assigns a mode to every segment, estimating elapsed
// time from rough regime speeds since real pacing is not known yet.
func (c Classifier) ClassifyRoute(segments []models.Segment) []Mode {
	modes := make([]Mode, len(segments))

	elapsed := 0.0
	covered := 0.0
	for i, seg := range segments {
		mode := c.Decide(seg.GradientPercent(), elapsed, covered)
		modes[i] = mode

		speed := roughRunSpeedKmh
		if mode == ModeHike {
			speed = roughHikeSpeedKmh
		}
		if speed > 0 {
			elapsed += seg.DistanceKm / speed
		}
		covered += seg.DistanceKm
	}

	return modes
}

// DetectFromSplits estimates a personal uphill cutoff from historic
// splits by locating the steepest pace increase across uphill
// gradients. Requires at least 10 splits with 5 on climbs over 5
// percent, otherwise falls back to the default. The result is clamped
// to [25, 35].
func DetectFromSplits(splits []models.Split) float64 {
	if len(splits) < 10 {
		return DefaultUphillPercent
	}

	type sample struct {
		gradient float64
		pace     float64
	}
	var uphill []sample
	for _, s := range splits {
		g := s.GradientPercent()
		if g > 5.0 && s.PaceMinKm > 0 {
			uphill = append(uphill, sample{gradient: g, pace: s.PaceMinKm})
		}
	}
	if len(uphill) < 5 {
		return DefaultUphillPercent
	}

	// Sort by gradient, then find the adjacent pair with the largest
	// pace jump per gradient point. The transition midpoint is the
	// detected cutoff.
	for i := 1; i < len(uphill); i++ {
		for j := i; j > 0 && uphill[j].gradient < uphill[j-1].gradient; j-- {
			uphill[j], uphill[j-1] = uphill[j-1], uphill[j]
		}
	}

	best := 0.0
	threshold := DefaultUphillPercent
	for i := 1; i < len(uphill); i++ {
		dg := uphill[i].gradient - uphill[i-1].gradient
		if dg <= 0 {
			continue
		}
		derivative := (uphill[i].pace - uphill[i-1].pace) / dg
		if derivative > best {
			best = derivative
			threshold = (uphill[i].gradient + uphill[i-1].gradient) / 2
		}
	}

	if threshold < minUphillPercent {
		threshold = minUphillPercent
	}
	if threshold > maxUphillPercent {
		threshold = maxUphillPercent
	}
	return threshold
}
