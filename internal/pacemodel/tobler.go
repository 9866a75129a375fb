package pacemodel

import "math"

// Tobler constants (Tobler, 1993; based on Imhof's Swiss marching data)
const (
	toblerMaxSpeedKmh     = 6.0
	toblerDecayRate       = 3.5
	toblerOptimalGradient = -0.05 // slight downhill is optimal
)

// ToblerSpeedKmh calculates walking speed with Tobler's hiking
// function: v = 6 * exp(-3.5 * |s + 0.05|), where s is the gradient as
// a decimal fraction. Peak speed of 6 km/h at -5% grade, about 5 km/h
// on the flat, monotone decay away from the optimum in both
// directions.
func ToblerSpeedKmh(gradientFraction float64) float64 {
	return toblerMaxSpeedKmh * math.Exp(-toblerDecayRate*math.Abs(gradientFraction-toblerOptimalGradient))
}

// Tobler is the gradient-adaptive hiking speed model
type Tobler struct{}

func (Tobler) Name() string { return ModelTobler }

func (Tobler) Description() string {
	return "Tobler's Hiking Function (1993) - gradient-adaptive"
}

// Segment calculates traversal time from the segment's average
// gradient.
func (t Tobler) Segment(seg SegmentInput, multiplier float64) Result {
	speed := ToblerSpeedKmh(seg.GradientPercent / 100)

	hours := 0.0
	if speed > 0 {
		hours = seg.DistanceKm / speed * multiplier
	}

	effectiveSpeed := 0.0
	if hours > 0 {
		effectiveSpeed = seg.DistanceKm / hours
	}

	return Result{
		Model:     t.Name(),
		SpeedKmh:  effectiveSpeed,
		TimeHours: hours,
	}
}

// PaceMinKm returns the Tobler pace in min/km at the given gradient
// percent, used as the hiking fallback by the personalization layer.
func (Tobler) PaceMinKm(gradientPercent float64) float64 {
	speed := ToblerSpeedKmh(gradientPercent / 100)
	if speed <= 0 {
		return 0
	}
	return 60 / speed
}
