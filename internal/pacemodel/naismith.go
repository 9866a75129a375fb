package pacemodel

// Naismith constants (Naismith, 1892)
const (
	naismithBaseSpeedKmh = 5.0
	naismithClimbRateMH  = 600.0 // vertical meters per hour uphill
	descentStepM         = 300.0 // correction granularity in meters
	descentCorrectionHrs = 10.0 / 60.0

	// Langmuir descent window, in degrees
	langmuirGentleMinDeg = 5.0
	langmuirGentleMaxDeg = 12.0
)

// NaismithBaseHours calculates base hiking time with Naismith's rule:
// 5 km/h on the flat plus 1 hour per 600 m of ascent. Descent is not
// accounted for; use one of the correction variants for real
// estimates.
func NaismithBaseHours(distanceKm, elevationGainM float64) float64 {
	return distanceKm/naismithBaseSpeedKmh + elevationGainM/naismithClimbRateMH
}

// NaismithBase is the uncorrected 1892 rule, descents priced as flat
// ground. Selectable alongside the correction variants.
type NaismithBase struct{}

func (NaismithBase) Name() string { return ModelNaismithBase }

func (NaismithBase) Description() string {
	return "Naismith's Rule (1892), no descent correction"
}

func (n NaismithBase) Segment(seg SegmentInput, multiplier float64) Result {
	hours := NaismithBaseHours(seg.DistanceKm, seg.ElevationGainM) * multiplier

	speed := 0.0
	if hours > 0 {
		speed = seg.DistanceKm / hours
	}

	return Result{Model: n.Name(), SpeedKmh: speed, TimeHours: hours}
}

// NaismithLangmuir is Naismith's rule with Langmuir's 1984 descent
// corrections: gentle descents (5-12 degrees) save 10 min per 300 m,
// steep descents (>12 degrees) cost 10 min per 300 m.
type NaismithLangmuir struct{}

func (NaismithLangmuir) Name() string { return ModelNaismith }

func (NaismithLangmuir) Description() string {
	return "Naismith's Rule (1892) with Langmuir corrections - conservative estimate"
}

func (n NaismithLangmuir) Segment(seg SegmentInput, multiplier float64) Result {
	horizontal := seg.DistanceKm / naismithBaseSpeedKmh

	var hours float64
	switch {
	case seg.IsAscent:
		hours = horizontal + seg.ElevationGainM/naismithClimbRateMH
	case seg.IsDescent:
		gradientDeg := seg.GradientDegrees
		if gradientDeg < 0 {
			gradientDeg = -gradientDeg
		}
		hours = horizontal + langmuirCorrectionHours(seg.ElevationLossM, gradientDeg)
	default:
		hours = horizontal
	}

	hours *= multiplier

	speed := 0.0
	if hours > 0 {
		speed = seg.DistanceKm / hours
	}

	return Result{Model: n.Name(), SpeedKmh: speed, TimeHours: hours}
}

// langmuirCorrectionHours returns hours to add (positive, steep
// descent) or subtract (negative, gentle descent).
func langmuirCorrectionHours(descentM, gradientDeg float64) float64 {
	switch {
	case gradientDeg < langmuirGentleMinDeg:
		return 0
	case gradientDeg <= langmuirGentleMaxDeg:
		return -(descentM / descentStepM) * descentCorrectionHrs
	default:
		return (descentM / descentStepM) * descentCorrectionHrs
	}
}

// NaismithTranter is the legacy Naismith variant with Tranter's
// descent handling: every descent costs 10 min per 300 m regardless of
// steepness. Kept as a separately selectable model; it encodes a
// different historical correction than Langmuir and produces
// materially different results.
type NaismithTranter struct{}

func (NaismithTranter) Name() string { return ModelNaismithTranter }

func (NaismithTranter) Description() string {
	return "Naismith's Rule (1892) with Tranter's descent correction (1970)"
}

func (n NaismithTranter) Segment(seg SegmentInput, multiplier float64) Result {
	hours := NaismithBaseHours(seg.DistanceKm, seg.ElevationGainM)
	if seg.ElevationLossM > 0 {
		hours += (seg.ElevationLossM / descentStepM) * descentCorrectionHrs
	}

	hours *= multiplier

	speed := 0.0
	if hours > 0 {
		speed = seg.DistanceKm / hours
	}

	return Result{Model: n.Name(), SpeedKmh: speed, TimeHours: hours}
}
