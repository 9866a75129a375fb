package pacemodel

import (
	"math"
	"sort"
)

// GAPStrategy selects how the grade adjustment is computed
type GAPStrategy string

const (
	// GAPStrava uses the empirical lookup table derived from
	// large-scale athlete data. Recommended for most runners.
	GAPStrava GAPStrategy = "strava"

	// GAPMinetti uses the closed-form energy-cost polynomial
	// (Minetti et al., 2002). More conservative on downhills.
	GAPMinetti GAPStrategy = "minetti"

	// GAPHybrid uses Minetti uphill and the empirical table downhill,
	// correcting the polynomial's over-optimistic descent behavior.
	GAPHybrid GAPStrategy = "hybrid"
)

// gapTable is the empirical pace adjustment by gradient percent
// (Strava's 2017 improved GAP model, data from 240k athletes).
// Asymmetric: gentle benefit downhill, steep penalty uphill.
// 1.0 = flat reference.
var gapTable = map[int]float64{
	-30: 1.15, // very steep descent, braking required
	-25: 1.05,
	-20: 0.95,
	-15: 0.90,
	-10: 0.88,
	-9:  0.88, // optimal descent point
	-5:  0.92,
	-3:  0.96,
	0:   1.00,
	3:   1.08,
	5:   1.15,
	8:   1.28,
	10:  1.38,
	12:  1.50,
	15:  1.70,
	18:  1.95,
	20:  2.15,
	25:  2.70,
	30:  3.30,
	35:  4.00,
	40:  4.80,
	45:  5.70,
}

// Minetti polynomial constants
const (
	minettiFlatCost = 3.6  // J/kg/m on flat ground
	minettiPaceExp  = 0.75 // pace scales roughly with energy^0.75

	minettiMinAdjustment = 0.5
	minettiMaxAdjustment = 4.0
)

// DefaultFlatPaceMinKm is the fallback flat running pace when no
// athlete pace is known (10 km/h).
const DefaultFlatPaceMinKm = 6.0

var gapGradients = func() []int {
	gs := make([]int, 0, len(gapTable))
	for g := range gapTable {
		gs = append(gs, g)
	}
	sort.Ints(gs)
	return gs
}()

// InterpolateGAPTable returns the empirical pace adjustment for a
// gradient percent, linearly interpolated between table points and
// clamped at the table ends.
func InterpolateGAPTable(gradientPercent float64) float64 {
	first := gapGradients[0]
	last := gapGradients[len(gapGradients)-1]

	if gradientPercent <= float64(first) {
		return gapTable[first]
	}
	if gradientPercent >= float64(last) {
		return gapTable[last]
	}

	for i := 0; i < len(gapGradients)-1; i++ {
		g1, g2 := gapGradients[i], gapGradients[i+1]
		if gradientPercent >= float64(g1) && gradientPercent <= float64(g2) {
			v1, v2 := gapTable[g1], gapTable[g2]
			t := (gradientPercent - float64(g1)) / float64(g2-g1)
			return v1 + t*(v2-v1)
		}
	}

	return 1.0
}

// MinettiEnergyCostRatio calculates the metabolic cost of running at
// the given gradient fraction relative to flat ground, using Minetti's
// 5th-degree polynomial:
//
//	C = 155.4i^5 - 30.4i^4 - 43.3i^3 + 46.3i^2 + 19.5i + 3.6
func MinettiEnergyCostRatio(gradientFraction float64) float64 {
	i := gradientFraction
	cost := 155.4*i*i*i*i*i - 30.4*i*i*i*i - 43.3*i*i*i + 46.3*i*i + 19.5*i + minettiFlatCost
	return cost / minettiFlatCost
}

// GAP is the Grade-Adjusted-Pace calculator for trail running. It
// converts the athlete's flat pace to an equivalent pace at any
// gradient. The adjustment is 1.0 at zero gradient for every strategy.
type GAP struct {
	BasePaceMinKm float64
	Strategy      GAPStrategy
}

// NewGAP creates a GAP calculator. A non-positive base pace falls back
// to DefaultFlatPaceMinKm.
func NewGAP(basePaceMinKm float64, strategy GAPStrategy) GAP {
	if basePaceMinKm <= 0 {
		basePaceMinKm = DefaultFlatPaceMinKm
	}
	return GAP{BasePaceMinKm: basePaceMinKm, Strategy: strategy}
}

func (g GAP) Name() string {
	switch g.Strategy {
	case GAPMinetti:
		return ModelGAPMinetti
	case GAPHybrid:
		return ModelGAPHybrid
	default:
		return ModelGAPStrava
	}
}

func (g GAP) Description() string {
	switch g.Strategy {
	case GAPMinetti:
		return "Grade Adjusted Pace - Minetti energy-cost polynomial"
	case GAPHybrid:
		return "Grade Adjusted Pace - Minetti uphill, empirical downhill"
	default:
		return "Grade Adjusted Pace - empirical athlete data"
	}
}

// Adjustment returns the pace multiplier at the given gradient percent
// (1.0 = flat, 1.5 = 50% slower).
func (g GAP) Adjustment(gradientPercent float64) float64 {
	switch g.Strategy {
	case GAPMinetti:
		return clampAdjustment(minettiAdjustment(gradientPercent))
	case GAPHybrid:
		if gradientPercent >= 0 {
			return clampAdjustment(minettiAdjustment(gradientPercent))
		}
		return InterpolateGAPTable(gradientPercent)
	default:
		return InterpolateGAPTable(gradientPercent)
	}
}

// PaceMinKm returns the adjusted pace at the given gradient percent
func (g GAP) PaceMinKm(gradientPercent float64) float64 {
	return g.BasePaceMinKm * g.Adjustment(gradientPercent)
}

func (g GAP) Segment(seg SegmentInput, multiplier float64) Result {
	pace := g.PaceMinKm(seg.GradientPercent)

	speed := 0.0
	hours := 0.0
	if pace > 0 {
		speed = 60 / pace
		hours = seg.DistanceKm / speed * multiplier
	}

	return Result{Model: g.Name(), SpeedKmh: speed, TimeHours: hours}
}

func minettiAdjustment(gradientPercent float64) float64 {
	ratio := MinettiEnergyCostRatio(gradientPercent / 100)
	if ratio < 0 {
		ratio = 0
	}
	return math.Pow(ratio, minettiPaceExp)
}

func clampAdjustment(adj float64) float64 {
	if adj < minettiMinAdjustment {
		return minettiMinAdjustment
	}
	if adj > minettiMaxAdjustment {
		return minettiMaxAdjustment
	}
	return adj
}
