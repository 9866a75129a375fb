// Package pacemodel implements the physical and empirical pace models:
// Tobler's hiking function, Naismith's rule with Langmuir and Tranter
// descent corrections, and Grade-Adjusted-Pace for trail running.
//
// Every model maps a signed gradient (positive = uphill) to a speed or
// pace multiplier and is validated against published reference points.
// The three Naismith-family variants are deliberately kept as distinct
// named models: each encodes a different historical correction and they
// produce materially different results.
package pacemodel

import (
	"errors"
	"fmt"
)

// Model names accepted by ForName
const (
	ModelTobler          = "tobler"
	ModelNaismith        = "naismith"
	ModelNaismithBase    = "naismith_base"
	ModelNaismithTranter = "naismith_tranter"
	ModelGAPStrava       = "strava_gap"
	ModelGAPMinetti      = "minetti_gap"
	ModelGAPHybrid       = "strava_minetti_gap"
)

// ErrUnknownModel signals a caller configuration bug: the requested
// model name is not registered. Never retried.
var ErrUnknownModel = errors.New("unknown pace model")

// Result is the outcome of one model applied to one segment
type Result struct {
	Model     string  `json:"model"`
	SpeedKmh  float64 `json:"speedKmh"`
	TimeHours float64 `json:"timeHours"`
}

// Calculator estimates traversal time of route segments. All
// implementations are pure and safe for concurrent use.
type Calculator interface {
	Name() string
	Description() string

	// Segment calculates the traversal time of one segment. The
	// multiplier scales the result for hiker profile adjustments;
	// 1.0 means no adjustment.
	Segment(seg SegmentInput, multiplier float64) Result
}

// SegmentInput is the slice of segment data the models need
type SegmentInput struct {
	DistanceKm      float64
	ElevationGainM  float64
	ElevationLossM  float64
	GradientPercent float64
	GradientDegrees float64
	IsAscent        bool
	IsDescent       bool
}

// Route sums a calculator over a full segment sequence
func Route(c Calculator, segments []SegmentInput, multiplier float64) (float64, []Result) {
	results := make([]Result, 0, len(segments))
	total := 0.0

	for _, seg := range segments {
		r := c.Segment(seg, multiplier)
		results = append(results, r)
		total += r.TimeHours
	}

	return total, results
}

// ForName returns the calculator registered under the given model
// name. GAP models need the athlete's flat pace in min/km; the other
// models ignore it.
func ForName(name string, basePaceMinKm float64) (Calculator, error) {
	switch name {
	case ModelTobler:
		return Tobler{}, nil
	case ModelNaismith:
		return NaismithLangmuir{}, nil
	case ModelNaismithBase:
		return NaismithBase{}, nil
	case ModelNaismithTranter:
		return NaismithTranter{}, nil
	case ModelGAPStrava:
		return NewGAP(basePaceMinKm, GAPStrava), nil
	case ModelGAPMinetti:
		return NewGAP(basePaceMinKm, GAPMinetti), nil
	case ModelGAPHybrid:
		return NewGAP(basePaceMinKm, GAPHybrid), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
}
