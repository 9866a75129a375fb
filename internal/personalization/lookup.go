package personalization

import (
	"errors"

	"github.com/renatmannanov/gpx-predict/internal/models"
)

// ErrUnknownEffort signals a caller configuration bug: the requested
// effort level is not a registered name. Never retried.
var ErrUnknownEffort = errors.New("unknown effort level")

// KnownEffort reports whether the effort names a registered level
func KnownEffort(effort models.EffortLevel) bool {
	switch effort {
	case models.EffortFast, models.EffortModerate, models.EffortEasy:
		return true
	}
	return false
}

// Lookup answers pace queries against a built profile, gating on a
// minimum sample count per category
type Lookup struct {
	Profile    *models.PaceProfile
	MinSamples int

	// EffortPercentiles maps effort level to the percentile used,
	// e.g. fast -> 25. Zero value falls back to the defaults.
	EffortPercentiles map[models.EffortLevel]int
}

// NewLookup creates a lookup with the default gates
func NewLookup(profile *models.PaceProfile) *Lookup {
	return &Lookup{
		Profile:    profile,
		MinSamples: DefaultMinSamples,
		EffortPercentiles: map[models.EffortLevel]int{
			models.EffortFast:     25,
			models.EffortModerate: 50,
			models.EffortEasy:     75,
		},
	}
}

// Pace returns the personalized pace for a gradient category at the
// given effort. ok is false when the category has too few samples for
// a trustworthy estimate.
func (l *Lookup) Pace(category models.GradientCategory, effort models.EffortLevel) (float64, bool) {
	if l.Profile == nil {
		return 0, false
	}

	pace, exists := l.Profile.Paces[category]
	if !exists || pace.SampleCount < l.minSamples() {
		return 0, false
	}

	percentiles, exists := l.Profile.Percentiles[category]
	if !exists {
		return pace.AvgPaceMinKm, true
	}

	switch l.percentileFor(effort) {
	case 25:
		return percentiles.P25, true
	case 75:
		return percentiles.P75, true
	default:
		return percentiles.P50, true
	}
}

// AveragePace returns the mean pace for a category regardless of
// effort, still gated on sample count
func (l *Lookup) AveragePace(category models.GradientCategory) (float64, bool) {
	if l.Profile == nil {
		return 0, false
	}
	pace, exists := l.Profile.Paces[category]
	if !exists || pace.SampleCount < l.minSamples() {
		return 0, false
	}
	return pace.AvgPaceMinKm, true
}

// Covered reports whether enough categories hold usable data to call
// the profile personalized at all
func (l *Lookup) Covered() bool {
	return l.Profile != nil && l.Profile.CoveredCategories(l.minSamples()) > 0
}

func (l *Lookup) minSamples() int {
	if l.MinSamples > 0 {
		return l.MinSamples
	}
	return DefaultMinSamples
}

func (l *Lookup) percentileFor(effort models.EffortLevel) int {
	if l.EffortPercentiles != nil {
		if p, ok := l.EffortPercentiles[effort]; ok {
			return p
		}
	}
	switch effort {
	case models.EffortFast:
		return 25
	case models.EffortEasy:
		return 75
	default:
		return 50
	}
}
