package models

// Split is one historical per-kilometer observation from a recorded
// activity: how fast the athlete actually covered a stretch of known
// distance and elevation change. Immutable input to the
// personalization engine.
type Split struct {
	DistanceKm       float64 `json:"distanceKm" db:"distance_km"`
	ElevationChangeM float64 `json:"elevationChangeM" db:"elevation_change_m"`
	PaceMinKm        float64 `json:"paceMinKm" db:"pace_min_km"`
}

// GradientPercent returns the signed average gradient of the split.
func (s Split) GradientPercent() float64 {
	if s.DistanceKm <= 0 {
		return 0
	}
	return s.ElevationChangeM / (s.DistanceKm * 1000) * 100
}

// ActivityDomain selects which engine defaults apply: hiking or
// trail running.
type ActivityDomain string

const (
	DomainHiking   ActivityDomain = "hiking"
	DomainTrailRun ActivityDomain = "trail_run"
)
