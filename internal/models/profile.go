package models

// CategoryPace is the derived pace statistic of one gradient category
// after outlier rejection
type CategoryPace struct {
	AvgPaceMinKm float64 `json:"avgPaceMinKm"`
	SampleCount  int     `json:"sampleCount"`
}

// CategoryPercentiles holds the 25th/50th/75th percentile paces of one
// category, derived from the same outlier-filtered sample set as the
// average. Always p25 <= p50 <= p75.
type CategoryPercentiles struct {
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
}

// PaceProfile is the personalization profile of one (user, domain)
// pair: per-category pace distributions learned from historical
// splits. Recomputed wholesale whenever new splits are processed,
// never patched incrementally.
type PaceProfile struct {
	Domain ActivityDomain `json:"domain"`

	Paces       map[GradientCategory]CategoryPace        `json:"paces"`
	Percentiles map[GradientCategory]CategoryPercentiles `json:"percentiles"`

	// Legacy projection of the 11-category averages onto the 7-category
	// scheme via sample-count-weighted averaging
	LegacyPaces map[LegacyCategory]CategoryPace `json:"legacyPaces"`

	TotalSplits    int `json:"totalSplits"`
	FilteredSplits int `json:"filteredSplits"` // kept after outlier rejection
}

// SampleCount returns the post-filter sample count of a category,
// zero when the category has no data.
func (p *PaceProfile) SampleCount(c GradientCategory) int {
	if p == nil {
		return 0
	}
	return p.Paces[c].SampleCount
}

// CoveredCategories counts categories holding at least min samples.
func (p *PaceProfile) CoveredCategories(min int) int {
	if p == nil {
		return 0
	}
	n := 0
	for _, cp := range p.Paces {
		if cp.SampleCount >= min {
			n++
		}
	}
	return n
}

// EffortLevel names how conservative a personalized estimate is. Each
// level maps to a percentile of the per-category pace distribution;
// the mapping itself is configuration, not part of this type.
type EffortLevel string

const (
	EffortFast     EffortLevel = "fast"     // race effort, p25 by default
	EffortModerate EffortLevel = "moderate" // typical training, p50
	EffortEasy     EffortLevel = "easy"     // relaxed, p75
)
