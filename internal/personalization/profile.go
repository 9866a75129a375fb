// Package personalization builds per-athlete pace profiles from
// historic kilometer splits, bucketed by gradient category.
package personalization

import (
	"log"

	"github.com/renatmannanov/gpx-predict/internal/models"
	"github.com/renatmannanov/gpx-predict/internal/stats"
)

const (
	// DefaultPaceCeilingMinKm rejects splits slower than this as
	// stops or GPS noise
	DefaultPaceCeilingMinKm = 30.0

	// DefaultMinSamples gates personalized pace per category
	DefaultMinSamples = 5

	// Outlier filtering is skipped below this many samples, the
	// quartiles are too unstable
	minSamplesForIQR = 4

	// Below this many samples all percentiles collapse to the median
	minSamplesForPercentiles = 3
)

// Builder assembles pace profiles from raw splits
type Builder struct {
	PaceCeilingMinKm float64
}

// NewBuilder creates a builder with the default pace ceiling
func NewBuilder() *Builder {
	return &Builder{PaceCeilingMinKm: DefaultPaceCeilingMinKm}
}

// BuildProfile buckets splits by gradient category, rejects outliers
// per bucket with the 1.5 IQR rule, and computes mean pace plus the
// p25/p50/p75 spread for each bucket.
func (b *Builder) BuildProfile(splits []models.Split, domain models.ActivityDomain) *models.PaceProfile {
	ceiling := b.PaceCeilingMinKm
	if ceiling <= 0 {
		ceiling = DefaultPaceCeilingMinKm
	}

	buckets := make(map[models.GradientCategory][]float64)
	total := 0
	for _, s := range splits {
		if s.PaceMinKm <= 0 || s.PaceMinKm > ceiling || s.DistanceKm <= 0 {
			continue
		}
		total++
		category := models.ClassifyGradient(s.GradientPercent())
		buckets[category] = append(buckets[category], s.PaceMinKm)
	}

	profile := &models.PaceProfile{
		Domain:      domain,
		Paces:       make(map[models.GradientCategory]models.CategoryPace),
		Percentiles: make(map[models.GradientCategory]models.CategoryPercentiles),
		TotalSplits: total,
	}

	kept := 0
	for category, paces := range buckets {
		filtered := paces
		if len(paces) >= minSamplesForIQR {
			filtered = stats.RemoveOutliers(paces)
			if len(filtered) == 0 {
				filtered = paces
			}
		}
		kept += len(filtered)

		profile.Paces[category] = models.CategoryPace{
			AvgPaceMinKm: stats.Mean(filtered),
			SampleCount:  len(filtered),
		}
		profile.Percentiles[category] = categoryPercentiles(filtered)
	}
	profile.FilteredSplits = kept
	profile.LegacyPaces = projectLegacy(profile.Paces)

	log.Printf("Built %s pace profile: %d/%d splits kept across %d categories",
		domain, kept, total, len(profile.Paces))

	return profile
}

// categoryPercentiles computes the pace spread, collapsing to the
// median when the bucket is too small for quartiles to mean anything
func categoryPercentiles(paces []float64) models.CategoryPercentiles {
	if len(paces) < minSamplesForPercentiles {
		median := stats.Median(paces)
		return models.CategoryPercentiles{P25: median, P50: median, P75: median}
	}

	return models.CategoryPercentiles{
		P25: stats.Quantile(paces, 0.25),
		P50: stats.Quantile(paces, 0.50),
		P75: stats.Quantile(paces, 0.75),
	}
}

// projectLegacy folds the fine-grained categories into the coarse
// seven-bucket view, weighting each source category by sample count
func projectLegacy(paces map[models.GradientCategory]models.CategoryPace) map[models.LegacyCategory]models.CategoryPace {
	grouped := make(map[models.LegacyCategory][]models.CategoryPace)
	for category, pace := range paces {
		legacy := category.ToLegacy()
		grouped[legacy] = append(grouped[legacy], pace)
	}

	legacyPaces := make(map[models.LegacyCategory]models.CategoryPace)
	for legacy, group := range grouped {
		var values, weights []float64
		samples := 0
		for _, pace := range group {
			values = append(values, pace.AvgPaceMinKm)
			weights = append(weights, float64(pace.SampleCount))
			samples += pace.SampleCount
		}
		legacyPaces[legacy] = models.CategoryPace{
			AvgPaceMinKm: stats.WeightedMean(values, weights),
			SampleCount:  samples,
		}
	}

	return legacyPaces
}
