// Package prediction orchestrates the full pipeline: segmentation,
// pace model evaluation, personalization, fatigue, and safety
// warnings, producing one atomic set of prediction variants per route.
package prediction

import (
	"fmt"
	"log"

	"github.com/renatmannanov/gpx-predict/internal/fatigue"
	"github.com/renatmannanov/gpx-predict/internal/models"
	"github.com/renatmannanov/gpx-predict/internal/pacemodel"
	"github.com/renatmannanov/gpx-predict/internal/personalization"
	"github.com/renatmannanov/gpx-predict/internal/segmenter"
	"github.com/renatmannanov/gpx-predict/internal/threshold"
)

// returnTripFactor speeds up the way back on out-and-back routes, the
// trail is familiar
const returnTripFactor = 0.9

// Options configures one prediction run
type Options struct {
	Domain models.ActivityDomain

	// Models to evaluate; empty selects the domain defaults
	Models []string

	// Efforts for personalized variants; empty selects all three
	Efforts []models.EffortLevel

	// BasePaceMinKm feeds the grade-adjusted models; zero falls back
	// to the package default
	BasePaceMinKm float64

	// Lookup enables personalized variants when non-nil
	Lookup *personalization.Lookup

	// Fatigue enables the time-based slowdown model
	Fatigue bool

	// UphillThresholdPercent overrides the default run/hike uphill
	// cutoff for trail running, e.g. one detected from the athlete's
	// own splits. Zero keeps the default.
	UphillThresholdPercent float64

	// Hiker applies party slowdown multipliers, hiking only
	Hiker *HikerProfile

	// RoundTrip doubles the route with the return leg mirrored
	RoundTrip bool

	// SunsetHour for the late-return warning, 0 means 20:00
	SunsetHour int

	// IncludeSegments keeps the per-segment breakdown in each variant
	IncludeSegments bool
}

func defaultModels(domain models.ActivityDomain) []string {
	if domain == models.DomainTrailRun {
		return []string{
			pacemodel.ModelGAPStrava,
			pacemodel.ModelGAPMinetti,
			pacemodel.ModelGAPHybrid,
		}
	}
	return []string{
		pacemodel.ModelTobler,
		pacemodel.ModelNaismith,
		pacemodel.ModelNaismithTranter,
	}
}

func defaultEfforts() []models.EffortLevel {
	return []models.EffortLevel{models.EffortFast, models.EffortModerate, models.EffortEasy}
}

// Predict runs the full pipeline over a point sequence. A track too
// short to segment is not an error: callers get a zero-valued result
// with zero-time variants for the requested models.
func Predict(points []models.TrackPoint, opts Options) (*models.RoutePrediction, error) {
	segments := segmenter.ByDirection(points)

	returnStart := -1
	if opts.RoundTrip {
		returnStart = len(segments)
		segments = appendReturnLeg(segments)
	}

	if opts.Domain == "" {
		opts.Domain = models.DomainHiking
	}
	modelNames := opts.Models
	if len(modelNames) == 0 {
		modelNames = defaultModels(opts.Domain)
	}
	efforts := opts.Efforts
	if len(efforts) == 0 {
		efforts = defaultEfforts()
	}
	for _, effort := range efforts {
		if !personalization.KnownEffort(effort) {
			return nil, fmt.Errorf("failed to resolve effort %q: %w", effort, personalization.ErrUnknownEffort)
		}
	}

	var totalKm, totalGain, totalLoss, maxElevation float64
	for i, seg := range segments {
		totalKm += seg.DistanceKm
		totalGain += seg.ElevationGainM
		totalLoss += seg.ElevationLossM
		if i == 0 || seg.StartElevationM > maxElevation {
			maxElevation = seg.StartElevationM
		}
		if seg.EndElevationM > maxElevation {
			maxElevation = seg.EndElevationM
		}
	}

	multiplier := 1.0
	if opts.Hiker != nil && opts.Domain == models.DomainHiking {
		multiplier = opts.Hiker.TotalMultiplier()
	}

	fatigueModel := fatigue.Disabled()
	if opts.Fatigue {
		if opts.Domain == models.DomainTrailRun {
			fatigueModel = fatigue.Running(totalKm)
		} else {
			fatigueModel = fatigue.Hiking()
		}
	}

	var modes []threshold.Mode
	if opts.Domain == models.DomainTrailRun {
		classifier := threshold.Default()
		if opts.UphillThresholdPercent > 0 {
			classifier.UphillPercent = opts.UphillThresholdPercent
		}
		modes = classifier.ClassifyRoute(segments)
	}

	prediction := &models.RoutePrediction{
		Domain:          opts.Domain,
		TotalDistanceKm: totalKm,
		TotalAscentM:    totalGain,
		TotalDescentM:   totalLoss,
	}

	for _, name := range modelNames {
		calc, err := pacemodel.ForName(name, opts.BasePaceMinKm)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve model %q: %w", name, err)
		}
		variant := modelVariant(calc, segments, modes, multiplier, returnStart, fatigueModel, opts.IncludeSegments)
		prediction.Variants = append(prediction.Variants, variant)
	}

	if opts.Lookup != nil && opts.Lookup.Covered() {
		fallback, err := fallbackCalculator(opts.Domain, opts.BasePaceMinKm)
		if err != nil {
			return nil, err
		}
		for _, effort := range efforts {
			variant := personalizedVariant(opts.Lookup, effort, fallback, segments, multiplier, returnStart, fatigueModel, opts.IncludeSegments)
			prediction.Variants = append(prediction.Variants, variant)
		}
		if opts.Lookup.Profile != nil {
			prediction.Coverage = models.Coverage{
				CoveredCategories: opts.Lookup.Profile.CoveredCategories(opts.Lookup.MinSamples),
				TotalCategories:   len(models.AllCategories()),
			}
		}
	} else {
		prediction.Coverage = models.Coverage{TotalCategories: len(models.AllCategories())}
	}

	prediction.Warnings = GenerateWarnings(primaryHours(prediction.Variants), maxElevation, opts.SunsetHour)

	log.Printf("Predicted %s route: %.1f km, +%.0f m, %d variants",
		opts.Domain, totalKm, totalGain, len(prediction.Variants))

	return prediction, nil
}

// fallbackCalculator covers gradient categories the profile cannot:
// Tobler for hiking, hybrid grade-adjusted pace for running
func fallbackCalculator(domain models.ActivityDomain, basePaceMinKm float64) (pacemodel.Calculator, error) {
	name := pacemodel.ModelTobler
	if domain == models.DomainTrailRun {
		name = pacemodel.ModelGAPHybrid
	}
	calc, err := pacemodel.ForName(name, basePaceMinKm)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve fallback model: %w", err)
	}
	return calc, nil
}

func toInput(seg models.Segment) pacemodel.SegmentInput {
	return pacemodel.SegmentInput{
		DistanceKm:      seg.DistanceKm,
		ElevationGainM:  seg.ElevationGainM,
		ElevationLossM:  seg.ElevationLossM,
		GradientPercent: seg.GradientPercent(),
		GradientDegrees: seg.GradientDegrees(),
		IsAscent:        seg.Type == models.SegmentAscent,
		IsDescent:       seg.Type == models.SegmentDescent,
	}
}

// modelVariant evaluates one calculator over the route. For trail
// running, segments classified as hiking terrain use Tobler's
// function regardless of the requested model.
func modelVariant(calc pacemodel.Calculator, segments []models.Segment, modes []threshold.Mode, multiplier float64, returnStart int, fm fatigue.Model, keepSegments bool) models.Variant {
	variant := models.Variant{
		Name:  calc.Name(),
		Model: calc.Name(),
	}

	hikeCalc := pacemodel.Tobler{}

	elapsed := 0.0
	for i, seg := range segments {
		input := toInput(seg)

		var result pacemodel.Result
		if modes != nil && i < len(modes) && modes[i] == threshold.ModeHike {
			result = hikeCalc.Segment(input, multiplier)
		} else {
			result = calc.Segment(input, multiplier)
		}

		baseHours := result.TimeHours
		if returnStart >= 0 && i >= returnStart {
			baseHours *= returnTripFactor
		}

		fatigueMult := fm.SegmentMultiplier(baseHours, elapsed, input.GradientPercent)
		timeHours := baseHours * fatigueMult
		elapsed += timeHours
		variant.ModelSegments++

		if keepSegments {
			variant.Segments = append(variant.Segments, models.SegmentEstimate{
				Segment:           seg,
				Category:          seg.Category(),
				PaceMinKm:         paceFromTime(timeHours, seg.DistanceKm),
				SpeedKmh:          speedFromTime(timeHours, seg.DistanceKm),
				TimeHours:         timeHours,
				Source:            models.SourceModel,
				FatigueMultiplier: fatigueMult,
			})
		}
	}

	variant.TotalHours = elapsed
	return variant
}

// personalizedVariant uses the athlete's own category paces where
// enough data exists, falling back to the physical model elsewhere
func personalizedVariant(lookup *personalization.Lookup, effort models.EffortLevel, fallback pacemodel.Calculator, segments []models.Segment, multiplier float64, returnStart int, fm fatigue.Model, keepSegments bool) models.Variant {
	variant := models.Variant{
		Name:         "personalized_" + string(effort),
		Model:        fallback.Name(),
		Effort:       effort,
		Personalized: true,
	}

	elapsed := 0.0
	for i, seg := range segments {
		category := seg.Category()

		var baseHours float64
		source := models.SourceModel

		if pace, ok := lookup.Pace(category, effort); ok {
			baseHours = seg.DistanceKm * pace / 60 * multiplier
			source = models.SourcePersonal
		} else {
			result := fallback.Segment(toInput(seg), multiplier)
			baseHours = result.TimeHours
		}
		if returnStart >= 0 && i >= returnStart {
			baseHours *= returnTripFactor
		}

		fatigueMult := fm.SegmentMultiplier(baseHours, elapsed, seg.GradientPercent())
		timeHours := baseHours * fatigueMult
		elapsed += timeHours

		if source == models.SourcePersonal {
			variant.PersonalSegments++
		} else {
			variant.ModelSegments++
		}

		if keepSegments {
			variant.Segments = append(variant.Segments, models.SegmentEstimate{
				Segment:           seg,
				Category:          category,
				PaceMinKm:         paceFromTime(timeHours, seg.DistanceKm),
				SpeedKmh:          speedFromTime(timeHours, seg.DistanceKm),
				TimeHours:         timeHours,
				Source:            source,
				FatigueMultiplier: fatigueMult,
			})
		}
	}

	variant.TotalHours = elapsed
	return variant
}

// appendReturnLeg mirrors the segments for an out-and-back route.
// Gains and losses swap, and the return runs slightly faster over
// familiar ground.
func appendReturnLeg(segments []models.Segment) []models.Segment {
	out := make([]models.Segment, len(segments), 2*len(segments))
	copy(out, segments)

	totalKm := 0.0
	if n := len(segments); n > 0 {
		totalKm = segments[n-1].EndKm
	}

	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		mirrored := models.Segment{
			Number:          len(out) + 1,
			StartKm:         2*totalKm - seg.EndKm,
			EndKm:           2*totalKm - seg.StartKm,
			DistanceKm:      seg.DistanceKm,
			ElevationGainM:  seg.ElevationLossM,
			ElevationLossM:  seg.ElevationGainM,
			StartElevationM: seg.EndElevationM,
			EndElevationM:   seg.StartElevationM,
		}
		switch seg.Type {
		case models.SegmentAscent:
			mirrored.Type = models.SegmentDescent
		case models.SegmentDescent:
			mirrored.Type = models.SegmentAscent
		default:
			mirrored.Type = models.SegmentFlat
		}
		out = append(out, mirrored)
	}

	return out
}

// primaryHours picks the headline estimate: the moderate personalized
// variant when present, otherwise the first model variant
func primaryHours(variants []models.Variant) float64 {
	for _, v := range variants {
		if v.Personalized && v.Effort == models.EffortModerate {
			return v.TotalHours
		}
	}
	if len(variants) > 0 {
		return variants[0].TotalHours
	}
	return 0
}

func paceFromTime(timeHours, distanceKm float64) float64 {
	if distanceKm <= 0 {
		return 0
	}
	return timeHours * 60 / distanceKm
}

func speedFromTime(timeHours, distanceKm float64) float64 {
	if timeHours <= 0 {
		return 0
	}
	return distanceKm / timeHours
}
