package segmenter

import (
	"github.com/renatmannanov/gpx-predict/internal/models"
	"github.com/renatmannanov/gpx-predict/internal/spatial"
)

const (
	// DisplayMinSegmentKm is the target length of display chunks
	DisplayMinSegmentKm = 0.5

	// DisplayGradientThreshold is the gradient change (percent) that
	// starts a new display segment once the target length is reached
	DisplayGradientThreshold = 5.0

	// displayMaxFactor caps a display segment at this multiple of the
	// target length even without a gradient change
	displayMaxFactor = 3
)

// ByDistance splits the route into roughly equal-length chunks for
// elevation-profile rendering. A gradient-change point inside the
// target length window takes precedence over strict equal spacing.
// Fewer than 2 points yields an empty result.
func ByDistance(points []models.TrackPoint) []models.Segment {
	if len(points) < 2 {
		return nil
	}

	segments := []models.Segment{}
	segmentStartIdx := 0
	segmentStartKm := 0.0
	cumulativeKm := 0.0
	currentGradient := 0.0
	gradientSet := false

	for i := 1; i < len(points); i++ {
		stepKm := spatial.HaversineDistanceKm(
			points[i-1].Latitude, points[i-1].Longitude,
			points[i].Latitude, points[i].Longitude,
		)
		cumulativeKm += stepKm
		segmentKm := cumulativeKm - segmentStartKm

		stepGradient := 0.0
		if stepKm > 0.01 {
			stepGradient = (points[i].Elevation - points[i-1].Elevation) / (stepKm * 1000) * 100
		}

		if !gradientSet {
			currentGradient = stepGradient
			gradientSet = true
		}

		gradientChanged := abs(stepGradient-currentGradient) > DisplayGradientThreshold
		lengthMet := segmentKm >= DisplayMinSegmentKm

		if (gradientChanged && lengthMet) || segmentKm >= DisplayMinSegmentKm*displayMaxFactor {
			segments = append(segments, buildDisplaySegment(
				points[segmentStartIdx:i+1], len(segments)+1, segmentStartKm, cumulativeKm))
			segmentStartIdx = i
			segmentStartKm = cumulativeKm
			currentGradient = stepGradient
		}
	}

	if segmentStartIdx < len(points)-1 {
		segments = append(segments, buildDisplaySegment(
			points[segmentStartIdx:], len(segments)+1, segmentStartKm, cumulativeKm))
	}

	return segments
}

func buildDisplaySegment(points []models.TrackPoint, number int, startKm, endKm float64) models.Segment {
	elevations := make([]float64, len(points))
	for i, p := range points {
		elevations[i] = p.Elevation
	}
	gain, loss := spatial.ElevationChanges(elevations)

	seg := models.Segment{
		Number:          number,
		StartKm:         startKm,
		EndKm:           endKm,
		DistanceKm:      endKm - startKm,
		ElevationGainM:  gain,
		ElevationLossM:  loss,
		StartElevationM: points[0].Elevation,
		EndElevationM:   points[len(points)-1].Elevation,
	}

	switch g := seg.GradientPercent(); {
	case g > FlatThresholdPercent:
		seg.Type = models.SegmentAscent
	case g < -FlatThresholdPercent:
		seg.Type = models.SegmentDescent
	default:
		seg.Type = models.SegmentFlat
	}

	return seg
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
