// Package segmenter splits a GPS track into route segments.
//
// Two independent policies serve two different consumers: direction
// based segmentation for the pace calculators (every sustained local
// extremum starts a new segment, because the pace models are gradient
// dependent and must not average across a direction reversal), and
// distance-based segmentation for UI display.
package segmenter

import (
	"github.com/renatmannanov/gpx-predict/internal/models"
	"github.com/renatmannanov/gpx-predict/internal/spatial"
)

const (
	// MinSegmentKm suppresses direction flips shorter than this,
	// which are almost always elevation noise
	MinSegmentKm = 0.3

	// FlatThresholdPercent distinguishes flat from up/down steps
	FlatThresholdPercent = 3.0

	// distanceEpsilonKm guards the gradient division; steps below it
	// are skipped as zero-length
	distanceEpsilonKm = 0.001
)

type direction int

const (
	dirNone direction = iota
	dirFlat
	dirUp
	dirDown
)

// ByDirection splits the route into segments at sustained
// ascent/descent direction changes. Elevations are smoothed first to
// reduce GPS noise. Fewer than 2 points yields an empty result.
func ByDirection(points []models.TrackPoint) []models.Segment {
	if len(points) < 2 {
		return nil
	}

	pts := spatial.CumulativeDistances(points)
	pts = smoothPoints(pts)

	return findSegments(pts)
}

func smoothPoints(points []models.TrackPoint) []models.TrackPoint {
	elevations := make([]float64, len(points))
	for i, p := range points {
		elevations[i] = p.Elevation
	}
	smoothed := spatial.SmoothElevations(elevations, spatial.DefaultSmoothingWindow)

	result := make([]models.TrackPoint, len(points))
	copy(result, points)
	for i := range result {
		result[i].Elevation = smoothed[i]
	}
	return result
}

func stepDirection(gradient float64) direction {
	switch {
	case gradient > FlatThresholdPercent:
		return dirUp
	case gradient < -FlatThresholdPercent:
		return dirDown
	default:
		return dirFlat
	}
}

func findSegments(points []models.TrackPoint) []models.Segment {
	var segments []models.Segment
	segmentStart := 0
	current := dirNone

	for i := 1; i < len(points); i++ {
		dist := points[i].CumulativeKm - points[i-1].CumulativeKm
		if dist < distanceEpsilonKm {
			continue
		}

		eleChange := points[i].Elevation - points[i-1].Elevation
		gradient := eleChange / (dist * 1000) * 100
		dir := stepDirection(gradient)

		if current == dirNone {
			current = dir
			continue
		}

		if dir != current && dir != dirFlat {
			segmentDist := points[i-1].CumulativeKm - points[segmentStart].CumulativeKm
			if segmentDist >= MinSegmentKm {
				segments = append(segments, buildSegment(points[segmentStart:i], len(segments)+1, current))
				segmentStart = i - 1
			}
			current = dir
		}
	}

	if segmentStart < len(points)-1 {
		if current == dirNone {
			current = dirFlat
		}
		segments = append(segments, buildSegment(points[segmentStart:], len(segments)+1, current))
	}

	return segments
}

func buildSegment(points []models.TrackPoint, number int, dir direction) models.Segment {
	if len(points) < 2 {
		p := points[0]
		return models.Segment{
			Number:          number,
			Type:            models.SegmentFlat,
			StartKm:         p.CumulativeKm,
			EndKm:           p.CumulativeKm,
			StartElevationM: p.Elevation,
			EndElevationM:   p.Elevation,
		}
	}

	elevations := make([]float64, len(points))
	for i, p := range points {
		elevations[i] = p.Elevation
	}
	gain, loss := spatial.ElevationChanges(elevations)

	segType := models.SegmentFlat
	switch dir {
	case dirUp:
		segType = models.SegmentAscent
	case dirDown:
		segType = models.SegmentDescent
	}

	startKm := points[0].CumulativeKm
	endKm := points[len(points)-1].CumulativeKm

	return models.Segment{
		Number:          number,
		Type:            segType,
		StartKm:         startKm,
		EndKm:           endKm,
		DistanceKm:      endKm - startKm,
		ElevationGainM:  gain,
		ElevationLossM:  loss,
		StartElevationM: points[0].Elevation,
		EndElevationM:   points[len(points)-1].Elevation,
	}
}
