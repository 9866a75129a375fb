package models

import "math"

// SegmentType classifies the direction of a route segment
type SegmentType string

const (
	SegmentAscent  SegmentType = "ascent"
	SegmentDescent SegmentType = "descent"
	SegmentFlat    SegmentType = "flat"
)

// Segment is a contiguous, direction-consistent stretch of a route.
// Segments of one segmentation pass are non-overlapping and cover the
// full route without gaps. Produced by the segmenter, read-only
// downstream.
type Segment struct {
	Number int         `json:"number"`
	Type   SegmentType `json:"type"`

	StartKm    float64 `json:"startKm"`
	EndKm      float64 `json:"endKm"`
	DistanceKm float64 `json:"distanceKm"`

	ElevationGainM  float64 `json:"elevationGainM"`
	ElevationLossM  float64 `json:"elevationLossM"`
	StartElevationM float64 `json:"startElevationM"`
	EndElevationM   float64 `json:"endElevationM"`
}

// ElevationChangeM returns the net elevation change in meters,
// positive for ascent.
func (s Segment) ElevationChangeM() float64 {
	return s.ElevationGainM - s.ElevationLossM
}

// GradientPercent returns the average signed gradient of the segment.
// Segments with near-zero distance are treated as flat to avoid
// division instability.
func (s Segment) GradientPercent() float64 {
	if s.DistanceKm <= 0 {
		return 0
	}
	return s.ElevationChangeM() / (s.DistanceKm * 1000) * 100
}

// GradientDegrees returns the average gradient in degrees.
func (s Segment) GradientDegrees() float64 {
	return math.Atan(s.GradientPercent()/100) * 180 / math.Pi
}

// Category returns the fine-grained gradient category of the segment.
func (s Segment) Category() GradientCategory {
	return ClassifyGradient(s.GradientPercent())
}
