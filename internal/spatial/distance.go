package spatial

import (
	"github.com/golang/geo/s2"

	"github.com/renatmannanov/gpx-predict/internal/models"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// HaversineDistance calculates the great-circle distance between two
// points in meters on a spherical Earth model. Error is negligible at
// hiking scales.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// HaversineDistanceKm is HaversineDistance in kilometers
func HaversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	return HaversineDistance(lat1, lon1, lat2, lon2) / 1000
}

// CumulativeDistances fills CumulativeKm on a copy of the given points.
// The result is monotonically non-decreasing. Fewer than 2 points is a
// valid degenerate input: the points are returned with zero distance.
func CumulativeDistances(points []models.TrackPoint) []models.TrackPoint {
	result := make([]models.TrackPoint, len(points))
	copy(result, points)

	cumulative := 0.0
	for i := range result {
		if i > 0 {
			cumulative += HaversineDistanceKm(
				result[i-1].Latitude, result[i-1].Longitude,
				result[i].Latitude, result[i].Longitude,
			)
		}
		result[i].CumulativeKm = cumulative
	}

	return result
}

// TotalDistanceKm returns the route length in kilometers, zero for
// fewer than 2 points.
func TotalDistanceKm(points []models.TrackPoint) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += HaversineDistanceKm(
			points[i-1].Latitude, points[i-1].Longitude,
			points[i].Latitude, points[i].Longitude,
		)
	}
	return total
}
