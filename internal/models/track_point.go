package models

// TrackPoint represents a single GPS point of a route
type TrackPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`

	// Cumulative distance from the route start, filled by the geometry
	// pass; optional on input
	CumulativeKm float64 `json:"cumulativeKm,omitempty"`
}

// RouteSummary holds aggregate metrics of a parsed route
type RouteSummary struct {
	DistanceKm     float64 `json:"distanceKm"`
	ElevationGainM float64 `json:"elevationGainM"`
	ElevationLossM float64 `json:"elevationLossM"`
	MaxElevationM  float64 `json:"maxElevationM"`
	MinElevationM  float64 `json:"minElevationM"`
	StartLat       float64 `json:"startLat"`
	StartLon       float64 `json:"startLon"`
	EndLat         float64 `json:"endLat"`
	EndLon         float64 `json:"endLon"`
	PointsCount    int     `json:"pointsCount"`
	IsLoop         bool    `json:"isLoop"`
}
