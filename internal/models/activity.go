package models

import "time"

// Activity is a recorded outdoor effort with per-kilometer splits
type Activity struct {
	ID             int64     `json:"id" db:"id"`
	UserID         string    `json:"user_id" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Sport          string    `json:"sport" db:"sport"`
	DistanceKm     float64   `json:"distance_km" db:"distance_km"`
	ElevationGainM float64   `json:"elevation_gain_m" db:"elevation_gain_m"`
	MovingTimeS    int64     `json:"moving_time_s" db:"moving_time_s"`
	StartedAt      time.Time `json:"started_at" db:"started_at"`
	Splits         []Split   `json:"splits,omitempty" db:"-"`
}

// ActivityFilter narrows activity queries
type ActivityFilter struct {
	UserID string
	Sport  string
	Limit  int
}
