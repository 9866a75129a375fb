package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	DBPath string

	// BasePaceMinKm is the flat running pace used by grade-adjusted
	// models when no personal data is available
	BasePaceMinKm float64

	// PaceCeilingMinKm rejects split paces slower than this as GPS
	// noise or stops
	PaceCeilingMinKm float64

	// MinSamplesPerCategory gates personalized pace usage per
	// gradient category
	MinSamplesPerCategory int

	// EffortPercentiles maps effort level to the percentile of the
	// personal pace distribution to use
	EffortPercentiles map[string]int
}

// Load loads configuration from environment variables
func Load() *Config {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/activities.db"
	}

	return &Config{
		DBPath:                dbPath,
		BasePaceMinKm:         envFloat("BASE_PACE_MIN_KM", 6.0),
		PaceCeilingMinKm:      envFloat("PACE_CEILING_MIN_KM", 30.0),
		MinSamplesPerCategory: envInt("MIN_SAMPLES_PER_CATEGORY", 5),
		EffortPercentiles: map[string]int{
			"fast":     envInt("EFFORT_FAST_PERCENTILE", 25),
			"moderate": envInt("EFFORT_MODERATE_PERCENTILE", 50),
			"easy":     envInt("EFFORT_EASY_PERCENTILE", 75),
		},
	}
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
