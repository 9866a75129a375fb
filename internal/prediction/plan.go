package prediction

// safetyMargin pads the plan total for the conservative estimate
const safetyMargin = 1.2

// TimeBreakdown splits a planned outing into its components
type TimeBreakdown struct {
	MovingHours float64 `json:"movingHours"`
	RestHours   float64 `json:"restHours"`
	LunchHours  float64 `json:"lunchHours"`
	TotalHours  float64 `json:"totalHours"`
	SafeHours   float64 `json:"safeHours"`

	// RecommendedStart is the latest departure that still returns a
	// buffer before sunset, formatted HH:MM
	RecommendedStart string `json:"recommendedStart"`
}

// PlanOuting expands a moving-time estimate into a full outing plan
// with rest stops, lunch, and a safety margin
func PlanOuting(movingHours float64, profile HikerProfile, sunsetHour int) TimeBreakdown {
	if sunsetHour <= 0 {
		sunsetHour = defaultSunsetHour
	}

	rest := profile.RestHours(movingHours)
	lunch := LunchHours(movingHours)
	total := movingHours + rest + lunch
	safe := total * safetyMargin

	return TimeBreakdown{
		MovingHours:      movingHours,
		RestHours:        rest,
		LunchHours:       lunch,
		TotalHours:       total,
		SafeHours:        safe,
		RecommendedStart: RecommendedStart(safe, sunsetHour, 1.0),
	}
}
