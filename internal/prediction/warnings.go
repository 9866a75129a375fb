package prediction

import (
	"fmt"

	"github.com/renatmannanov/gpx-predict/internal/models"
)

const (
	longOutingHours   = 8.0
	highAltitudeM     = 3000.0
	defaultSunsetHour = 20
	assumedStartHour  = 6
)

// GenerateWarnings derives safety notes from the predicted duration
// and the route's highest point. sunsetHour of 0 falls back to 20:00.
func GenerateWarnings(durationHours, maxAltitudeM float64, sunsetHour int) []models.Warning {
	if sunsetHour <= 0 {
		sunsetHour = defaultSunsetHour
	}

	var warnings []models.Warning

	if durationHours > longOutingHours {
		warnings = append(warnings, models.Warning{
			Level:   models.WarningInfo,
			Code:    "long_hike",
			Message: "Long hike (8+ hours). Bring enough water and food.",
		})
	}

	if maxAltitudeM > highAltitudeM {
		warnings = append(warnings, models.Warning{
			Level:   models.WarningCaution,
			Code:    "high_altitude",
			Message: fmt.Sprintf("Route reaches %dm. Watch for altitude sickness symptoms.", int(maxAltitudeM)),
		})
	}

	if durationHours > float64(sunsetHour-assumedStartHour) {
		warnings = append(warnings, models.Warning{
			Level:   models.WarningDanger,
			Code:    "late_return",
			Message: "Risk of returning after dark. Start early or choose shorter route.",
		})
	}

	return warnings
}
