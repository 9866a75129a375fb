package prediction

import (
	"fmt"
	"math"
)

// ExperienceLevel grades hiking experience
type ExperienceLevel string

const (
	ExperienceBeginner    ExperienceLevel = "beginner"
	ExperienceCasual      ExperienceLevel = "casual"
	ExperienceRegular     ExperienceLevel = "regular"
	ExperienceExperienced ExperienceLevel = "experienced"
)

// BackpackWeight grades carried load
type BackpackWeight string

const (
	BackpackLight  BackpackWeight = "light"
	BackpackMedium BackpackWeight = "medium"
	BackpackHeavy  BackpackWeight = "heavy"
)

// HikerProfile collects the factors that slow a party down relative
// to the bare model estimate
type HikerProfile struct {
	Experience        ExperienceLevel `json:"experience"`
	Backpack          BackpackWeight  `json:"backpack"`
	GroupSize         int             `json:"groupSize"`
	MaxAltitudeM      float64         `json:"maxAltitudeM"`
	HasChildren       bool            `json:"hasChildren"`
	HasElderly        bool            `json:"hasElderly"`
	FirstTimeAltitude bool            `json:"firstTimeAltitude"`
}

// DefaultHikerProfile is a regular solo hiker with a light pack
func DefaultHikerProfile() HikerProfile {
	return HikerProfile{
		Experience: ExperienceRegular,
		Backpack:   BackpackLight,
		GroupSize:  1,
	}
}

func experienceMultiplier(e ExperienceLevel) float64 {
	switch e {
	case ExperienceBeginner:
		return 1.5
	case ExperienceCasual:
		return 1.2
	case ExperienceExperienced:
		return 0.85
	default:
		return 1.0
	}
}

func backpackMultiplier(b BackpackWeight) float64 {
	switch b {
	case BackpackMedium:
		return 1.1
	case BackpackHeavy:
		return 1.25
	default:
		return 1.0
	}
}

func groupMultiplier(size int) float64 {
	switch {
	case size <= 2:
		return 1.0
	case size <= 5:
		return 1.1
	default:
		return 1.3
	}
}

func altitudeMultiplier(maxAltitudeM float64) float64 {
	switch {
	case maxAltitudeM < 2500:
		return 1.0
	case maxAltitudeM < 3000:
		return 1.1
	case maxAltitudeM < 3500:
		return 1.2
	default:
		return 1.35
	}
}

// TotalMultiplier compounds all slowdown factors into one time
// multiplier
func (p HikerProfile) TotalMultiplier() float64 {
	total := 1.0
	total *= experienceMultiplier(p.Experience)
	total *= backpackMultiplier(p.Backpack)
	total *= groupMultiplier(p.GroupSize)
	total *= altitudeMultiplier(p.MaxAltitudeM)

	if p.HasChildren {
		total *= 1.4
	}
	if p.HasElderly {
		total *= 1.3
	}
	if p.FirstTimeAltitude && p.MaxAltitudeM > 3000 {
		total *= 1.15
	}

	return math.Round(total*100) / 100
}

// RestHours estimates accumulated rest breaks over the moving time.
// Beginners rest 15 min per hour, casual hikers 10, everyone else 10
// per two hours.
func (p HikerProfile) RestHours(movingHours float64) float64 {
	switch p.Experience {
	case ExperienceBeginner:
		return math.Floor(movingHours) * (15.0 / 60.0)
	case ExperienceCasual:
		return math.Floor(movingHours) * (10.0 / 60.0)
	default:
		return math.Floor(movingHours/2) * (10.0 / 60.0)
	}
}

// LunchHours adds a lunch stop on longer outings
func LunchHours(movingHours float64) float64 {
	if movingHours > 4 {
		return 0.5
	}
	return 0
}

// RecommendedStart suggests a departure time that gets the party back
// a safety buffer before sunset, with a 20 percent margin on the
// estimate. Never earlier than 05:00.
func RecommendedStart(estimatedHours float64, sunsetHour int, bufferHours float64) string {
	targetReturn := float64(sunsetHour) - bufferHours
	startHour := targetReturn - estimatedHours*1.2
	if startHour < 5 {
		startHour = 5
	}
	return fmt.Sprintf("%02d:00", int(startHour))
}
