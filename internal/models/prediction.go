package models

// PaceSource says what produced the pace of one segment inside a
// variant: the athlete's own data or a physical model fallback.
type PaceSource string

const (
	SourcePersonal PaceSource = "personal"
	SourceModel    PaceSource = "model"
)

// SegmentEstimate is the per-segment breakdown of one variant
type SegmentEstimate struct {
	Segment           Segment          `json:"segment"`
	Category          GradientCategory `json:"category"`
	PaceMinKm         float64          `json:"paceMinKm"`
	SpeedKmh          float64          `json:"speedKmh"`
	TimeHours         float64          `json:"timeHours"`
	Source            PaceSource       `json:"source"`
	FatigueMultiplier float64          `json:"fatigueMultiplier,omitempty"`
}

// Variant is the output of one model+configuration combination,
// computed atomically over the full segment sequence.
type Variant struct {
	Name         string            `json:"name"`
	Model        string            `json:"model"`
	Effort       EffortLevel       `json:"effort,omitempty"`
	TotalHours   float64           `json:"totalHours"`
	Segments     []SegmentEstimate `json:"segments,omitempty"`
	Personalized bool              `json:"personalized"`

	// PersonalSegments / ModelSegments attribute each segment's pace
	// source for transparency
	PersonalSegments int `json:"personalSegments"`
	ModelSegments    int `json:"modelSegments"`
}

// Coverage describes how much of the gradient category space the
// profile actually covers for this prediction.
type Coverage struct {
	CoveredCategories int `json:"coveredCategories"`
	TotalCategories   int `json:"totalCategories"`
}

// WarningLevel grades a safety warning
type WarningLevel string

const (
	WarningInfo    WarningLevel = "info"
	WarningCaution WarningLevel = "warning"
	WarningDanger  WarningLevel = "danger"
)

// Warning is a safety note derived from total time and route extremes
type Warning struct {
	Level   WarningLevel `json:"level"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
}

// RoutePrediction is the complete prediction result for one route
type RoutePrediction struct {
	Domain ActivityDomain `json:"domain"`

	TotalDistanceKm float64 `json:"totalDistanceKm"`
	TotalAscentM    float64 `json:"totalAscentM"`
	TotalDescentM   float64 `json:"totalDescentM"`

	Variants []Variant `json:"variants"`
	Coverage Coverage  `json:"coverage"`
	Warnings []Warning `json:"warnings,omitempty"`
}
