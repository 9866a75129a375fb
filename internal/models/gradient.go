package models

// GradientCategory is one of eleven roughly 5-percent-wide terrain
// bins. Naming convention: {direction}_{lower}_{upper} by absolute
// gradient percent, with "over" marking the unbounded extremes.
type GradientCategory string

const (
	Down23Over GradientCategory = "down_23_over" // steeper than -23%, scrambling
	Down23_17  GradientCategory = "down_23_17"
	Down17_12  GradientCategory = "down_17_12"
	Down12_8   GradientCategory = "down_12_8"
	Down8_3    GradientCategory = "down_8_3"
	Flat3_3    GradientCategory = "flat_3_3"
	Up3_8      GradientCategory = "up_3_8"
	Up8_12     GradientCategory = "up_8_12"
	Up12_17    GradientCategory = "up_12_17"
	Up17_23    GradientCategory = "up_17_23"
	Up23Over   GradientCategory = "up_23_over" // steeper than +23%, scrambling
)

// LegacyCategory is the coarse seven-bucket view kept for older
// profile consumers
type LegacyCategory string

const (
	SteepDownhill    LegacyCategory = "steep_downhill"
	ModerateDownhill LegacyCategory = "moderate_downhill"
	GentleDownhill   LegacyCategory = "gentle_downhill"
	Flat             LegacyCategory = "flat"
	GentleUphill     LegacyCategory = "gentle_uphill"
	ModerateUphill   LegacyCategory = "moderate_uphill"
	SteepUphill      LegacyCategory = "steep_uphill"
)

// Flat band boundaries in percent
const (
	FlatGradientMin = -3.0
	FlatGradientMax = 3.0
)

// gradientBin holds a category's half-open range [Min, Max)
type gradientBin struct {
	Category GradientCategory
	Min, Max float64
}

// gradientBins is the single source of truth for the category
// boundaries, ordered from steepest descent to steepest ascent
var gradientBins = []gradientBin{
	{Down23Over, -100.0, -23.0},
	{Down23_17, -23.0, -17.0},
	{Down17_12, -17.0, -12.0},
	{Down12_8, -12.0, -8.0},
	{Down8_3, -8.0, -3.0},
	{Flat3_3, -3.0, 3.0},
	{Up3_8, 3.0, 8.0},
	{Up8_12, 8.0, 12.0},
	{Up12_17, 12.0, 17.0},
	{Up17_23, 17.0, 23.0},
	{Up23Over, 23.0, 100.0},
}

var legacyMapping = map[GradientCategory]LegacyCategory{
	Down23Over: SteepDownhill,
	Down23_17:  SteepDownhill,
	Down17_12:  ModerateDownhill,
	Down12_8:   ModerateDownhill,
	Down8_3:    GentleDownhill,
	Flat3_3:    Flat,
	Up3_8:      GentleUphill,
	Up8_12:     ModerateUphill,
	Up12_17:    ModerateUphill,
	Up17_23:    SteepUphill,
	Up23Over:   SteepUphill,
}

// AllCategories returns the eleven categories ordered from steepest
// descent to steepest ascent
func AllCategories() []GradientCategory {
	categories := make([]GradientCategory, len(gradientBins))
	for i, bin := range gradientBins {
		categories[i] = bin.Category
	}
	return categories
}

// ClassifyGradient maps a gradient percent to its category. Bounds
// are lower-inclusive, upper-exclusive; gradients beyond the table
// edges clamp into the unbounded extreme categories, so the mapping
// is total.
func ClassifyGradient(gradientPercent float64) GradientCategory {
	for _, bin := range gradientBins {
		if gradientPercent >= bin.Min && gradientPercent < bin.Max {
			return bin.Category
		}
	}
	if gradientPercent >= 23.0 {
		return Up23Over
	}
	if gradientPercent <= -23.0 {
		return Down23Over
	}
	return Flat3_3
}

// ClassifyGradientLegacy maps a gradient percent straight to the
// coarse seven-bucket view
func ClassifyGradientLegacy(gradientPercent float64) LegacyCategory {
	return ClassifyGradient(gradientPercent).ToLegacy()
}

// ToLegacy folds a fine-grained category into its legacy bucket
func (c GradientCategory) ToLegacy() LegacyCategory {
	if legacy, ok := legacyMapping[c]; ok {
		return legacy
	}
	return Flat
}
