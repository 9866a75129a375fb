package spatial

// DefaultSmoothingWindow is the moving-average window used to suppress
// single-point GPS/barometer spikes while keeping sustained climbs.
const DefaultSmoothingWindow = 5

// SmoothElevations applies a centered moving average with the given
// window. Sequences shorter than the window are returned unchanged.
func SmoothElevations(elevations []float64, windowSize int) []float64 {
	if len(elevations) < windowSize || windowSize < 2 {
		return elevations
	}

	smoothed := make([]float64, len(elevations))
	half := windowSize / 2

	for i := range elevations {
		start := i - half
		if start < 0 {
			start = 0
		}
		end := i + half + 1
		if end > len(elevations) {
			end = len(elevations)
		}

		sum := 0.0
		for j := start; j < end; j++ {
			sum += elevations[j]
		}
		smoothed[i] = sum / float64(end-start)
	}

	return smoothed
}

// ElevationChanges calculates total elevation gain and loss in meters
func ElevationChanges(elevations []float64) (gainM, lossM float64) {
	for i := 1; i < len(elevations); i++ {
		diff := elevations[i] - elevations[i-1]
		if diff > 0 {
			gainM += diff
		} else {
			lossM -= diff
		}
	}
	return gainM, lossM
}
