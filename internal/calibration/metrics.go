// Package calibration measures prediction quality against recorded
// activities.
package calibration

import "math"

// Metrics summarizes prediction error over a set of observations
type Metrics struct {
	Count int     `json:"count"`
	MAE   float64 `json:"maeHours"`
	MAPE  float64 `json:"mapePercent"`

	// Bias is the mean signed error; positive means the engine
	// overestimates
	Bias float64 `json:"biasHours"`
}

// Observation pairs one prediction with the recorded outcome
type Observation struct {
	PredictedHours float64
	ActualHours    float64
}

// Evaluate computes error metrics over observations. Entries with a
// non-positive actual time are skipped, they carry no signal.
func Evaluate(observations []Observation) Metrics {
	var m Metrics
	var absSum, pctSum, signedSum float64

	for _, o := range observations {
		if o.ActualHours <= 0 {
			continue
		}
		err := o.PredictedHours - o.ActualHours
		absSum += math.Abs(err)
		pctSum += math.Abs(err) / o.ActualHours * 100
		signedSum += err
		m.Count++
	}

	if m.Count == 0 {
		return m
	}

	n := float64(m.Count)
	m.MAE = absSum / n
	m.MAPE = pctSum / n
	m.Bias = signedSum / n
	return m
}
