package calibration

import (
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	m := Evaluate([]Observation{
		{PredictedHours: 2, ActualHours: 2},
		{PredictedHours: 3, ActualHours: 2},
	})

	if m.Count != 2 {
		t.Fatalf("count = %d, want 2", m.Count)
	}
	if math.Abs(m.MAE-0.5) > 1e-9 {
		t.Errorf("MAE = %v, want 0.5", m.MAE)
	}
	if math.Abs(m.MAPE-25.0) > 1e-9 {
		t.Errorf("MAPE = %v, want 25.0", m.MAPE)
	}
	if math.Abs(m.Bias-0.5) > 1e-9 {
		t.Errorf("Bias = %v, want 0.5", m.Bias)
	}
}

func TestEvaluateUnderestimate(t *testing.T) {
	m := Evaluate([]Observation{
		{PredictedHours: 1.5, ActualHours: 2},
	})
	if m.Bias >= 0 {
		t.Errorf("bias = %v, want negative for underestimate", m.Bias)
	}
	if math.Abs(m.MAE-0.5) > 1e-9 {
		t.Errorf("MAE = %v, want 0.5", m.MAE)
	}
}

func TestEvaluateSkipsInvalid(t *testing.T) {
	m := Evaluate([]Observation{
		{PredictedHours: 2, ActualHours: 0},
		{PredictedHours: 2, ActualHours: -1},
	})
	if m.Count != 0 {
		t.Errorf("count = %d, want 0", m.Count)
	}
	if m.MAE != 0 || m.MAPE != 0 || m.Bias != 0 {
		t.Errorf("empty metrics not zero: %+v", m)
	}
}
