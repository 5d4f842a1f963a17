package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/jumpviz/internal/motion"
)

// hopSeries lifts every marker by 0.3 between t=0.2 and t=0.5 and moves the
// chest horizontally by 0.1 per second.
func hopSeries(t *testing.T) *motion.Series {
	t.Helper()
	n := 11
	time := make([]float64, n)
	px := mat.NewDense(motion.NumMarkers, n, nil)
	py := mat.NewDense(motion.NumMarkers, n, nil)
	for i := 0; i < n; i++ {
		time[i] = float64(i) * 0.1
		lift := 0.0
		if i >= 2 && i <= 5 {
			lift = 0.3
		}
		for _, m := range motion.Markers() {
			py.Set(int(m), i, 0.1*float64(m)+lift)
		}
		px.Set(int(motion.Chest), i, 0.1*time[i])
	}
	s, err := motion.NewSeries(motion.Key{Condition: motion.Good, JumpType: motion.OneD}, time, px, py)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestEvaluate(t *testing.T) {
	s := hopSeries(t)
	values := Evaluate(s, Default()...)

	if got := values["apex_height_chest"]; math.Abs(got-0.3) > 1e-12 {
		t.Errorf("apex height = %f, want 0.3", got)
	}
	// airborne samples at indices 2..5, each credited with the preceding interval
	if got := values["flight_time"]; math.Abs(got-0.4) > 1e-9 {
		t.Errorf("flight time = %f, want 0.4", got)
	}
	if got := values["drift_chest"]; math.Abs(got-0.1) > 1e-12 {
		t.Errorf("drift = %f, want 0.1", got)
	}
	// lift edge: central difference 0.3 / 0.2
	if got := values["peak_speed_left_foot"]; math.Abs(got-1.5) > 1e-9 {
		t.Errorf("peak foot speed = %f, want 1.5", got)
	}
	if len(Names(values)) != len(Default()) {
		t.Errorf("expected %d metrics, got %v", len(Default()), Names(values))
	}
}

func TestEvaluate_ResetsBetweenRuns(t *testing.T) {
	s := hopSeries(t)
	m := NewApexHeight(motion.Chest)

	first := Evaluate(s, m)
	second := Evaluate(s, m)
	if first["apex_height_chest"] != second["apex_height_chest"] {
		t.Errorf("metric not reset: %v vs %v", first, second)
	}
}

func TestPeakSpeeds(t *testing.T) {
	s := hopSeries(t)
	peaks := PeakSpeeds(s)
	values := Evaluate(s, NewPeakSpeed(motion.RightFoot))

	if math.Abs(peaks[motion.RightFoot]-values["peak_speed_right_foot"]) > 1e-12 {
		t.Errorf("PeakSpeeds and PeakSpeed disagree: %f vs %f",
			peaks[motion.RightFoot], values["peak_speed_right_foot"])
	}
}

func TestSnap(t *testing.T) {
	s := hopSeries(t)
	snap := Snap(s, 3)
	if snap.Frame != 3 || math.Abs(snap.Time-0.3) > 1e-12 {
		t.Errorf("snap = (%d, %f)", snap.Frame, snap.Time)
	}
	if math.Abs(snap.Markers[motion.Stomach].Y-0.4) > 1e-12 {
		t.Errorf("stomach y = %f, want 0.4", snap.Markers[motion.Stomach].Y)
	}
}
