package render

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/jumpviz/internal/config"
	"github.com/san-kum/jumpviz/internal/motion"
)

func testSeries(t *testing.T, c motion.Condition, n int) *motion.Series {
	t.Helper()
	ts := make([]float64, n)
	px := mat.NewDense(motion.NumMarkers, n, nil)
	py := mat.NewDense(motion.NumMarkers, n, nil)
	heights := [motion.NumMarkers]float64{1.4, 1.1, 0.5, 0.5, 0.05, 0.05}
	offsets := [motion.NumMarkers]float64{0, 0, -0.15, 0.15, -0.2, 0.2}
	for i := 0; i < n; i++ {
		ts[i] = float64(i) * 0.02
		hop := 0.3 * math.Sin(math.Pi*float64(i)/float64(n-1))
		for m := 0; m < motion.NumMarkers; m++ {
			px.Set(m, i, offsets[m]+0.1*ts[i])
			py.Set(m, i, heights[m]+hop)
		}
	}
	s, err := motion.NewSeries(motion.Key{Condition: c, JumpType: motion.OneD}, ts, px, py)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSaveFrame_WritesImage(t *testing.T) {
	cfg := config.DefaultRender()
	cfg.WithVelocities = true
	cfg.WidthIn, cfg.HeightIn = 4, 3
	r := New(cfg)
	s := testSeries(t, motion.Good, 20)

	for _, name := range []string{"frame.png", "frame.svg"} {
		path := filepath.Join(t.TempDir(), name)
		if err := r.SaveFrame(s, 5, path); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestFramePlot_OutOfRange(t *testing.T) {
	r := New(config.DefaultRender())
	s := testSeries(t, motion.Bad, 5)

	_, err := r.FramePlot(s, 5)
	if !errors.Is(err, motion.ErrFrameOutOfRange) {
		t.Errorf("expected ErrFrameOutOfRange, got %v", err)
	}
}

func TestTimerText(t *testing.T) {
	s := testSeries(t, motion.Good, 11)
	f, err := motion.StickFigurePoints(s, 10)
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultRender()
	if got := New(cfg).TimerText(s, f); got != "Time = 0.20 s" {
		t.Errorf("time mode: %q", got)
	}

	cfg.Timer = config.TimerChestX
	if got := New(cfg).TimerText(s, f); got != "Time = 0.02 s" {
		t.Errorf("chest-x mode: %q", got)
	}
}

func TestArrowSegments(t *testing.T) {
	var f motion.Frame
	f.X[0], f.Y[0] = 1, 1
	f.VX[0], f.VY[0] = 2, 0
	f.X[3], f.Y[3] = 0, 0
	f.VX[3], f.VY[3] = 0, -4

	segs := ArrowSegments(f, 0.5)
	if len(segs) != 2 {
		t.Fatalf("expected 2 arrows for 2 moving points, got %d", len(segs))
	}

	shaft := segs[0]
	if shaft[0].X != 1 || shaft[0].Y != 1 || shaft[1].X != 2 || shaft[1].Y != 1 {
		t.Errorf("first arrow shaft = %v", shaft[:2])
	}
	// barbs point back along the shaft
	if shaft[2].X >= 2 || shaft[4].X >= 2 {
		t.Errorf("barbs not behind the tip: %v", shaft)
	}
	if math.Abs(shaft[2].Y-1+(shaft[4].Y-1)) > 1e-12 {
		t.Errorf("barbs not symmetric: %v", shaft)
	}

	down := segs[1]
	if down[1].X != 0 || down[1].Y != -2 {
		t.Errorf("second arrow tip = %v", down[1])
	}
}

func TestSpacedFrames(t *testing.T) {
	tests := []struct {
		n, count int
		want     []int
	}{
		{10, 4, []int{0, 3, 6, 9}},
		{5, 1, []int{0}},
		{3, 5, []int{0, 1, 2}},
		{100, 2, []int{0, 99}},
		{0, 3, nil},
	}
	for _, tt := range tests {
		got := SpacedFrames(tt.n, tt.count)
		if len(got) != len(tt.want) {
			t.Errorf("SpacedFrames(%d, %d) = %v, want %v", tt.n, tt.count, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SpacedFrames(%d, %d) = %v, want %v", tt.n, tt.count, got, tt.want)
				break
			}
		}
	}
}

func TestFrameInterval(t *testing.T) {
	r := New(config.DefaultRender())
	s := testSeries(t, motion.Good, 5)
	if got := r.FrameInterval(s); got != 28*time.Millisecond {
		t.Errorf("FrameInterval() = %v, want 28ms", got)
	}
}

func TestSaveFramesAndComparison(t *testing.T) {
	cfg := config.DefaultRender()
	cfg.WidthIn, cfg.HeightIn = 3, 2
	r := New(cfg)
	good := testSeries(t, motion.Good, 9)
	bad := testSeries(t, motion.Bad, 7)

	dir := filepath.Join(t.TempDir(), "frames")
	n, err := r.SaveFrames(good, dir, 4)
	if err != nil {
		t.Fatalf("save frames: %v", err)
	}
	if n != 3 {
		t.Errorf("wrote %d frames, want 3", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "frame_0002.png")); err != nil {
		t.Errorf("last frame missing: %v", err)
	}

	sheet := filepath.Join(t.TempDir(), "compare.png")
	if err := r.SaveComparison([]*motion.Series{good, bad}, 3, sheet); err != nil {
		t.Fatalf("comparison: %v", err)
	}
	if info, err := os.Stat(sheet); err != nil || info.Size() == 0 {
		t.Errorf("comparison sheet missing or empty: %v", err)
	}
}
