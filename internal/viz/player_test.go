package viz

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/jumpviz/internal/config"
	"github.com/san-kum/jumpviz/internal/motion"
)

func standingSeries(t *testing.T, n int) *motion.Series {
	t.Helper()
	ts := make([]float64, n)
	px := mat.NewDense(motion.NumMarkers, n, nil)
	py := mat.NewDense(motion.NumMarkers, n, nil)
	heights := [motion.NumMarkers]float64{1.4, 1.1, 0.5, 0.5, 0.05, 0.05}
	offsets := [motion.NumMarkers]float64{0, 0, -0.15, 0.15, -0.2, 0.2}
	for i := 0; i < n; i++ {
		ts[i] = float64(i) * 0.01
		for m := 0; m < motion.NumMarkers; m++ {
			px.Set(m, i, offsets[m])
			py.Set(m, i, heights[m]+0.5*ts[i])
		}
	}
	s, err := motion.NewSeries(motion.Key{Condition: motion.Bad, JumpType: motion.TwoD}, ts, px, py)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, p Player, msg tea.Msg) Player {
	t.Helper()
	m, _ := p.Update(msg)
	next, ok := m.(Player)
	if !ok {
		t.Fatalf("Update returned %T", m)
	}
	return next
}

func TestPlayer_TickAdvancesAndLoops(t *testing.T) {
	p := NewPlayer(standingSeries(t, 3), config.DefaultRender())

	p = update(t, p, TickMsg(time.Now()))
	p = update(t, p, TickMsg(time.Now()))
	if p.Frame() != 2 {
		t.Fatalf("frame = %d, want 2", p.Frame())
	}
	p = update(t, p, TickMsg(time.Now()))
	if p.Frame() != 0 {
		t.Errorf("frame = %d after wrap, want 0", p.Frame())
	}
}

func TestPlayer_StopsWithoutLoop(t *testing.T) {
	p := NewPlayer(standingSeries(t, 2), config.DefaultRender())
	p = update(t, p, key("l"))

	p = update(t, p, TickMsg(time.Now()))
	p = update(t, p, TickMsg(time.Now()))
	if p.Frame() != 1 || p.Running() {
		t.Errorf("frame = %d running = %v, want stopped on last frame", p.Frame(), p.Running())
	}
}

func TestPlayer_PauseAndStep(t *testing.T) {
	p := NewPlayer(standingSeries(t, 5), config.DefaultRender())

	p = update(t, p, key(" "))
	if p.Running() {
		t.Fatal("space should pause")
	}
	p = update(t, p, TickMsg(time.Now()))
	if p.Frame() != 0 {
		t.Errorf("paused player advanced to %d", p.Frame())
	}

	p = update(t, p, key("]"))
	p = update(t, p, key("]"))
	p = update(t, p, key("["))
	if p.Frame() != 1 {
		t.Errorf("frame = %d after stepping, want 1", p.Frame())
	}

	p = update(t, p, key("["))
	p = update(t, p, key("["))
	if p.Frame() != 0 {
		t.Errorf("stepping clamps at 0, got %d", p.Frame())
	}

	p = update(t, p, key("r"))
	if p.Frame() != 0 {
		t.Errorf("restart frame = %d", p.Frame())
	}
}

func TestPlayer_Interval(t *testing.T) {
	cfg := config.DefaultRender()
	cfg.PlaybackFactor = 3000
	p := NewPlayer(standingSeries(t, 3), cfg)
	if d := p.Interval() - 30*time.Millisecond; d < -time.Millisecond || d > time.Millisecond {
		t.Errorf("interval = %v, want 30ms", p.Interval())
	}

	// 0.01 s * 1400 = 14ms is faster than the terminal can redraw
	p = NewPlayer(standingSeries(t, 3), config.DefaultRender())
	if p.Interval() != minInterval {
		t.Errorf("interval = %v, want clamp to %v", p.Interval(), minInterval)
	}
}

func TestPlayer_View(t *testing.T) {
	p := NewPlayer(standingSeries(t, 4), config.DefaultRender())
	view := p.View()

	for _, want := range []string{"2D JUMP", "BAD", "Time = 0.00 s", "1/4", "left_knee"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	p = update(t, p, key("c"))
	if view := p.View(); !strings.Contains(view, "chest-x") {
		t.Error("timer mode toggle not shown")
	}

	p = update(t, p, key("?"))
	if !strings.Contains(p.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay missing")
	}
}

func TestPlayer_DrawsFigure(t *testing.T) {
	cfg := config.DefaultRender()
	p := NewPlayer(standingSeries(t, 4), cfg)
	p.draw()

	// chest at (0, 1.4)
	x, y := p.project(0, 1.4)
	if !p.canvas.IsSet(x, y) {
		t.Errorf("chest pixel (%d,%d) not drawn", x, y)
	}
	// floor spans the full width
	pw, _ := p.canvas.Pixels()
	_, fy := p.project(0, 0)
	if !p.canvas.IsSet(0, fy) || !p.canvas.IsSet(pw-1, fy) {
		t.Error("floor line incomplete")
	}
}

func TestPlayer_Project(t *testing.T) {
	p := NewPlayer(standingSeries(t, 2), config.DefaultRender())
	pw, ph := p.canvas.Pixels()

	x, y := p.project(-1.5, 1.75)
	if x != 0 || y != 0 {
		t.Errorf("top-left = (%d,%d)", x, y)
	}
	x, y = p.project(1.5, -0.1)
	if x != pw-1 || y != ph-1 {
		t.Errorf("bottom-right = (%d,%d), want (%d,%d)", x, y, pw-1, ph-1)
	}
}

func TestPlayer_Snapshot(t *testing.T) {
	p := NewPlayer(standingSeries(t, 3), config.DefaultRender())
	p = update(t, p, key("s"))
	if !strings.Contains(p.View(), "snapshots disabled") {
		t.Error("expected disabled snapshot status")
	}

	var gotFrame = -1
	p = p.WithSnapshot(func(c *Canvas, th Theme, frame int) (string, error) {
		gotFrame = frame
		return "snap.svg", nil
	})
	p = update(t, p, key("]"))
	p = update(t, p, key("s"))
	if gotFrame != 1 {
		t.Errorf("snapshot frame = %d, want 1", gotFrame)
	}
	if !strings.Contains(p.View(), "saved snap.svg") {
		t.Error("snapshot status missing")
	}

	p = p.WithSnapshot(func(*Canvas, Theme, int) (string, error) {
		return "", errors.New("disk full")
	})
	p = update(t, p, key("s"))
	if !strings.Contains(p.View(), "disk full") {
		t.Error("snapshot error not reported")
	}
}

func TestPlayer_RecordGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jump.gif")
	p := NewPlayer(standingSeries(t, 3), config.DefaultRender()).WithGIFPath(path)

	p = update(t, p, key("g"))
	p = update(t, p, TickMsg(time.Now()))
	p = update(t, p, TickMsg(time.Now()))
	p = update(t, p, key("g"))

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("gif not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("gif is empty")
	}
}

func TestPlayer_Quit(t *testing.T) {
	p := NewPlayer(standingSeries(t, 2), config.DefaultRender())
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}
