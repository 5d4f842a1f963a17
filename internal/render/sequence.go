package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/jumpviz/internal/motion"
)

// FrameInterval is the playback delay between frames: the first sample
// interval scaled by the playback factor (milliseconds per second).
func (r *Renderer) FrameInterval(s *motion.Series) time.Duration {
	return r.cfg.FrameInterval(s.Interval())
}

// SaveFrames writes every step-th frame of s to dir as frame_0000.png,
// frame_0001.png, ... and returns the number of files written.
func (r *Renderer) SaveFrames(s *motion.Series, dir string, step int) (int, error) {
	if step < 1 {
		step = 1
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	n := 0
	for frame := 0; frame < s.Len(); frame += step {
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", n))
		if err := r.SaveFrame(s, frame, path); err != nil {
			return n, err
		}
		n++
	}
	r.log.Info().
		Str("recording", s.Key().String()).
		Int("frames", n).
		Dur("interval", r.FrameInterval(s)).
		Str("dir", dir).
		Msg("frame sequence written")
	return n, nil
}

// SpacedFrames returns count frame indices spread evenly over n samples,
// always including the first and last.
func SpacedFrames(n, count int) []int {
	if n <= 0 || count <= 0 {
		return nil
	}
	if count > n {
		count = n
	}
	if count == 1 {
		return []int{0}
	}
	out := make([]int, count)
	for k := range out {
		out[k] = (k*(n-1) + (count-1)/2) / (count - 1)
	}
	return out
}

// SaveComparison lays out count frames of each series in one row per series
// and writes the sheet as PNG to path.
func (r *Renderer) SaveComparison(rows []*motion.Series, count int, path string) error {
	if len(rows) == 0 || count <= 0 {
		return fmt.Errorf("comparison needs at least one series and one frame")
	}

	plots := make([][]*plot.Plot, len(rows))
	for i, s := range rows {
		frames := SpacedFrames(s.Len(), count)
		plots[i] = make([]*plot.Plot, count)
		for j, frame := range frames {
			p, err := r.FramePlot(s, frame)
			if err != nil {
				return err
			}
			plots[i][j] = p
		}
	}

	tileW := r.width() / 2
	tileH := r.height() / 2
	img := vgimg.New(tileW*vg.Length(count), tileH*vg.Length(len(rows)))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: len(rows),
		Cols: count,
		PadX: 4,
		PadY: 4,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		for j := range plots[i] {
			if plots[i][j] != nil {
				plots[i][j].Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write comparison: %w", err)
	}
	r.log.Info().Int("rows", len(rows)).Int("cols", count).Str("path", path).Msg("comparison written")
	return f.Close()
}
