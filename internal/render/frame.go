package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/jumpviz/internal/config"
	"github.com/san-kum/jumpviz/internal/motion"
)

var (
	outlineColor  = color.Black
	markerColor   = color.RGBA{R: 220, A: 255}
	velocityColor = color.RGBA{G: 160, A: 255}
	floorColor    = color.RGBA{B: 200, A: 255}
)

// arrowHead is the head length relative to the arrow and its half-angle.
const (
	arrowHead      = 0.25
	arrowHeadAngle = 25 * math.Pi / 180
)

type Renderer struct {
	cfg config.RenderConfig
	log zerolog.Logger
}

func New(cfg config.RenderConfig) *Renderer {
	return &Renderer{cfg: cfg, log: zerolog.Nop()}
}

func (r *Renderer) WithLogger(l zerolog.Logger) *Renderer {
	c := *r
	c.log = l.With().Str("component", "render").Logger()
	return &c
}

func (r *Renderer) Config() config.RenderConfig { return r.cfg }

// TimerText formats the timer for frame f of s according to the timer mode.
func (r *Renderer) TimerText(s *motion.Series, f motion.Frame) string {
	return r.cfg.TimerText(f.Time, s.At(motion.Chest, f.Index).X)
}

// FramePlot builds the plot of s at frame.
func (r *Renderer) FramePlot(s *motion.Series, frame int) (*plot.Plot, error) {
	f, err := motion.StickFigurePoints(s, frame)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s jump, %s", s.JumpType(), s.Condition())
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"
	p.X.Min, p.X.Max = r.cfg.XLim[0], r.cfg.XLim[1]
	p.Y.Min, p.Y.Max = r.cfg.YLim[0], r.cfg.YLim[1]
	p.Add(plotter.NewGrid())

	floor, err := plotter.NewLine(plotter.XYs{{X: r.cfg.XLim[0], Y: 0}, {X: r.cfg.XLim[1], Y: 0}})
	if err != nil {
		return nil, err
	}
	floor.Color = floorColor
	floor.Width = vg.Points(4)
	p.Add(floor)

	pts := make(plotter.XYs, motion.StickFigurePointCount)
	for i := range pts {
		pts[i].X, pts[i].Y = f.X[i], f.Y[i]
	}

	outline, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	outline.Color = outlineColor
	outline.Width = vg.Points(r.cfg.LineWidth)
	p.Add(outline)

	if r.cfg.WithVelocities {
		for _, seg := range ArrowSegments(f, r.cfg.VelocityScale) {
			arrow, err := plotter.NewLine(seg)
			if err != nil {
				return nil, err
			}
			arrow.Color = velocityColor
			arrow.Width = vg.Points(1.5)
			p.Add(arrow)
		}
	}

	markers, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	markers.GlyphStyle.Color = markerColor
	markers.GlyphStyle.Shape = draw.CircleGlyph{}
	markers.GlyphStyle.Radius = vg.Points(r.cfg.MarkerSize / 2)
	p.Add(markers)

	timer, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{{
			X: r.cfg.XLim[0] + 0.05*(r.cfg.XLim[1]-r.cfg.XLim[0]),
			Y: r.cfg.YLim[0] + 0.9*(r.cfg.YLim[1]-r.cfg.YLim[0]),
		}},
		Labels: []string{r.TimerText(s, f)},
	})
	if err != nil {
		return nil, err
	}
	p.Add(timer)

	return p, nil
}

// ArrowSegments returns one polyline per stick-figure point: the shaft from
// the point to point + scale*v, then the two barbs of the head. Points with
// zero velocity yield no segment.
func ArrowSegments(f motion.Frame, scale float64) []plotter.XYs {
	segs := make([]plotter.XYs, 0, motion.StickFigurePointCount)
	for i := 0; i < motion.StickFigurePointCount; i++ {
		dx, dy := scale*f.VX[i], scale*f.VY[i]
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		x0, y0 := f.X[i], f.Y[i]
		x1, y1 := x0+dx, y0+dy

		back := math.Atan2(-dy, -dx)
		head := arrowHead * length
		segs = append(segs, plotter.XYs{
			{X: x0, Y: y0},
			{X: x1, Y: y1},
			{X: x1 + head*math.Cos(back+arrowHeadAngle), Y: y1 + head*math.Sin(back+arrowHeadAngle)},
			{X: x1, Y: y1},
			{X: x1 + head*math.Cos(back-arrowHeadAngle), Y: y1 + head*math.Sin(back-arrowHeadAngle)},
		})
	}
	return segs
}

// SaveFrame writes frame of s to path.
func (r *Renderer) SaveFrame(s *motion.Series, frame int, path string) error {
	p, err := r.FramePlot(s, frame)
	if err != nil {
		return err
	}
	if err := p.Save(r.width(), r.height(), path); err != nil {
		return fmt.Errorf("save frame %d: %w", frame, err)
	}
	r.log.Debug().Str("recording", s.Key().String()).Int("frame", frame).Str("path", path).Msg("frame written")
	return nil
}

func (r *Renderer) width() vg.Length  { return vg.Length(r.cfg.WidthIn) * vg.Inch }
func (r *Renderer) height() vg.Length { return vg.Length(r.cfg.HeightIn) * vg.Inch }
