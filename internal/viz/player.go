package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/jumpviz/internal/config"
	"github.com/san-kum/jumpviz/internal/kinematics"
	"github.com/san-kum/jumpviz/internal/motion"
)

const (
	width         = 60
	height        = 24
	historyWindow = 120
	minInterval   = time.Second / 60
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// SnapshotFunc persists the current canvas and returns where it went.
type SnapshotFunc func(c *Canvas, theme Theme, frame int) (string, error)

// Player replays a recording as an animated stick figure.
type Player struct {
	series   *motion.Series
	frames   []motion.Frame
	speeds   [motion.NumMarkers][]float64
	cfg      config.RenderConfig
	theme    Theme
	canvas   *Canvas
	frame    int
	running  bool
	loop     bool
	interval time.Duration
	showHelp bool
	status   string

	recording bool
	gifFrames []*image.Paletted
	gifPath   string
	snapshot  SnapshotFunc
}

// NewPlayer prepares playback of s at the pace given by cfg.
func NewPlayer(s *motion.Series, cfg config.RenderConfig) Player {
	p := Player{
		series:   s,
		frames:   motion.Frames(s),
		cfg:      cfg,
		theme:    GetTheme(cfg.Theme),
		canvas:   NewCanvas(width, height),
		running:  true,
		loop:     true,
		interval: cfg.FrameInterval(s.Interval()),
		gifPath:  fmt.Sprintf("%s_%s.gif", s.Condition(), s.JumpType()),
	}
	if p.interval < minInterval {
		p.interval = minInterval
	}
	for _, m := range motion.Markers() {
		p.speeds[m] = kinematics.Speed(s.Velocity(m, motion.X), s.Velocity(m, motion.Y))
	}
	return p
}

func (p Player) WithSnapshot(fn SnapshotFunc) Player {
	p.snapshot = fn
	return p
}

func (p Player) WithGIFPath(path string) Player {
	p.gifPath = path
	return p
}

func (p Player) Frame() int { return p.frame }

func (p Player) Running() bool { return p.running }

func (p Player) Interval() time.Duration { return p.interval }

func (p Player) Init() tea.Cmd {
	return p.tick()
}

func (p Player) tick() tea.Cmd {
	return tea.Tick(p.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles keys and advances playback on ticks.
func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if p.recording {
				p.stopRecording()
			}
			return p, tea.Quit
		case " ":
			p.running = !p.running
		case "r":
			p.frame = 0
		case "[", "left":
			p.running = false
			p.step(-1)
		case "]", "right":
			p.running = false
			p.step(1)
		case "l":
			p.loop = !p.loop
		case "v":
			p.cfg.WithVelocities = !p.cfg.WithVelocities
		case "c":
			if p.cfg.Timer == config.TimerChestX {
				p.cfg.Timer = config.TimerTime
			} else {
				p.cfg.Timer = config.TimerChestX
			}
		case "t":
			p.theme = NextTheme(p.theme)
		case "g":
			if p.recording {
				p.stopRecording()
			} else {
				p.recording = true
				p.gifFrames = make([]*image.Paletted, 0, len(p.frames))
				p.status = "recording"
			}
		case "s":
			p.takeSnapshot()
		case "?":
			p.showHelp = !p.showHelp
		}
	case TickMsg:
		if p.running {
			p.advance()
		}
		if p.recording {
			p.draw()
			p.gifFrames = append(p.gifFrames, captureFrame(p.canvas))
		}
		return p, p.tick()
	}
	return p, nil
}

// advance moves one frame forward, wrapping or stopping at the end.
func (p *Player) advance() {
	if p.frame+1 < len(p.frames) {
		p.frame++
		return
	}
	if p.loop {
		p.frame = 0
		return
	}
	p.running = false
}

func (p *Player) step(dir int) {
	p.frame += dir
	if p.frame < 0 {
		p.frame = 0
	}
	if p.frame >= len(p.frames) {
		p.frame = len(p.frames) - 1
	}
}

func (p *Player) takeSnapshot() {
	if p.snapshot == nil {
		p.status = "snapshots disabled"
		return
	}
	p.draw()
	path, err := p.snapshot(p.canvas, p.theme, p.frame)
	if err != nil {
		p.status = "snapshot failed: " + err.Error()
		return
	}
	p.status = "saved " + path
}

func (p *Player) stopRecording() {
	p.recording = false
	if err := saveGIF(p.gifPath, p.gifFrames, p.interval); err != nil {
		p.status = "gif failed: " + err.Error()
	} else {
		p.status = fmt.Sprintf("saved %s (%d frames)", p.gifPath, len(p.gifFrames))
	}
	p.gifFrames = nil
}

// View renders the canvas and the side panel.
func (p Player) View() string {
	p.draw()
	f := p.frames[p.frame]

	canvasView := canvasStyle.Foreground(p.theme.Figure).Render(p.canvas.String())

	var s strings.Builder
	title := strings.ToUpper(fmt.Sprintf("%s jump · %s", p.series.JumpType(), p.series.Condition()))
	tint := p.theme.Good
	if p.series.Condition() == motion.Bad {
		tint = p.theme.Bad
	}
	s.WriteString(headerStyle.Foreground(tint).Render(title) + "\n")

	status := "PLAYING"
	if !p.running {
		status = "PAUSED"
	}
	if p.recording {
		status += " · REC"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(valueStyle.Render(p.cfg.TimerText(f.Time, p.series.At(motion.Chest, f.Index).X)) + "\n")
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d/%d", p.frame+1, len(p.frames))) + "\n")
	s.WriteString(labelStyle.Render("Timer") + valueStyle.Render(string(p.cfg.Timer)) + "\n")

	if hist := p.history(motion.Chest); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("chest speed"))
		s.WriteString(graphStyle.Foreground(p.theme.Velocity).Render(chart) + "\n")
	}

	s.WriteString("\nSPEED (m/s)\n")
	for _, m := range motion.Markers() {
		s.WriteString(labelStyle.Render(m.String()) + valueStyle.Render(fmt.Sprintf("%.2f", p.speeds[m][p.frame])) + "\n")
	}
	if p.status != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(p.theme.Accent).Render(p.status) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Pause R:Restart Q:Quit\n[ ]:Step V:Velocity C:Timer\nT:Theme G:GIF S:Snapshot ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
	if p.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Restart from frame 1     ║
║  [ / ]    - Step back / forward      ║
║  L        - Toggle looping           ║
║  V        - Toggle velocity arrows   ║
║  C        - Toggle timer mode        ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  S        - Save SVG snapshot        ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// history returns the speed of m over the last historyWindow frames.
func (p Player) history(m motion.Marker) []float64 {
	start := p.frame - historyWindow + 1
	if start < 0 {
		start = 0
	}
	return p.speeds[m][start : p.frame+1]
}

// project maps recording coordinates to canvas sub-pixels; y grows upward.
func (p *Player) project(x, y float64) (int, int) {
	pw, ph := p.canvas.Pixels()
	xl, yl := p.cfg.XLim, p.cfg.YLim
	px := (x - xl[0]) / (xl[1] - xl[0]) * float64(pw-1)
	py := (yl[1] - y) / (yl[1] - yl[0]) * float64(ph-1)
	return int(math.Round(px)), int(math.Round(py))
}

// draw renders the current frame: floor, stick figure, markers and
// optional velocity arrows.
func (p *Player) draw() {
	p.canvas.Clear()
	f := p.frames[p.frame]

	fx0, fy := p.project(p.cfg.XLim[0], 0)
	fx1, _ := p.project(p.cfg.XLim[1], 0)
	p.canvas.DrawLine(fx0, fy, fx1, fy)

	var px, py [motion.StickFigurePointCount]int
	for i := range px {
		px[i], py[i] = p.project(f.X[i], f.Y[i])
	}
	for i := 1; i < len(px); i++ {
		p.canvas.DrawLine(px[i-1], py[i-1], px[i], py[i])
	}
	for i := range px {
		p.canvas.DrawDot(px[i], py[i], 1)
	}

	if p.cfg.WithVelocities {
		for i := range px {
			tx, ty := p.project(f.X[i]+p.cfg.VelocityScale*f.VX[i], f.Y[i]+p.cfg.VelocityScale*f.VY[i])
			p.canvas.DrawLine(px[i], py[i], tx, ty)
		}
	}
}

// captureFrame rasterizes the canvas, 8x16 pixels per character.
func captureFrame(c *Canvas) *image.Paletted {
	charW, charH := 8, 16
	dotW, dotH := charW/2, charH/4
	img := image.NewPaletted(image.Rect(0, 0, c.Width*charW, c.Height*charH), color.Palette{color.Black, color.White})
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			pattern := int(c.Grid[row][col] - brailleBlank)
			if pattern <= 0 {
				continue
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					x0, y0 := col*charW+dx*dotW, row*charH+dy*dotH
					for y := y0; y < y0+dotH; y++ {
						for x := x0; x < x0+dotW; x++ {
							img.SetColorIndex(x, y, 1)
						}
					}
				}
			}
		}
	}
	return img
}

func saveGIF(path string, frames []*image.Paletted, interval time.Duration) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames recorded")
	}
	delay := int(interval / (10 * time.Millisecond))
	if delay < 2 {
		delay = 2
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		return err
	}
	return f.Close()
}
