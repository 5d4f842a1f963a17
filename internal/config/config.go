package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir        = "data"
	DefaultLogLevel       = "info"
	DefaultVelocityScale  = 0.1
	DefaultPlaybackFactor = 1400.0
	DefaultLineWidth      = 2.0
	DefaultMarkerSize     = 8.0
	DefaultWidthIn        = 12.0
	DefaultHeightIn       = 8.0
	DefaultTheme          = "cyberpunk"
)

// TimerFormat is the template of the on-screen timer.
const TimerFormat = "Time = %.2f s"

// TimerMode selects the value shown in the on-screen timer.
type TimerMode string

const (
	// TimerTime shows the sample time.
	TimerTime TimerMode = "time"
	// TimerChestX shows the chest x-position.
	TimerChestX TimerMode = "chest-x"
)

type Config struct {
	DataDir  string       `yaml:"data_dir"`
	LogLevel string       `yaml:"log_level"`
	Render   RenderConfig `yaml:"render"`
}

type RenderConfig struct {
	XLim           [2]float64 `yaml:"xlim"`
	YLim           [2]float64 `yaml:"ylim"`
	VelocityScale  float64    `yaml:"velocity_scale"`
	WithVelocities bool       `yaml:"with_velocities"`
	Timer          TimerMode  `yaml:"timer"`
	PlaybackFactor float64    `yaml:"playback_factor"`
	LineWidth      float64    `yaml:"line_width"`
	MarkerSize     float64    `yaml:"marker_size"`
	WidthIn        float64    `yaml:"width_in"`
	HeightIn       float64    `yaml:"height_in"`
	Theme          string     `yaml:"theme"`
}

func DefaultRender() RenderConfig {
	return RenderConfig{
		XLim:           [2]float64{-1.5, 1.5},
		YLim:           [2]float64{-0.1, 1.75},
		VelocityScale:  DefaultVelocityScale,
		Timer:          TimerTime,
		PlaybackFactor: DefaultPlaybackFactor,
		LineWidth:      DefaultLineWidth,
		MarkerSize:     DefaultMarkerSize,
		WidthIn:        DefaultWidthIn,
		HeightIn:       DefaultHeightIn,
		Theme:          DefaultTheme,
	}
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:  DefaultDataDir,
		LogLevel: DefaultLogLevel,
		Render:   DefaultRender(),
	}
}

// Load reads a YAML config over the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir must not be empty")
	}
	return c.Render.Validate()
}

func (r *RenderConfig) Validate() error {
	if r.XLim[0] >= r.XLim[1] {
		return fmt.Errorf("xlim %v: lower bound must be below upper bound", r.XLim)
	}
	if r.YLim[0] >= r.YLim[1] {
		return fmt.Errorf("ylim %v: lower bound must be below upper bound", r.YLim)
	}
	switch r.Timer {
	case TimerTime, TimerChestX:
	default:
		return fmt.Errorf("timer %q: want %q or %q", r.Timer, TimerTime, TimerChestX)
	}
	if r.VelocityScale < 0 {
		return fmt.Errorf("velocity_scale %v must not be negative", r.VelocityScale)
	}
	if r.PlaybackFactor <= 0 {
		return fmt.Errorf("playback_factor %v must be positive", r.PlaybackFactor)
	}
	if r.WidthIn <= 0 || r.HeightIn <= 0 {
		return fmt.Errorf("figure size %vx%v must be positive", r.WidthIn, r.HeightIn)
	}
	return nil
}

// TimerText formats the timer for sample time t with the chest at chestX.
func (r *RenderConfig) TimerText(t, chestX float64) string {
	return fmt.Sprintf(TimerFormat, r.TimerValue(t, chestX))
}

// TimerValue returns the number shown by the timer for a frame.
func (r *RenderConfig) TimerValue(t, chestX float64) float64 {
	if r.Timer == TimerChestX {
		return chestX
	}
	return t
}

// FrameInterval is the playback delay for a recording sampled every
// sampleInterval seconds: PlaybackFactor milliseconds per second of sample
// spacing.
func (r *RenderConfig) FrameInterval(sampleInterval float64) time.Duration {
	ms := sampleInterval * r.PlaybackFactor
	return time.Duration(ms * float64(time.Millisecond))
}
