package config

import "sort"

// Presets are named render settings. "jump" and "drift" differ only in the
// timer: sample time versus chest x-position.
var Presets = map[string]RenderConfig{
	"jump": DefaultRender(),
	"drift": func() RenderConfig {
		r := DefaultRender()
		r.Timer = TimerChestX
		return r
	}(),
	"velocities": func() RenderConfig {
		r := DefaultRender()
		r.WithVelocities = true
		return r
	}(),
	"wide": func() RenderConfig {
		r := DefaultRender()
		r.XLim = [2]float64{-2.5, 2.5}
		r.YLim = [2]float64{-0.2, 2.2}
		r.WithVelocities = true
		r.VelocityScale = 0.05
		return r
	}(),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *RenderConfig {
	r, ok := Presets[name]
	if !ok {
		return nil
	}
	return &r
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
