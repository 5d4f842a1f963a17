package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the color scheme of the player.
type Theme struct {
	Name     string
	Figure   lipgloss.Color
	Velocity lipgloss.Color
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Good     lipgloss.Color
	Bad      lipgloss.Color
	SVGFg    string
	SVGBg    string
}

var (
	ThemeCyberpunk = Theme{
		Name:     "cyberpunk",
		Figure:   lipgloss.Color("#ff00ff"),
		Velocity: lipgloss.Color("#00ffff"),
		Accent:   lipgloss.Color("#ffff00"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666666"),
		Good:     lipgloss.Color("#00ff00"),
		Bad:      lipgloss.Color("#ff0000"),
		SVGFg:    "#ff00ff",
		SVGBg:    "#0a0a0a",
	}

	ThemeRetroGreen = Theme{
		Name:     "retro",
		Figure:   lipgloss.Color("#00ff00"),
		Velocity: lipgloss.Color("#88ff88"),
		Accent:   lipgloss.Color("#ccffcc"),
		Text:     lipgloss.Color("#00ff00"),
		Muted:    lipgloss.Color("#005500"),
		Good:     lipgloss.Color("#88ff88"),
		Bad:      lipgloss.Color("#ffff00"),
		SVGFg:    "#00ff00",
		SVGBg:    "#001100",
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Figure:   lipgloss.Color("#ffffff"),
		Velocity: lipgloss.Color("#0088ff"),
		Accent:   lipgloss.Color("#0088ff"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#888888"),
		Good:     lipgloss.Color("#00ff00"),
		Bad:      lipgloss.Color("#ff0000"),
		SVGFg:    "#000000",
		SVGBg:    "#ffffff",
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Figure:   lipgloss.Color("#00a8cc"),
		Velocity: lipgloss.Color("#ffd700"),
		Accent:   lipgloss.Color("#ffd700"),
		Text:     lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
		Good:     lipgloss.Color("#00ff88"),
		Bad:      lipgloss.Color("#ff4444"),
		SVGFg:    "#00a8cc",
		SVGBg:    "#001a33",
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
