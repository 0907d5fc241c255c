package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name     string
	Circle   lipgloss.Color
	Membrane lipgloss.Color
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
}

// Available themes
var (
	// ThemeClassic uses the window frontend's stroke colors.
	ThemeClassic = Theme{
		Name:     "classic",
		Circle:   lipgloss.Color("#55ccee"),
		Membrane: lipgloss.Color("#55cc99"),
		Accent:   lipgloss.Color("#00ffff"),
		Text:     lipgloss.Color("252"),
		Muted:    lipgloss.Color("240"),
	}

	ThemeCyberpunk = Theme{
		Name:     "cyberpunk",
		Circle:   lipgloss.Color("#00ffff"),
		Membrane: lipgloss.Color("#ff00ff"),
		Accent:   lipgloss.Color("#ffff00"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:     "retro",
		Circle:   lipgloss.Color("#00cc00"),
		Membrane: lipgloss.Color("#88ff88"),
		Accent:   lipgloss.Color("#00ff00"),
		Text:     lipgloss.Color("#00ff00"),
		Muted:    lipgloss.Color("#005500"),
	}

	ThemeSunset = Theme{
		Name:     "sunset",
		Circle:   lipgloss.Color("#feca57"),
		Membrane: lipgloss.Color("#ff6b6b"),
		Accent:   lipgloss.Color("#ff9ff3"),
		Text:     lipgloss.Color("#fff5f5"),
		Muted:    lipgloss.Color("#8b6b8c"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
