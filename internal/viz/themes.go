package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/algoviz/internal/algo"
)

// Theme defines the bar colours per emphasis tag plus the panel colours.
type Theme struct {
	Name     string
	Bar      lipgloss.Color
	Compared lipgloss.Color
	Swapped  lipgloss.Color
	Merged   lipgloss.Color
	Probe    lipgloss.Color
	Found    lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:     "classic",
		Bar:      lipgloss.Color("#3b6fd8"), // blue
		Compared: lipgloss.Color("#e03131"), // red
		Swapped:  lipgloss.Color("#2fb344"), // green
		Merged:   lipgloss.Color("#9c36b5"), // purple
		Probe:    lipgloss.Color("#fcc419"), // yellow
		Found:    lipgloss.Color("#2fb344"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#888888"),
		Accent:   lipgloss.Color("#74c0fc"),
	}

	ThemeCyberpunk = Theme{
		Name:     "cyberpunk",
		Bar:      lipgloss.Color("#00ffff"),
		Compared: lipgloss.Color("#ff00ff"),
		Swapped:  lipgloss.Color("#00ff00"),
		Merged:   lipgloss.Color("#ff8800"),
		Probe:    lipgloss.Color("#ffff00"),
		Found:    lipgloss.Color("#00ff00"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666666"),
		Accent:   lipgloss.Color("#ff00ff"),
	}

	ThemeRetroGreen = Theme{
		Name:     "retro",
		Bar:      lipgloss.Color("#00aa00"), // green phosphor
		Compared: lipgloss.Color("#88ff88"),
		Swapped:  lipgloss.Color("#ffff00"),
		Merged:   lipgloss.Color("#00ff00"),
		Probe:    lipgloss.Color("#ccffcc"),
		Found:    lipgloss.Color("#ffff00"),
		Text:     lipgloss.Color("#00ff00"),
		Muted:    lipgloss.Color("#005500"),
		Accent:   lipgloss.Color("#88ff88"),
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Bar:      lipgloss.Color("#0077be"),
		Compared: lipgloss.Color("#ff4444"),
		Swapped:  lipgloss.Color("#00ff88"),
		Merged:   lipgloss.Color("#00a8cc"),
		Probe:    lipgloss.Color("#ffd700"),
		Found:    lipgloss.Color("#00ff88"),
		Text:     lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
		Accent:   lipgloss.Color("#ffd700"),
	}

	ThemeSunset = Theme{
		Name:     "sunset",
		Bar:      lipgloss.Color("#ff6b6b"), // coral
		Compared: lipgloss.Color("#feca57"),
		Swapped:  lipgloss.Color("#5fd068"),
		Merged:   lipgloss.Color("#ff9ff3"),
		Probe:    lipgloss.Color("#ffc048"),
		Found:    lipgloss.Color("#5fd068"),
		Text:     lipgloss.Color("#fff5f5"),
		Muted:    lipgloss.Color("#8b6b8c"),
		Accent:   lipgloss.Color("#ff9ff3"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// Color returns the bar colour for a tag.
func (t Theme) Color(tag algo.Tag) lipgloss.Color {
	switch tag {
	case algo.Compared:
		return t.Compared
	case algo.Swapped:
		return t.Swapped
	case algo.Merged:
		return t.Merged
	case algo.Probe:
		return t.Probe
	case algo.Found:
		return t.Found
	default:
		return t.Bar
	}
}

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
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
