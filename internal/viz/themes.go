package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the panel around the canvas; frame pixels keep their own colors.
type Theme struct {
	Name   string
	Title  lipgloss.Color
	Accent lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Cursor lipgloss.Color
	Graph  lipgloss.Color
}

var Themes = []Theme{
	{
		Name:   "neon",
		Title:  lipgloss.Color("#00ffff"),
		Accent: lipgloss.Color("#ff00ff"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666688"),
		Border: lipgloss.Color("#444466"),
		Cursor: lipgloss.Color("#ffff00"),
		Graph:  lipgloss.Color("#00ff88"),
	},
	{
		Name:   "phosphor",
		Title:  lipgloss.Color("#00ff00"),
		Accent: lipgloss.Color("#88ff88"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#005500"),
		Border: lipgloss.Color("#003300"),
		Cursor: lipgloss.Color("#ffff00"),
		Graph:  lipgloss.Color("#00cc00"),
	},
	{
		Name:   "ocean",
		Title:  lipgloss.Color("#00a8cc"),
		Accent: lipgloss.Color("#ffd700"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
		Border: lipgloss.Color("#0077be"),
		Cursor: lipgloss.Color("#ff4444"),
		Graph:  lipgloss.Color("#00ff88"),
	},
	{
		Name:   "sunset",
		Title:  lipgloss.Color("#ff6b6b"),
		Accent: lipgloss.Color("#feca57"),
		Text:   lipgloss.Color("#fff5f5"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Border: lipgloss.Color("#5d3b5e"),
		Cursor: lipgloss.Color("#00ffff"),
		Graph:  lipgloss.Color("#ff9ff3"),
	},
}

// ThemeIndex returns the position of the named theme, or 0 if unknown.
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
