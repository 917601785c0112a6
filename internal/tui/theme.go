package tui

import "github.com/charmbracelet/lipgloss"

// theme is a named colour scheme. The name is stored in the session.
type theme struct {
	name   string
	accent lipgloss.Color
	muted  lipgloss.Color
	paper  lipgloss.Color
}

var themes = []theme{
	{name: "pink", accent: "#db2777", muted: "#f9a8d4", paper: "#fdf2f8"},
	{name: "purple", accent: "#7c3aed", muted: "#c4b5fd", paper: "#f5f3ff"},
	{name: "mint", accent: "#059669", muted: "#6ee7b7", paper: "#ecfdf5"},
	{name: "sunset", accent: "#ea580c", muted: "#fdba74", paper: "#fff7ed"},
	{name: "night", accent: "#818cf8", muted: "#475569", paper: "#0f172a"},
}

// themeByName falls back to the first theme for unknown names.
func themeByName(name string) theme {
	for _, t := range themes {
		if t.name == name {
			return t
		}
	}
	return themes[0]
}

func (t theme) next() theme {
	for i, candidate := range themes {
		if candidate.name == t.name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

func (t theme) title() lipgloss.Style {
	return titleStyle.Foreground(t.accent)
}

func (t theme) selected() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.accent)
}

func (t theme) faint() lipgloss.Style {
	return helpStyle.Foreground(t.muted)
}

func (t theme) page() lipgloss.Style {
	return pageBoxStyle.BorderForeground(t.accent)
}
