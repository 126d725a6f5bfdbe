package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	app      lipgloss.Style
	header   lipgloss.Style
	pane     lipgloss.Style
	focused  lipgloss.Style
	label    lipgloss.Style
	footer   lipgloss.Style
	inactive lipgloss.Style
	error    lipgloss.Style
	success  lipgloss.Style
	prompt   lipgloss.Style
	command  lipgloss.Style
	spinner  lipgloss.Style
}

type ThemeName string

const (
	ThemeDark    ThemeName = "dark"
	ThemeLight   ThemeName = "light"
	ThemeMatrix  ThemeName = "matrix"
	ThemeAmber   ThemeName = "amber"
	ThemeDracula ThemeName = "dracula"
)

type ThemePalette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Inactive  lipgloss.Color
	// Markdown is the glamour standard style used for the output pane.
	Markdown string
}

var palettes = map[ThemeName]ThemePalette{
	ThemeDark: {
		Primary:   lipgloss.Color("51"),
		Secondary: lipgloss.Color("33"),
		Success:   lipgloss.Color("46"),
		Warning:   lipgloss.Color("226"),
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
		Markdown:  "dark",
	},
	ThemeLight: {
		Primary:   lipgloss.Color("25"),  // navy
		Secondary: lipgloss.Color("30"),  // teal
		Success:   lipgloss.Color("28"),  // green
		Warning:   lipgloss.Color("130"), // brown
		Error:     lipgloss.Color("160"),
		Inactive:  lipgloss.Color("245"),
		Markdown:  "light",
	},
	ThemeMatrix: {
		Primary:   lipgloss.Color("82"),  // brightGreen
		Secondary: lipgloss.Color("46"),  // green
		Success:   lipgloss.Color("82"),  // brightGreen
		Warning:   lipgloss.Color("190"), // lime
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
		Markdown:  "dark",
	},
	ThemeAmber: {
		Primary:   lipgloss.Color("220"), // brightAmber
		Secondary: lipgloss.Color("214"), // amber
		Success:   lipgloss.Color("220"), // brightAmber
		Warning:   lipgloss.Color("208"), // orange
		Error:     lipgloss.Color("196"),
		Inactive:  lipgloss.Color("240"),
		Markdown:  "dark",
	},
	ThemeDracula: {
		Primary:   lipgloss.Color("141"), // purple
		Secondary: lipgloss.Color("117"), // cyan
		Success:   lipgloss.Color("84"),  // green
		Warning:   lipgloss.Color("212"), // pink
		Error:     lipgloss.Color("203"),
		Inactive:  lipgloss.Color("240"),
		Markdown:  "dracula",
	},
}

func GetTheme(theme ThemeName) styles {
	return newStylesFromPalette(paletteFor(theme))
}

func paletteFor(theme ThemeName) ThemePalette {
	if palette, ok := palettes[theme]; ok {
		return palette
	}
	return palettes[ThemeDark]
}

func ListThemes() []ThemeName {
	return []ThemeName{
		ThemeDark,
		ThemeLight,
		ThemeMatrix,
		ThemeAmber,
		ThemeDracula,
	}
}

func validTheme(theme ThemeName) bool {
	_, ok := palettes[theme]
	return ok
}

// toggleTheme flips between the light theme and the dark one. Every dark
// variant toggles to light.
func toggleTheme(theme ThemeName) ThemeName {
	if theme == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

func newStylesFromPalette(p ThemePalette) styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Inactive).
		Padding(0, 1)

	return styles{
		app: lipgloss.NewStyle().Margin(0, 1),
		header: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Primary).
			Padding(0, 2),
		pane:    pane,
		focused: pane.BorderForeground(p.Primary),
		label:   lipgloss.NewStyle().Foreground(p.Secondary).Bold(true),
		footer: lipgloss.NewStyle().
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Primary),
		inactive: lipgloss.NewStyle().Foreground(p.Inactive),
		error:    lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		success:  lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		prompt:   lipgloss.NewStyle().Foreground(p.Warning).Bold(true),
		command:  lipgloss.NewStyle().Foreground(p.Secondary).Italic(true),
		spinner:  lipgloss.NewStyle().Foreground(p.Primary),
	}
}
