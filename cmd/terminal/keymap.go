package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the TUI. Function keys are used so that
// every printable key stays available to the code editor.
type KeyMap struct {
	Help      key.Binding
	Quit      key.Binding
	Focus     key.Binding
	Analyze   key.Binding
	Tests     key.Binding
	Optimize  key.Binding
	Language  key.Binding
	Framework key.Binding
	Theme     key.Binding
	Copy      key.Binding
	Save      key.Binding
	Format    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "editor/output"),
		),
		Analyze: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("F2", "analyze"),
		),
		Tests: key.NewBinding(
			key.WithKeys("f3"),
			key.WithHelp("F3", "generate tests"),
		),
		Optimize: key.NewBinding(
			key.WithKeys("f4"),
			key.WithHelp("F4", "optimize"),
		),
		Language: key.NewBinding(
			key.WithKeys("f5"),
			key.WithHelp("F5", "next language"),
		),
		Framework: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("F6", "next framework"),
		),
		Theme: key.NewBinding(
			key.WithKeys("f7"),
			key.WithHelp("F7", "light/dark"),
		),
		Copy: key.NewBinding(
			key.WithKeys("f8"),
			key.WithHelp("F8", "copy output"),
		),
		Save: key.NewBinding(
			key.WithKeys("f9", "ctrl+s"),
			key.WithHelp("F9", "save output"),
		),
		Format: key.NewBinding(
			key.WithKeys("f10"),
			key.WithHelp("F10", "save format"),
		),
	}
}

var Keys = DefaultKeyMap()

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Analyze, k.Tests, k.Optimize, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Analyze, k.Tests, k.Optimize},
		{k.Language, k.Framework, k.Theme},
		{k.Copy, k.Save, k.Format},
		{k.Focus, k.Help, k.Quit},
	}
}
