package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/code-guardian/internal/client"
	"github.com/sevigo/code-guardian/internal/core"
	"github.com/sevigo/code-guardian/internal/export"
)

const asciiLogo = `
 ██████╗ ██████╗ ██████╗ ███████╗     ██████╗ ██╗   ██╗ █████╗ ██████╗ ██████╗ ██╗ █████╗ ███╗   ██╗
██╔════╝██╔═══██╗██╔══██╗██╔════╝    ██╔════╝ ██║   ██║██╔══██╗██╔══██╗██╔══██╗██║██╔══██╗████╗  ██║
██║     ██║   ██║██║  ██║█████╗      ██║  ███╗██║   ██║███████║██████╔╝██║  ██║██║███████║██╔██╗ ██║
██║     ██║   ██║██║  ██║██╔══╝      ██║   ██║██║   ██║██╔══██║██╔══██╗██║  ██║██║██╔══██║██║╚██╗██║
╚██████╗╚██████╔╝██████╔╝███████╗    ╚██████╔╝╚██████╔╝██║  ██║██║  ██║██████╔╝██║██║  ██║██║ ╚████║
 ╚═════╝ ╚═════╝ ╚═════╝ ╚══════╝     ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝
`

type focusArea int

const (
	focusEditor focusArea = iota
	focusOutput
)

type modelOptions struct {
	theme     ThemeName
	language  core.Language
	code      string
	apiURL    string
	exportDir string
}

type model struct {
	ctx        context.Context
	dispatcher *client.Dispatcher
	styles     styles
	theme      ThemeName
	keys       KeyMap

	// UI Components
	editor   textarea.Model
	output   viewport.Model
	spinner  spinner.Model
	help     help.Model
	showHelp bool
	focus    focusArea
	width    int

	// Session State
	language      core.Language
	framework     core.Framework
	exportFormat  export.Format
	exportDir     string
	apiURL        string
	isLoading     bool
	outputIsError bool
	status        string
}

func initialModel(ctx context.Context, d *client.Dispatcher, opts modelOptions) *model {
	st := GetTheme(opts.theme)

	ta := textarea.New()
	ta.Placeholder = "Paste or type your code here..."
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(12)
	ta.SetValue(opts.code)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = st.spinner

	vp := viewport.New(80, 12)

	language := opts.language
	if language == "" {
		language = core.LanguageJavaScript
	}

	m := &model{
		ctx:          ctx,
		dispatcher:   d,
		styles:       st,
		theme:        opts.theme,
		keys:         Keys,
		editor:       ta,
		output:       vp,
		spinner:      sp,
		help:         help.New(),
		language:     language,
		framework:    core.DefaultFramework(language),
		exportFormat: export.FormatMarkdown,
		exportDir:    opts.exportDir,
		apiURL:       opts.apiURL,
		width:        84,
	}
	m.refreshOutput()
	return m
}

func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case submitResultMsg:
		m.isLoading = false
		m.outputIsError = msg.err != nil
		switch {
		case errors.Is(msg.err, client.ErrBusy):
			m.status = m.styles.prompt.Render("A request is already in flight.")
		case msg.err != nil:
			m.status = m.styles.error.Render(msg.op.Label() + " failed")
		default:
			m.status = m.styles.success.Render("✓ " + msg.op.Label() + " complete")
		}
		m.refreshOutput()
		m.output.GotoTop()
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = m.styles.error.Render("Copy failed: " + msg.err.Error())
		} else {
			m.status = m.styles.success.Render("✓ Output copied to clipboard")
		}
		return m, nil

	case savedMsg:
		switch {
		case errors.Is(msg.err, export.ErrNoOutput):
			m.status = m.styles.prompt.Render("Nothing to save yet.")
		case msg.err != nil:
			m.status = m.styles.error.Render("Save failed: " + msg.err.Error())
		default:
			m.status = m.styles.success.Render("✓ Saved to " + msg.path)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.isLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusEditor {
		m.editor, cmd = m.editor.Update(msg)
	} else {
		m.output, cmd = m.output.Update(msg)
	}
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil, true
	case key.Matches(msg, m.keys.Focus):
		m.toggleFocus()
		return nil, true
	case key.Matches(msg, m.keys.Analyze):
		return m.startOperation(core.OperationAnalyze), true
	case key.Matches(msg, m.keys.Tests):
		return m.startOperation(core.OperationGenerateTests), true
	case key.Matches(msg, m.keys.Optimize):
		return m.startOperation(core.OperationOptimize), true
	case key.Matches(msg, m.keys.Language):
		m.language = nextLanguage(m.language)
		m.framework = core.DefaultFramework(m.language)
		m.status = ""
		return nil, true
	case key.Matches(msg, m.keys.Framework):
		m.framework = nextFramework(m.framework)
		m.status = ""
		return nil, true
	case key.Matches(msg, m.keys.Theme):
		m.setTheme(toggleTheme(m.theme))
		return nil, true
	case key.Matches(msg, m.keys.Copy):
		output := m.dispatcher.Output()
		if output == "" {
			m.status = m.styles.prompt.Render("Nothing to copy yet.")
			return nil, true
		}
		return copyCmd(output), true
	case key.Matches(msg, m.keys.Save):
		return saveCmd(m.exportDir, m.exportFormat, m.dispatcher.Output()), true
	case key.Matches(msg, m.keys.Format):
		m.exportFormat = nextFormat(m.exportFormat)
		m.status = m.styles.command.Render("Output will be saved as ." + string(m.exportFormat))
		return nil, true
	}
	return nil, false
}

// startOperation sends the editor content to the backend. While a request is in
// flight further operations are refused without touching the current output.
func (m *model) startOperation(op core.Operation) tea.Cmd {
	if m.isLoading || m.dispatcher.Busy() {
		m.status = m.styles.prompt.Render("A request is already in flight.")
		return nil
	}

	sub := client.Submission{
		Code:     m.editor.Value(),
		Language: m.language.String(),
	}
	if op.UsesFramework() {
		sub.Framework = m.framework.String()
	}

	m.isLoading = true
	m.outputIsError = false
	m.status = m.styles.command.Render("→ " + op.Label() + " in progress...")
	m.output.SetContent("")
	return tea.Batch(m.spinner.Tick, submitCmd(m.ctx, m.dispatcher, op, sub))
}

func (m *model) toggleFocus() {
	if m.focus == focusEditor {
		m.focus = focusOutput
		m.editor.Blur()
		return
	}
	m.focus = focusEditor
	m.editor.Focus()
}

func (m *model) setTheme(theme ThemeName) {
	m.theme = theme
	m.styles = GetTheme(theme)
	m.spinner.Style = m.styles.spinner
	m.status = m.styles.command.Render("Theme: " + string(theme))
	m.refreshOutput()
}

func (m *model) resize(width, height int) {
	m.width = width
	paneWidth := max(width-6, 20)

	// header (3) + selectors (1) + pane borders (4) + status (1) + footer (2)
	available := max(height-11, 6)
	editorHeight := available / 2
	m.editor.SetWidth(paneWidth)
	m.editor.SetHeight(editorHeight)
	m.output.Width = paneWidth
	m.output.Height = available - editorHeight
	m.help.Width = width
	m.refreshOutput()
}

// refreshOutput re-renders the last output for the current theme and width.
func (m *model) refreshOutput() {
	text := m.dispatcher.Output()
	switch {
	case text == "":
		m.output.SetContent(m.styles.inactive.Render(asciiLogo + "\nResults appear here. Press F1 for help."))
	case m.outputIsError:
		m.output.SetContent(m.styles.error.Render(text))
	default:
		m.output.SetContent(renderMarkdown(text, paletteFor(m.theme).Markdown, m.output.Width))
	}
}

func renderMarkdown(text, style string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(width-2, 20)),
	)
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return out
}

func (m *model) View() string {
	header := m.styles.header.Render("CodeGuardian · AI code review")

	selectors := strings.Join([]string{
		m.styles.label.Render("Language: ") + m.language.Label(),
		m.styles.label.Render("Framework: ") + m.framework.Label(),
		m.styles.label.Render("Save as: ") + "." + string(m.exportFormat),
		m.styles.label.Render("Theme: ") + string(m.theme),
	}, m.styles.inactive.Render(" │ "))

	editorStyle, outputStyle := m.styles.pane, m.styles.pane
	if m.focus == focusEditor {
		editorStyle = m.styles.focused
	} else {
		outputStyle = m.styles.focused
	}

	status := m.status
	if m.isLoading {
		status = m.spinner.View() + " " + status
	}
	backend := m.styles.inactive.Render(fmt.Sprintf("backend: %s", m.apiURL))

	return m.styles.app.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			selectors,
			editorStyle.Render(m.editor.View()),
			outputStyle.Render(m.output.View()),
			lipgloss.JoinHorizontal(lipgloss.Left, status, "  ", backend),
			m.styles.footer.Render(m.help.View(m.keys)),
		),
	)
}

func nextLanguage(current core.Language) core.Language {
	all := core.Languages()
	for i, l := range all {
		if l == current {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func nextFramework(current core.Framework) core.Framework {
	all := core.Frameworks()
	for i, f := range all {
		if f == current {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

func nextFormat(current export.Format) export.Format {
	all := export.Formats()
	for i, f := range all {
		if f == current {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}
