package main

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sevigo/code-guardian/internal/client"
	"github.com/sevigo/code-guardian/internal/core"
	"github.com/sevigo/code-guardian/internal/export"
)

func submitCmd(ctx context.Context, d *client.Dispatcher, op core.Operation, sub client.Submission) tea.Cmd {
	return func() tea.Msg {
		result, err := d.Submit(ctx, op, sub)
		return submitResultMsg{op: op, result: result, err: err}
	}
}

// clipboardWrite is swapped out in tests, where no clipboard is available.
var clipboardWrite = clipboard.WriteAll

func copyCmd(output string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboardWrite(output)}
	}
}

func saveCmd(dir string, format export.Format, output string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.Save(dir, format, output)
		return savedMsg{path: path, err: err}
	}
}
