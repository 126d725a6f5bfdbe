package main

import "github.com/sevigo/code-guardian/internal/core"

// Represents the end of a backend request, successful or not.
type submitResultMsg struct {
	op     core.Operation
	result string
	err    error
}

// Reports the outcome of copying the output to the clipboard.
type copiedMsg struct{ err error }

// Reports the outcome of saving the output to a file.
type savedMsg struct {
	path string
	err  error
}
