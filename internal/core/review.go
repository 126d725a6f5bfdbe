// Package core defines the essential interfaces and data structures shared by the
// server, the orchestration layer and the clients.
package core

// ReviewRequest is a single, transient request for one operation on a piece of code.
type ReviewRequest struct {
	Operation Operation
	Code      string
	Language  string
	// Framework only matters for OperationGenerateTests and is never validated.
	Framework string
}

// ReviewResult carries the provider's text. It is never parsed.
type ReviewResult struct {
	Text string `json:"result"`
}

// CompletionRequest is what the orchestrator hands to a completion provider.
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
}
