package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperation is returned when an operation name does not map to any endpoint.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation is one of the AI-backed actions a user can request for a piece of code.
type Operation int

const (
	OperationAnalyze Operation = iota + 1
	OperationGenerateTests
	OperationOptimize
)

// Operations lists every supported operation in display order.
func Operations() []Operation {
	return []Operation{OperationAnalyze, OperationGenerateTests, OperationOptimize}
}

// ParseOperation accepts the canonical name ("analyze", "generate_tests", "optimize"),
// the prompt name ("tests") or the display label ("Generate Tests").
func ParseOperation(s string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	switch key {
	case "analyze":
		return OperationAnalyze, nil
	case "generate_tests", "tests":
		return OperationGenerateTests, nil
	case "optimize":
		return OperationOptimize, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
}

// Valid reports whether o is one of the declared operations.
func (o Operation) Valid() bool {
	switch o {
	case OperationAnalyze, OperationGenerateTests, OperationOptimize:
		return true
	default:
		return false
	}
}

// String returns the canonical operation name.
func (o Operation) String() string {
	switch o {
	case OperationAnalyze:
		return "analyze"
	case OperationGenerateTests:
		return "generate_tests"
	case OperationOptimize:
		return "optimize"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}

// Label is the human readable name shown in clients.
func (o Operation) Label() string {
	switch o {
	case OperationAnalyze:
		return "Analyze"
	case OperationGenerateTests:
		return "Generate Tests"
	case OperationOptimize:
		return "Optimize"
	default:
		return ""
	}
}

// Endpoint returns the HTTP path serving the operation.
func (o Operation) Endpoint() (string, error) {
	switch o {
	case OperationAnalyze:
		return "/api/analyze", nil
	case OperationGenerateTests:
		return "/api/tests", nil
	case OperationOptimize:
		return "/api/optimize", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownOperation, o)
	}
}

// PromptName is the key of the system prompt template bound to the operation.
func (o Operation) PromptName() (string, error) {
	switch o {
	case OperationAnalyze:
		return "analyze", nil
	case OperationGenerateTests:
		return "tests", nil
	case OperationOptimize:
		return "optimize", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownOperation, o)
	}
}

// UsesFramework reports whether the test framework is part of the operation's prompt.
func (o Operation) UsesFramework() bool {
	return o == OperationGenerateTests
}
