// Package client implements the request dispatcher used by the terminal clients
// to talk to the CodeGuardian backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/sevigo/code-guardian/internal/core"
)

// ErrBusy is returned by Submit while another request is in flight.
var ErrBusy = errors.New("a request is already in flight")

// Submission is the user's input for one operation.
type Submission struct {
	Code      string
	Language  string
	Framework string
}

// SubmitError describes a failed request. Status is empty when no HTTP response
// was received.
type SubmitError struct {
	Status  string
	Message string
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("Backend error: %s %s", e.Status, e.Message)
}

// Dispatcher sends one request at a time and keeps the last output.
type Dispatcher struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu     sync.Mutex
	busy   bool
	output string
}

// NewDispatcher creates a dispatcher for the backend at baseURL. The HTTP client
// has no timeout of its own; callers bound requests through the context.
func NewDispatcher(baseURL string, httpClient *http.Client, logger *slog.Logger) *Dispatcher {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Dispatcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Busy reports whether a request is in flight.
func (d *Dispatcher) Busy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.busy
}

// Output returns the text of the last completed request, result or error.
func (d *Dispatcher) Output() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.output
}

// Submit sends sub to the endpoint bound to op and returns the backend's result.
// On failure the returned error is a *SubmitError and Output holds its text.
func (d *Dispatcher) Submit(ctx context.Context, op core.Operation, sub Submission) (string, error) {
	endpoint, err := op.Endpoint()
	if err != nil {
		d.setOutput((&SubmitError{Message: err.Error()}).Error())
		return "", err
	}

	if !d.acquire() {
		return "", ErrBusy
	}
	defer d.release()

	d.logger.Debug("submitting request", "operation", op.String(), "endpoint", endpoint, "language", sub.Language)

	result, err := d.post(ctx, endpoint, sub)
	if err != nil {
		var serr *SubmitError
		if !errors.As(err, &serr) {
			serr = &SubmitError{Message: err.Error()}
		}
		d.logger.Warn("request failed", "operation", op.String(), "status", serr.Status, "error", serr.Message)
		d.setOutput(serr.Error())
		return "", serr
	}

	d.setOutput(result)
	return result, nil
}

// acquire sets the busy flag and clears the previous output. It fails when a
// request is already in flight.
func (d *Dispatcher) acquire() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.busy {
		return false
	}
	d.busy = true
	d.output = ""
	return true
}

func (d *Dispatcher) release() {
	d.mu.Lock()
	d.busy = false
	d.mu.Unlock()
}

func (d *Dispatcher) setOutput(s string) {
	d.mu.Lock()
	d.output = s
	d.mu.Unlock()
}

func (d *Dispatcher) post(ctx context.Context, endpoint string, sub Submission) (string, error) {
	body, err := json.Marshal(core.ReviewPayload{
		Code:      sub.Code,
		Language:  sub.Language,
		Framework: sub.Framework,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &SubmitError{Status: strconv.Itoa(resp.StatusCode), Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp core.ErrorResponse
		message := http.StatusText(resp.StatusCode)
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error != "" {
			message = errResp.Error
		}
		return "", &SubmitError{Status: strconv.Itoa(resp.StatusCode), Message: message}
	}

	var result core.ReviewResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", &SubmitError{Status: strconv.Itoa(resp.StatusCode), Message: fmt.Sprintf("invalid response body: %v", err)}
	}
	return result.Text, nil
}
