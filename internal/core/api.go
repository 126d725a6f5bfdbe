package core

// ReviewPayload is the JSON body accepted by every operation endpoint.
type ReviewPayload struct {
	Code      string `json:"code"`
	Language  string `json:"language"`
	Framework string `json:"framework,omitempty"`
}

// ErrorResponse is the JSON body returned for any failed operation.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Request converts the payload into a ReviewRequest for op.
func (p ReviewPayload) Request(op Operation) ReviewRequest {
	return ReviewRequest{
		Operation: op,
		Code:      p.Code,
		Language:  p.Language,
		Framework: p.Framework,
	}
}
