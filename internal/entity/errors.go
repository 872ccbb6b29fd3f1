package entity

import (
	"errors"
	"fmt"
)

// Pipeline errors. Every failure of the extraction pipeline and the
// completion upstream is returned as a value; the caller decides whether
// to surface it, offer a retry, or substitute mock scenarios.
var (
	// Extraction failures
	ErrNoTextContent    = errors.New("completion response carries no text content")
	ErrNoJSONFound      = errors.New("no JSON object found in completion text")
	ErrScenariosMissing = errors.New("scenarios missing or empty in completion payload")

	// Upstream failures
	ErrUpstreamAuth        = errors.New("upstream authorization rejected")
	ErrUpstreamTimeout     = errors.New("upstream request timed out")
	ErrUpstreamUnreachable = errors.New("upstream service unreachable")

	// Validation errors
	ErrMissingField      = errors.New("required field is missing")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrInvalidDocument   = errors.New("invalid document attachment")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// MalformedJSONError reports a candidate JSON region that failed to parse.
// Preview is bounded so error payloads never carry the full model reply.
type MalformedJSONError struct {
	Preview string
	Err     error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in completion text: %v (candidate: %q)", e.Err, e.Preview)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Err
}

// UpstreamError reports a non-2xx completion response that is not an
// authorization failure. Body is truncated by the connector.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream request failed: HTTP %d: %s", e.StatusCode, e.Body)
}
