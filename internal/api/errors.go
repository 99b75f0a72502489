package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// StatusError is a non-2xx response from the backend. Message carries the
// best-effort human-readable text extracted from the response body, which
// callers surface verbatim instead of inventing their own wording.
type StatusError struct {
	Code       int
	Message    string
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend respondeu HTTP %d", e.Code)
}

// TransportError is a request that never produced an HTTP response:
// connection refused, DNS failure, timeout below the HTTP layer.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("falha de comunicação com o backend: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// messageFields are the JSON fields backends use for human-readable error
// text, probed in order.
var messageFields = []string{"message", "error", "detalhe", "erro"}

// extractMessage pulls display text out of an error response body: known
// JSON fields first, then the raw body as plain text, then nothing.
func extractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, field := range messageFields {
			if v, ok := parsed[field]; ok {
				if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
					return strings.TrimSpace(s)
				}
			}
		}
		return ""
	}
	return trimmed
}
