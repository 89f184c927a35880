package httputil

import (
	"fmt"
	"net/http"
)

// StatusError reports a non-success HTTP response.
type StatusError struct {
	Code   int    // Numeric status code (e.g., 503)
	Status string // Status line text from the response (may be empty)
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return "unexpected status " + e.Status
	}
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

// NotFound reports whether the response was a 404.
func (e *StatusError) NotFound() bool { return e.Code == http.StatusNotFound }

// ClientError reports whether the response was a 4xx.
func (e *StatusError) ClientError() bool { return e.Code >= 400 && e.Code < 500 }

// CheckStatus classifies a response status under p.
// 2xx codes return nil, codes in p.RetryStatuses return a [RetryableError]
// wrapping a [StatusError], and any other code returns a bare StatusError.
func CheckStatus(code int, status string, p Policy) error {
	if code >= 200 && code < 300 {
		return nil
	}
	err := &StatusError{Code: code, Status: status}
	if p.RetriesStatus(code) {
		return Retryable(err)
	}
	return err
}
