package httputil

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"
)

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (connection errors, retryable status codes) with
// this type so that [Retry] knows to attempt the operation again.
type RetryableError struct{ Err error }

// Retryable wraps err as a [RetryableError]. It returns nil for a nil err.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is wrapped with [RetryableError].
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// Policy describes how a single HTTP request is retried.
type Policy struct {
	// Attempts is the total number of tries, including the first one.
	Attempts int

	// BaseDelay is the wait after the first failed attempt. It doubles
	// after each further failure.
	BaseDelay time.Duration

	// RetryStatuses lists the response codes worth another attempt.
	// Any other non-2xx code fails immediately.
	RetryStatuses []int
}

// DefaultPolicy returns the standard request policy: 5 attempts, 300ms base
// delay doubling each retry, retrying on 429, 500, 502, 503 and 504.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:  5,
		BaseDelay: 300 * time.Millisecond,
		RetryStatuses: []int{
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
	}
}

// RetriesStatus reports whether code is in the policy's retryable set.
func (p Policy) RetriesStatus(code int) bool {
	return slices.Contains(p.RetryStatuses, code)
}

// Retry executes fn up to p.Attempts times with exponential backoff.
// It only retries errors wrapped with [RetryableError]; other errors are
// returned immediately. Returns the last error if all attempts fail, or
// ctx.Err() if cancelled while waiting.
func Retry(ctx context.Context, p Policy, fn func() error) error {
	attempts := max(p.Attempts, 1)
	delay := p.BaseDelay
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
