package httputil

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

var errTransient = errors.New("transient")

func fastPolicy() Policy {
	p := DefaultPolicy()
	p.BaseDelay = time.Millisecond
	return p
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	if p.Attempts != 5 {
		t.Errorf("Attempts = %d, want 5", p.Attempts)
	}
	if p.BaseDelay != 300*time.Millisecond {
		t.Errorf("BaseDelay = %v, want 300ms", p.BaseDelay)
	}
	for _, code := range []int{429, 500, 502, 503, 504} {
		if !p.RetriesStatus(code) {
			t.Errorf("RetriesStatus(%d) = false, want true", code)
		}
	}
	for _, code := range []int{400, 401, 403, 404, 501} {
		if p.RetriesStatus(code) {
			t.Errorf("RetriesStatus(%d) = true, want false", code)
		}
	}
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		failures  int
		err       error
		wantCalls int
		wantErr   bool
	}{
		{"success first try", 0, nil, 1, false},
		{"succeeds on fifth", 4, Retryable(errTransient), 5, false},
		{"exhausts attempts", 10, Retryable(errTransient), 5, true},
		{"non-retryable stops", 10, errTransient, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Retry(ctx, fastPolicy(), func() error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			})
			if (err != nil) != tt.wantErr {
				t.Errorf("Retry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestRetryReturnsLastError(t *testing.T) {
	last := Retryable(&StatusError{Code: http.StatusServiceUnavailable})
	err := Retry(context.Background(), fastPolicy(), func() error { return last })

	var se *StatusError
	if !errors.As(err, &se) || se.Code != http.StatusServiceUnavailable {
		t.Errorf("Retry() error = %v, want StatusError 503", err)
	}
}

func TestRetryZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_ = Retry(context.Background(), Policy{}, func() error {
		calls++
		return Retryable(errTransient)
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRetryContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, DefaultPolicy(), func() error {
		return Retryable(errTransient)
	})
	if err != context.Canceled {
		t.Errorf("Retry() error = %v, want context.Canceled", err)
	}
}

func TestRetryableNil(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}
	if IsRetryable(errTransient) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
	if err := Retryable(errTransient); err.Error() != errTransient.Error() {
		t.Errorf("message not preserved: %s", err.Error())
	}
}
