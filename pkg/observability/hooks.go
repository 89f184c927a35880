// Package observability provides hooks for instrumenting API calls and downloads.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Hooks are injected into a client at
// construction time; there is no process-wide registry, so two clients in the
// same process can report to different observers.
//
// # Usage
//
// Embed the no-op implementation and override what you need:
//
//	type progressHooks struct{ observability.NoopHooks }
//
//	func (progressHooks) OnDownloadComplete(ctx context.Context, url, dest string, n int64, d time.Duration, err error) {
//	    fmt.Println("wrote", dest)
//	}
//
//	client := semanticscholar.NewClient(semanticscholar.WithHooks(progressHooks{}))
package observability

import (
	"context"
	"time"
)

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request attempt.
	OnRequest(ctx context.Context, method, host, path string, attempt int)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// Download Hooks
// =============================================================================

// DownloadHooks receives events from file downloads.
type DownloadHooks interface {
	// OnDownloadStart records the start of a file download. size is -1 when
	// the server did not announce a length.
	OnDownloadStart(ctx context.Context, url, dest string, size int64)

	// OnDownloadProgress is called after each chunk written to disk.
	OnDownloadProgress(ctx context.Context, dest string, written int64)

	// OnDownloadComplete records the end of a download, successful or not.
	OnDownloadComplete(ctx context.Context, url, dest string, written int64, duration time.Duration, err error)
}

// Hooks bundles every event category a client emits.
type Hooks interface {
	HTTPHooks
	DownloadHooks
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string, int)                 {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// NoopDownloadHooks is a no-op implementation of DownloadHooks.
type NoopDownloadHooks struct{}

func (NoopDownloadHooks) OnDownloadStart(context.Context, string, string, int64) {}
func (NoopDownloadHooks) OnDownloadProgress(context.Context, string, int64)      {}
func (NoopDownloadHooks) OnDownloadComplete(context.Context, string, string, int64, time.Duration, error) {
}

// NoopHooks is a no-op implementation of Hooks.
type NoopHooks struct {
	NoopHTTPHooks
	NoopDownloadHooks
}

// OrNoop returns h, or [NoopHooks] when h is nil.
func OrNoop(h Hooks) Hooks {
	if h == nil {
		return NoopHooks{}
	}
	return h
}
