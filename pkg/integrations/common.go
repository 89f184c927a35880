package integrations

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	s2errors "github.com/matzehuels/s2datasets/pkg/errors"
	"github.com/matzehuels/s2datasets/pkg/httputil"
)

// httpTimeout bounds connecting and waiting for the first response byte.
// It does not bound reading the body, so long streamed downloads are fine.
const httpTimeout = 10 * time.Second

// NewHTTPClient creates an HTTP client with the standard connect and
// first-byte timeouts for API requests.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   httpTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   httpTimeout,
			ResponseHeaderTimeout: httpTimeout,
			MaxIdleConnsPerHost:   4,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// validateURL rejects URLs no request could succeed with.
func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return s2errors.Wrap(s2errors.ErrCodeInvalidArgument, err, "invalid url %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return s2errors.New(s2errors.ErrCodeInvalidArgument, "invalid url %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return s2errors.New(s2errors.ErrCodeInvalidArgument, "invalid url %q: missing host", rawURL)
	}
	return nil
}

// connectionError reports whether err from http.Client.Do is a network
// failure worth another attempt. Redirect policy and malformed request
// errors are not.
func connectionError(err error) bool {
	var ue *url.Error
	if errors.As(err, &ue) {
		err = ue.Err
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne)
}

// classify converts a transport failure into a coded error.
// Non-retryable 4xx responses become NOT_FOUND, everything else
// TRANSPORT_ERROR.
func classify(err error, rawURL string) error {
	if err == nil {
		return nil
	}
	var se *httputil.StatusError
	if errors.As(err, &se) && se.ClientError() && !httputil.IsRetryable(err) {
		return s2errors.Wrap(s2errors.ErrCodeNotFound, err, "GET %s", rawURL)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return s2errors.Wrap(s2errors.ErrCodeTransport, err, "GET %s cancelled", rawURL)
	}
	return s2errors.Wrap(s2errors.ErrCodeTransport, err, "GET %s", rawURL)
}
