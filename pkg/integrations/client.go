package integrations

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	s2errors "github.com/matzehuels/s2datasets/pkg/errors"
	"github.com/matzehuels/s2datasets/pkg/httputil"
	"github.com/matzehuels/s2datasets/pkg/observability"
)

// Options configures a [Client]. The zero value is usable.
type Options struct {
	Headers    map[string]string       // Applied to every request (nil for none)
	Policy     *httputil.Policy        // Retry policy (nil for httputil.DefaultPolicy)
	Hooks      observability.HTTPHooks // Request events (nil for no-op)
	Logger     *log.Logger             // Debug output (nil discards)
	HTTPClient *http.Client            // Underlying client (nil for NewHTTPClient)
}

// Client provides shared HTTP functionality for API clients.
// It handles retry logic, common request headers and error classification.
//
// The underlying transport is created once and held for the client's
// lifetime; call [Client.Close] to release idle connections. A Client is
// meant for sequential use.
type Client struct {
	http    *http.Client
	headers map[string]string
	policy  httputil.Policy
	hooks   observability.HTTPHooks
	logger  *log.Logger
}

// NewClient creates a Client from opts.
func NewClient(opts Options) *Client {
	c := &Client{
		http:    opts.HTTPClient,
		headers: opts.Headers,
		policy:  httputil.DefaultPolicy(),
		hooks:   opts.Hooks,
		logger:  opts.Logger,
	}
	if c.http == nil {
		c.http = NewHTTPClient()
	}
	if opts.Policy != nil {
		c.policy = *opts.Policy
	}
	if c.hooks == nil {
		c.hooks = observability.NoopHTTPHooks{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// Policy returns the retry policy applied to each request.
func (c *Client) Policy() httputil.Policy { return c.policy }

// Close releases idle connections held by the transport.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// GetJSON performs an HTTP GET and JSON-decodes the response into v.
// Request-specific headers override client defaults for the same key.
//
// Returns [s2errors.ErrCodeInvalidArgument] for a URL that is not absolute
// http or https, [s2errors.ErrCodeNotFound] for a non-retryable 4xx
// response and [s2errors.ErrCodeTransport] for any other failure once the
// retry policy is exhausted.
func (c *Client) GetJSON(ctx context.Context, rawURL string, headers map[string]string, v any) error {
	resp, err := c.Open(ctx, rawURL, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return s2errors.Wrap(s2errors.ErrCodeTransport, err, "decode response from %s", rawURL)
	}
	return nil
}

// Open performs an HTTP GET and returns the response with its body unread,
// for streaming. The caller must close resp.Body. Errors are classified as
// in [Client.GetJSON].
func (c *Client) Open(ctx context.Context, rawURL string, headers map[string]string) (*http.Response, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}
	resp, err := c.doRequest(ctx, rawURL, headers)
	if err != nil {
		return nil, classify(err, rawURL)
	}
	return resp, nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string, headers map[string]string) (*http.Response, error) {
	var resp *http.Response
	attempt := 0

	err := httputil.Retry(ctx, c.policy, func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return err
		}
		for k, v := range c.headers {
			req.Header.Set(k, v)
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		c.hooks.OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path, attempt)
		start := time.Now()
		r, err := c.http.Do(req)
		if err != nil {
			c.hooks.OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Debug("request failed", "url", rawURL, "attempt", attempt, "err", err)
			if !connectionError(err) {
				return err
			}
			return httputil.Retryable(err)
		}
		c.hooks.OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, r.StatusCode, time.Since(start))

		if err := httputil.CheckStatus(r.StatusCode, r.Status, c.policy); err != nil {
			_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, 4<<10))
			r.Body.Close()
			c.logger.Debug("unexpected status", "url", rawURL, "attempt", attempt, "status", r.StatusCode)
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
