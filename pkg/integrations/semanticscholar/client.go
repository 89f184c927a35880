package semanticscholar

import (
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/s2datasets/pkg/buildinfo"
	"github.com/matzehuels/s2datasets/pkg/httputil"
	"github.com/matzehuels/s2datasets/pkg/integrations"
	"github.com/matzehuels/s2datasets/pkg/observability"
)

const (
	// DefaultBaseURL is the root of the Semantic Scholar Datasets API.
	DefaultBaseURL = "https://api.semanticscholar.org/datasets/v1"

	// APIKeyHeader carries the credential on authenticated requests.
	APIKeyHeader = "x-api-key"

	// LatestRelease names the most recent release.
	LatestRelease = "latest"

	// chunkSize bounds the buffer used when streaming a file to disk.
	chunkSize = 64 << 10
)

// Client provides access to the Semantic Scholar Datasets API.
// It resolves release and diff manifests and streams the listed files to disk.
//
// A Client owns one HTTP transport for its lifetime; call [Client.Close]
// when done. Methods are meant for sequential use. Callers that need
// parallel downloads should create independent clients.
type Client struct {
	*integrations.Client
	baseURL   string
	apiKey    string
	outputDir string
	logger    *log.Logger
	hooks     observability.Hooks
}

// Option configures a [Client].
type Option func(*options)

type options struct {
	apiKey     string
	baseURL    string
	outputDir  string
	logger     *log.Logger
	hooks      observability.Hooks
	policy     *httputil.Policy
	httpClient *http.Client
}

// WithAPIKey sets the credential sent in the x-api-key header.
// Without one, [Client.ResolveRelease] and [Client.ResolveDiff] (and the
// downloads built on them) fail with AUTH_REQUIRED.
func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = strings.TrimSpace(key) }
}

// WithBaseURL overrides [DefaultBaseURL]. Trailing slashes are ignored.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithOutputDir sets the directory relative download destinations are
// resolved against. The default is the working directory.
func WithOutputDir(dir string) Option {
	return func(o *options) { o.outputDir = dir }
}

// WithLogger injects a logger. Without one the client logs nothing.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithHooks injects an observer for request and download events.
func WithHooks(h observability.Hooks) Option {
	return func(o *options) { o.hooks = h }
}

// WithPolicy overrides the per-request retry policy.
func WithPolicy(p httputil.Policy) Option {
	return func(o *options) { o.policy = &p }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// NewClient creates a Datasets API client.
//
// The zero configuration talks to [DefaultBaseURL] without a credential,
// which is enough for [Client.ListReleases] and [Client.DescribeRelease].
func NewClient(opts ...Option) *Client {
	o := options{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	o.hooks = observability.OrNoop(o.hooks)

	headers := map[string]string{"User-Agent": buildinfo.UserAgent()}
	if o.apiKey != "" {
		headers[APIKeyHeader] = o.apiKey
	}

	return &Client{
		Client: integrations.NewClient(integrations.Options{
			Headers:    headers,
			Policy:     o.policy,
			Hooks:      o.hooks,
			Logger:     o.logger,
			HTTPClient: o.httpClient,
		}),
		baseURL:   strings.TrimRight(o.baseURL, "/"),
		apiKey:    o.apiKey,
		outputDir: o.outputDir,
		logger:    o.logger,
		hooks:     o.hooks,
	}
}

// HasAPIKey reports whether a credential was configured.
func (c *Client) HasAPIKey() bool { return c.apiKey != "" }

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// OutputDir returns the directory relative destinations resolve against.
func (c *Client) OutputDir() string { return c.outputDir }
