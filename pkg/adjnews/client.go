// Package adjnews is a typed client for the Adjacent News prediction-market
// data API. It authenticates every request with a bearer token resolved once
// at construction and returns decoded JSON payloads without interpreting
// their shape.
package adjnews

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/adjacent-hq/adjnews-go/pkg/httpclient"
	"go.uber.org/zap"
)

const (
	// BaseURL is the fixed host of the Adjacent News data API.
	BaseURL = "https://api.data.adj.news"

	// EnvAPIKey is the environment variable consulted when no explicit
	// API key option is given.
	EnvAPIKey = "ADJ_NEWS_API_KEY"
)

// Client exposes the Adjacent News data API operations.
//
// A Client is safe for concurrent use: the credential and session headers are
// immutable after construction and the default transport is itself safe for
// concurrent GETs. Every call is an independent, synchronous round-trip.
type Client struct {
	session *session
}

type options struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	http    httpclient.Client
	log     *zap.SugaredLogger
}

// Option customizes client construction.
type Option func(*options)

// WithAPIKey sets the bearer credential explicitly, taking precedence over
// the EnvAPIKey environment variable.
func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = key }
}

// WithBaseURL points the client at a different host, e.g. a test server.
// Endpoint paths are fixed and not affected.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithTimeout bounds each request round-trip. Defaults to
// httpclient.DefaultTimeout. Ignored when WithHTTPClient is also given.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithHTTPClient injects a custom transport, e.g. a mock in tests.
func WithHTTPClient(client httpclient.Client) Option {
	return func(o *options) { o.http = client }
}

// WithLogger attaches a logger for per-request debug lines. Defaults to a
// no-op logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *options) { o.log = log }
}

// New builds a client. The credential is resolved exactly once, here: the
// WithAPIKey option first, then the EnvAPIKey environment variable. When
// neither yields a non-empty value New fails with a *ConfigError rather than
// deferring the failure to the first request. No network I/O happens here.
func New(opts ...Option) (*Client, error) {
	o := options{baseURL: BaseURL, timeout: httpclient.DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	key := strings.TrimSpace(o.apiKey)
	if key == "" {
		key = strings.TrimSpace(os.Getenv(EnvAPIKey))
	}
	if key == "" {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("credential not found: pass WithAPIKey or set %s", EnvAPIKey),
		}
	}

	if o.http == nil {
		o.http = httpclient.NewRestyClient(o.timeout)
	}
	if o.log == nil {
		o.log = zap.NewNop().Sugar()
	}

	return &Client{session: newSession(key, o.baseURL, o.http, o.log)}, nil
}
