package sgd

import (
	"net/http"
	"time"

	"github.com/genomekit/sgd/internal/transport"
	"github.com/genomekit/sgd/pkg/constants"
)

// Option configures an entity at construction time. Options are applied
// once; the resulting entity is immutable.
type Option func(*options)

// options holds the passthrough request configuration shared by every
// endpoint access of an entity.
type options struct {
	root       string
	timeout    time.Duration
	httpClient *http.Client
	headers    http.Header
}

// defaults returns the default options.
func defaults() *options {
	return &options{
		root:    constants.DefaultBaseURL,
		timeout: constants.DefaultHTTPTimeout,
		headers: http.Header{},
	}
}

// apply applies the given options and returns the receiver.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// transport builds the transport client for these options.
func (o *options) transport() *transport.Client {
	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}
	return transport.New(httpClient, o.headers)
}

// WithBaseURL overrides the SGD backend root URL. Useful for pointing the
// client at a mirror or a test server.
func WithBaseURL(root string) Option {
	return func(o *options) {
		o.root = root
	}
}

// WithTimeout configures the timeout for each endpoint request.
// Ignored when a custom HTTP client is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithHTTPClient configures a custom HTTP client for all requests.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithHeader adds a header sent verbatim with every request.
func WithHeader(key, value string) Option {
	return func(o *options) {
		o.headers.Add(key, value)
	}
}

// WithUserAgent sets the User-Agent header for all requests.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.headers.Set("User-Agent", userAgent)
	}
}
