// Package transport provides the HTTP layer for the sgd client.
// Every entity endpoint access goes through a single blocking GET; the
// response is handed back to the caller exactly as received.
package transport

import (
	"context"
	"net/http"

	"github.com/genomekit/sgd/pkg/errors"
)

// Client provides HTTP client functionality with passthrough request options.
type Client struct {
	http    *http.Client
	headers http.Header
}

// New creates a new transport client. Custom headers are applied verbatim
// to every outgoing request.
func New(httpClient *http.Client, headers http.Header) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http:    httpClient,
		headers: headers,
	}
}

// Get performs a GET request against the given URL.
// Transport failures are returned as the underlying client produced them;
// non-2xx responses are not intercepted.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	return c.Do(req)
}

// Do performs an HTTP request with the configured passthrough headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")

	// Caller-supplied headers win over defaults.
	for key, values := range c.headers {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	return c.http.Do(req)
}
