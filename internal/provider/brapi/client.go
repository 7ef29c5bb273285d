package brapi

import (
	"net/http"
)

// defaultBaseURL is the Brapi API host.
const defaultBaseURL = "https://brapi.dev"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=brapi_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Brapi quote API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// httpClient performs the requests.
	httpClient HTTPClient
	// header contains headers to be sent with each request.
	header http.Header
}

// ClientOption is a configuration option for the Brapi client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewClient creates a new Brapi API client. A non-empty apiKey is sent
// as a bearer token on every request.
// https://brapi.dev/docs
func NewClient(apiKey string, options ...ClientOption) (*Client, error) {
	var client = &Client{
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		header:     http.Header{},
	}
	client.header.Set("Accept", "application/json")
	if apiKey != "" {
		client.header.Set("Authorization", "Bearer "+apiKey)
	}
	for _, option := range options {
		option(client)
	}
	return client, nil
}

// Name identifies the provider.
func (c *Client) Name() string { return "Brapi" }
