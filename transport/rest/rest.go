// Package rest provides a ghrest.Transport that talks to the GitHub REST API
// over HTTP using the go-github SDK.
//
// go-github builds each request (API version headers, user agent, JSON body)
// and classifies the response; this package adds per-request Basic
// Authentication and maps the outcome onto the ghrest.Transport contract.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/go-github/v67/github"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/ghrest"
)

// Transport implements ghrest.Transport using the go-github SDK.
type Transport struct {
	client *github.Client
}

// New creates a transport for api.github.com, or for the server selected
// with WithBaseURL.
//
// Example with a custom HTTP client:
//
//	httpClient := &http.Client{Timeout: 30 * time.Second}
//	transport, err := rest.New(rest.WithHTTPClient(httpClient))
//
// Example for GitHub Enterprise:
//
//	transport, err := rest.New(rest.WithBaseURL("https://github.example.com/api/v3/"))
func New(opts ...Option) (*Transport, error) {
	cfg := &config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	client := cfg.client
	if client == nil {
		client = github.NewClient(cfg.httpClient)
	}

	if cfg.baseURL != "" {
		baseURL, err := client.BaseURL.Parse(ensureTrailingSlash(cfg.baseURL))
		if err != nil {
			err = errors.Wrap(err, errors.CodeInvalidInput, "invalid base URL")
			return nil, errors.WithContext(err, "field", "base_url")
		}
		client.BaseURL = baseURL
	}

	return &Transport{client: client}, nil
}

// config holds configuration for Transport.
type config struct {
	client     *github.Client
	httpClient *http.Client
	baseURL    string
}

// Option configures the REST transport.
type Option func(*config) error

// WithClient sets a preconfigured go-github client. Any authentication it
// carries is overridden per request when the ghrest client has credentials.
func WithClient(client *github.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "client cannot be nil")
			return errors.WithContext(err, "field", "client")
		}
		cfg.client = client
		return nil
	}
}

// WithHTTPClient sets the HTTP client used to build the go-github client.
// It is ignored when WithClient is also given.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *config) error {
		if httpClient == nil {
			err := errors.New(errors.CodeInvalidInput, "http client cannot be nil")
			return errors.WithContext(err, "field", "http_client")
		}
		cfg.httpClient = httpClient
		return nil
	}
}

// WithBaseURL points the transport at another API root, such as a GitHub
// Enterprise server or a test server.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) error {
		if baseURL == "" {
			err := errors.New(errors.CodeInvalidInput, "base URL cannot be empty")
			return errors.WithContext(err, "field", "base_url")
		}
		cfg.baseURL = baseURL
		return nil
	}
}

// Client returns the underlying go-github client.
// This is an escape hatch for API areas ghrest doesn't cover.
func (t *Transport) Client() *github.Client {
	return t.client
}

// Do implements ghrest.Transport.
func (t *Transport) Do(ctx context.Context, req *ghrest.Request) (*ghrest.Response, error) {
	httpReq, err := t.client.NewRequest(req.Method, req.URL(), req.Body)
	if err != nil {
		err = errors.Wrap(err, errors.CodeInvalidInput, "failed to build request")
		return nil, errors.WithContext(err, "path", req.Path)
	}

	if !req.Credentials.IsZero() {
		httpReq.SetBasicAuth(req.Credentials.Username, req.Credentials.Token)
	}

	var body bytes.Buffer
	resp, err := t.client.Do(ctx, httpReq, &body)
	if err != nil {
		return t.handleError(err, resp, req)
	}

	return &ghrest.Response{
		StatusCode: resp.StatusCode,
		Body:       body.Bytes(),
	}, nil
}

// handleError maps a go-github failure onto the transport contract.
func (t *Transport) handleError(err error, resp *github.Response, req *ghrest.Request) (*ghrest.Response, error) {
	// go-github reports 202 as an error, with the body attached.
	var accepted *github.AcceptedError
	if errors.As(err, &accepted) {
		return &ghrest.Response{
			StatusCode: http.StatusAccepted,
			Body:       accepted.Raw,
		}, nil
	}

	statusCode := 0
	if resp != nil && resp.Response != nil {
		statusCode = resp.StatusCode
	}

	message := ""
	var ghErr *github.ErrorResponse
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	switch {
	case errors.As(err, &ghErr):
		if ghErr.Response != nil {
			statusCode = ghErr.Response.StatusCode
		}
		message = ghErr.Message
	case errors.As(err, &rateErr):
		if rateErr.Response != nil {
			statusCode = rateErr.Response.StatusCode
		}
		message = rateErr.Message
	case errors.As(err, &abuseErr):
		if abuseErr.Response != nil {
			statusCode = abuseErr.Response.StatusCode
		}
		message = abuseErr.Message
	}

	if statusCode == 0 {
		err = errors.Wrap(err, errors.CodeNetwork, "github request failed")
		return nil, errors.WithContext(err, "path", req.Path)
	}

	if req.Accepts(statusCode) {
		return &ghrest.Response{StatusCode: statusCode}, nil
	}

	return nil, ghrest.NewRequestError(statusCode, message, errorBody(ghErr), req)
}

// errorBody re-encodes the remote error document, which go-github has
// already consumed.
func errorBody(ghErr *github.ErrorResponse) string {
	if ghErr == nil {
		return ""
	}
	b, err := json.Marshal(ghErr)
	if err != nil {
		return ""
	}
	return string(b)
}

func ensureTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
