package ghrest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/jmgilman/go/errors"
)

// Client provides typed access to the GitHub REST API.
// It serves as the main entry point; each exported method maps to one
// endpoint, except ListAllFiles/WalkFiles and UpdateFile, which compose
// several calls.
//
// Example usage:
//
//	transport, err := rest.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := ghrest.NewClient(transport, "octocat", "ghp_...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	files, err := client.ListAllFiles(ctx, "octocat", "hello-world", "main")
//
// A Client is safe for concurrent use provided its Transport is.
type Client struct {
	transport Transport
	creds     atomic.Pointer[Credentials]
	logger    *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithLogger sets the logger used for request and walk diagnostics.
// The default logger discards everything.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new client that sends requests through transport,
// authenticating as username with token.
func NewClient(transport Transport, username, token string, opts ...ClientOption) (*Client, error) {
	if transport == nil {
		return nil, newInvalidInputError("transport", "transport cannot be nil")
	}

	c := &Client{
		transport: transport,
		logger:    slog.New(slog.DiscardHandler),
	}
	c.creds.Store(&Credentials{Username: username, Token: token})

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Credentials returns the credentials currently applied to requests.
func (c *Client) Credentials() Credentials {
	return *c.creds.Load()
}

// SetUser replaces the username used for subsequent requests.
func (c *Client) SetUser(username string) {
	c.swapCredentials(func(cur Credentials) Credentials {
		return cur.WithUsername(username)
	})
}

// SetToken replaces the token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.swapCredentials(func(cur Credentials) Credentials {
		return cur.WithToken(token)
	})
}

// swapCredentials installs a new credential value derived from the current
// one. Concurrent SetUser and SetToken calls never lose each other's update.
func (c *Client) swapCredentials(update func(Credentials) Credentials) {
	for {
		cur := c.creds.Load()
		next := update(*cur)
		if c.creds.CompareAndSwap(cur, &next) {
			return
		}
	}
}

// Transport returns the underlying Transport.
// This is an escape hatch for endpoints not covered by the Client.
func (c *Client) Transport() Transport {
	return c.transport
}

// do sends req with the current credentials and, when out is non-nil,
// decodes the response body into it.
func (c *Client) do(ctx context.Context, req *Request, out interface{}) (*Response, error) {
	req.Credentials = c.Credentials()

	start := time.Now()
	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		c.logger.DebugContext(ctx, "github request failed",
			"method", req.Method,
			"path", req.Path,
			"status", StatusCode(err),
			"error", err,
		)
		return nil, err
	}

	c.logger.DebugContext(ctx, "github request",
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if out != nil {
		if err := decodeBody(resp, out, strings.ToLower(req.Method), req.Path); err != nil {
			return nil, err
		}
	}

	return resp, nil
}

// decodeBody unmarshals a JSON response body into out. An empty body is a
// decoding failure.
func decodeBody(resp *Response, out interface{}, operation, path string) error {
	if len(resp.Body) == 0 {
		return newDecodeError(nil, operation, path)
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return newDecodeError(err, operation, path)
	}
	return nil
}

// get is a convenience for GET requests with optional query options.
func (c *Client) get(ctx context.Context, path string, opts interface{}, out interface{}) error {
	q, err := encodeQuery(opts)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, &Request{Method: MethodGet, Path: path, Query: q}, out)
	return err
}

// encodeQuery turns an options struct with url tags into query parameters.
// A nil options value yields no parameters.
func encodeQuery(opts interface{}) (url.Values, error) {
	if opts == nil {
		return nil, nil
	}
	q, err := query.Values(opts)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to encode query options")
	}
	if len(q) == 0 {
		return nil, nil
	}
	return q, nil
}

// repoPath builds "repos/{owner}/{repo}" followed by the given segments,
// escaping each one.
func repoPath(owner, repo string, segments ...string) string {
	parts := make([]string, 0, len(segments)+3)
	parts = append(parts, "repos", url.PathEscape(owner), url.PathEscape(repo))
	for _, s := range segments {
		parts = append(parts, url.PathEscape(s))
	}
	return strings.Join(parts, "/")
}

// withRepo attaches owner and repo context to err.
func withRepo(err error, owner, repo string) error {
	if err == nil {
		return nil
	}
	e := errors.WithContext(err, "owner", owner)
	return errors.WithContext(e, "repo", repo)
}

// wrapContext attaches a single key to err, passing nil through.
func wrapContext(err error, key string, value interface{}) error {
	if err == nil {
		return nil
	}
	return errors.WithContext(err, key, value)
}
