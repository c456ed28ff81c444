package ghrest

import (
	"context"
	"net/http"
	"net/url"
	"slices"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/transport.go -pkg mocks . Transport

// Transport performs a single request against the GitHub REST API.
// Implementations include the go-github backed transport in transport/rest
// and the gh CLI backed transport in transport/cli.
//
// Do must apply req.Credentials as HTTP Basic Authentication (or the closest
// equivalent the backend supports) and JSON-encode req.Body when it is
// non-nil.
//
// A 2xx status yields a Response. Any other status yields an error wrapping a
// *RequestError, unless the status is listed in req.Accept, in which case it
// is returned as a Response like a success would be. Transports never retry.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// HTTP methods used by the API bindings.
const (
	MethodGet    = http.MethodGet
	MethodPost   = http.MethodPost
	MethodPut    = http.MethodPut
	MethodPatch  = http.MethodPatch
	MethodDelete = http.MethodDelete
)

// Request describes one REST call.
type Request struct {
	// Method is the HTTP method.
	Method string

	// Path is relative to the API root (e.g. "repos/owner/repo/contents/a.txt")
	// and must already be escaped.
	Path string

	// Query holds optional query string parameters.
	Query url.Values

	// Body is JSON-encoded by the transport. Nil means no body.
	Body interface{}

	// Accept lists non-2xx statuses the caller handles as normal outcomes.
	Accept []int

	// Credentials are applied as Basic Authentication.
	Credentials Credentials
}

// Accepts reports whether status is one the caller asked to receive as a
// response rather than an error.
func (r *Request) Accepts(status int) bool {
	return slices.Contains(r.Accept, status)
}

// URL returns the path joined with the encoded query string.
func (r *Request) URL() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	return r.Path + "?" + r.Query.Encode()
}

// Response is the raw result of a request.
type Response struct {
	// StatusCode is the HTTP status returned by the remote.
	StatusCode int

	// Body is the raw JSON body. Empty for 204 and for accepted error statuses.
	Body []byte
}
