package ghrest_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/jmgilman/go/ghrest"
	"github.com/jmgilman/go/ghrest/mocks"
	"github.com/stretchr/testify/require"
)

// reply is a canned answer of the fake API.
type reply struct {
	status int
	body   string
}

func ok(body string) reply {
	return reply{status: http.StatusOK, body: body}
}

func status(code int) reply {
	return reply{status: code, body: fmt.Sprintf(`{"message":"%s"}`, http.StatusText(code))}
}

// fakeAPI answers requests keyed by "METHOD path?query" and records the
// order in which they arrived.
type fakeAPI struct {
	t       *testing.T
	mu      sync.Mutex
	replies map[string]reply
	seen    []string
}

func newFakeAPI(t *testing.T, replies map[string]reply) (*fakeAPI, *mocks.TransportMock) {
	t.Helper()

	api := &fakeAPI{t: t, replies: replies}
	transport := &mocks.TransportMock{
		DoFunc: func(_ context.Context, req *ghrest.Request) (*ghrest.Response, error) {
			return api.do(req)
		},
	}
	return api, transport
}

func (f *fakeAPI) do(req *ghrest.Request) (*ghrest.Response, error) {
	key := req.Method + " " + req.URL()

	f.mu.Lock()
	f.seen = append(f.seen, key)
	r, found := f.replies[key]
	f.mu.Unlock()

	if !found {
		f.t.Errorf("unexpected request: %s", key)
		return nil, ghrest.NewRequestError(http.StatusNotFound, "Not Found", "", req)
	}

	if r.status >= 300 {
		if req.Accepts(r.status) {
			return &ghrest.Response{StatusCode: r.status}, nil
		}
		return nil, ghrest.NewRequestError(r.status, http.StatusText(r.status), r.body, req)
	}

	return &ghrest.Response{StatusCode: r.status, Body: []byte(r.body)}, nil
}

func (f *fakeAPI) requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.seen...)
}

func newTestClient(t *testing.T, transport ghrest.Transport, opts ...ghrest.ClientOption) *ghrest.Client {
	t.Helper()

	client, err := ghrest.NewClient(transport, "octo", "secret", opts...)
	require.NoError(t, err)
	return client
}

// dirJSON renders a directory listing.
func dirJSON(entries ...map[string]interface{}) string {
	if entries == nil {
		entries = []map[string]interface{}{}
	}
	b, _ := json.Marshal(entries)
	return string(b)
}

func fileEntry(path string) map[string]interface{} {
	return map[string]interface{}{"type": "file", "name": baseName(path), "path": path, "sha": "sha-" + path}
}

func dirEntry(path string) map[string]interface{} {
	return map[string]interface{}{"type": "dir", "name": baseName(path), "path": path, "sha": "tree-" + path}
}

// fileJSON renders a file object with base64 content.
func fileJSON(path, text string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"type":     "file",
		"name":     baseName(path),
		"path":     path,
		"sha":      "sha-" + path,
		"size":     len(text),
		"encoding": "base64",
		"content":  base64.StdEncoding.EncodeToString([]byte(text)),
		"url":      "https://api.github.com/repos/octo/hello/contents/" + path,
	})
	return string(b)
}

func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}

// bodyOf re-encodes a request body so tests can inspect it as the server
// would see it.
func bodyOf(t *testing.T, req *ghrest.Request) map[string]interface{} {
	t.Helper()

	raw, err := json.Marshal(req.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
