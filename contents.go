package ghrest

import (
	"context"
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/google/go-github/v67/github"
	"github.com/jmgilman/go/errors"
)

// ListDirectory lists the immediate children of the directory at path on
// branch. An empty path lists the repository root and an empty branch uses
// the repository's default branch.
//
// The contents endpoint answers with an array for directories and an object
// for files; passing a file path yields a decoding error.
func (c *Client) ListDirectory(ctx context.Context, owner, repo, path, branch string) ([]*DirectoryEntry, error) {
	var contents []*github.RepositoryContent
	req := &Request{
		Method: MethodGet,
		Path:   contentsPath(owner, repo, path),
		Query:  refQuery(branch),
	}
	if _, err := c.do(ctx, req, &contents); err != nil {
		return nil, withPath(wrapError(err, "failed to list directory"), owner, repo, path)
	}

	entries := make([]*DirectoryEntry, 0, len(contents))
	for _, rc := range contents {
		if rc == nil {
			continue
		}
		entries = append(entries, convertEntry(rc))
	}

	return entries, nil
}

// GetFile fetches a single file on branch and decodes its content.
// Returns an ErrCodeNotFound error if the file doesn't exist.
func (c *Client) GetFile(ctx context.Context, owner, repo, path, branch string) (*FileContent, error) {
	var rc github.RepositoryContent
	req := &Request{
		Method: MethodGet,
		Path:   contentsPath(owner, repo, path),
		Query:  refQuery(branch),
	}
	if _, err := c.do(ctx, req, &rc); err != nil {
		return nil, withPath(wrapError(err, "failed to get file"), owner, repo, path)
	}

	text, err := decodeContent(&rc)
	if err != nil {
		return nil, withPath(err, owner, repo, path)
	}

	return &FileContent{
		Name: rc.GetName(),
		Path: rc.GetPath(),
		SHA:  rc.GetSHA(),
		Text: text,
		Size: rc.GetSize(),
		URL:  rc.GetURL(),
	}, nil
}

// CreateFile commits a new file at path on branch.
//
// No existence check is made first: if the path already exists the API
// rejects the request (the file's sha is required) and that error is
// returned unchanged.
func (c *Client) CreateFile(ctx context.Context, owner, repo, path, branch, text, message string) (*FileCommitData, error) {
	return c.putFile(ctx, owner, repo, path, branch, text, message, "")
}

// UpdateFile replaces the content of an existing file on branch.
//
// The current file is read first and its SHA is sent with the write. If the
// file changed between the two calls the API rejects the write with a
// conflict, which is returned as is; nothing is retried or merged. Only the
// SHA is taken from the read, so files too large for the API to inline can
// still be replaced.
func (c *Client) UpdateFile(ctx context.Context, owner, repo, path, branch, text, message string) (*FileCommitData, error) {
	sha, err := c.fileSHA(ctx, owner, repo, path, branch)
	if err != nil {
		return nil, wrapError(err, "failed to read file before update")
	}
	return c.putFile(ctx, owner, repo, path, branch, text, message, sha)
}

// fileSHA reads the blob hash of the file at path without decoding its
// content.
func (c *Client) fileSHA(ctx context.Context, owner, repo, path, branch string) (string, error) {
	var rc github.RepositoryContent
	req := &Request{
		Method: MethodGet,
		Path:   contentsPath(owner, repo, path),
		Query:  refQuery(branch),
	}
	if _, err := c.do(ctx, req, &rc); err != nil {
		return "", withPath(wrapError(err, "failed to get file"), owner, repo, path)
	}
	if rc.GetSHA() == "" {
		return "", withRepo(newDecodeError(nil, "file", path), owner, repo)
	}
	return rc.GetSHA(), nil
}

// putFile issues the create-or-update call. An empty sha creates the file.
func (c *Client) putFile(ctx context.Context, owner, repo, path, branch, text, message, sha string) (*FileCommitData, error) {
	if strings.Trim(path, "/") == "" {
		return nil, newInvalidInputError("path", "file path cannot be empty")
	}

	// Content is a []byte, which encoding/json writes as standard base64.
	body := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: []byte(text),
	}
	if branch != "" {
		body.Branch = github.String(branch)
	}
	if sha != "" {
		body.SHA = github.String(sha)
	}

	var out github.RepositoryContentResponse
	req := &Request{
		Method: MethodPut,
		Path:   contentsPath(owner, repo, path),
		Body:   body,
	}
	if _, err := c.do(ctx, req, &out); err != nil {
		msg := "failed to create file"
		if sha != "" {
			msg = "failed to update file"
		}
		return nil, withPath(wrapError(err, msg), owner, repo, path)
	}

	return convertFileCommit(&out), nil
}

// decodeContent returns the text of a file response. The API wraps base64
// content at 60 columns; the standard decoder skips the line breaks.
func decodeContent(rc *github.RepositoryContent) (string, error) {
	if rc.Content == nil {
		return "", errors.New(errors.CodeInvalidInput, "file response has no content")
	}

	switch encoding := rc.GetEncoding(); encoding {
	case "base64":
		b, err := base64.StdEncoding.DecodeString(*rc.Content)
		if err != nil {
			return "", errors.Wrap(err, errors.CodeInvalidInput, "failed to decode file content")
		}
		return string(b), nil
	case "":
		return *rc.Content, nil
	default:
		err := errors.New(errors.CodeInvalidInput, "unsupported content encoding: "+encoding)
		return "", errors.WithContext(err, "encoding", encoding)
	}
}

// contentsPath builds the contents endpoint for path, escaping each segment
// but keeping the slashes.
func contentsPath(owner, repo, path string) string {
	base := repoPath(owner, repo, "contents")
	path = strings.Trim(path, "/")
	if path == "" {
		return base
	}

	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return base + "/" + strings.Join(segments, "/")
}

func refQuery(branch string) url.Values {
	if branch == "" {
		return nil
	}
	return url.Values{"ref": {branch}}
}

func withPath(err error, owner, repo, path string) error {
	return wrapContext(withRepo(err, owner, repo), "path", path)
}
