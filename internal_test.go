package ghrest

import (
	"testing"

	"github.com/google/go-github/v67/github"
	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingPaths(t *testing.T) {
	t.Parallel()

	q := &pendingPaths{}
	_, ok := q.pop()
	assert.False(t, ok)

	q.push("")
	q.push("a")
	first, ok := q.pop()
	require.True(t, ok)
	assert.Equal(t, "", first)

	q.push("b")
	q.push("a/c")

	var order []string
	for {
		p, ok := q.pop()
		if !ok {
			break
		}
		order = append(order, p)
	}
	assert.Equal(t, []string{"a", "b", "a/c"}, order)
}

func TestDecodeContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  *github.RepositoryContent
		want     string
		wantCode errors.ErrorCode
	}{
		{
			name:    "base64 with line breaks",
			content: &github.RepositoryContent{Encoding: github.String("base64"), Content: github.String("aGVs\nbG8g\r\nd29y\nbGQ=\n")},
			want:    "hello world",
		},
		{
			name:    "no encoding is raw text",
			content: &github.RepositoryContent{Content: github.String("plain")},
			want:    "plain",
		},
		{
			name:    "empty file",
			content: &github.RepositoryContent{Encoding: github.String("base64"), Content: github.String("")},
			want:    "",
		},
		{
			name:     "missing content",
			content:  &github.RepositoryContent{Encoding: github.String("base64")},
			wantCode: errors.CodeInvalidInput,
		},
		{
			name:     "bad base64",
			content:  &github.RepositoryContent{Encoding: github.String("base64"), Content: github.String("a$b")},
			wantCode: errors.CodeInvalidInput,
		},
		{
			name:     "large file marker",
			content:  &github.RepositoryContent{Encoding: github.String("none"), Content: github.String("")},
			wantCode: errors.CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := decodeContent(tt.content)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContentsPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "", want: "repos/o/r/contents"},
		{path: "/", want: "repos/o/r/contents"},
		{path: "README.md", want: "repos/o/r/contents/README.md"},
		{path: "src/pkg/a.go", want: "repos/o/r/contents/src/pkg/a.go"},
		{path: "/docs/", want: "repos/o/r/contents/docs"},
		{path: "a b/c#d", want: "repos/o/r/contents/a%20b/c%23d"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, contentsPath("o", "r", tt.path))
		})
	}
}

func TestEncodeQuery(t *testing.T) {
	t.Parallel()

	q, err := encodeQuery(nil)
	require.NoError(t, err)
	assert.Nil(t, q)

	var opts *ListCommitsOptions
	q, err = encodeQuery(opts)
	require.NoError(t, err)
	assert.Nil(t, q)

	q, err = encodeQuery(&ListPullRequestsOptions{State: StateOpen, ListOptions: ListOptions{PerPage: 100}})
	require.NoError(t, err)
	assert.Equal(t, "per_page=100&state=open", q.Encode())
}
