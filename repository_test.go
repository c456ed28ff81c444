package ghrest_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jmgilman/go/ghrest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	t.Parallel()

	t.Run("accessors before and after get", func(t *testing.T) {
		t.Parallel()

		_, transport := newFakeAPI(t, map[string]reply{"GET repos/octo/hello": ok(repoJSON)})
		client := newTestClient(t, transport)
		repo := client.Repository("octo", "hello")

		assert.Equal(t, "octo", repo.Owner())
		assert.Equal(t, "hello", repo.Name())
		assert.Equal(t, "octo/hello", repo.FullName())
		assert.Empty(t, repo.DefaultBranch())
		assert.Nil(t, repo.Data())

		require.NoError(t, repo.Get(context.Background()))

		assert.Equal(t, "main", repo.DefaultBranch())
		assert.Equal(t, "https://github.com/octo/hello.git", repo.CloneURL())
		assert.False(t, repo.IsPrivate())
		assert.False(t, repo.IsArchived())
		require.NotNil(t, repo.Data())
		assert.Equal(t, int64(12345), repo.Data().ID)
	})

	t.Run("files resolve the default branch", func(t *testing.T) {
		t.Parallel()

		api, transport := newFakeAPI(t, map[string]reply{
			"GET repos/octo/hello":          ok(repoJSON),
			contentsURL + "?ref=main":       ok(dirJSON(fileEntry("a.txt"))),
			contentsURL + "/a.txt?ref=main": ok(fileJSON("a.txt", "a")),
		})
		client := newTestClient(t, transport)
		repo := client.Repository("octo", "hello")

		files, err := repo.Files(context.Background(), "")

		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "GET repos/octo/hello", api.requests()[0])
	})

	t.Run("files on explicit branch skip the lookup", func(t *testing.T) {
		t.Parallel()

		api, transport := newFakeAPI(t, map[string]reply{
			contentsURL + "?ref=dev": ok(`[]`),
		})
		client := newTestClient(t, transport)

		files, err := client.Repository("octo", "hello").Files(context.Background(), "dev")

		require.NoError(t, err)
		assert.Empty(t, files)
		assert.Len(t, api.requests(), 1)
	})

	t.Run("file operations", func(t *testing.T) {
		t.Parallel()

		api, transport := newFakeAPI(t, map[string]reply{
			contentsURL + "/a.txt?ref=main":       ok(fileJSON("a.txt", "a")),
			"PUT repos/octo/hello/contents/a.txt": ok(`{"content":{"path":"a.txt","sha":"s2"},"commit":{"sha":"c"}}`),
			"PUT repos/octo/hello/contents/b.txt": {status: http.StatusCreated, body: `{"content":{"path":"b.txt","sha":"s3"},"commit":{"sha":"d"}}`},
		})
		client := newTestClient(t, transport)
		repo := client.Repository("octo", "hello")
		ctx := context.Background()

		file, err := repo.ReadFile(ctx, "a.txt", "main")
		require.NoError(t, err)
		assert.Equal(t, "a", file.Text)

		updated, err := repo.UpdateFile(ctx, "a.txt", "main", "aa", "update")
		require.NoError(t, err)
		assert.Equal(t, "s2", updated.SHA)

		created, err := repo.CreateFile(ctx, "b.txt", "main", "b", "create")
		require.NoError(t, err)
		assert.Equal(t, "s3", created.SHA)

		assert.Len(t, api.requests(), 4)
	})

	t.Run("filters", func(t *testing.T) {
		t.Parallel()

		since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		_, transport := newFakeAPI(t, map[string]reply{
			"GET repos/octo/hello/pulls?state=open":                                          ok(`[]`),
			"GET repos/octo/hello/pulls?base=main&head=octo%3Afeat&state=closed":             ok(`[]`),
			"GET repos/octo/hello/commits?author=bob&sha=dev&since=2024-05-01T00%3A00%3A00Z": ok(`[]`),
			"GET repos/octo/hello/branches":                                                  ok(`[{"name":"main"}]`),
			collaboratorURL:                                                                  {status: http.StatusNoContent},
		})
		client := newTestClient(t, transport)
		repo := client.Repository("octo", "hello")
		ctx := context.Background()

		_, err := repo.PullRequests(ctx)
		require.NoError(t, err)

		_, err = repo.PullRequests(ctx,
			ghrest.WithPRState(ghrest.StateClosed),
			ghrest.WithHead("octo:feat"),
			ghrest.WithBase("main"),
		)
		require.NoError(t, err)

		_, err = repo.Commits(ctx,
			ghrest.WithCommitBranch("dev"),
			ghrest.WithCommitAuthor("bob"),
			ghrest.WithSince(since),
		)
		require.NoError(t, err)

		branches, err := repo.Branches(ctx)
		require.NoError(t, err)
		assert.Len(t, branches, 1)

		is, err := repo.IsCollaborator(ctx, "bob")
		require.NoError(t, err)
		assert.True(t, is)
	})
}
