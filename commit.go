package ghrest

import (
	"context"

	"github.com/google/go-github/v67/github"
)

// ListCommits lists commits in reverse chronological order. Set opts.SHA to
// list a branch other than the default one.
func (c *Client) ListCommits(ctx context.Context, owner, repo string, opts *ListCommitsOptions) ([]*CommitData, error) {
	var commits []*github.RepositoryCommit
	if err := c.get(ctx, repoPath(owner, repo, "commits"), opts, &commits); err != nil {
		return nil, withRepo(wrapError(err, "failed to list commits"), owner, repo)
	}

	result := make([]*CommitData, 0, len(commits))
	for _, commit := range commits {
		if commit != nil {
			result = append(result, convertCommit(commit))
		}
	}

	return result, nil
}

// GetCommit retrieves a single commit, including its changed files. ref may
// be a SHA, branch or tag name. opts pages through the file list of large
// commits and may be nil.
func (c *Client) GetCommit(ctx context.Context, owner, repo, ref string, opts *ListOptions) (*CommitData, error) {
	if ref == "" {
		return nil, newInvalidInputError("ref", "commit reference cannot be empty")
	}

	var commit github.RepositoryCommit
	if err := c.get(ctx, repoPath(owner, repo, "commits", ref), opts, &commit); err != nil {
		err = withRepo(wrapError(err, "failed to get commit"), owner, repo)
		return nil, wrapContext(err, "ref", ref)
	}

	return convertCommit(&commit), nil
}
