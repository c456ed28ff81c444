package ghrest

import (
	"context"
	"strconv"

	"github.com/google/go-github/v67/github"
)

// ListPullRequests lists pull requests in a repository. Only open pull
// requests are returned unless opts.State says otherwise.
func (c *Client) ListPullRequests(ctx context.Context, owner, repo string, opts *ListPullRequestsOptions) ([]*PullRequestData, error) {
	var prs []*github.PullRequest
	if err := c.get(ctx, repoPath(owner, repo, "pulls"), opts, &prs); err != nil {
		return nil, withRepo(wrapError(err, "failed to list pull requests"), owner, repo)
	}

	result := make([]*PullRequestData, 0, len(prs))
	for _, pr := range prs {
		if pr != nil {
			result = append(result, convertPullRequest(pr))
		}
	}

	return result, nil
}

// GetPullRequest retrieves a pull request by number.
func (c *Client) GetPullRequest(ctx context.Context, owner, repo string, number int) (*PullRequestData, error) {
	if number <= 0 {
		return nil, newInvalidInputError("number", "pull request number must be positive")
	}

	var pr github.PullRequest
	if err := c.get(ctx, repoPath(owner, repo, "pulls", strconv.Itoa(number)), nil, &pr); err != nil {
		err = withRepo(wrapError(err, "failed to get pull request"), owner, repo)
		return nil, wrapContext(err, "number", number)
	}

	return convertPullRequest(&pr), nil
}
