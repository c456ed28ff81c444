package ghrest

import (
	"context"

	"github.com/google/go-github/v67/github"
)

// ListBranches lists the branches of a repository.
func (c *Client) ListBranches(ctx context.Context, owner, repo string, opts *ListBranchesOptions) ([]*BranchData, error) {
	var branches []*github.Branch
	if err := c.get(ctx, repoPath(owner, repo, "branches"), opts, &branches); err != nil {
		return nil, withRepo(wrapError(err, "failed to list branches"), owner, repo)
	}

	result := make([]*BranchData, 0, len(branches))
	for _, b := range branches {
		if b != nil {
			result = append(result, convertBranch(b))
		}
	}

	return result, nil
}

// GetBranch retrieves a single branch.
func (c *Client) GetBranch(ctx context.Context, owner, repo, branch string) (*BranchData, error) {
	var b github.Branch
	if err := c.get(ctx, repoPath(owner, repo, "branches", branch), nil, &b); err != nil {
		err = withRepo(wrapError(err, "failed to get branch"), owner, repo)
		return nil, withBranch(err, branch)
	}
	return convertBranch(&b), nil
}

// RenameBranch renames branch to newName and returns the renamed branch.
// Open pull requests and protection rules follow the rename on the server.
func (c *Client) RenameBranch(ctx context.Context, owner, repo, branch, newName string) (*BranchData, error) {
	if newName == "" {
		return nil, newInvalidInputError("new_name", "branch name cannot be empty")
	}

	var b github.Branch
	req := &Request{
		Method: MethodPost,
		Path:   repoPath(owner, repo, "branches", branch, "rename"),
		Body:   map[string]string{"new_name": newName},
	}
	if _, err := c.do(ctx, req, &b); err != nil {
		err = withRepo(wrapError(err, "failed to rename branch"), owner, repo)
		return nil, withBranch(err, branch)
	}

	return convertBranch(&b), nil
}

func withBranch(err error, branch string) error {
	return wrapContext(err, "branch", branch)
}
