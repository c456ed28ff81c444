package ghrest

import (
	"context"
	"net/url"

	"github.com/google/go-github/v67/github"
)

// CreateRepository creates a repository owned by the authenticated user, or
// by opts.Org when set.
func (c *Client) CreateRepository(ctx context.Context, opts CreateRepositoryOptions) (*RepositoryData, error) {
	if opts.Name == "" {
		return nil, newInvalidInputError("name", "repository name cannot be empty")
	}

	body := &github.Repository{
		Name:     github.String(opts.Name),
		Private:  github.Bool(opts.Private),
		AutoInit: github.Bool(opts.AutoInit),
	}
	if opts.Description != "" {
		body.Description = github.String(opts.Description)
	}
	if opts.Homepage != "" {
		body.Homepage = github.String(opts.Homepage)
	}
	if opts.GitignoreTemplate != "" {
		body.GitignoreTemplate = github.String(opts.GitignoreTemplate)
	}
	if opts.LicenseTemplate != "" {
		body.LicenseTemplate = github.String(opts.LicenseTemplate)
	}

	path := "user/repos"
	if opts.Org != "" {
		path = "orgs/" + url.PathEscape(opts.Org) + "/repos"
	}

	var repo github.Repository
	if _, err := c.do(ctx, &Request{Method: MethodPost, Path: path, Body: body}, &repo); err != nil {
		return nil, wrapError(err, "failed to create repository")
	}

	return convertRepository(&repo), nil
}

// GetRepository retrieves repository information.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*RepositoryData, error) {
	var r github.Repository
	if err := c.get(ctx, repoPath(owner, repo), nil, &r); err != nil {
		return nil, withRepo(wrapError(err, "failed to get repository"), owner, repo)
	}
	return convertRepository(&r), nil
}

// UpdateRepository edits repository settings. Only the non-nil fields of
// opts are sent.
func (c *Client) UpdateRepository(ctx context.Context, owner, repo string, opts UpdateRepositoryOptions) (*RepositoryData, error) {
	body := &github.Repository{
		Name:          opts.Name,
		Description:   opts.Description,
		Homepage:      opts.Homepage,
		Private:       opts.Private,
		Archived:      opts.Archived,
		DefaultBranch: opts.DefaultBranch,
		HasIssues:     opts.HasIssues,
		HasWiki:       opts.HasWiki,
	}

	var r github.Repository
	req := &Request{Method: MethodPatch, Path: repoPath(owner, repo), Body: body}
	if _, err := c.do(ctx, req, &r); err != nil {
		return nil, withRepo(wrapError(err, "failed to update repository"), owner, repo)
	}

	return convertRepository(&r), nil
}

// DeleteRepository deletes a repository. The token needs the delete_repo
// scope.
func (c *Client) DeleteRepository(ctx context.Context, owner, repo string) error {
	if _, err := c.do(ctx, &Request{Method: MethodDelete, Path: repoPath(owner, repo)}, nil); err != nil {
		return withRepo(wrapError(err, "failed to delete repository"), owner, repo)
	}
	return nil
}

// ListRepositories lists repositories the authenticated user can access.
func (c *Client) ListRepositories(ctx context.Context, opts *ListRepositoriesOptions) ([]*RepositoryData, error) {
	var repos []*github.Repository
	if err := c.get(ctx, "user/repos", opts, &repos); err != nil {
		return nil, wrapError(err, "failed to list repositories")
	}

	result := make([]*RepositoryData, 0, len(repos))
	for _, r := range repos {
		if r != nil {
			result = append(result, convertRepository(r))
		}
	}

	return result, nil
}

// ListContributors lists contributors to a repository, most active first.
func (c *Client) ListContributors(ctx context.Context, owner, repo string, opts *ListContributorsOptions) ([]*ContributorData, error) {
	var contributors []*github.Contributor
	if err := c.get(ctx, repoPath(owner, repo, "contributors"), opts, &contributors); err != nil {
		return nil, withRepo(wrapError(err, "failed to list contributors"), owner, repo)
	}

	result := make([]*ContributorData, 0, len(contributors))
	for _, contributor := range contributors {
		if contributor != nil {
			result = append(result, convertContributor(contributor))
		}
	}

	return result, nil
}

// ListLanguages returns the languages used in a repository, keyed by name,
// with the number of bytes written in each.
func (c *Client) ListLanguages(ctx context.Context, owner, repo string) (map[string]int, error) {
	languages := map[string]int{}
	if err := c.get(ctx, repoPath(owner, repo, "languages"), nil, &languages); err != nil {
		return nil, withRepo(wrapError(err, "failed to list languages"), owner, repo)
	}
	return languages, nil
}
