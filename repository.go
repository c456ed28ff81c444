package ghrest

import (
	"context"
	"fmt"
)

// Repository binds a Client to one repository and exposes its operations
// without repeating the owner and name.
//
// Repository instances are created through a Client:
//
//	repo := client.Repository("octocat", "hello-world")
//	if err := repo.Get(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Default branch:", repo.DefaultBranch())
//
// Accessors return zero values until Get has been called.
type Repository struct {
	client *Client
	owner  string
	name   string
	data   *RepositoryData
}

// Repository returns a handle for owner/name. No request is made.
func (c *Client) Repository(owner, name string) *Repository {
	return &Repository{
		client: c,
		owner:  owner,
		name:   name,
	}
}

// Get fetches the repository data from GitHub.
// Returns an ErrCodeNotFound error if the repository doesn't exist.
func (r *Repository) Get(ctx context.Context) error {
	data, err := r.client.GetRepository(ctx, r.owner, r.name)
	if err != nil {
		return err
	}
	r.data = data
	return nil
}

// Refresh is Get, named for re-fetching data that is already loaded.
func (r *Repository) Refresh(ctx context.Context) error {
	return r.Get(ctx)
}

// Owner returns the repository owner (organization or username).
func (r *Repository) Owner() string {
	return r.owner
}

// Name returns the repository name (without owner).
func (r *Repository) Name() string {
	return r.name
}

// FullName returns "owner/name", preferring the server's spelling once
// fetched.
func (r *Repository) FullName() string {
	if r.data != nil && r.data.FullName != "" {
		return r.data.FullName
	}
	return fmt.Sprintf("%s/%s", r.owner, r.name)
}

// DefaultBranch returns the default branch name.
func (r *Repository) DefaultBranch() string {
	if r.data == nil {
		return ""
	}
	return r.data.DefaultBranch
}

// CloneURL returns the HTTPS clone URL.
func (r *Repository) CloneURL() string {
	if r.data == nil {
		return ""
	}
	return r.data.CloneURL
}

// IsPrivate returns true if the repository is private.
func (r *Repository) IsPrivate() bool {
	return r.data != nil && r.data.Private
}

// IsArchived returns true if the repository is archived.
func (r *Repository) IsArchived() bool {
	return r.data != nil && r.data.Archived
}

// Data returns the underlying repository data, or nil before Get.
func (r *Repository) Data() *RepositoryData {
	return r.data
}

// File operations

// Files returns every file on branch with its content. An empty branch
// resolves to the default branch, fetching the repository data first if it
// isn't loaded.
func (r *Repository) Files(ctx context.Context, branch string) ([]*FileContent, error) {
	branch, err := r.resolveBranch(ctx, branch)
	if err != nil {
		return nil, err
	}
	return r.client.ListAllFiles(ctx, r.owner, r.name, branch)
}

// ReadFile fetches a single file on branch.
func (r *Repository) ReadFile(ctx context.Context, path, branch string) (*FileContent, error) {
	return r.client.GetFile(ctx, r.owner, r.name, path, branch)
}

// CreateFile commits a new file. See Client.CreateFile.
func (r *Repository) CreateFile(ctx context.Context, path, branch, text, message string) (*FileCommitData, error) {
	return r.client.CreateFile(ctx, r.owner, r.name, path, branch, text, message)
}

// UpdateFile replaces an existing file. See Client.UpdateFile.
func (r *Repository) UpdateFile(ctx context.Context, path, branch, text, message string) (*FileCommitData, error) {
	return r.client.UpdateFile(ctx, r.owner, r.name, path, branch, text, message)
}

func (r *Repository) resolveBranch(ctx context.Context, branch string) (string, error) {
	if branch != "" {
		return branch, nil
	}
	if r.data == nil {
		if err := r.Get(ctx); err != nil {
			return "", err
		}
	}
	return r.data.DefaultBranch, nil
}

// Branch, commit and pull request operations

// Branches lists the repository's branches.
func (r *Repository) Branches(ctx context.Context) ([]*BranchData, error) {
	return r.client.ListBranches(ctx, r.owner, r.name, nil)
}

// Commits lists commits with optional filtering.
//
// Example:
//
//	commits, err := repo.Commits(ctx,
//	    ghrest.WithCommitBranch("develop"),
//	    ghrest.WithCommitPath("docs/"),
//	)
func (r *Repository) Commits(ctx context.Context, opts ...CommitFilterOption) ([]*CommitData, error) {
	listOpts := &ListCommitsOptions{}
	for _, opt := range opts {
		opt(listOpts)
	}
	return r.client.ListCommits(ctx, r.owner, r.name, listOpts)
}

// PullRequests lists pull requests with optional filtering. Only open pull
// requests are listed unless WithPRState says otherwise.
//
// Example:
//
//	prs, err := repo.PullRequests(ctx,
//	    ghrest.WithPRState(ghrest.StateAll),
//	    ghrest.WithBase("main"),
//	)
func (r *Repository) PullRequests(ctx context.Context, opts ...PRFilterOption) ([]*PullRequestData, error) {
	listOpts := &ListPullRequestsOptions{
		State: StateOpen,
	}
	for _, opt := range opts {
		opt(listOpts)
	}
	return r.client.ListPullRequests(ctx, r.owner, r.name, listOpts)
}

// IsCollaborator reports whether user is a collaborator on the repository.
func (r *Repository) IsCollaborator(ctx context.Context, user string) (bool, error) {
	return r.client.IsCollaborator(ctx, r.owner, r.name, user)
}
