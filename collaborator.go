package ghrest

import (
	"context"
	"net/http"

	"github.com/google/go-github/v67/github"
)

// CollaboratorStatus is the outcome of a collaborator check.
type CollaboratorStatus int

const (
	// CollaboratorUnknown is returned alongside an error when the check
	// could not be answered.
	CollaboratorUnknown CollaboratorStatus = iota

	// CollaboratorYes means the user is a collaborator.
	CollaboratorYes

	// CollaboratorNo means the user is not a collaborator.
	CollaboratorNo
)

// String implements fmt.Stringer.
func (s CollaboratorStatus) String() string {
	switch s {
	case CollaboratorYes:
		return "collaborator"
	case CollaboratorNo:
		return "not_collaborator"
	default:
		return "unknown"
	}
}

// CheckCollaborator reports whether user is a collaborator on the
// repository. The API answers 204 for a collaborator and 404 otherwise; any
// other failure, including 401 and 403, is returned as an error with
// CollaboratorUnknown.
func (c *Client) CheckCollaborator(ctx context.Context, owner, repo, user string) (CollaboratorStatus, error) {
	req := &Request{
		Method: MethodGet,
		Path:   repoPath(owner, repo, "collaborators", user),
		Accept: []int{http.StatusNotFound},
	}

	resp, err := c.do(ctx, req, nil)
	if err != nil {
		err = withRepo(wrapError(err, "failed to check collaborator"), owner, repo)
		return CollaboratorUnknown, wrapContext(err, "user", user)
	}

	if resp.StatusCode == http.StatusNotFound {
		return CollaboratorNo, nil
	}
	return CollaboratorYes, nil
}

// IsCollaborator is CheckCollaborator reduced to a boolean. It is false
// whenever an error is returned.
func (c *Client) IsCollaborator(ctx context.Context, owner, repo, user string) (bool, error) {
	status, err := c.CheckCollaborator(ctx, owner, repo, user)
	if err != nil {
		return false, err
	}
	return status == CollaboratorYes, nil
}

// ListCollaborators lists the collaborators of a repository.
func (c *Client) ListCollaborators(ctx context.Context, owner, repo string, opts *ListOptions) ([]*CollaboratorData, error) {
	var users []*github.User
	if err := c.get(ctx, repoPath(owner, repo, "collaborators"), opts, &users); err != nil {
		return nil, withRepo(wrapError(err, "failed to list collaborators"), owner, repo)
	}

	result := make([]*CollaboratorData, 0, len(users))
	for _, u := range users {
		if u != nil {
			result = append(result, convertCollaborator(u))
		}
	}

	return result, nil
}

// AddCollaborator invites user to the repository with the given permission
// (one of the Permission constants; empty uses the server default of push).
//
// The returned invitation is nil when user already had access, in which case
// nothing changes on the server.
func (c *Client) AddCollaborator(ctx context.Context, owner, repo, user, permission string) (*InvitationData, error) {
	var body interface{}
	if permission != "" {
		body = &github.RepositoryAddCollaboratorOptions{Permission: permission}
	}

	req := &Request{
		Method: MethodPut,
		Path:   repoPath(owner, repo, "collaborators", user),
		Body:   body,
	}
	resp, err := c.do(ctx, req, nil)
	if err != nil {
		err = withRepo(wrapError(err, "failed to add collaborator"), owner, repo)
		return nil, wrapContext(err, "user", user)
	}

	if resp.StatusCode == http.StatusNoContent || len(resp.Body) == 0 {
		c.logger.WarnContext(ctx, "user is already a collaborator",
			"owner", owner,
			"repo", repo,
			"user", user,
		)
		return nil, nil
	}

	var inv github.CollaboratorInvitation
	if err := decodeBody(resp, &inv, "put", req.Path); err != nil {
		return nil, err
	}

	return convertInvitation(&inv), nil
}

// RemoveCollaborator removes user from the repository.
func (c *Client) RemoveCollaborator(ctx context.Context, owner, repo, user string) error {
	req := &Request{
		Method: MethodDelete,
		Path:   repoPath(owner, repo, "collaborators", user),
	}
	if _, err := c.do(ctx, req, nil); err != nil {
		err = withRepo(wrapError(err, "failed to remove collaborator"), owner, repo)
		return wrapContext(err, "user", user)
	}
	return nil
}
