package ghrest

import (
	"context"
	"net/url"

	"github.com/google/go-github/v67/github"
)

// GetUser retrieves the public profile of username.
func (c *Client) GetUser(ctx context.Context, username string) (*UserData, error) {
	if username == "" {
		return nil, newInvalidInputError("username", "username cannot be empty")
	}

	var user github.User
	if err := c.get(ctx, "users/"+url.PathEscape(username), nil, &user); err != nil {
		return nil, wrapContext(wrapError(err, "failed to get user"), "user", username)
	}

	return convertUser(&user), nil
}

// UpdateUser edits the authenticated user's profile. Only the non-nil fields
// of opts are sent.
func (c *Client) UpdateUser(ctx context.Context, opts UpdateUserOptions) (*UserData, error) {
	body := &github.User{
		Name:            opts.Name,
		Email:           opts.Email,
		Blog:            opts.Blog,
		TwitterUsername: opts.TwitterUsername,
		Company:         opts.Company,
		Location:        opts.Location,
		Hireable:        opts.Hireable,
		Bio:             opts.Bio,
	}

	var user github.User
	if _, err := c.do(ctx, &Request{Method: MethodPatch, Path: "user", Body: body}, &user); err != nil {
		return nil, wrapError(err, "failed to update user")
	}

	return convertUser(&user), nil
}
