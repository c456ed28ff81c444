package ghrest

import "time"

// Functional filters for the Repository handle. The option structs
// themselves live in types.go.

// PRFilterOption configures pull request filtering.
type PRFilterOption func(*ListPullRequestsOptions)

// WithPRState filters pull requests by state ("open", "closed", "all").
func WithPRState(state string) PRFilterOption {
	return func(opts *ListPullRequestsOptions) {
		opts.State = state
	}
}

// WithHead filters pull requests by head branch ("user:ref-name").
func WithHead(head string) PRFilterOption {
	return func(opts *ListPullRequestsOptions) {
		opts.Head = head
	}
}

// WithBase filters pull requests by base branch.
func WithBase(base string) PRFilterOption {
	return func(opts *ListPullRequestsOptions) {
		opts.Base = base
	}
}

// WithPRPage selects a page of pull request results.
func WithPRPage(page, perPage int) PRFilterOption {
	return func(opts *ListPullRequestsOptions) {
		opts.Page = page
		opts.PerPage = perPage
	}
}

// CommitFilterOption configures commit filtering.
type CommitFilterOption func(*ListCommitsOptions)

// WithCommitBranch lists commits reachable from a branch or SHA instead of
// the default branch.
func WithCommitBranch(ref string) CommitFilterOption {
	return func(opts *ListCommitsOptions) {
		opts.SHA = ref
	}
}

// WithCommitPath restricts commits to those touching path.
func WithCommitPath(path string) CommitFilterOption {
	return func(opts *ListCommitsOptions) {
		opts.Path = path
	}
}

// WithCommitAuthor filters commits by login or email.
func WithCommitAuthor(author string) CommitFilterOption {
	return func(opts *ListCommitsOptions) {
		opts.Author = author
	}
}

// WithSince excludes commits before t.
func WithSince(t time.Time) CommitFilterOption {
	return func(opts *ListCommitsOptions) {
		opts.Since = t
	}
}

// WithUntil excludes commits after t.
func WithUntil(t time.Time) CommitFilterOption {
	return func(opts *ListCommitsOptions) {
		opts.Until = t
	}
}

// WithCommitPage selects a page of commit results.
func WithCommitPage(page, perPage int) CommitFilterOption {
	return func(opts *ListCommitsOptions) {
		opts.Page = page
		opts.PerPage = perPage
	}
}
