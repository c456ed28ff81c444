package ghrest

import "time"

// RepositoryData contains repository information.
type RepositoryData struct {
	// Identification
	ID       int64  `json:"id"`
	Owner    string `json:"owner"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`

	// Metadata
	Description   string `json:"description"`
	DefaultBranch string `json:"default_branch"`
	Language      string `json:"language"`
	Visibility    string `json:"visibility"`
	Private       bool   `json:"private"`
	Fork          bool   `json:"fork"`
	Archived      bool   `json:"archived"`

	// Counters
	StargazersCount int `json:"stargazers_count"`
	ForksCount      int `json:"forks_count"`
	OpenIssuesCount int `json:"open_issues_count"`

	// URLs
	CloneURL string `json:"clone_url"`
	SSHURL   string `json:"ssh_url"`
	HTMLURL  string `json:"html_url"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	PushedAt  time.Time `json:"pushed_at"`
}

// BranchData contains branch information.
type BranchData struct {
	Name      string `json:"name"`
	CommitSHA string `json:"commit_sha"`
	Protected bool   `json:"protected"`
}

// CommitData contains commit information.
type CommitData struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`

	// Author is the GitHub login of the author, when GitHub could match one.
	Author      string    `json:"author"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	AuthoredAt  time.Time `json:"authored_at"`

	Committer   string    `json:"committer"`
	CommittedAt time.Time `json:"committed_at"`

	Parents []string `json:"parents"`

	// Files and the stats are only populated by GetCommit.
	Files     []CommitFileData `json:"files,omitempty"`
	Additions int              `json:"additions"`
	Deletions int              `json:"deletions"`

	HTMLURL string `json:"html_url"`
}

// CommitFileData describes one file touched by a commit.
type CommitFileData struct {
	Filename         string `json:"filename"`
	PreviousFilename string `json:"previous_filename,omitempty"`
	Status           string `json:"status"`
	Additions        int    `json:"additions"`
	Deletions        int    `json:"deletions"`
	Changes          int    `json:"changes"`
	Patch            string `json:"patch,omitempty"`
}

// UserData contains user profile information.
type UserData struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	Company   string `json:"company"`
	Blog      string `json:"blog"`
	Location  string `json:"location"`
	Type      string `json:"type"`
	SiteAdmin bool   `json:"site_admin"`

	PublicRepos int `json:"public_repos"`
	Followers   int `json:"followers"`
	Following   int `json:"following"`

	HTMLURL   string    `json:"html_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContributorData contains a contributor and their contribution count.
type ContributorData struct {
	ID            int64  `json:"id"`
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
	HTMLURL       string `json:"html_url"`
}

// CollaboratorData contains a repository collaborator.
type CollaboratorData struct {
	ID          int64           `json:"id"`
	Login       string          `json:"login"`
	RoleName    string          `json:"role_name"`
	Permissions map[string]bool `json:"permissions"`
	HTMLURL     string          `json:"html_url"`
}

// InvitationData contains a pending repository invitation.
type InvitationData struct {
	ID          int64     `json:"id"`
	Repository  string    `json:"repository"`
	Invitee     string    `json:"invitee"`
	Inviter     string    `json:"inviter"`
	Permissions string    `json:"permissions"`
	HTMLURL     string    `json:"html_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// PullRequestData contains pull request information.
type PullRequestData struct {
	// Identification
	Number int `json:"number"`

	// Content
	Title string `json:"title"`
	Body  string `json:"body"`

	// Branch information
	HeadRef string `json:"head_ref"`
	BaseRef string `json:"base_ref"`
	HeadSHA string `json:"head_sha"`

	// State and metadata
	State     string   `json:"state"`
	Author    string   `json:"author"`
	Labels    []string `json:"labels"`
	Draft     bool     `json:"draft"`
	Mergeable *bool    `json:"mergeable,omitempty"`
	Merged    bool     `json:"merged"`

	// URL
	HTMLURL string `json:"html_url"`

	// Timestamps
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	MergedAt  *time.Time `json:"merged_at,omitempty"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// Entry types reported by the contents API.
const (
	// EntryTypeFile is a regular file.
	EntryTypeFile = "file"

	// EntryTypeDir is a directory.
	EntryTypeDir = "dir"

	// EntryTypeSymlink is a symbolic link.
	EntryTypeSymlink = "symlink"

	// EntryTypeSubmodule is a git submodule.
	EntryTypeSubmodule = "submodule"
)

// DirectoryEntry is one item of a directory listing.
type DirectoryEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
	SHA  string `json:"sha"`
	Size int    `json:"size"`
}

// IsFile reports whether the entry is a regular file.
func (e *DirectoryEntry) IsFile() bool {
	return e.Type == EntryTypeFile
}

// IsDir reports whether the entry is a directory.
func (e *DirectoryEntry) IsDir() bool {
	return e.Type == EntryTypeDir
}

// FileContent is a file fetched from a repository with its content decoded.
type FileContent struct {
	Name string `json:"name"`
	Path string `json:"path"`

	// SHA is the blob hash of the content. Pass it back on update to detect
	// concurrent modification.
	SHA string `json:"sha"`

	// Text is the decoded content.
	Text string `json:"text"`

	Size int    `json:"size"`
	URL  string `json:"url"`
}

// FileCommitData is the result of creating or updating a file.
type FileCommitData struct {
	// Path and SHA describe the new content.
	Path string `json:"path"`
	SHA  string `json:"sha"`

	// Commit fields describe the commit that recorded the change.
	CommitSHA     string `json:"commit_sha"`
	CommitMessage string `json:"commit_message"`
	HTMLURL       string `json:"html_url"`
}

// State constants for pull requests.
const (
	// StateOpen indicates a pull request is open.
	StateOpen = "open"

	// StateClosed indicates a pull request is closed.
	StateClosed = "closed"

	// StateAll is used for filtering to include all states.
	StateAll = "all"
)

// Collaborator permissions accepted by AddCollaborator.
const (
	PermissionPull     = "pull"
	PermissionTriage   = "triage"
	PermissionPush     = "push"
	PermissionMaintain = "maintain"
	PermissionAdmin    = "admin"
)

// ListOptions contains options for list operations.
type ListOptions struct {
	// Page is the page number for pagination (1-indexed)
	Page int `url:"page,omitempty"`

	// PerPage is the number of items per page
	PerPage int `url:"per_page,omitempty"`
}

// ListRepositoriesOptions filters the authenticated user's repositories.
type ListRepositoriesOptions struct {
	// Visibility is "all", "public" or "private".
	Visibility string `url:"visibility,omitempty"`

	// Affiliation is a comma-separated list of "owner", "collaborator" and
	// "organization_member".
	Affiliation string `url:"affiliation,omitempty"`

	// Type is "all", "owner", "public", "private" or "member". It cannot be
	// combined with Visibility or Affiliation.
	Type string `url:"type,omitempty"`

	// Sort is "created", "updated", "pushed" or "full_name".
	Sort string `url:"sort,omitempty"`

	// Direction is "asc" or "desc".
	Direction string `url:"direction,omitempty"`

	ListOptions
}

// ListContributorsOptions contains options for listing contributors.
type ListContributorsOptions struct {
	// Anon includes anonymous contributors when set to "true".
	Anon string `url:"anon,omitempty"`

	ListOptions
}

// ListBranchesOptions contains options for listing branches.
type ListBranchesOptions struct {
	// Protected restricts the listing to protected (true) or unprotected
	// (false) branches. Nil lists both.
	Protected *bool `url:"protected,omitempty"`

	ListOptions
}

// ListCommitsOptions contains options for listing commits.
type ListCommitsOptions struct {
	// SHA is the branch name or commit SHA to start listing from.
	SHA string `url:"sha,omitempty"`

	// Path restricts the listing to commits touching this path.
	Path string `url:"path,omitempty"`

	// Author is a GitHub login or email address.
	Author string `url:"author,omitempty"`

	// Since and Until bound the commit date.
	Since time.Time `url:"since,omitempty"`
	Until time.Time `url:"until,omitempty"`

	ListOptions
}

// ListPullRequestsOptions contains options for listing pull requests.
type ListPullRequestsOptions struct {
	// State filters by pull request state ("open", "closed", "all")
	State string `url:"state,omitempty"`

	// Head filters by head branch (format: "user:ref-name")
	Head string `url:"head,omitempty"`

	// Base filters by base branch
	Base string `url:"base,omitempty"`

	// Sort is "created", "updated", "popularity" or "long-running".
	Sort string `url:"sort,omitempty"`

	// Direction is "asc" or "desc".
	Direction string `url:"direction,omitempty"`

	ListOptions
}

// CreateRepositoryOptions contains options for creating a repository.
type CreateRepositoryOptions struct {
	// Name is the repository name (required)
	Name string

	// Org creates the repository in an organization instead of under the
	// authenticated user.
	Org string

	// Description is the repository description
	Description string

	// Homepage is the repository homepage URL
	Homepage string

	// Private indicates whether the repository should be private
	Private bool

	// AutoInit indicates whether to initialize with README
	AutoInit bool

	// GitignoreTemplate and LicenseTemplate select templates applied on init.
	GitignoreTemplate string
	LicenseTemplate   string
}

// UpdateRepositoryOptions contains options for updating a repository.
// Only non-nil fields are sent.
type UpdateRepositoryOptions struct {
	Name          *string
	Description   *string
	Homepage      *string
	Private       *bool
	Archived      *bool
	DefaultBranch *string
	HasIssues     *bool
	HasWiki       *bool
}

// UpdateUserOptions contains options for updating the authenticated user.
// Only non-nil fields are sent.
type UpdateUserOptions struct {
	Name            *string
	Email           *string
	Blog            *string
	TwitterUsername *string
	Company         *string
	Location        *string
	Hireable        *bool
	Bio             *string
}
