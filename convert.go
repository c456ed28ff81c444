package ghrest

import (
	"time"

	"github.com/google/go-github/v67/github"
)

// The API's JSON schemas are decoded into go-github's structs, which track
// the upstream field names, and converted into this package's flat types.

// convertRepository converts a go-github Repository to RepositoryData.
func convertRepository(repo *github.Repository) *RepositoryData {
	if repo == nil {
		return nil
	}

	data := &RepositoryData{
		ID:              repo.GetID(),
		Name:            repo.GetName(),
		FullName:        repo.GetFullName(),
		Description:     repo.GetDescription(),
		DefaultBranch:   repo.GetDefaultBranch(),
		Language:        repo.GetLanguage(),
		Visibility:      repo.GetVisibility(),
		Private:         repo.GetPrivate(),
		Fork:            repo.GetFork(),
		Archived:        repo.GetArchived(),
		StargazersCount: repo.GetStargazersCount(),
		ForksCount:      repo.GetForksCount(),
		OpenIssuesCount: repo.GetOpenIssuesCount(),
		CloneURL:        repo.GetCloneURL(),
		SSHURL:          repo.GetSSHURL(),
		HTMLURL:         repo.GetHTMLURL(),
		CreatedAt:       timeOf(repo.CreatedAt),
		UpdatedAt:       timeOf(repo.UpdatedAt),
		PushedAt:        timeOf(repo.PushedAt),
	}

	if owner := repo.GetOwner(); owner != nil {
		data.Owner = owner.GetLogin()
	}

	return data
}

func convertBranch(branch *github.Branch) *BranchData {
	if branch == nil {
		return nil
	}
	return &BranchData{
		Name:      branch.GetName(),
		CommitSHA: branch.GetCommit().GetSHA(),
		Protected: branch.GetProtected(),
	}
}

// convertCommit converts a go-github RepositoryCommit to CommitData.
func convertCommit(rc *github.RepositoryCommit) *CommitData {
	if rc == nil {
		return nil
	}

	commit := rc.GetCommit()
	data := &CommitData{
		SHA:         rc.GetSHA(),
		Message:     commit.GetMessage(),
		Author:      rc.GetAuthor().GetLogin(),
		AuthorName:  commit.GetAuthor().GetName(),
		AuthorEmail: commit.GetAuthor().GetEmail(),
		AuthoredAt:  commit.GetAuthor().GetDate().Time,
		Committer:   rc.GetCommitter().GetLogin(),
		CommittedAt: commit.GetCommitter().GetDate().Time,
		Additions:   rc.GetStats().GetAdditions(),
		Deletions:   rc.GetStats().GetDeletions(),
		HTMLURL:     rc.GetHTMLURL(),
	}

	data.Parents = make([]string, 0, len(rc.Parents))
	for _, p := range rc.Parents {
		data.Parents = append(data.Parents, p.GetSHA())
	}

	for _, f := range rc.Files {
		data.Files = append(data.Files, CommitFileData{
			Filename:         f.GetFilename(),
			PreviousFilename: f.GetPreviousFilename(),
			Status:           f.GetStatus(),
			Additions:        f.GetAdditions(),
			Deletions:        f.GetDeletions(),
			Changes:          f.GetChanges(),
			Patch:            f.GetPatch(),
		})
	}

	return data
}

func convertUser(user *github.User) *UserData {
	if user == nil {
		return nil
	}
	return &UserData{
		ID:          user.GetID(),
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		Email:       user.GetEmail(),
		Bio:         user.GetBio(),
		Company:     user.GetCompany(),
		Blog:        user.GetBlog(),
		Location:    user.GetLocation(),
		Type:        user.GetType(),
		SiteAdmin:   user.GetSiteAdmin(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		HTMLURL:     user.GetHTMLURL(),
		CreatedAt:   timeOf(user.CreatedAt),
		UpdatedAt:   timeOf(user.UpdatedAt),
	}
}

func convertContributor(c *github.Contributor) *ContributorData {
	if c == nil {
		return nil
	}
	return &ContributorData{
		ID:            c.GetID(),
		Login:         c.GetLogin(),
		Contributions: c.GetContributions(),
		HTMLURL:       c.GetHTMLURL(),
	}
}

func convertCollaborator(user *github.User) *CollaboratorData {
	if user == nil {
		return nil
	}
	return &CollaboratorData{
		ID:          user.GetID(),
		Login:       user.GetLogin(),
		RoleName:    user.GetRoleName(),
		Permissions: user.Permissions,
		HTMLURL:     user.GetHTMLURL(),
	}
}

func convertInvitation(inv *github.CollaboratorInvitation) *InvitationData {
	if inv == nil {
		return nil
	}
	return &InvitationData{
		ID:          inv.GetID(),
		Repository:  inv.GetRepo().GetFullName(),
		Invitee:     inv.GetInvitee().GetLogin(),
		Inviter:     inv.GetInviter().GetLogin(),
		Permissions: inv.GetPermissions(),
		HTMLURL:     inv.GetHTMLURL(),
		CreatedAt:   timeOf(inv.CreatedAt),
	}
}

// convertPullRequest converts a go-github PullRequest to PullRequestData.
func convertPullRequest(pr *github.PullRequest) *PullRequestData {
	if pr == nil {
		return nil
	}

	data := &PullRequestData{
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		Body:      pr.GetBody(),
		State:     pr.GetState(),
		Draft:     pr.GetDraft(),
		Merged:    pr.GetMerged(),
		Mergeable: pr.Mergeable,
		HTMLURL:   pr.GetHTMLURL(),
		CreatedAt: timeOf(pr.CreatedAt),
		UpdatedAt: timeOf(pr.UpdatedAt),
		Author:    pr.GetUser().GetLogin(),
	}

	if head := pr.GetHead(); head != nil {
		data.HeadRef = head.GetRef()
		data.HeadSHA = head.GetSHA()
	}
	if base := pr.GetBase(); base != nil {
		data.BaseRef = base.GetRef()
	}

	data.Labels = make([]string, 0, len(pr.Labels))
	for _, label := range pr.Labels {
		data.Labels = append(data.Labels, label.GetName())
	}

	if pr.MergedAt != nil {
		t := pr.MergedAt.Time
		data.MergedAt = &t
	}
	if pr.ClosedAt != nil {
		t := pr.ClosedAt.Time
		data.ClosedAt = &t
	}

	return data
}

func convertEntry(rc *github.RepositoryContent) *DirectoryEntry {
	return &DirectoryEntry{
		Name: rc.GetName(),
		Path: rc.GetPath(),
		Type: rc.GetType(),
		SHA:  rc.GetSHA(),
		Size: rc.GetSize(),
	}
}

func convertFileCommit(resp *github.RepositoryContentResponse) *FileCommitData {
	data := &FileCommitData{
		CommitSHA:     resp.Commit.GetSHA(),
		CommitMessage: resp.Commit.GetMessage(),
		HTMLURL:       resp.Commit.GetHTMLURL(),
	}
	if resp.Content != nil {
		data.Path = resp.Content.GetPath()
		data.SHA = resp.Content.GetSHA()
	}
	return data
}

// timeOf returns the time held by a go-github timestamp, or the zero time.
func timeOf(ts *github.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.Time
}
