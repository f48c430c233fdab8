package core

import (
	"fmt"
	"time"

	"github.com/valter-silva-au/docsync/pkg/models"
)

const (
	// defaultSummary replaces an absent pull-request description.
	defaultSummary = "No description provided"
	// defaultRepoDescription replaces an absent repository description.
	defaultRepoDescription = "No description"
	// shortHashLen is the length of the rendered commit hash prefix.
	shortHashLen = 7
)

// BuildPullRequestEntry normalizes a merged pull request into a changelog
// entry. filesText is the pre-formatted bullet listing; now supplies the
// entry date. Pure given its inputs.
func BuildPullRequestEntry(pr models.PullRequest, filesText string, now time.Time) models.ChangelogEntry {
	summary := pr.Description
	if summary == "" {
		summary = defaultSummary
	}
	return models.ChangelogEntry{
		Kind:          models.EntryKindChangeRequest,
		Date:          now.Format("2006-01-02"),
		Title:         pr.Title,
		RequestNumber: pr.Number,
		Author:        pr.Author,
		URL:           pr.URL,
		Summary:       summary,
		Files:         filesText,
	}
}

// BuildSyncEntry normalizes a periodic-sync event into a changelog entry
// reflecting the current state of the default branch.
func BuildSyncEntry(repo models.Repository, commit models.Commit, filesText string, now time.Time) models.ChangelogEntry {
	hash := commit.SHA
	if len(hash) > shortHashLen {
		hash = hash[:shortHashLen]
	}
	desc := repo.Description
	if desc == "" {
		desc = defaultRepoDescription
	}
	return models.ChangelogEntry{
		Kind:       models.EntryKindPeriodicSync,
		Date:       now.Format("2006-01-02"),
		Title:      "Documentation sync from " + repo.DefaultBranch,
		CommitHash: hash,
		Author:     commit.Author,
		URL:        commit.URL,
		Summary: fmt.Sprintf("Periodic documentation sync reflecting the current state of %s. Latest commit: %s",
			repo.DefaultBranch, commit.Message),
		Files:           filesText,
		RepoDescription: desc,
	}
}
