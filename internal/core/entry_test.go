package core

import (
	"strings"
	"testing"
	"time"

	"github.com/valter-silva-au/docsync/pkg/models"
	"pgregory.net/rapid"
)

var testNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func TestBuildPullRequestEntry_DefaultsSummary(t *testing.T) {
	pr := models.PullRequest{
		Number: 42,
		Title:  "Add new feature",
		Author: "testuser",
		URL:    "https://github.com/acme/widgets/pull/42",
	}

	entry := BuildPullRequestEntry(pr, "", testNow)

	if entry.Kind != models.EntryKindChangeRequest {
		t.Errorf("expected change-request kind, got %s", entry.Kind)
	}
	if entry.Summary != "No description provided" {
		t.Errorf("expected default summary, got %q", entry.Summary)
	}
	if entry.Date != "2026-03-14" {
		t.Errorf("expected date 2026-03-14, got %s", entry.Date)
	}
	if entry.RequestNumber != 42 || entry.Author != "testuser" {
		t.Errorf("reference fields not copied: %+v", entry)
	}
}

func TestBuildPullRequestEntry_KeepsDescriptionVerbatim(t *testing.T) {
	long := strings.Repeat("x", MaxSummaryLength+500)
	pr := models.PullRequest{Number: 7, Title: "t", Author: "a", Description: long}

	entry := BuildPullRequestEntry(pr, "", testNow)

	// Truncation happens at render time, not at entry construction.
	if entry.Summary != long {
		t.Error("expected description kept verbatim pre-truncation")
	}
}

func TestBuildSyncEntry_ShortensCommitHash(t *testing.T) {
	repo := models.Repository{DefaultBranch: "main", Description: "A widget factory"}
	commit := models.Commit{
		SHA:     "abc1234567890",
		Author:  "Jane Dev",
		Message: "fix: tighten widget bolts",
		URL:     "https://github.com/acme/widgets/commit/abc1234567890",
	}

	entry := BuildSyncEntry(repo, commit, "- main.go", testNow)

	if entry.CommitHash != "abc1234" {
		t.Errorf("expected 7-char hash prefix abc1234, got %s", entry.CommitHash)
	}
	if entry.Title != "Documentation sync from main" {
		t.Errorf("unexpected title %q", entry.Title)
	}
	if entry.RepoDescription != "A widget factory" {
		t.Errorf("unexpected repo description %q", entry.RepoDescription)
	}
	if !strings.Contains(entry.Summary, "fix: tighten widget bolts") {
		t.Errorf("summary should embed the commit message, got %q", entry.Summary)
	}
}

func TestBuildSyncEntry_DefaultsRepoDescription(t *testing.T) {
	entry := BuildSyncEntry(models.Repository{DefaultBranch: "main"}, models.Commit{SHA: "deadbeefcafe"}, "", testNow)

	if entry.RepoDescription != "No description" {
		t.Errorf("expected default repo description, got %q", entry.RepoDescription)
	}
}

// Property: the rendered commit hash is always exactly 7 characters and a
// prefix of the full hash.
func TestProperty_SyncEntryHashPrefix(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sha := rapid.StringMatching(`[0-9a-f]{7,40}`).Draw(rt, "sha")

		entry := BuildSyncEntry(models.Repository{DefaultBranch: "main"}, models.Commit{SHA: sha}, "", testNow)

		if len(entry.CommitHash) != 7 {
			rt.Fatalf("hash %q is not 7 characters", entry.CommitHash)
		}
		if !strings.HasPrefix(sha, entry.CommitHash) {
			rt.Fatalf("hash %q is not a prefix of %q", entry.CommitHash, sha)
		}
	})
}
