// Package models defines the shared data types for docsync: changelog
// entries, source-control snapshots, agent session parameters, and
// configuration.
package models

// EntryKind discriminates the two changelog entry variants.
type EntryKind string

const (
	// EntryKindChangeRequest marks an entry built from a merged pull request.
	EntryKindChangeRequest EntryKind = "change-request"
	// EntryKindPeriodicSync marks an entry built from the current state of
	// the default branch.
	EntryKindPeriodicSync EntryKind = "periodic-sync"
)

// ChangelogEntry is the canonical record produced once per run from a
// single event snapshot. It is immutable after construction; the only
// enrichment step is BuildDocUpdateContext, which copies it.
type ChangelogEntry struct {
	Kind EntryKind
	// Date is the entry creation date in YYYY-MM-DD form.
	Date  string
	Title string

	// RequestNumber and Author are set for change-request entries.
	// Author carries the handle for change-request entries and the commit
	// author display name for periodic-sync entries.
	RequestNumber int
	Author        string

	// CommitHash is the 7-character prefix of the full hash, set for
	// periodic-sync entries only.
	CommitHash string

	// URL is the canonical link to the pull request or commit.
	URL string

	// Summary is free text, always truncated to the maximum display
	// length before rendering.
	Summary string

	// Files is a pre-formatted multi-line bullet string, possibly empty.
	Files string

	// RepoDescription is set for periodic-sync entries only.
	RepoDescription string
}

// DocUpdateContext is a ChangelogEntry enriched with fetched documentation
// content for the doc-update step.
type DocUpdateContext struct {
	ChangelogEntry

	// DocContent maps relative file paths to decoded text content.
	DocContent map[string]string

	// DocFiles lists DocContent keys in fetch order, root readme first
	// when one was fetched.
	DocFiles []string

	// HasReadme is true when some DocContent key case-insensitively
	// matches the root readme filename.
	HasReadme bool
}
