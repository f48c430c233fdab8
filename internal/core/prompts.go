package core

import (
	"fmt"
	"strings"

	"github.com/valter-silva-au/docsync/pkg/models"
)

const (
	// MaxSummaryLength bounds the rendered summary paragraph.
	MaxSummaryLength = 2000
	// MaxReadmeLength bounds readme content embedded in the doc-update
	// prompt.
	MaxReadmeLength = 8000
	// truncationMarker is appended whenever readme content was cut.
	truncationMarker = "[Content truncated...]"
)

// truncate cuts s to at most max bytes, leaving shorter strings untouched.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// referenceLine renders the entry's source reference for the changelog
// block: "PR #<n> by @<handle>" or "Commit <hash> by <name>".
func referenceLine(entry models.ChangelogEntry) string {
	if entry.Kind == models.EntryKindPeriodicSync {
		return fmt.Sprintf("Commit %s by %s", entry.CommitHash, entry.Author)
	}
	return fmt.Sprintf("PR #%d by @%s", entry.RequestNumber, entry.Author)
}

// BuildFindOrCreatePrompt renders the deterministic find-or-create
// instruction for the Changelog child page. The agent must answer with a
// page ID and nothing else, which keeps the response parseable.
func BuildFindOrCreatePrompt(rootPageID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Look at the child pages of the page with ID %s.\n\n", rootPageID)
	b.WriteString(`If a child page titled "Changelog" already exists, respond with only that page's ID and nothing else.

If no such child page exists, create a new page titled "Changelog" as a child of that page, then respond with only the new page's ID and nothing else.

Do not create a second Changelog page if one already exists.`)
	return b.String()
}

// BuildChangelogPrompt renders the instruction that appends one changelog
// entry to the target page as a block sequence. Same inputs always yield
// the same text.
func BuildChangelogPrompt(entry models.ChangelogEntry, pageID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Append a new changelog entry to the page with ID %s.\n\n", pageID)
	b.WriteString("Add the following blocks, in order:\n\n")
	fmt.Fprintf(&b, "1. A heading-3 block with the text: %s - %s\n", entry.Date, entry.Title)
	fmt.Fprintf(&b, "2. A paragraph block with the text: %s (%s)\n", referenceLine(entry), entry.URL)
	fmt.Fprintf(&b, "3. A paragraph block with this summary:\n%s\n", truncate(entry.Summary, MaxSummaryLength))

	next := 4
	if files := strings.TrimSpace(entry.Files); files != "" {
		fmt.Fprintf(&b, "%d. A collapsible toggle block titled \"Changed Files\" containing these bullet items:\n%s\n", next, files)
		next++
	}
	fmt.Fprintf(&b, "%d. A divider block.\n", next)
	b.WriteString("\nAppend all blocks in a single batched write if the tools allow it, rather than one call per block. Do not modify any existing content on the page.")
	return b.String()
}

// BuildDocUpdatePrompt renders the instruction that restructures the
// target page from the repository readme. It returns ok=false when the
// doc content holds no root readme; callers skip the step in that case
// rather than treating it as an error.
func BuildDocUpdatePrompt(docCtx models.DocUpdateContext, pageID string) (prompt string, ok bool) {
	var readme string
	found := false
	for _, path := range docCtx.DocFiles {
		if strings.EqualFold(path, rootReadme) {
			readme = docCtx.DocContent[path]
			found = true
			break
		}
	}
	if !found {
		// DocFiles can be out of sync with the map when callers built the
		// context by hand; fall back to scanning the keys.
		for path, content := range docCtx.DocContent {
			if strings.EqualFold(path, rootReadme) {
				readme = content
				found = true
				break
			}
		}
	}
	if !found {
		return "", false
	}

	truncated := false
	if len(readme) > MaxReadmeLength {
		readme = readme[:MaxReadmeLength]
		truncated = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Read the current content of the page with ID %s, then restructure it so it mirrors the README below.\n\n", pageID)
	b.WriteString("Guidelines:\n")
	b.WriteString("- Mirror the README's heading hierarchy, code blocks, lists, and links.\n")
	b.WriteString("- Preserve existing page content that has no counterpart in the README.\n")
	b.WriteString("- Minimize the number of write operations.\n\n")
	b.WriteString("README content:\n\n")
	b.WriteString(readme)
	if truncated {
		b.WriteString("\n" + truncationMarker)
	}
	return b.String(), true
}
