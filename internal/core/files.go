// Package core contains the business logic for docsync: changelog entry
// construction, documentation content selection, prompt rendering, page-ID
// extraction, and the session orchestrator that sequences a run.
package core

import (
	"fmt"
	"strings"

	"github.com/valter-silva-au/docsync/pkg/models"
)

// DefaultTreeFileLimit caps how many tree entries a periodic-sync file
// listing renders.
const DefaultTreeFileLimit = 50

// FormatPullRequestFiles renders one bullet line per changed file in the
// form "- <path> (<status>, +<additions>/-<deletions>)". Lines are joined
// by newline with no trailing newline; empty input yields an empty string.
func FormatPullRequestFiles(files []models.ChangedFile) string {
	if len(files) == 0 {
		return ""
	}
	lines := make([]string, 0, len(files))
	for _, f := range files {
		lines = append(lines, fmt.Sprintf("- %s (%s, +%d/-%d)", f.Path, f.Status, f.Additions, f.Deletions))
	}
	return strings.Join(lines, "\n")
}

// FormatTreeFiles renders "- <path>" per blob entry, keeping at most limit
// entries in their original order. Directory entries are excluded. A
// non-positive limit falls back to DefaultTreeFileLimit.
func FormatTreeFiles(entries []models.TreeEntry, limit int) string {
	if limit <= 0 {
		limit = DefaultTreeFileLimit
	}
	lines := make([]string, 0, limit)
	for _, e := range entries {
		if e.Type != "blob" {
			continue
		}
		if len(lines) >= limit {
			break
		}
		lines = append(lines, "- "+e.Path)
	}
	return strings.Join(lines, "\n")
}
