package core

import (
	"strings"

	"github.com/valter-silva-au/docsync/pkg/models"
)

// BuildDocUpdateContext merges fetched documentation content into a
// changelog entry. The entry is copied, never mutated. order lists the
// docContent keys in fetch order; HasReadme reflects a case-insensitive
// root-readme key check.
func BuildDocUpdateContext(entry models.ChangelogEntry, docContent map[string]string, order []string) models.DocUpdateContext {
	hasReadme := false
	for path := range docContent {
		if strings.EqualFold(path, rootReadme) {
			hasReadme = true
			break
		}
	}
	files := make([]string, len(order))
	copy(files, order)
	return models.DocUpdateContext{
		ChangelogEntry: entry,
		DocContent:     docContent,
		DocFiles:       files,
		HasReadme:      hasReadme,
	}
}
