package core

import (
	"testing"

	"github.com/valter-silva-au/docsync/pkg/models"
)

func TestBuildDocUpdateContext_HasReadmeCaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want bool
	}{
		{"exact", []string{"README.md"}, true},
		{"lower", []string{"readme.md"}, true},
		{"mixed", []string{"ReadMe.MD"}, true},
		{"none", []string{"docs/guide.md", "CHANGELOG.md"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := make(map[string]string, len(tt.keys))
			for _, k := range tt.keys {
				content[k] = "text"
			}

			docCtx := BuildDocUpdateContext(models.ChangelogEntry{}, content, tt.keys)

			if docCtx.HasReadme != tt.want {
				t.Errorf("HasReadme = %v, want %v for keys %v", docCtx.HasReadme, tt.want, tt.keys)
			}
		})
	}
}

func TestBuildDocUpdateContext_PreservesEntryAndOrder(t *testing.T) {
	entry := models.ChangelogEntry{
		Kind:  models.EntryKindChangeRequest,
		Title: "Add new feature",
	}
	content := map[string]string{"README.md": "r", "docs/a.md": "a"}
	order := []string{"README.md", "docs/a.md"}

	docCtx := BuildDocUpdateContext(entry, content, order)

	if docCtx.Title != entry.Title || docCtx.Kind != entry.Kind {
		t.Errorf("entry fields not carried over: %+v", docCtx.ChangelogEntry)
	}
	if len(docCtx.DocFiles) != 2 || docCtx.DocFiles[0] != "README.md" {
		t.Errorf("unexpected DocFiles %v", docCtx.DocFiles)
	}

	// Mutating the caller's order slice must not affect the context.
	order[0] = "mutated"
	if docCtx.DocFiles[0] != "README.md" {
		t.Error("DocFiles aliases the caller's slice")
	}
}
