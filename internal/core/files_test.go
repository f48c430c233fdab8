package core

import (
	"strings"
	"testing"

	"github.com/valter-silva-au/docsync/pkg/models"
)

func TestFormatPullRequestFiles_Empty(t *testing.T) {
	if got := FormatPullRequestFiles(nil); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestFormatPullRequestFiles_RendersEachFile(t *testing.T) {
	files := []models.ChangedFile{
		{Path: "src/main.go", Status: "modified", Additions: 10, Deletions: 2},
		{Path: "README.md", Status: "added", Additions: 40, Deletions: 0},
	}

	got := FormatPullRequestFiles(files)

	want := "- src/main.go (modified, +10/-2)\n- README.md (added, +40/-0)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("output must not have a trailing newline")
	}
}

func TestFormatTreeFiles_ExcludesDirectories(t *testing.T) {
	entries := []models.TreeEntry{
		{Path: "docs", Type: "tree"},
		{Path: "docs/guide.md", Type: "blob"},
		{Path: "internal", Type: "tree"},
		{Path: "main.go", Type: "blob"},
	}

	got := FormatTreeFiles(entries, 50)

	want := "- docs/guide.md\n- main.go"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatTreeFiles_AppliesLimit(t *testing.T) {
	entries := []models.TreeEntry{
		{Path: "a.go", Type: "blob"},
		{Path: "b.go", Type: "blob"},
		{Path: "c.go", Type: "blob"},
	}

	got := FormatTreeFiles(entries, 2)

	if want := "- a.go\n- b.go"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatTreeFiles_ZeroLimitFallsBackToDefault(t *testing.T) {
	entries := make([]models.TreeEntry, DefaultTreeFileLimit+10)
	for i := range entries {
		entries[i] = models.TreeEntry{Path: "f.go", Type: "blob"}
	}

	got := FormatTreeFiles(entries, 0)

	if lines := strings.Count(got, "\n") + 1; lines != DefaultTreeFileLimit {
		t.Errorf("expected %d lines, got %d", DefaultTreeFileLimit, lines)
	}
}
