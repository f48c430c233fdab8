package core

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/valter-silva-au/docsync/pkg/models"
)

// fakeContentReader serves canned file content and records requested paths.
type fakeContentReader struct {
	files     map[string]models.FileContent
	failPaths map[string]bool
	requested []string
}

func (r *fakeContentReader) FileContent(_ context.Context, _, _, path, _ string) (*models.FileContent, error) {
	r.requested = append(r.requested, path)
	if r.failPaths[path] {
		return nil, fmt.Errorf("404 not found: %s", path)
	}
	fc, ok := r.files[path]
	if !ok {
		return nil, fmt.Errorf("404 not found: %s", path)
	}
	return &fc, nil
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestFetchDocContent_NoCandidatesStillAttemptsReadme(t *testing.T) {
	reader := &fakeContentReader{
		files: map[string]models.FileContent{
			"README.md": {Encoding: "base64", Content: b64("# Widgets")},
		},
	}

	content, order := FetchDocContent(context.Background(), reader, "acme", "widgets", "main", nil)

	if content["README.md"] != "# Widgets" {
		t.Errorf("expected decoded readme, got %q", content["README.md"])
	}
	if len(order) != 1 || order[0] != "README.md" {
		t.Errorf("expected [README.md], got %v", order)
	}
}

func TestFetchDocContent_FiltersNonDocPaths(t *testing.T) {
	reader := &fakeContentReader{files: map[string]models.FileContent{}}

	FetchDocContent(context.Background(), reader, "acme", "widgets", "main",
		[]string{"main.go", "docs/setup.md", "image.png", "NOTES.md", "contributing.md"})

	want := []string{"README.md", "docs/setup.md", "NOTES.md", "contributing.md"}
	if len(reader.requested) != len(want) {
		t.Fatalf("expected %v requested, got %v", want, reader.requested)
	}
	for i, p := range want {
		if reader.requested[i] != p {
			t.Errorf("request %d: expected %s, got %s", i, p, reader.requested[i])
		}
	}
}

func TestFetchDocContent_CapsAtFiveFiles(t *testing.T) {
	candidates := []string{"a.md", "b.md", "c.md", "d.md", "e.md", "f.md", "g.md"}
	reader := &fakeContentReader{files: map[string]models.FileContent{}}

	FetchDocContent(context.Background(), reader, "acme", "widgets", "main", candidates)

	if len(reader.requested) != MaxDocFetch {
		t.Errorf("expected %d fetches, got %d (%v)", MaxDocFetch, len(reader.requested), reader.requested)
	}
	// The injected readme takes the first slot.
	if reader.requested[0] != "README.md" {
		t.Errorf("expected README.md first, got %s", reader.requested[0])
	}
}

func TestFetchDocContent_SkipsFailuresAndKeepsOthers(t *testing.T) {
	reader := &fakeContentReader{
		files: map[string]models.FileContent{
			"README.md":  {Encoding: "base64", Content: b64("readme")},
			"docs/a.md":  {Encoding: "base64", Content: b64("a")},
			"docs/c.md":  {Encoding: "base64", Content: b64("c")},
			"docs/np.md": {Encoding: "utf-8", Content: "not base64"},
		},
		failPaths: map[string]bool{"docs/b.md": true},
	}

	content, order := FetchDocContent(context.Background(), reader, "acme", "widgets", "main",
		[]string{"README.md", "docs/a.md", "docs/b.md", "docs/c.md", "docs/np.md"})

	if len(content) != 3 {
		t.Fatalf("expected 3 entries, got %d: %v", len(content), order)
	}
	wantOrder := []string{"README.md", "docs/a.md", "docs/c.md"}
	for i, p := range wantOrder {
		if order[i] != p {
			t.Errorf("order[%d]: expected %s, got %s", i, p, order[i])
		}
	}
}

func TestFetchDocContent_CaseInsensitiveReadmeNotDuplicated(t *testing.T) {
	reader := &fakeContentReader{
		files: map[string]models.FileContent{
			"readme.md": {Encoding: "base64", Content: b64("lower")},
		},
	}

	content, _ := FetchDocContent(context.Background(), reader, "acme", "widgets", "main", []string{"readme.md"})

	if len(reader.requested) != 1 {
		t.Errorf("expected a single fetch, got %v", reader.requested)
	}
	if content["readme.md"] != "lower" {
		t.Errorf("expected lower readme kept under its own key, got %v", content)
	}
}

func TestFetchDocContent_DecodesMultilineBase64(t *testing.T) {
	// The GitHub contents API wraps base64 payloads with newlines.
	encoded := b64("# Title\n\nBody text")
	wrapped := encoded[:10] + "\n" + encoded[10:]
	reader := &fakeContentReader{
		files: map[string]models.FileContent{
			"README.md": {Encoding: "base64", Content: wrapped},
		},
	}

	content, _ := FetchDocContent(context.Background(), reader, "acme", "widgets", "main", nil)

	if content["README.md"] != "# Title\n\nBody text" {
		t.Errorf("expected decoded multiline content, got %q", content["README.md"])
	}
}
