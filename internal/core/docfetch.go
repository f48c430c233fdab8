package core

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/valter-silva-au/docsync/pkg/models"
)

// MaxDocFetch caps how many documentation files one run fetches,
// regardless of how many candidate paths were supplied.
const MaxDocFetch = 5

// rootReadme is the conventional top-level documentation file, matched
// case-insensitively wherever it appears.
const rootReadme = "README.md"

// ContentReader retrieves raw file content at a reference. Implemented by
// the GitHub client in internal/integration.
type ContentReader interface {
	FileContent(ctx context.Context, owner, repo, path, ref string) (*models.FileContent, error)
}

// isDocPath reports whether a candidate path looks like documentation:
// the root readme, anything under docs/, any markdown file, or the
// conventional CONTRIBUTING.md / CHANGELOG.md. All case-insensitive.
func isDocPath(path string) bool {
	lower := strings.ToLower(path)
	switch {
	case strings.EqualFold(path, rootReadme):
		return true
	case strings.HasPrefix(lower, "docs/"):
		return true
	case strings.HasSuffix(lower, ".md"):
		return true
	case strings.EqualFold(path, "CONTRIBUTING.md"), strings.EqualFold(path, "CHANGELOG.md"):
		return true
	}
	return false
}

// FetchDocContent retrieves decoded text for documentation-pattern files.
// Candidates are filtered to documentation paths; the root readme is
// prepended when missing so it is always attempted first; at most
// MaxDocFetch paths are fetched. Individual fetch failures and non-base64
// responses are skipped silently, so partial results are expected. The
// returned slice lists the map keys in fetch order.
func FetchDocContent(ctx context.Context, reader ContentReader, owner, repo, ref string, candidates []string) (map[string]string, []string) {
	var paths []string
	for _, p := range candidates {
		if isDocPath(p) {
			paths = append(paths, p)
		}
	}

	hasRoot := false
	for _, p := range paths {
		if strings.EqualFold(p, rootReadme) {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		paths = append([]string{rootReadme}, paths...)
	}

	if len(paths) > MaxDocFetch {
		paths = paths[:MaxDocFetch]
	}

	content := make(map[string]string, len(paths))
	var order []string
	for _, p := range paths {
		fc, err := reader.FileContent(ctx, owner, repo, p, ref)
		if err != nil || fc == nil {
			continue
		}
		if fc.Encoding != "base64" {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(fc.Content, "\n", ""))
		if err != nil {
			continue
		}
		content[p] = string(decoded)
		order = append(order, p)
	}
	return content, order
}
