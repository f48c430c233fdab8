package core

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// pageIDPattern matches a UUID-shaped token (8-4-4-4-12 hex groups) with
// each hyphen optional, so both dashed and dash-free workspace IDs match.
var pageIDPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-?[0-9a-fA-F]{4}-?[0-9a-fA-F]{4}-?[0-9a-fA-F]{4}-?[0-9a-fA-F]{12}`)

// ExtractPageID scans free-form agent response text for the first
// UUID-shaped token and returns it with hyphens stripped, case preserved.
// ok is false for empty input or when no token is found. This is the sole
// bridge from unstructured agent text back to a structured identifier;
// callers must treat a miss as a hard failure of that step. No secondary
// heuristics: the first full match wins or nothing does.
func ExtractPageID(text string) (id string, ok bool) {
	if text == "" {
		return "", false
	}
	match := pageIDPattern.FindString(text)
	if match == "" {
		return "", false
	}
	id = strings.ReplaceAll(match, "-", "")
	if _, err := uuid.Parse(canonicalPageID(id)); err != nil {
		return "", false
	}
	return id, true
}

// canonicalPageID re-inserts hyphens into a 32-hex page ID, producing the
// canonical dashed UUID form.
func canonicalPageID(id string) string {
	if len(id) != 32 {
		return id
	}
	return id[:8] + "-" + id[8:12] + "-" + id[12:16] + "-" + id[16:20] + "-" + id[20:]
}
