package models

// PullRequest holds the pull-request metadata the entry builder needs.
type PullRequest struct {
	Number      int
	Title       string
	Author      string
	URL         string
	Description string
}

// ChangedFile is one entry of a pull request's changed-file listing.
type ChangedFile struct {
	Path      string
	Status    string
	Additions int
	Deletions int
}

// Repository holds repository-level metadata.
type Repository struct {
	Owner         string
	Name          string
	DefaultBranch string
	Description   string
}

// Commit holds the latest-commit metadata for periodic sync runs.
type Commit struct {
	SHA     string
	Author  string
	Message string
	URL     string
}

// TreeEntry is one entry of a repository tree listing.
type TreeEntry struct {
	Path string
	// Type is the git object type, "blob" for files and "tree" for
	// directories.
	Type string
}

// FileContent is raw file content at a reference, as reported by the
// source host. Content is undecoded; Encoding names the transfer encoding
// (typically "base64").
type FileContent struct {
	Path     string
	Encoding string
	Content  string
}
