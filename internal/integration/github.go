// Package integration contains the external collaborators of docsync:
// the GitHub source host, the claude CLI agent client, and the MCP
// preflight checker for the document workspace.
package integration

import (
	"context"
	"fmt"

	"github.com/google/go-github/v66/github"
	"github.com/valter-silva-au/docsync/pkg/models"
)

// SourceHost is the read-only source-control collaborator. Only the
// narrow structs from pkg/models cross this boundary; go-github types
// never escape this package.
type SourceHost interface {
	PullRequest(ctx context.Context, owner, repo string, number int) (*models.PullRequest, error)
	PullRequestFiles(ctx context.Context, owner, repo string, number int) ([]models.ChangedFile, error)
	Repository(ctx context.Context, owner, repo string) (*models.Repository, error)
	LatestCommit(ctx context.Context, owner, repo, ref string) (*models.Commit, error)
	Tree(ctx context.Context, owner, repo, ref string) ([]models.TreeEntry, error)
	// FileContent also satisfies core.ContentReader.
	FileContent(ctx context.Context, owner, repo, path, ref string) (*models.FileContent, error)
}

// githubHost implements SourceHost over the GitHub REST API.
type githubHost struct {
	client *github.Client
}

// NewGitHubHost creates a SourceHost authenticated with the given token.
// An empty token yields an unauthenticated client, which is enough for
// public repositories.
func NewGitHubHost(token string) SourceHost {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &githubHost{client: client}
}

// NewGitHubHostFromClient wraps an existing go-github client. Used by
// tests to point the host at a fake API server.
func NewGitHubHostFromClient(client *github.Client) SourceHost {
	return &githubHost{client: client}
}

func (h *githubHost) PullRequest(ctx context.Context, owner, repo string, number int) (*models.PullRequest, error) {
	pr, _, err := h.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("fetching PR #%d: %w", number, err)
	}
	return &models.PullRequest{
		Number:      pr.GetNumber(),
		Title:       pr.GetTitle(),
		Author:      pr.GetUser().GetLogin(),
		URL:         pr.GetHTMLURL(),
		Description: pr.GetBody(),
	}, nil
}

func (h *githubHost) PullRequestFiles(ctx context.Context, owner, repo string, number int) ([]models.ChangedFile, error) {
	var files []models.ChangedFile
	opts := &github.ListOptions{PerPage: 100}
	for {
		page, resp, err := h.client.PullRequests.ListFiles(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing files for PR #%d: %w", number, err)
		}
		for _, f := range page {
			files = append(files, models.ChangedFile{
				Path:      f.GetFilename(),
				Status:    f.GetStatus(),
				Additions: f.GetAdditions(),
				Deletions: f.GetDeletions(),
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return files, nil
}

func (h *githubHost) Repository(ctx context.Context, owner, repo string) (*models.Repository, error) {
	r, _, err := h.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("fetching repository %s/%s: %w", owner, repo, err)
	}
	return &models.Repository{
		Owner:         owner,
		Name:          repo,
		DefaultBranch: r.GetDefaultBranch(),
		Description:   r.GetDescription(),
	}, nil
}

func (h *githubHost) LatestCommit(ctx context.Context, owner, repo, ref string) (*models.Commit, error) {
	commits, _, err := h.client.Repositories.ListCommits(ctx, owner, repo, &github.CommitsListOptions{
		SHA:         ref,
		ListOptions: github.ListOptions{PerPage: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("fetching latest commit on %s: %w", ref, err)
	}
	if len(commits) == 0 {
		return nil, fmt.Errorf("no commits found on %s", ref)
	}
	c := commits[0]
	return &models.Commit{
		SHA:     c.GetSHA(),
		Author:  c.GetCommit().GetAuthor().GetName(),
		Message: c.GetCommit().GetMessage(),
		URL:     c.GetHTMLURL(),
	}, nil
}

func (h *githubHost) Tree(ctx context.Context, owner, repo, ref string) ([]models.TreeEntry, error) {
	tree, _, err := h.client.Git.GetTree(ctx, owner, repo, ref, true)
	if err != nil {
		return nil, fmt.Errorf("fetching tree at %s: %w", ref, err)
	}
	entries := make([]models.TreeEntry, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		entries = append(entries, models.TreeEntry{
			Path: e.GetPath(),
			Type: e.GetType(),
		})
	}
	return entries, nil
}

func (h *githubHost) FileContent(ctx context.Context, owner, repo, path, ref string) (*models.FileContent, error) {
	fc, _, _, err := h.client.Repositories.GetContents(ctx, owner, repo, path, &github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		return nil, fmt.Errorf("fetching content of %s at %s: %w", path, ref, err)
	}
	if fc == nil {
		return nil, fmt.Errorf("%s is not a file", path)
	}
	raw := ""
	if fc.Content != nil {
		raw = *fc.Content
	}
	return &models.FileContent{
		Path:     path,
		Encoding: fc.GetEncoding(),
		Content:  raw,
	}, nil
}
