// Package gitsource reads commit metadata from a local repository with go-git.
package gitsource

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"

	"github.com/user/commitstory/pkg/ports"
)

// Source implements ports.CommitSource for the repository containing path.
type Source struct {
	path string
}

// New creates a Source. path may point anywhere inside the work tree.
func New(path string) *Source {
	return &Source{path: path}
}

// HeadCommit returns HEAD's message, hash and diff statistics against its
// first parent (or the empty tree for a root commit).
func (s *Source) HeadCommit(ctx context.Context) (ports.CommitInfo, error) {
	if err := ctx.Err(); err != nil {
		return ports.CommitInfo{}, err
	}

	repo, err := git.PlainOpenWithOptions(s.path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ports.CommitInfo{}, fmt.Errorf("open repository %s: %w", s.path, err)
	}

	ref, err := repo.Head()
	if err != nil {
		return ports.CommitInfo{}, fmt.Errorf("resolve HEAD: %w", err)
	}

	c, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return ports.CommitInfo{}, fmt.Errorf("read commit %s: %w", ref.Hash(), err)
	}

	stats, err := c.Stats()
	if err != nil {
		return ports.CommitInfo{}, fmt.Errorf("diff stats for %s: %w", c.Hash, err)
	}

	info := ports.CommitInfo{
		Message:      c.Message,
		Hash:         c.Hash.String(),
		FilesChanged: len(stats),
	}
	for _, st := range stats {
		info.LinesAdded += st.Addition
		info.LinesDeleted += st.Deletion
	}

	return info, nil
}

var _ ports.CommitSource = (*Source)(nil)
