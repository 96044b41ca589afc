package ports

import "context"

// CommitInfo holds the metadata of a single commit as read from a repository.
type CommitInfo struct {
	Message      string
	Hash         string
	FilesChanged int
	LinesAdded   int
	LinesDeleted int
}

// CommitSource reads commit metadata from version control.
type CommitSource interface {
	// HeadCommit returns the commit HEAD points to.
	HeadCommit(ctx context.Context) (CommitInfo, error)
}
