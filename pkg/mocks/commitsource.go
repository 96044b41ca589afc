package mocks

import (
	"context"

	"github.com/user/commitstory/pkg/ports"
)

// CommitSource is a mock implementation of ports.CommitSource.
type CommitSource struct {
	Info ports.CommitInfo
	Err  error

	Calls int
}

func (m *CommitSource) HeadCommit(ctx context.Context) (ports.CommitInfo, error) {
	m.Calls++
	return m.Info, m.Err
}

var _ ports.CommitSource = (*CommitSource)(nil)
