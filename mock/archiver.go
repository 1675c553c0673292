package mock

import (
	"context"

	"github.com/pagewatch/pagewatch"
)

var _ pagewatch.Archiver = (*Archiver)(nil)

// Archiver is a mock implementation of pagewatch.Archiver.
type Archiver struct {
	ArchiveFn func(ctx context.Context, pageID, versionID, rawHTML string) error
}

func (a *Archiver) Archive(ctx context.Context, pageID, versionID, rawHTML string) error {
	return a.ArchiveFn(ctx, pageID, versionID, rawHTML)
}
