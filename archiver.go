package pagewatch

import "context"

// Archiver stores raw HTML snapshots outside the document store.
// Archiving is best-effort: failures are logged by the scheduler and never
// block version creation.
type Archiver interface {
	// Archive stores the raw HTML for a captured version.
	Archive(ctx context.Context, pageID, versionID, rawHTML string) error
}
