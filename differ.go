package pagewatch

// ChangeKind classifies one span of a line-level diff.
type ChangeKind string

// ChangeKind constants.
const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeModified ChangeKind = "modified"
)

// ContentChange describes one non-equal span of a line-level diff.
// Line ranges are 0-based half-open intervals into the respective versions.
type ContentChange struct {
	Kind ChangeKind `json:"kind"`

	OldStart int `json:"oldStart"`
	OldEnd   int `json:"oldEnd"`
	NewStart int `json:"newStart"`
	NewEnd   int `json:"newEnd"`

	OldLines []string `json:"oldLines"`
	NewLines []string `json:"newLines"`
}

// DiffResult holds the outcome of comparing two text versions.
type DiffResult struct {
	Changes []ContentChange `json:"changes"`

	// ChangeRatio is a 0-100 scalar measuring dissimilarity between the two
	// texts, rounded to one decimal place. Empty old text yields 100.0 (the
	// first version is a full change).
	ChangeRatio float64 `json:"changeRatio"`
}

// Differ computes line-level diffs and change magnitude between two text
// versions. Implementations must be pure: no I/O, no shared state, safe to
// call concurrently.
type Differ interface {
	Compare(oldText, newText string) (*DiffResult, error)
}
