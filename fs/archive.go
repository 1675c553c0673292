// Package fs provides filesystem storage for raw HTML snapshots.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pagewatch/pagewatch"
)

// Ensure Archive implements pagewatch.Archiver at compile time.
var _ pagewatch.Archiver = (*Archive)(nil)

// Archive stores raw HTML snapshots under baseDir, one file per captured
// version: baseDir/<pageID>/<versionID>.html. Writes go to a temporary file
// first and are renamed into place so readers never observe partial
// snapshots.
type Archive struct {
	baseDir string
}

// NewArchive creates a new Archive rooted at baseDir.
func NewArchive(baseDir string) *Archive {
	return &Archive{baseDir: baseDir}
}

// Archive stores the raw HTML for a captured version.
func (a *Archive) Archive(ctx context.Context, pageID, versionID, rawHTML string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if pageID == "" || versionID == "" {
		return pagewatch.Errorf(pagewatch.EINVALID, "archive requires page and version IDs")
	}

	dir := filepath.Join(a.baseDir, pageID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	finalPath := filepath.Join(dir, versionID+".html")
	tempPath := finalPath + ".tmp"

	if err := os.WriteFile(tempPath, []byte(rawHTML), 0644); err != nil {
		return err
	}
	return os.Rename(tempPath, finalPath)
}

// Read returns the raw HTML previously archived for a version.
// Returns ENOTFOUND if no snapshot exists.
func (a *Archive) Read(pageID, versionID string) (string, error) {
	data, err := os.ReadFile(filepath.Join(a.baseDir, pageID, versionID+".html"))
	if os.IsNotExist(err) {
		return "", pagewatch.Errorf(pagewatch.ENOTFOUND, "no archived snapshot for version %s", versionID)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
