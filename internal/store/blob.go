// ABOUTME: Filesystem blob store for icon images referenced by habit records.
// ABOUTME: Blobs live beside the record slots, named by owner plus a generated suffix.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BlobStore keeps one raw binary blob per generated reference in a local
// directory, outside the JSON record format. Records point at blobs by
// reference string; a dangling reference resolves to absent, never an
// error.
type BlobStore struct {
	dir string
}

// NewBlobStore creates a blob store rooted at dir.
func NewBlobStore(dir string) *BlobStore {
	return &BlobStore{dir: dir}
}

// Write stores data under a freshly generated reference and returns it.
// A write failure is a real error the caller must handle (retry or drop
// the reference); the owning record is never touched here. Writing again
// for the same owner yields a new reference and orphans the old blob.
func (b *BlobStore) Write(ownerID string, data []byte) (string, error) {
	if err := os.MkdirAll(b.dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create blob directory: %w", err)
	}

	ref := ownerID + "-" + uuid.NewString()[:8]
	if err := os.WriteFile(b.path(ref), data, 0600); err != nil {
		return "", fmt.Errorf("failed to write blob %s: %w", ref, err)
	}
	return ref, nil
}

// Read returns the blob bytes for a reference. An empty reference, a
// missing file, or a reference that escapes the blob directory all
// report absent; callers substitute a placeholder.
func (b *BlobStore) Read(ref string) ([]byte, bool) {
	if ref == "" || strings.Contains(ref, string(filepath.Separator)) {
		return nil, false
	}
	data, err := os.ReadFile(b.path(ref))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (b *BlobStore) path(ref string) string {
	return filepath.Join(b.dir, ref)
}
