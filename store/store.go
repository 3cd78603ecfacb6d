// Package store abstracts the shared directory as a flat blob store so the
// handlers never touch the filesystem directly.
package store

import (
	"errors"
	"io"
	"os"

	"github.com/cultsicarias/File-Shrine/types"
)

// ErrNotFound is returned by Get when no blob exists under the given name.
var ErrNotFound = errors.New("file not found")

// Store is a flat key-value blob store. Names are unique; Put with an
// existing name replaces the previous content (last writer wins).
type Store interface {
	// Put writes the blob under name and returns the number of bytes written.
	Put(name string, r io.Reader) (int64, error)
	// List enumerates stored blobs in backend order. Entries whose metadata
	// cannot be read are skipped.
	List() ([]types.FileEntry, error)
	// Get resolves name to a local path and its stat info for streaming.
	Get(name string) (string, os.FileInfo, error)
}
