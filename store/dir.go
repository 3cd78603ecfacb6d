package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cultsicarias/File-Shrine/tool"
	"github.com/cultsicarias/File-Shrine/types"
)

// Extension sets for the coarse media classification. Matching is
// case-insensitive and purely suffix based.
var (
	imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}
	videoExts = map[string]bool{".mp4": true, ".webm": true, ".mov": true}
	audioExts = map[string]bool{".mp3": true, ".wav": true, ".ogg": true}
)

// MediaTypeOf returns the coarse media category for a file name.
func MediaTypeOf(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case imageExts[ext]:
		return types.MediaImage
	case videoExts[ext]:
		return types.MediaVideo
	case audioExts[ext]:
		return types.MediaAudio
	default:
		return types.MediaOther
	}
}

// Dir implements Store over a single shared directory.
type Dir struct {
	root string
}

// NewDir creates the directory if needed and returns a Dir store over it.
func NewDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir failed: %w", err)
	}
	return &Dir{root: root}, nil
}

// Root returns the backing directory path.
func (d *Dir) Root() string {
	return d.root
}

// Put writes the blob under the base of name. Directory components in the
// submitted name are stripped so an upload cannot escape the shared folder.
// A same-named blob is overwritten.
func (d *Dir) Put(name string, r io.Reader) (int64, error) {
	fileName := filepath.Base(strings.TrimSpace(name))
	if fileName == "" || fileName == "." || fileName == string(os.PathSeparator) {
		return 0, fmt.Errorf("invalid file name %q", name)
	}
	targetPath := filepath.Join(d.root, fileName)

	file, err := os.Create(targetPath)
	if err != nil {
		return 0, fmt.Errorf("create file failed: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			tool.DefaultLogger.Errorf("Failed to close file: %v", err)
		}
	}()

	written, err := io.Copy(file, r)
	if err != nil {
		return written, fmt.Errorf("write file failed: %w", err)
	}
	return written, nil
}

// List enumerates the directory in OS order. Entries whose stat fails and
// subdirectories are silently dropped.
func (d *Dir) List() ([]types.FileEntry, error) {
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("scan upload dir failed: %w", err)
	}
	files := make([]types.FileEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, types.FileEntry{
			Name: entry.Name(),
			Size: info.Size(),
			Type: MediaTypeOf(entry.Name()),
		})
	}
	return files, nil
}

// Get resolves name inside the shared directory. Names resolving outside of
// it or to a directory are reported as not found.
func (d *Dir) Get(name string) (string, os.FileInfo, error) {
	fileName := filepath.Base(name)
	path := filepath.Join(d.root, fileName)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, ErrNotFound
		}
		return "", nil, fmt.Errorf("stat file failed: %w", err)
	}
	if info.IsDir() {
		return "", nil, ErrNotFound
	}
	return path, info, nil
}
