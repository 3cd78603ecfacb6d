package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultsicarias/File-Shrine/types"
)

func newTestDir(t *testing.T) *Dir {
	t.Helper()
	d, err := NewDir(t.TempDir())
	require.NoError(t, err)
	return d
}

func TestMediaTypeOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"photo.png", types.MediaImage},
		{"photo.PNG", types.MediaImage},
		{"shot.JpEg", types.MediaImage},
		{"clip.mp4", types.MediaVideo},
		{"clip.MOV", types.MediaVideo},
		{"song.mp3", types.MediaAudio},
		{"song.OGG", types.MediaAudio},
		{"notes.txt", types.MediaOther},
		{"archive.tar.gz", types.MediaOther},
		{"noextension", types.MediaOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MediaTypeOf(tt.name), tt.name)
	}
}

func TestPutAndList(t *testing.T) {
	d := newTestDir(t)

	n, err := d.Put("photo.PNG", strings.NewReader("fake png bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(14), n)

	files, err := d.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "photo.PNG", files[0].Name)
	assert.Equal(t, int64(14), files[0].Size)
	assert.Equal(t, types.MediaImage, files[0].Type)
}

func TestPutOverwritesSameName(t *testing.T) {
	d := newTestDir(t)

	_, err := d.Put("notes.txt", strings.NewReader("first version"))
	require.NoError(t, err)
	_, err = d.Put("notes.txt", strings.NewReader("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(d.Root(), "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	files, err := d.List()
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestPutStripsDirectoryComponents(t *testing.T) {
	d := newTestDir(t)

	_, err := d.Put("../../etc/passwd", strings.NewReader("nope"))
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(d.Root(), "passwd"))
	assert.NoError(t, statErr, "file should land inside the shared folder under its base name")

	files, err := d.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "passwd", files[0].Name)
}

func TestPutRejectsEmptyName(t *testing.T) {
	d := newTestDir(t)

	_, err := d.Put("   ", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	d := newTestDir(t)

	_, err := d.Put("song.mp3", strings.NewReader("audio"))
	require.NoError(t, err)

	path, info, err := d.Get("song.mp3")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(d.Root(), "song.mp3"), path)
	assert.Equal(t, int64(5), info.Size())

	_, _, err = d.Get("missing.bin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSkipsSubdirectories(t *testing.T) {
	d := newTestDir(t)

	require.NoError(t, os.Mkdir(filepath.Join(d.Root(), "nested"), 0o755))
	_, err := d.Put("top.txt", strings.NewReader("x"))
	require.NoError(t, err)

	files, err := d.List()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "top.txt", files[0].Name)
}
