package api

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultsicarias/File-Shrine/api/models"
	"github.com/cultsicarias/File-Shrine/api/notifyhub"
	"github.com/cultsicarias/File-Shrine/client"
	"github.com/cultsicarias/File-Shrine/store"
	"github.com/cultsicarias/File-Shrine/types"
)

func newTestServer(t *testing.T) (*httptest.Server, *Server) {
	t.Helper()
	blobs, err := store.NewDir(t.TempDir())
	require.NoError(t, err)

	cfg := types.AppConfig{
		Password:     "JAM",
		Port:         0,
		UploadFolder: blobs.Root(),
	}
	srv := NewServer(cfg, blobs, models.NewSessionStore(time.Minute), notifyhub.New())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, srv
}

func TestFullClientFlow(t *testing.T) {
	ts, _ := newTestServer(t)
	ctx := context.Background()
	u := client.NewUploader(ts.URL)

	// Fresh session: not authenticated, protected calls rejected.
	authed, err := u.AuthStatus(ctx)
	require.NoError(t, err)
	assert.False(t, authed)

	_, err = u.ListFiles(ctx)
	require.Error(t, err)
	assert.Equal(t, "Not authenticated", err.Error())

	// Wrong password leaves the session unauthenticated.
	err = u.Login(ctx, "jam")
	require.Error(t, err)
	assert.Equal(t, "Incorrect password", err.Error())

	authed, err = u.AuthStatus(ctx)
	require.NoError(t, err)
	assert.False(t, authed)

	// Correct password flips the same session to authenticated.
	require.NoError(t, u.Login(ctx, "JAM"))
	authed, err = u.AuthStatus(ctx)
	require.NoError(t, err)
	assert.True(t, authed)

	// Upload a batch, list it back, download one file.
	err = u.Submit(ctx, []client.File{
		{Name: "photo.PNG", Content: strings.NewReader("png bytes")},
		{Name: "clip.mp4", Content: strings.NewReader("video bytes")},
	})
	require.NoError(t, err)

	files, err := u.ListFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
	byName := map[string]types.FileEntry{}
	for _, f := range files {
		byName[f.Name] = f
	}
	assert.Equal(t, types.MediaImage, byName["photo.PNG"].Type)
	assert.Equal(t, types.MediaVideo, byName["clip.mp4"].Type)

	var out bytes.Buffer
	require.NoError(t, u.Download(ctx, "photo.PNG", &out))
	assert.Equal(t, "png bytes", out.String())
}

func TestUploadNotificationReachesWatcher(t *testing.T) {
	ts, srv := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	watcher := client.NewUploader(ts.URL)
	require.NoError(t, watcher.Login(ctx, "JAM"))

	refreshed := make(chan []types.FileEntry, 1)
	watcher.OnListing = func(files []types.FileEntry) {
		select {
		case refreshed <- files:
		default:
		}
	}
	watchErr := make(chan error, 1)
	go func() { watchErr <- watcher.WatchNotifications(ctx) }()

	uploader := client.NewUploader(ts.URL)
	require.NoError(t, uploader.Login(ctx, "JAM"))

	// Wait until the watcher's websocket is registered with the hub.
	require.Eventually(t, func() bool {
		return srv.Hub().ConnCount() > 0
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, uploader.Submit(ctx, []client.File{
		{Name: "drop.txt", Content: strings.NewReader("hi")},
	}))

	select {
	case files := <-refreshed:
		require.Len(t, files, 1)
		assert.Equal(t, "drop.txt", files[0].Name)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher never received the upload notification")
	}

	cancel()
	<-watchErr
}

func TestQRCodeEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/qr?size=128x128")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}
