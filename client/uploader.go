// Package client implements a Go client for the file share: login,
// listing, and a single-flight upload state machine with progress and
// speed reporting.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/cultsicarias/File-Shrine/tool"
	"github.com/cultsicarias/File-Shrine/types"
)

// State of the upload machine.
type State int

const (
	StateIdle State = iota
	StateUploading
)

// ErrUploadInFlight is returned by Submit while a previous upload is still
// running. The text is shown to the user as-is.
var ErrUploadInFlight = errors.New("Please wait for the current upload to finish")

// speedSampleInterval matches the half-second smoothing of the web client.
const speedSampleInterval = 500 * time.Millisecond

// File is one member of an upload set.
type File struct {
	Name    string
	Content io.Reader
}

// Uploader talks to the share server. At most one upload is in flight at a
// time; a second Submit is rejected, not queued.
type Uploader struct {
	baseURL string
	http    *http.Client

	mu      sync.Mutex
	state   State
	pending []File

	// OnProgress receives loaded/total for every body read once the total
	// size is known.
	OnProgress func(loaded, total int64)
	// OnSpeed receives a formatted rate ("1.5 MB/s") at most every 0.5s.
	OnSpeed func(rate string)
	// OnListing receives the fresh listing fetched after a successful upload.
	OnListing func(files []types.FileEntry)
}

// NewUploader creates an uploader for the server at baseURL
// (e.g. "http://192.168.1.10:3000"). The underlying HTTP client keeps the
// session cookie across requests.
func NewUploader(baseURL string) *Uploader {
	return &Uploader{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    tool.NewHTTPClient(),
	}
}

// State reports the current machine state.
func (u *Uploader) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// Login submits the shared password. A wrong password comes back as an
// error carrying the server's message.
func (u *Uploader) Login(ctx context.Context, password string) error {
	body, err := sonic.Marshal(types.LoginRequest{Password: password})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.http.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer closeBody(resp)

	msg, err := parseMessage(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return errors.New(msg)
	}
	return nil
}

// AuthStatus reports whether the current session is authenticated.
func (u *Uploader) AuthStatus(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+"/auth-status", nil)
	if err != nil {
		return false, err
	}
	resp, err := u.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("auth-status request failed: %w", err)
	}
	defer closeBody(resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}
	var status types.AuthStatusResponse
	if err := sonic.Unmarshal(data, &status); err != nil {
		return false, fmt.Errorf("failed to parse auth-status response: %v", err)
	}
	return status.Authenticated, nil
}

// ListFiles fetches the shared-folder listing.
func (u *Uploader) ListFiles(ctx context.Context) ([]types.FileEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+"/files", nil)
	if err != nil {
		return nil, err
	}
	resp, err := u.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("files request failed: %w", err)
	}
	defer closeBody(resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		var msg types.MessageResponse
		if err := sonic.Unmarshal(data, &msg); err == nil && msg.Message != "" {
			return nil, errors.New(msg.Message)
		}
		return nil, fmt.Errorf("files request failed: %s", resp.Status)
	}
	var files []types.FileEntry
	if err := sonic.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("failed to parse files response: %v", err)
	}
	return files, nil
}

// Download streams a stored file into w.
func (u *Uploader) Download(ctx context.Context, name string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+"/download/"+name, nil)
	if err != nil {
		return err
	}
	resp, err := u.http.Do(req)
	if err != nil {
		return fmt.Errorf("download request failed: %w", err)
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		msg, _ := parseMessage(resp.Body)
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("download failed: %s", msg)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

// Submit uploads the whole file set as one multipart request. While an
// upload is in flight further submissions are rejected with
// ErrUploadInFlight and no network call happens. On every terminal outcome
// the machine returns to Idle and the pending set is cleared, so re-submitting
// the same files afterwards works.
func (u *Uploader) Submit(ctx context.Context, files []File) error {
	u.mu.Lock()
	if u.state == StateUploading {
		u.mu.Unlock()
		return ErrUploadInFlight
	}
	u.state = StateUploading
	u.pending = files
	u.mu.Unlock()

	defer func() {
		u.mu.Lock()
		u.state = StateIdle
		u.pending = nil
		u.mu.Unlock()
	}()

	payload, contentType, err := buildMultipart(files)
	if err != nil {
		return fmt.Errorf("failed to build upload payload: %w", err)
	}

	total := int64(payload.Len())
	sampler := newSpeedSampler(speedSampleInterval)
	reader := newProgressReader(payload, total, func(loaded, total int64) {
		if u.OnProgress != nil {
			u.OnProgress(loaded, total)
		}
		if u.OnSpeed != nil {
			if bps, ok := sampler.Sample(loaded); ok {
				u.OnSpeed(tool.FormatSpeed(bps))
			}
		}
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+"/upload", reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = total

	resp, err := u.http.Do(req)
	if err != nil {
		return fmt.Errorf("Upload failed! Network error: %w", err)
	}
	defer closeBody(resp)

	msg, parseErr := parseMessage(resp.Body)
	if resp.StatusCode != http.StatusOK {
		if parseErr != nil || msg == "" {
			msg = "Upload failed"
		}
		return errors.New(msg)
	}

	if u.OnListing != nil {
		files, err := u.ListFiles(ctx)
		if err != nil {
			tool.DefaultLogger.Errorf("Failed to refresh listing after upload: %v", err)
		} else {
			u.OnListing(files)
		}
	}
	return nil
}

func buildMultipart(files []File) (*bytes.Buffer, string, error) {
	payload := &bytes.Buffer{}
	writer := multipart.NewWriter(payload)
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return payload, writer.FormDataContentType(), nil
}

func parseMessage(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	var msg types.MessageResponse
	if err := sonic.Unmarshal(data, &msg); err != nil {
		return "", fmt.Errorf("failed to parse server response: %v", err)
	}
	return msg.Message, nil
}

func closeBody(resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		tool.DefaultLogger.Errorf("Failed to close response body: %v", err)
	}
}
