package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cultsicarias/File-Shrine/api/notifyhub"
	"github.com/cultsicarias/File-Shrine/store"
	"github.com/cultsicarias/File-Shrine/tool"
	"github.com/cultsicarias/File-Shrine/types"
)

// UploadController persists multipart uploads into the blob store.
type UploadController struct {
	blobs store.Store
	hub   *notifyhub.Hub // optional, nil when the notify websocket is disabled
}

func NewUploadController(blobs store.Store, hub *notifyhub.Hub) *UploadController {
	return &UploadController{blobs: blobs, hub: hub}
}

// HandleUpload handles POST /upload. Accepts zero or more parts under the
// "files" field and writes each under its original name. A same-named file
// is overwritten; files already written before a failure stay in place.
func (uc *UploadController) HandleUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		tool.DefaultLogger.Errorf("[Upload] Failed to parse multipart form: %v", err)
		c.JSON(http.StatusInternalServerError, tool.FastReturnMessage("Upload failed"))
		return
	}

	saved := make([]string, 0, len(form.File["files"]))
	for _, header := range form.File["files"] {
		part, err := header.Open()
		if err != nil {
			tool.DefaultLogger.Errorf("[Upload] Failed to open part %q: %v", header.Filename, err)
			c.JSON(http.StatusInternalServerError, tool.FastReturnMessage("Upload failed"))
			return
		}
		written, err := uc.blobs.Put(header.Filename, part)
		if closeErr := part.Close(); closeErr != nil {
			tool.DefaultLogger.Errorf("[Upload] Failed to close part %q: %v", header.Filename, closeErr)
		}
		if err != nil {
			tool.DefaultLogger.Errorf("[Upload] Failed to save %q: %v", header.Filename, err)
			c.JSON(http.StatusInternalServerError, tool.FastReturnMessage("Upload failed"))
			return
		}
		tool.DefaultLogger.Infof("[Upload] Saved %q (%s)", header.Filename, tool.FormatFileSize(written))
		saved = append(saved, header.Filename)
	}

	if uc.hub != nil && len(saved) > 0 {
		uc.hub.Broadcast(&types.Notification{
			Type:    types.NotifyTypeFileUploaded,
			Title:   "Files uploaded",
			Message: "New files are available in the shared folder",
			Data: map[string]any{
				"files": saved,
			},
		})
	}

	c.JSON(http.StatusOK, tool.FastReturnMessage("Files uploaded successfully!"))
}
