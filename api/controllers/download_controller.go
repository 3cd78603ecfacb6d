package controllers

import (
	"errors"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/cultsicarias/File-Shrine/store"
	"github.com/cultsicarias/File-Shrine/tool"
)

// DownloadController streams individual files as attachments.
type DownloadController struct {
	blobs store.Store
}

func NewDownloadController(blobs store.Store) *DownloadController {
	return &DownloadController{blobs: blobs}
}

// HandleDownload handles GET /download/:filename.
func (dc *DownloadController) HandleDownload(c *gin.Context) {
	name := c.Param("filename")

	path, _, err := dc.blobs.Get(name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, tool.FastReturnMessage("File not found"))
			return
		}
		tool.DefaultLogger.Errorf("[Download] Failed to stat file %q: %v", name, err)
		c.JSON(http.StatusInternalServerError, tool.FastReturnMessage("Failed to read file"))
		return
	}

	fileName := filepath.Base(path)
	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Header("Content-Type", contentType)

	tool.DefaultLogger.Infof("[Download] Serving file: %s", path)
	c.File(path)
}
