package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cultsicarias/File-Shrine/store"
	"github.com/cultsicarias/File-Shrine/tool"
)

// FilesController serves the shared-folder listing.
type FilesController struct {
	blobs store.Store
}

func NewFilesController(blobs store.Store) *FilesController {
	return &FilesController{blobs: blobs}
}

// HandleListFiles handles GET /files. Returns {name, size, type} entries in
// directory enumeration order, unsorted.
func (fc *FilesController) HandleListFiles(c *gin.Context) {
	files, err := fc.blobs.List()
	if err != nil {
		tool.DefaultLogger.Errorf("[Files] Failed to scan upload dir: %v", err)
		c.JSON(http.StatusInternalServerError, tool.FastReturnMessage("Unable to scan directory"))
		return
	}
	c.JSON(http.StatusOK, files)
}
