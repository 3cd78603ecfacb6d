package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"github.com/cultsicarias/File-Shrine/tool"
)

const (
	defaultQRSize = 200
	maxQRSize     = 512
)

// QRCodeController renders the share URL as a QR code so phones can join.
type QRCodeController struct {
	shareURL string
}

func NewQRCodeController(shareURL string) *QRCodeController {
	return &QRCodeController{shareURL: shareURL}
}

// HandleQRCode returns a PNG QR code of the share URL.
// GET /qr?size=200x200 (size format matches api.qrserver.com)
func (qc *QRCodeController) HandleQRCode(c *gin.Context) {
	size := parseSize(c.Query("size"))
	if size <= 0 {
		size = defaultQRSize
	}
	if size > maxQRSize {
		size = maxQRSize
	}

	png, err := qrcode.Encode(qc.shareURL, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, tool.FastReturnMessage("Failed to encode QR code: "+err.Error()))
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// parseSize parses size from "200x200" or "200" and returns the pixel dimension.
func parseSize(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if idx := strings.Index(s, "x"); idx > 0 {
		s = strings.TrimSpace(s[:idx])
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
