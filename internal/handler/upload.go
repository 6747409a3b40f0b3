package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"advent-creator/internal/logger"
	"advent-creator/internal/storage"
)

type UploadHandler struct {
	store storage.Storage
}

func NewUploadHandler(store storage.Storage) *UploadHandler { return &UploadHandler{store: store} }

// POST /api/upload — day media (photo/audio). Returns the URL to merge into
// the day's content.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil || file.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer src.Close()

	url, err := h.store.Store(c.Request.Context(), file.Filename, src)
	if err != nil {
		logger.Error("upload failed", "file", file.Filename, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	logger.Info("upload.ok", "file", file.Filename, "url", url)
	c.JSON(http.StatusOK, gin.H{"url": url})
}
