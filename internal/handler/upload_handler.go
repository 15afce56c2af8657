package handler

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"mocar/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	store storage.Storage
}

func NewUploadHandler(store storage.Storage) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload accepts one multipart file and stores it under a generated unique
// name. The file is durable before the response goes out; registering the
// returned URL (hero, gallery, vehicle image) is the caller's separate step.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	name := "file_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16] + filepath.Ext(file.Filename)

	f, err := file.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "Could not read file")
		return
	}
	defer f.Close()

	url, err := h.store.Save(c.Request.Context(), name, f)
	if err != nil {
		log.Printf("[upload] save: %v", err)
		fail(c, http.StatusInternalServerError, "Upload failed")
		return
	}
	if strings.HasPrefix(url, "/") {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		url = scheme + "://" + c.Request.Host + url
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
