package handler

import (
	"log"
	"net/http"

	"mocar/internal/repository"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	repo *repository.GalleryRepository
}

func NewGalleryHandler(repo *repository.GalleryRepository) *GalleryHandler {
	return &GalleryHandler{repo: repo}
}

// List responds with a flat list of URLs in insertion order.
func (h *GalleryHandler) List(c *gin.Context) {
	urls, err := h.repo.ListURLs()
	if err != nil {
		log.Printf("[gallery] list: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, urls)
}

func (h *GalleryHandler) Add(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "URL is required")
		return
	}
	if err := h.repo.Add(req.URL); err != nil {
		log.Printf("[gallery] add: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": req.URL})
}

// Delete removes every row matching the url query parameter.
func (h *GalleryHandler) Delete(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		fail(c, http.StatusBadRequest, "URL is required")
		return
	}
	if err := h.repo.DeleteByURL(url); err != nil {
		log.Printf("[gallery] delete: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	ok(c)
}
