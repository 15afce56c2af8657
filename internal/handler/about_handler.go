package handler

import (
	"log"
	"net/http"

	"mocar/internal/repository"

	"github.com/gin-gonic/gin"
)

type AboutHandler struct {
	repo *repository.AboutRepository
}

func NewAboutHandler(repo *repository.AboutRepository) *AboutHandler {
	return &AboutHandler{repo: repo}
}

// Get never errors; with no image set it responds {"img": null}.
func (h *AboutHandler) Get(c *gin.Context) {
	a, err := h.repo.Get()
	if err != nil {
		log.Printf("[about] get: %v", err)
		c.JSON(http.StatusOK, gin.H{"img": nil})
		return
	}
	if a == nil {
		c.JSON(http.StatusOK, gin.H{"img": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"img": a.Img})
}

// Set replaces whatever is stored; the collection never holds more than
// one row.
func (h *AboutHandler) Set(c *gin.Context) {
	var req struct {
		Img string `json:"img"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.repo.Replace(req.Img); err != nil {
		log.Printf("[about] set: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "img": req.Img})
}

func (h *AboutHandler) Delete(c *gin.Context) {
	if err := h.repo.Clear(); err != nil {
		log.Printf("[about] delete: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	ok(c)
}
