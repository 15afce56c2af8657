package handler

import (
	"log"
	"net/http"

	"mocar/internal/models"
	"mocar/internal/repository"

	"github.com/gin-gonic/gin"
)

type HeroHandler struct {
	repo *repository.HeroRepository
}

func NewHeroHandler(repo *repository.HeroRepository) *HeroHandler {
	return &HeroHandler{repo: repo}
}

// List responds with full {id, url} rows so entries stay deletable by id
// when URLs collide.
func (h *HeroHandler) List(c *gin.Context) {
	rows, err := h.repo.List()
	if err != nil {
		log.Printf("[hero] list: %v", err)
		c.JSON(http.StatusOK, []models.HeroImage{})
		return
	}
	if rows == nil {
		rows = []models.HeroImage{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *HeroHandler) Add(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "URL is required")
		return
	}
	row, err := h.repo.Add(req.URL)
	if err != nil {
		log.Printf("[hero] add: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *HeroHandler) Delete(c *gin.Context) {
	id, idOK := pathID(c, "id")
	if idOK {
		if err := h.repo.DeleteByID(id); err != nil {
			log.Printf("[hero] delete: %v", err)
			fail(c, http.StatusInternalServerError, "Server error")
			return
		}
	}
	ok(c)
}
