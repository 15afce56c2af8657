package handler

import (
	"errors"
	"log"
	"net/http"

	"mocar/internal/repository"

	"github.com/gin-gonic/gin"
)

// PlaceHandler serves one named-set collection; the router creates one
// instance for cities and one for locations. label feeds user-facing
// messages ("City already exists").
type PlaceHandler struct {
	repo  *repository.PlaceRepository
	label string
}

func NewPlaceHandler(repo *repository.PlaceRepository, label string) *PlaceHandler {
	return &PlaceHandler{repo: repo, label: label}
}

// List responds with a flat sorted list of names, not objects.
func (h *PlaceHandler) List(c *gin.Context) {
	names, err := h.repo.ListNames()
	if err != nil {
		log.Printf("[place] list: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, names)
}

func (h *PlaceHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Name is required")
		return
	}
	if err := h.repo.Create(req.Name); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			fail(c, http.StatusBadRequest, h.label+" already exists")
			return
		}
		log.Printf("[place] create: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"name": req.Name})
}

func (h *PlaceHandler) Delete(c *gin.Context) {
	if err := h.repo.DeleteByName(c.Param("name")); err != nil {
		log.Printf("[place] delete: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	ok(c)
}
