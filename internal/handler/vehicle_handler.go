package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"mocar/internal/models"
	"mocar/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// VehicleHandler serves one vehicle collection; the router creates one
// instance for cars and one for bikes.
type VehicleHandler struct {
	repo *repository.VehicleRepository
}

func NewVehicleHandler(repo *repository.VehicleRepository) *VehicleHandler {
	return &VehicleHandler{repo: repo}
}

// SpecList accepts either a JSON string array or a legacy comma-separated
// string on the wire; older admin panels submitted the latter.
type SpecList []string

func (s *SpecList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		if list == nil {
			list = []string{}
		}
		*s = list
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = models.DecodeSpecs(str)
		return nil
	}
	*s = SpecList{}
	return nil
}

type vehiclePrices struct {
	H6  OptionalPrice `json:"6h"`
	H12 OptionalPrice `json:"12h"`
	H24 OptionalPrice `json:"24h"`
}

type vehicleRequest struct {
	Name   string        `json:"name" binding:"required"`
	Badge  string        `json:"badge"`
	Img    string        `json:"img"`
	Specs  SpecList      `json:"specs"`
	Prices vehiclePrices `json:"prices"`
}

func (r *vehicleRequest) toModel() *models.Vehicle {
	return &models.Vehicle{
		Name:     r.Name,
		Badge:    optionalString(r.Badge),
		Img:      optionalString(r.Img),
		Specs:    models.EncodeSpecs(r.Specs),
		Price6h:  r.Prices.H6.Value,
		Price12h: r.Prices.H12.Value,
		Price24h: r.Prices.H24.Value,
	}
}

type priceResponse struct {
	H6  *int64 `json:"6h,omitempty"`
	H12 *int64 `json:"12h,omitempty"`
	H24 *int64 `json:"24h,omitempty"`
}

type vehicleResponse struct {
	ID     uint          `json:"id"`
	Name   string        `json:"name"`
	Badge  *string       `json:"badge"`
	Img    *string       `json:"img"`
	Specs  []string      `json:"specs"`
	Prices priceResponse `json:"prices"`
}

func newVehicleResponse(v *models.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:    v.ID,
		Name:  v.Name,
		Badge: v.Badge,
		Img:   v.Img,
		Specs: models.DecodeSpecs(v.Specs),
		Prices: priceResponse{
			H6:  v.Price6h,
			H12: v.Price12h,
			H24: v.Price24h,
		},
	}
}

func (h *VehicleHandler) List(c *gin.Context) {
	rows, err := h.repo.List()
	if err != nil {
		log.Printf("[vehicle] list: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	out := make([]vehicleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, newVehicleResponse(&rows[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *VehicleHandler) Create(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Name is required")
		return
	}
	v := req.toModel()
	if err := h.repo.Create(v); err != nil {
		log.Printf("[vehicle] create: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusCreated, newVehicleResponse(v))
}

func (h *VehicleHandler) Update(c *gin.Context) {
	id, idOK := pathID(c, "id")
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Name is required")
		return
	}
	if !idOK {
		fail(c, http.StatusNotFound, "Not found")
		return
	}
	v := req.toModel()
	v.ID = id
	if err := h.repo.Update(v); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "Not found")
			return
		}
		log.Printf("[vehicle] update: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
		return
	}
	c.JSON(http.StatusOK, newVehicleResponse(v))
}

// Delete is idempotent: removing an id that does not exist still succeeds.
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, idOK := pathID(c, "id")
	if idOK {
		if err := h.repo.Delete(id); err != nil {
			log.Printf("[vehicle] delete: %v", err)
			fail(c, http.StatusInternalServerError, "Server error")
			return
		}
	}
	ok(c)
}
