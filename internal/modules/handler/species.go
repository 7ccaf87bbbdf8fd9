package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"github.com/seed-planner/seed-planner-api/internal/modules/serializer"
	"github.com/seed-planner/seed-planner-api/internal/modules/service"
)

type SpeciesHandler struct {
	svc service.SpeciesService
}

func NewSpeciesHandler(s service.SpeciesService) *SpeciesHandler {
	return &SpeciesHandler{svc: s}
}

type SpeciesReq struct {
	Genus   string `json:"genus" binding:"required"`
	Species string `json:"species" binding:"required"`
}

// ListSpecies godoc
//
//	@Summary		List species
//	@Description	Get all species ordered by genus and species
//	@Tags			species
//	@Produce		json
//	@Success		200	{array}	model.Species
//	@Router			/species [get]
func (h *SpeciesHandler) ListSpecies(c *gin.Context) {
	species, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err, "")
		return
	}
	c.JSON(http.StatusOK, species)
}

// GetSpecies godoc
//
//	@Summary		Get species
//	@Description	Get a single species by its ID
//	@Tags			species
//	@Produce		json
//	@Param			speciesId	path	integer	true	"Species ID"
//	@Success		200	{object}	model.Species
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/species/{speciesId} [get]
func (h *SpeciesHandler) GetSpecies(c *gin.Context) {
	id, err := pathID(c, "speciesId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	sp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err, "Species not found")
		return
	}
	c.JSON(http.StatusOK, sp)
}

// CreateSpecies godoc
//
//	@Summary		Create species
//	@Description	Create a new genus+species record
//	@Tags			species
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.SpeciesReq	true	"Species payload"
//	@Success		200	{object}	model.Species
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Router			/species [post]
func (h *SpeciesHandler) CreateSpecies(c *gin.Context) {
	req := SpeciesReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	sp := model.Species{Genus: req.Genus, Species: req.Species}
	if err := h.svc.Create(c.Request.Context(), &sp); err != nil {
		respondErr(c, err, "")
		return
	}
	c.JSON(http.StatusOK, sp)
}

// UpdateSpecies godoc
//
//	@Summary		Update species
//	@Description	Update an existing species record
//	@Tags			species
//	@Accept			json
//	@Produce		json
//	@Param			speciesId	path	integer				true	"Species ID"
//	@Param			payload		body	handler.SpeciesReq	true	"Species payload"
//	@Success		200	{object}	map[string]bool
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/species/{speciesId} [put]
func (h *SpeciesHandler) UpdateSpecies(c *gin.Context) {
	id, err := pathID(c, "speciesId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	req := SpeciesReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	if err := h.svc.Update(c.Request.Context(), &model.Species{
		ID:      id,
		Genus:   req.Genus,
		Species: req.Species,
	}); err != nil {
		respondErr(c, err, "Species not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Success())
}

// DeleteSpecies godoc
//
//	@Summary		Delete species
//	@Description	Delete a species; fails while plants still reference it
//	@Tags			species
//	@Produce		json
//	@Param			speciesId	path	integer	true	"Species ID"
//	@Success		200	{object}	map[string]bool
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/species/{speciesId} [delete]
func (h *SpeciesHandler) DeleteSpecies(c *gin.Context) {
	id, err := pathID(c, "speciesId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err, "Species not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Success())
}
