package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"github.com/seed-planner/seed-planner-api/internal/modules/serializer"
	"github.com/seed-planner/seed-planner-api/internal/modules/service"
)

type PlantHandler struct {
	svc service.PlantService
}

func NewPlantHandler(s service.PlantService) *PlantHandler {
	return &PlantHandler{svc: s}
}

type PlantReq struct {
	SpeciesID       uint   `json:"species_id" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Variety         string `json:"variety"`
	DaysToGerminate *int   `json:"days_to_germinate" binding:"omitempty,min=1"`
	DaysToHarvest   *int   `json:"days_to_harvest" binding:"omitempty,min=1"`
}

// PlantResp flattens the joined species columns next to the cultivar
// fields, matching the list query shape.
type PlantResp struct {
	ID              uint    `json:"id"`
	SpeciesID       uint    `json:"species_id"`
	Name            string  `json:"name"`
	Variety         string  `json:"variety"`
	DaysToGerminate *int    `json:"days_to_germinate"`
	DaysToHarvest   *int    `json:"days_to_harvest"`
	Genus           *string `json:"genus,omitempty"`
	Species         *string `json:"species,omitempty"`
}

func buildPlantResp(p *model.Plant) PlantResp {
	resp := PlantResp{
		ID:              p.ID,
		SpeciesID:       p.SpeciesID,
		Name:            p.Name,
		Variety:         p.Variety,
		DaysToGerminate: p.DaysToGerminate,
		DaysToHarvest:   p.DaysToHarvest,
	}
	if p.Species != nil {
		resp.Genus = &p.Species.Genus
		resp.Species = &p.Species.Species
	}
	return resp
}

// ListPlants godoc
//
//	@Summary		List plants
//	@Description	Get all plant cultivars with their species names
//	@Tags			plant
//	@Produce		json
//	@Success		200	{array}	handler.PlantResp
//	@Router			/plants [get]
func (h *PlantHandler) ListPlants(c *gin.Context) {
	plants, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err, "")
		return
	}
	resp := make([]PlantResp, 0, len(plants))
	for i := range plants {
		resp = append(resp, buildPlantResp(&plants[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetPlant godoc
//
//	@Summary		Get plant
//	@Description	Get a single plant cultivar by its ID
//	@Tags			plant
//	@Produce		json
//	@Param			plantId	path	integer	true	"Plant ID"
//	@Success		200	{object}	handler.PlantResp
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/plants/{plantId} [get]
func (h *PlantHandler) GetPlant(c *gin.Context) {
	id, err := pathID(c, "plantId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	plant, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err, "Plant not found")
		return
	}
	c.JSON(http.StatusOK, buildPlantResp(plant))
}

// CreatePlant godoc
//
//	@Summary		Create plant
//	@Description	Create a new cultivar; day offsets are optional but must be positive
//	@Tags			plant
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.PlantReq	true	"Plant payload"
//	@Success		200	{object}	handler.PlantResp
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Router			/plants [post]
func (h *PlantHandler) CreatePlant(c *gin.Context) {
	req := PlantReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	plant := model.Plant{
		SpeciesID:       req.SpeciesID,
		Name:            req.Name,
		Variety:         req.Variety,
		DaysToGerminate: req.DaysToGerminate,
		DaysToHarvest:   req.DaysToHarvest,
	}
	if err := h.svc.Create(c.Request.Context(), &plant); err != nil {
		respondErr(c, err, "")
		return
	}
	c.JSON(http.StatusOK, buildPlantResp(&plant))
}

// UpdatePlant godoc
//
//	@Summary		Update plant
//	@Description	Update a cultivar; changed day offsets reshape the seeding calendar
//	@Tags			plant
//	@Accept			json
//	@Produce		json
//	@Param			plantId	path	integer				true	"Plant ID"
//	@Param			payload	body	handler.PlantReq	true	"Plant payload"
//	@Success		200	{object}	map[string]bool
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/plants/{plantId} [put]
func (h *PlantHandler) UpdatePlant(c *gin.Context) {
	id, err := pathID(c, "plantId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	req := PlantReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	if err := h.svc.Update(c.Request.Context(), &model.Plant{
		ID:              id,
		SpeciesID:       req.SpeciesID,
		Name:            req.Name,
		Variety:         req.Variety,
		DaysToGerminate: req.DaysToGerminate,
		DaysToHarvest:   req.DaysToHarvest,
	}); err != nil {
		respondErr(c, err, "Plant not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Success())
}

// DeletePlant godoc
//
//	@Summary		Delete plant
//	@Description	Delete a cultivar and remove every tray cell that references it
//	@Tags			plant
//	@Produce		json
//	@Param			plantId	path	integer	true	"Plant ID"
//	@Success		200	{object}	map[string]bool
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/plants/{plantId} [delete]
func (h *PlantHandler) DeletePlant(c *gin.Context) {
	id, err := pathID(c, "plantId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err, "Plant not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Success())
}
