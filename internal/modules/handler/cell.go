package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seed-planner/seed-planner-api/internal/modules/serializer"
	"github.com/seed-planner/seed-planner-api/internal/modules/service"
)

type CellHandler struct {
	svc service.CellService
}

func NewCellHandler(s service.CellService) *CellHandler {
	return &CellHandler{svc: s}
}

// X and Y are pointers so the zero coordinate survives required
// validation.
type AssignCellReq struct {
	X       *int `json:"x" binding:"required"`
	Y       *int `json:"y" binding:"required"`
	PlantID uint `json:"plant_id" binding:"required"`
}

type ResetCellReq struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

// ListCells godoc
//
//	@Summary		List tray cells
//	@Description	Get the stored cell assignments of a tray with plant names joined in
//	@Tags			cell
//	@Produce		json
//	@Param			trayId	path	integer	true	"Tray ID"
//	@Success		200	{array}	model.CellWithPlant
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/trays/{trayId}/cells [get]
func (h *CellHandler) ListCells(c *gin.Context) {
	trayID, err := pathID(c, "trayId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	cells, err := h.svc.ListByTray(c.Request.Context(), trayID)
	if err != nil {
		respondErr(c, err, "Tray not found")
		return
	}
	c.JSON(http.StatusOK, cells)
}

// TrayGrid godoc
//
//	@Summary		Tray grid
//	@Description	Get a tray together with its cell assignments enriched by plant and species names
//	@Tags			cell
//	@Produce		json
//	@Param			trayId	path	integer	true	"Tray ID"
//	@Success		200	{object}	map[string]any
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/trays/{trayId}/grid [get]
func (h *CellHandler) TrayGrid(c *gin.Context) {
	trayID, err := pathID(c, "trayId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	tray, cells, err := h.svc.Grid(c.Request.Context(), trayID)
	if err != nil {
		respondErr(c, err, "Tray not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tray": tray, "grid": cells})
}

// AssignCell godoc
//
//	@Summary		Assign cell
//	@Description	Plant a cultivar at (x, y); overwrites any previous occupant and stamps today's date
//	@Tags			cell
//	@Accept			json
//	@Produce		json
//	@Param			trayId	path	integer					true	"Tray ID"
//	@Param			payload	body	handler.AssignCellReq	true	"Assignment payload"
//	@Success		200	{object}	map[string]bool
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/trays/{trayId}/cells [post]
func (h *CellHandler) AssignCell(c *gin.Context) {
	trayID, err := pathID(c, "trayId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	req := AssignCellReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	if err := h.svc.Assign(c.Request.Context(), trayID, *req.X, *req.Y, req.PlantID); err != nil {
		respondErr(c, err, "Tray not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Success())
}

// ResetCell godoc
//
//	@Summary		Reset cell
//	@Description	Clear the plant from (x, y); resetting an empty cell succeeds silently
//	@Tags			cell
//	@Accept			json
//	@Produce		json
//	@Param			trayId	path	integer					true	"Tray ID"
//	@Param			payload	body	handler.ResetCellReq	true	"Reset payload"
//	@Success		200	{object}	map[string]bool
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Router			/trays/{trayId}/cells/reset [put]
func (h *CellHandler) ResetCell(c *gin.Context) {
	trayID, err := pathID(c, "trayId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	req := ResetCellReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	if err := h.svc.Reset(c.Request.Context(), trayID, *req.X, *req.Y); err != nil {
		respondErr(c, err, "Tray not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Success())
}
