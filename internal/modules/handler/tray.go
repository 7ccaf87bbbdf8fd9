package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"github.com/seed-planner/seed-planner-api/internal/modules/serializer"
	"github.com/seed-planner/seed-planner-api/internal/modules/service"
)

type TrayHandler struct {
	svc service.TrayService
}

func NewTrayHandler(s service.TrayService) *TrayHandler {
	return &TrayHandler{svc: s}
}

type TrayReq struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Rows     int    `json:"rows" binding:"required,min=1"`
	Columns  int    `json:"columns" binding:"required,min=1"`
	Notes    string `json:"notes"`
}

// ListTrays godoc
//
//	@Summary		List trays
//	@Description	Get all seed trays
//	@Tags			tray
//	@Produce		json
//	@Success		200	{array}	model.Tray
//	@Router			/trays [get]
func (h *TrayHandler) ListTrays(c *gin.Context) {
	trays, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, err, "")
		return
	}
	c.JSON(http.StatusOK, trays)
}

// GetTray godoc
//
//	@Summary		Get tray
//	@Description	Get a single tray by its ID
//	@Tags			tray
//	@Produce		json
//	@Param			trayId	path	integer	true	"Tray ID"
//	@Success		200	{object}	model.Tray
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/trays/{trayId} [get]
func (h *TrayHandler) GetTray(c *gin.Context) {
	id, err := pathID(c, "trayId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	tray, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err, "Tray not found")
		return
	}
	c.JSON(http.StatusOK, tray)
}

// CreateTray godoc
//
//	@Summary		Create tray
//	@Description	Create a new tray with a rows x columns grid
//	@Tags			tray
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.TrayReq	true	"Tray payload"
//	@Success		200	{object}	model.Tray
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Router			/trays [post]
func (h *TrayHandler) CreateTray(c *gin.Context) {
	req := TrayReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	tray := model.Tray{
		Name:     req.Name,
		Location: req.Location,
		Rows:     req.Rows,
		Columns:  req.Columns,
		Notes:    req.Notes,
	}
	if err := h.svc.Create(c.Request.Context(), &tray); err != nil {
		respondErr(c, err, "")
		return
	}
	c.JSON(http.StatusOK, tray)
}

// UpdateTray godoc
//
//	@Summary		Update tray
//	@Description	Update an existing tray's details
//	@Tags			tray
//	@Accept			json
//	@Produce		json
//	@Param			trayId	path	integer			true	"Tray ID"
//	@Param			payload	body	handler.TrayReq	true	"Tray payload"
//	@Success		200	{object}	map[string]bool
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/trays/{trayId} [put]
func (h *TrayHandler) UpdateTray(c *gin.Context) {
	id, err := pathID(c, "trayId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	req := TrayReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	if err := h.svc.Update(c.Request.Context(), &model.Tray{
		ID:       id,
		Name:     req.Name,
		Location: req.Location,
		Rows:     req.Rows,
		Columns:  req.Columns,
		Notes:    req.Notes,
	}); err != nil {
		respondErr(c, err, "Tray not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Success())
}

// DeleteTray godoc
//
//	@Summary		Delete tray
//	@Description	Delete a tray and all of its assigned cells
//	@Tags			tray
//	@Produce		json
//	@Param			trayId	path	integer	true	"Tray ID"
//	@Success		200	{object}	map[string]bool
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Router			/trays/{trayId} [delete]
func (h *TrayHandler) DeleteTray(c *gin.Context) {
	id, err := pathID(c, "trayId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr(err))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err, "Tray not found")
		return
	}
	c.JSON(http.StatusOK, serializer.Success())
}
