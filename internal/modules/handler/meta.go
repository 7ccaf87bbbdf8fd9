package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/seed-planner/seed-planner-api/internal/config"
)

// MetaHandler serves the internal endpoints the frontend bootstraps
// from.
type MetaHandler struct {
	cfg *config.Config
}

func NewMetaHandler(cfg *config.Config) *MetaHandler {
	return &MetaHandler{cfg: cfg}
}

// Version godoc
//
//	@Summary		Service version
//	@Tags			meta
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/api/internal/v1/version [get]
func (h *MetaHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        h.cfg.App.Name,
		"version":     h.cfg.App.Version,
		"environment": h.cfg.App.Env,
	})
}

// FrontendConfig godoc
//
//	@Summary		Frontend runtime config
//	@Description	Settings the browser client loads at startup instead of baking them in
//	@Tags			meta
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/api/internal/v1/config [get]
func (h *MetaHandler) FrontendConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"api_url":       h.cfg.Frontend.APIURL,
		"otlp_endpoint": h.cfg.Frontend.OtlpEndpoint,
	})
}
