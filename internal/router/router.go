package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/seed-planner/seed-planner-api/docs"
	"github.com/seed-planner/seed-planner-api/internal/config"
	"github.com/seed-planner/seed-planner-api/internal/middleware"
	"github.com/seed-planner/seed-planner-api/internal/modules/handler"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config          *config.Config
	Log             *zap.Logger
	TrayHandler     *handler.TrayHandler
	SpeciesHandler  *handler.SpeciesHandler
	PlantHandler    *handler.PlantHandler
	CellHandler     *handler.CellHandler
	CalendarHandler *handler.CalendarHandler
	MetaHandler     *handler.MetaHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.OtelTracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.ZapLogger(d.Log))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, middleware.RequestIDHeader)
	corsCfg.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsCfg))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		trays := v1.Group("/trays")
		{
			trays.GET("", d.TrayHandler.ListTrays)
			trays.POST("", d.TrayHandler.CreateTray)
			trays.GET("/:trayId", d.TrayHandler.GetTray)
			trays.PUT("/:trayId", d.TrayHandler.UpdateTray)
			trays.DELETE("/:trayId", d.TrayHandler.DeleteTray)

			trays.GET("/:trayId/grid", d.CellHandler.TrayGrid)
			trays.GET("/:trayId/cells", d.CellHandler.ListCells)
			trays.POST("/:trayId/cells", d.CellHandler.AssignCell)
			trays.PUT("/:trayId/cells/reset", d.CellHandler.ResetCell)
		}

		species := v1.Group("/species")
		{
			species.GET("", d.SpeciesHandler.ListSpecies)
			species.POST("", d.SpeciesHandler.CreateSpecies)
			species.GET("/:speciesId", d.SpeciesHandler.GetSpecies)
			species.PUT("/:speciesId", d.SpeciesHandler.UpdateSpecies)
			species.DELETE("/:speciesId", d.SpeciesHandler.DeleteSpecies)
		}

		plants := v1.Group("/plants")
		{
			plants.GET("", d.PlantHandler.ListPlants)
			plants.POST("", d.PlantHandler.CreatePlant)
			plants.GET("/:plantId", d.PlantHandler.GetPlant)
			plants.PUT("/:plantId", d.PlantHandler.UpdatePlant)
			plants.DELETE("/:plantId", d.PlantHandler.DeletePlant)
		}

		v1.GET("/calendar", d.CalendarHandler.Calendar)
	}

	internal := r.Group("/api/internal/v1")
	{
		internal.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
		internal.GET("/version", d.MetaHandler.Version)
		internal.GET("/config", d.MetaHandler.FrontendConfig)
	}

	return r
}
