package main

//	@title			Seed Planner API
//	@version		1.0
//	@description	Planting management API: seed trays, species, cultivars and a derived seeding calendar.
//	@schemes		http https
//	@BasePath		/api/v1

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/seed-planner/seed-planner-api/internal/bootstrap"
	"github.com/seed-planner/seed-planner-api/internal/config"
	"github.com/seed-planner/seed-planner-api/internal/infra/cache"
	dbpkg "github.com/seed-planner/seed-planner-api/internal/infra/db"
	"github.com/seed-planner/seed-planner-api/internal/modules/handler"
	"github.com/seed-planner/seed-planner-api/internal/router"
	"github.com/seed-planner/seed-planner-api/internal/telemetry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	db := do.MustInvoke[*gorm.DB](inj)
	rdb := do.MustInvoke[*redis.Client](inj)

	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
			log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin, continuing without database tracing", "err", err)
		}
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin, continuing without Redis tracing", "err", err)
		}
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:          cfg,
		Log:             log,
		TrayHandler:     do.MustInvoke[*handler.TrayHandler](inj),
		SpeciesHandler:  do.MustInvoke[*handler.SpeciesHandler](inj),
		PlantHandler:    do.MustInvoke[*handler.PlantHandler](inj),
		CellHandler:     do.MustInvoke[*handler.CellHandler](inj),
		CalendarHandler: do.MustInvoke[*handler.CalendarHandler](inj),
		MetaHandler:     do.MustInvoke[*handler.MetaHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
