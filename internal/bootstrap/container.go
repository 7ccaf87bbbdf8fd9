package bootstrap

import (
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/seed-planner/seed-planner-api/internal/config"
	"github.com/seed-planner/seed-planner-api/internal/infra/cache"
	"github.com/seed-planner/seed-planner-api/internal/infra/db"
	"github.com/seed-planner/seed-planner-api/internal/infra/logger"
	"github.com/seed-planner/seed-planner-api/internal/modules/handler"
	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"github.com/seed-planner/seed-planner-api/internal/modules/repo"
	"github.com/seed-planner/seed-planner-api/internal/modules/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			if err := d.AutoMigrate(
				&model.Species{},
				&model.Plant{},
				&model.Tray{},
				&model.TrayCell{},
			); err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis (nil when disabled)
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.TrayRepo, error) {
		return repo.NewTrayRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SpeciesRepo, error) {
		return repo.NewSpeciesRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.PlantRepo, error) {
		return repo.NewPlantRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.CellRepo, error) {
		return repo.NewCellRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.CalendarService, error) {
		return service.NewCalendarService(
			do.MustInvoke[repo.CellRepo](i),
			do.MustInvoke[*redis.Client](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TrayService, error) {
		return service.NewTrayService(
			do.MustInvoke[repo.TrayRepo](i),
			do.MustInvoke[service.CalendarService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SpeciesService, error) {
		return service.NewSpeciesService(do.MustInvoke[repo.SpeciesRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PlantService, error) {
		return service.NewPlantService(
			do.MustInvoke[repo.PlantRepo](i),
			do.MustInvoke[service.CalendarService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CellService, error) {
		return service.NewCellService(
			do.MustInvoke[repo.CellRepo](i),
			do.MustInvoke[repo.TrayRepo](i),
			do.MustInvoke[service.CalendarService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.TrayHandler, error) {
		return handler.NewTrayHandler(do.MustInvoke[service.TrayService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SpeciesHandler, error) {
		return handler.NewSpeciesHandler(do.MustInvoke[service.SpeciesService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PlantHandler, error) {
		return handler.NewPlantHandler(do.MustInvoke[service.PlantService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CellHandler, error) {
		return handler.NewCellHandler(do.MustInvoke[service.CellService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CalendarHandler, error) {
		return handler.NewCalendarHandler(do.MustInvoke[service.CalendarService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.MetaHandler, error) {
		return handler.NewMetaHandler(do.MustInvoke[*config.Config](i)), nil
	})

	return inj
}
