package service

import (
	"context"
	"time"

	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"github.com/seed-planner/seed-planner-api/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type CellService interface {
	ListByTray(ctx context.Context, trayID uint) ([]model.CellWithPlant, error)
	Grid(ctx context.Context, trayID uint) (*model.Tray, []model.CellWithPlant, error)
	Assign(ctx context.Context, trayID uint, x, y int, plantID uint) error
	Reset(ctx context.Context, trayID uint, x, y int) error
}

type cellService struct {
	r     repo.CellRepo
	trays repo.TrayRepo
	cal   CalendarInvalidator
	log   *zap.Logger
}

func NewCellService(r repo.CellRepo, trays repo.TrayRepo, cal CalendarInvalidator, log *zap.Logger) CellService {
	return &cellService{r: r, trays: trays, cal: cal, log: log}
}

func (s *cellService) ListByTray(ctx context.Context, trayID uint) ([]model.CellWithPlant, error) {
	if _, err := s.trays.Get(ctx, trayID); err != nil {
		return nil, err
	}
	return s.r.ListByTray(ctx, trayID)
}

func (s *cellService) Grid(ctx context.Context, trayID uint) (*model.Tray, []model.CellWithPlant, error) {
	tray, err := s.trays.Get(ctx, trayID)
	if err != nil {
		return nil, nil, err
	}
	cells, err := s.r.GridByTray(ctx, trayID)
	if err != nil {
		return nil, nil, err
	}
	return tray, cells, nil
}

// Assign plants plantID at (x, y): an atomic upsert that overwrites
// any previous occupant and restarts the planting clock at today's
// server date. Coordinates are validated against the tray bounds
// before anything is written.
func (s *cellService) Assign(ctx context.Context, trayID uint, x, y int, plantID uint) error {
	if plantID == 0 {
		return ErrMissingPlant
	}
	tray, err := s.trays.Get(ctx, trayID)
	if err != nil {
		return err
	}
	if !tray.Contains(x, y) {
		return ErrOutOfBounds
	}

	pid := plantID
	if err := s.r.Upsert(ctx, &model.TrayCell{
		TrayID:      trayID,
		X:           x,
		Y:           y,
		PlantID:     &pid,
		PlantedDate: today(),
	}); err != nil {
		return err
	}
	s.invalidateCalendar(ctx)
	return nil
}

// Reset clears the plant from (x, y). Resetting a never-planted cell
// succeeds silently: the desired end state already holds.
func (s *cellService) Reset(ctx context.Context, trayID uint, x, y int) error {
	if err := s.r.Reset(ctx, trayID, x, y); err != nil {
		return err
	}
	s.invalidateCalendar(ctx)
	return nil
}

func (s *cellService) invalidateCalendar(ctx context.Context) {
	if err := s.cal.Invalidate(ctx); err != nil {
		s.log.Sugar().Warnw("calendar cache invalidation failed", "err", err)
	}
}

// today is the server's current calendar day, timezone-naive.
func today() datatypes.Date {
	now := time.Now()
	return datatypes.Date(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
}
