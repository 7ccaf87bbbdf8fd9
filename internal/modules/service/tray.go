package service

import (
	"context"

	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"github.com/seed-planner/seed-planner-api/internal/modules/repo"
	"go.uber.org/zap"
)

type TrayService interface {
	List(ctx context.Context) ([]model.Tray, error)
	Get(ctx context.Context, id uint) (*model.Tray, error)
	Create(ctx context.Context, t *model.Tray) error
	Update(ctx context.Context, t *model.Tray) error
	Delete(ctx context.Context, id uint) error
}

type trayService struct {
	r   repo.TrayRepo
	cal CalendarInvalidator
	log *zap.Logger
}

func NewTrayService(r repo.TrayRepo, cal CalendarInvalidator, log *zap.Logger) TrayService {
	return &trayService{r: r, cal: cal, log: log}
}

func (s *trayService) List(ctx context.Context) ([]model.Tray, error) {
	return s.r.List(ctx)
}

func (s *trayService) Get(ctx context.Context, id uint) (*model.Tray, error) {
	return s.r.Get(ctx, id)
}

func (s *trayService) Create(ctx context.Context, t *model.Tray) error {
	return s.r.Create(ctx, t)
}

func (s *trayService) Update(ctx context.Context, t *model.Tray) error {
	return s.r.Update(ctx, t)
}

// Delete cascades through the tray's cells, so planted occupancy
// disappears from the calendar as well.
func (s *trayService) Delete(ctx context.Context, id uint) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cal.Invalidate(ctx); err != nil {
		s.log.Sugar().Warnw("calendar cache invalidation failed", "err", err)
	}
	return nil
}
