package service

import (
	"context"

	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"github.com/seed-planner/seed-planner-api/internal/modules/repo"
	"go.uber.org/zap"
)

type PlantService interface {
	List(ctx context.Context) ([]model.Plant, error)
	Get(ctx context.Context, id uint) (*model.Plant, error)
	Create(ctx context.Context, p *model.Plant) error
	Update(ctx context.Context, p *model.Plant) error
	Delete(ctx context.Context, id uint) error
}

type plantService struct {
	r   repo.PlantRepo
	cal CalendarInvalidator
	log *zap.Logger
}

func NewPlantService(r repo.PlantRepo, cal CalendarInvalidator, log *zap.Logger) PlantService {
	return &plantService{r: r, cal: cal, log: log}
}

func (s *plantService) List(ctx context.Context) ([]model.Plant, error) {
	return s.r.ListWithSpecies(ctx)
}

func (s *plantService) Get(ctx context.Context, id uint) (*model.Plant, error) {
	return s.r.Get(ctx, id)
}

func (s *plantService) Create(ctx context.Context, p *model.Plant) error {
	if err := validateOffsets(p); err != nil {
		return err
	}
	return s.r.Create(ctx, p)
}

// Update also drops the cached calendar: changed day offsets move
// every derived date for cells planted with this cultivar.
func (s *plantService) Update(ctx context.Context, p *model.Plant) error {
	if err := validateOffsets(p); err != nil {
		return err
	}
	if err := s.r.Update(ctx, p); err != nil {
		return err
	}
	s.invalidateCalendar(ctx)
	return nil
}

// Delete removes the plant and every cell row referencing it.
func (s *plantService) Delete(ctx context.Context, id uint) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCalendar(ctx)
	return nil
}

func (s *plantService) invalidateCalendar(ctx context.Context) {
	if err := s.cal.Invalidate(ctx); err != nil {
		s.log.Sugar().Warnw("calendar cache invalidation failed", "err", err)
	}
}

// Offsets are optional in storage but must be positive when present.
func validateOffsets(p *model.Plant) error {
	if p.DaysToGerminate != nil && *p.DaysToGerminate <= 0 {
		return ErrInvalidOffset
	}
	if p.DaysToHarvest != nil && *p.DaysToHarvest <= 0 {
		return ErrInvalidOffset
	}
	return nil
}
