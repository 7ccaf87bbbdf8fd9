package service

import (
	"context"

	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"github.com/seed-planner/seed-planner-api/internal/modules/repo"
)

type SpeciesService interface {
	List(ctx context.Context) ([]model.Species, error)
	Get(ctx context.Context, id uint) (*model.Species, error)
	Create(ctx context.Context, sp *model.Species) error
	Update(ctx context.Context, sp *model.Species) error
	Delete(ctx context.Context, id uint) error
}

type speciesService struct{ r repo.SpeciesRepo }

func NewSpeciesService(r repo.SpeciesRepo) SpeciesService {
	return &speciesService{r: r}
}

func (s *speciesService) List(ctx context.Context) ([]model.Species, error) {
	return s.r.List(ctx)
}

func (s *speciesService) Get(ctx context.Context, id uint) (*model.Species, error) {
	return s.r.Get(ctx, id)
}

func (s *speciesService) Create(ctx context.Context, sp *model.Species) error {
	return s.r.Create(ctx, sp)
}

func (s *speciesService) Update(ctx context.Context, sp *model.Species) error {
	return s.r.Update(ctx, sp)
}

func (s *speciesService) Delete(ctx context.Context, id uint) error {
	return s.r.Delete(ctx, id)
}
