package repo

import (
	"context"

	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"gorm.io/gorm"
)

type SpeciesRepo interface {
	Create(ctx context.Context, s *model.Species) error
	Update(ctx context.Context, s *model.Species) error
	Get(ctx context.Context, id uint) (*model.Species, error)
	List(ctx context.Context) ([]model.Species, error)
	Delete(ctx context.Context, id uint) error
}

type speciesRepo struct{ db *gorm.DB }

func NewSpeciesRepo(db *gorm.DB) SpeciesRepo {
	return &speciesRepo{db: db}
}

func (r *speciesRepo) Create(ctx context.Context, s *model.Species) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *speciesRepo) Update(ctx context.Context, s *model.Species) error {
	return r.db.WithContext(ctx).Model(&model.Species{ID: s.ID}).
		Select("genus", "species").
		Updates(s).Error
}

func (r *speciesRepo) Get(ctx context.Context, id uint) (*model.Species, error) {
	var s model.Species
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *speciesRepo) List(ctx context.Context) ([]model.Species, error) {
	var species []model.Species
	return species, r.db.WithContext(ctx).Order("genus, species").Find(&species).Error
}

func (r *speciesRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Species{}, id).Error
}
