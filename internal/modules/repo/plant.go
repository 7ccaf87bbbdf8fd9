package repo

import (
	"context"

	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"gorm.io/gorm"
)

type PlantRepo interface {
	Create(ctx context.Context, p *model.Plant) error
	Update(ctx context.Context, p *model.Plant) error
	Get(ctx context.Context, id uint) (*model.Plant, error)
	ListWithSpecies(ctx context.Context) ([]model.Plant, error)
	Delete(ctx context.Context, id uint) error
}

type plantRepo struct{ db *gorm.DB }

func NewPlantRepo(db *gorm.DB) PlantRepo {
	return &plantRepo{db: db}
}

func (r *plantRepo) Create(ctx context.Context, p *model.Plant) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *plantRepo) Update(ctx context.Context, p *model.Plant) error {
	return r.db.WithContext(ctx).Model(&model.Plant{ID: p.ID}).
		Select("name", "variety", "days_to_germinate", "days_to_harvest", "species_id").
		Updates(p).Error
}

func (r *plantRepo) Get(ctx context.Context, id uint) (*model.Plant, error) {
	var p model.Plant
	if err := r.db.WithContext(ctx).Preload("Species").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantRepo) ListWithSpecies(ctx context.Context) ([]model.Plant, error) {
	var plants []model.Plant
	return plants, r.db.WithContext(ctx).Preload("Species").Order("id").Find(&plants).Error
}

// Delete removes a plant together with every tray cell row that
// references it. That is a real row delete, not a reset: the weak
// reference must not leave orphaned occupancy records behind.
func (r *plantRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var plant model.Plant
		if err := tx.First(&plant, id).Error; err != nil {
			return err
		}
		if err := tx.Where("plant_id = ?", id).Delete(&model.TrayCell{}).Error; err != nil {
			return err
		}
		return tx.Delete(&plant).Error
	})
}
