package repo

import (
	"context"

	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"gorm.io/gorm"
)

type TrayRepo interface {
	Create(ctx context.Context, t *model.Tray) error
	Update(ctx context.Context, t *model.Tray) error
	Get(ctx context.Context, id uint) (*model.Tray, error)
	List(ctx context.Context) ([]model.Tray, error)
	Delete(ctx context.Context, id uint) error
}

type trayRepo struct{ db *gorm.DB }

func NewTrayRepo(db *gorm.DB) TrayRepo {
	return &trayRepo{db: db}
}

func (r *trayRepo) Create(ctx context.Context, t *model.Tray) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *trayRepo) Update(ctx context.Context, t *model.Tray) error {
	// Select the full column set so zero values (an emptied notes
	// field) are written too.
	return r.db.WithContext(ctx).Model(&model.Tray{ID: t.ID}).
		Select("name", "location", "rows", "columns", "notes").
		Updates(t).Error
}

func (r *trayRepo) Get(ctx context.Context, id uint) (*model.Tray, error) {
	var t model.Tray
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *trayRepo) List(ctx context.Context) ([]model.Tray, error) {
	var trays []model.Tray
	return trays, r.db.WithContext(ctx).Order("id").Find(&trays).Error
}

// Delete removes a tray and its cells. Referential integrity is
// enforced here, not by implicit database cascades: the cells go
// first inside one transaction.
func (r *trayRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tray model.Tray
		if err := tx.First(&tray, id).Error; err != nil {
			return err
		}
		if err := tx.Where("tray_id = ?", id).Delete(&model.TrayCell{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tray).Error
	})
}
