package repo

import (
	"context"

	"github.com/seed-planner/seed-planner-api/internal/modules/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlantedRow is the calendar join: one occupied cell with its tray
// name and its plant's name and day offsets.
type PlantedRow struct {
	TrayName        string
	PlantName       string
	PlantedDate     datatypes.Date
	DaysToGerminate *int
	DaysToHarvest   *int
}

type CellRepo interface {
	ListByTray(ctx context.Context, trayID uint) ([]model.CellWithPlant, error)
	GridByTray(ctx context.Context, trayID uint) ([]model.CellWithPlant, error)
	Upsert(ctx context.Context, cell *model.TrayCell) error
	Reset(ctx context.Context, trayID uint, x, y int) error
	ListPlanted(ctx context.Context) ([]PlantedRow, error)
}

type cellRepo struct{ db *gorm.DB }

func NewCellRepo(db *gorm.DB) CellRepo {
	return &cellRepo{db: db}
}

func (r *cellRepo) ListByTray(ctx context.Context, trayID uint) ([]model.CellWithPlant, error) {
	var cells []model.CellWithPlant
	err := r.db.WithContext(ctx).
		Table("tray_cells").
		Select("tray_cells.id, tray_cells.tray_id, tray_cells.x, tray_cells.y, tray_cells.plant_id, tray_cells.planted_date, plants.name AS plant_name, plants.variety AS plant_variety").
		Joins("LEFT JOIN plants ON tray_cells.plant_id = plants.id").
		Where("tray_cells.tray_id = ?", trayID).
		Scan(&cells).Error
	return cells, err
}

// GridByTray is ListByTray plus the species join the grid view shows.
func (r *cellRepo) GridByTray(ctx context.Context, trayID uint) ([]model.CellWithPlant, error) {
	var cells []model.CellWithPlant
	err := r.db.WithContext(ctx).
		Table("tray_cells").
		Select("tray_cells.id, tray_cells.tray_id, tray_cells.x, tray_cells.y, tray_cells.plant_id, tray_cells.planted_date, plants.name AS plant_name, plants.variety AS plant_variety, species.genus AS genus, species.species AS species").
		Joins("LEFT JOIN plants ON tray_cells.plant_id = plants.id").
		Joins("LEFT JOIN species ON plants.species_id = species.id").
		Where("tray_cells.tray_id = ?", trayID).
		Scan(&cells).Error
	return cells, err
}

// Upsert is the single write path for planting a cell. It relies on
// the (tray_id, x, y) unique index and an ON CONFLICT merge so two
// racing assigns collapse into one row with last-writer-wins; there
// is deliberately no read-then-write here.
func (r *cellRepo) Upsert(ctx context.Context, cell *model.TrayCell) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tray_id"}, {Name: "x"}, {Name: "y"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"plant_id", "planted_date", "updated_at",
		}),
	}).Create(cell).Error
}

// Reset nulls out the plant reference, keeping the row as a reusable
// slot with its (now stale) planted date. A missing row is a silent
// no-op: the post-condition "nothing planted" already holds.
func (r *cellRepo) Reset(ctx context.Context, trayID uint, x, y int) error {
	return r.db.WithContext(ctx).
		Model(&model.TrayCell{}).
		Where("tray_id = ? AND x = ? AND y = ?", trayID, x, y).
		Update("plant_id", nil).Error
}

func (r *cellRepo) ListPlanted(ctx context.Context) ([]PlantedRow, error) {
	var rows []PlantedRow
	err := r.db.WithContext(ctx).
		Table("tray_cells").
		Select("trays.name AS tray_name, plants.name AS plant_name, tray_cells.planted_date, plants.days_to_germinate, plants.days_to_harvest").
		Joins("JOIN trays ON tray_cells.tray_id = trays.id").
		Joins("JOIN plants ON tray_cells.plant_id = plants.id").
		Scan(&rows).Error
	return rows, err
}
