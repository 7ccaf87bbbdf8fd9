package model

import (
	"time"

	"gorm.io/datatypes"
)

// TrayCell is the sparse occupancy record for one tray coordinate. A
// coordinate with no row is empty; a row with a nil PlantID is a reset
// slot that renders the same way. The composite unique index on
// (tray_id, x, y) is what makes the assignment upsert race-safe, so it
// must never be relaxed.
type TrayCell struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	TrayID uint `gorm:"not null;uniqueIndex:idx_tray_cell_coord,priority:1" json:"tray_id"`
	X      int  `gorm:"not null;uniqueIndex:idx_tray_cell_coord,priority:2" json:"x"`
	Y      int  `gorm:"not null;uniqueIndex:idx_tray_cell_coord,priority:3" json:"y"`

	// PlantID weakly references Plant: deleting a plant removes the
	// rows that point at it rather than nulling them.
	PlantID *uint `gorm:"index" json:"plant_id"`

	// PlantedDate is a timezone-naive calendar date. It goes stale
	// after a reset and is only meaningful while PlantID is set.
	PlantedDate datatypes.Date `gorm:"type:date" json:"planted_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TrayCell) TableName() string { return "tray_cells" }

// CellWithPlant is a TrayCell row enriched by the LEFT JOIN on plants
// (and species) used by the cells and grid endpoints. The display
// fields stay nil for empty cells and for stale plant references.
// Kept flat so gorm can Scan join results straight into it.
type CellWithPlant struct {
	ID           uint           `json:"id"`
	TrayID       uint           `json:"tray_id"`
	X            int            `json:"x"`
	Y            int            `json:"y"`
	PlantID      *uint          `json:"plant_id"`
	PlantedDate  datatypes.Date `json:"planted_date"`
	PlantName    *string        `json:"plant_name"`
	PlantVariety *string        `json:"plant_variety"`
	Genus        *string        `json:"genus,omitempty"`
	SpeciesName  *string        `gorm:"column:species" json:"species,omitempty"`
}
