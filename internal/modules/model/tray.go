package model

import "time"

// Tray is a physical seed tray with a fixed rows x columns grid.
// Cell coordinates live in [0, Columns) x [0, Rows).
type Tray struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Location string `gorm:"type:varchar(100)" json:"location"`
	Rows     int    `gorm:"not null" json:"rows"`
	Columns  int    `gorm:"not null" json:"columns"`
	Notes    string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Tray <-> TrayCell
	Cells []TrayCell `gorm:"foreignKey:TrayID;references:ID" json:"cells,omitempty"`
}

func (Tray) TableName() string { return "trays" }

// Contains reports whether (x, y) is a valid coordinate for this tray.
func (t Tray) Contains(x, y int) bool {
	return x >= 0 && x < t.Columns && y >= 0 && y < t.Rows
}
