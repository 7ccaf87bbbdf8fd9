package model

import "time"

// Species is a botanical genus+species classification. The binomial is
// unique; cultivars of the same species live in Plant.
type Species struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Genus   string `gorm:"type:varchar(100);not null;uniqueIndex:idx_species_binomial,priority:1" json:"genus"`
	Species string `gorm:"type:varchar(100);not null;uniqueIndex:idx_species_binomial,priority:2" json:"species"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Species <-> Plant
	Plants []Plant `gorm:"foreignKey:SpeciesID;references:ID" json:"plants,omitempty"`
}

func (Species) TableName() string { return "species" }
