package model

import "time"

// Plant is a named cultivar of a species. DaysToGerminate and
// DaysToHarvest are whole-day offsets from the planting date; both are
// nullable in storage, so readers must treat them as possibly absent.
type Plant struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	SpeciesID uint   `gorm:"not null;index" json:"species_id"`
	Name      string `gorm:"type:varchar(100);not null" json:"name"`
	Variety   string `gorm:"type:varchar(100)" json:"variety"`

	DaysToGerminate *int `json:"days_to_germinate"`
	DaysToHarvest   *int `json:"days_to_harvest"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Plant <-> Species
	Species *Species `gorm:"foreignKey:SpeciesID;references:ID" json:"species,omitempty"`
}

func (Plant) TableName() string { return "plants" }
