package models

import "time"

type Casino struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null;index" json:"name"`
	Address   string    `gorm:"size:500" json:"address,omitempty"`
	Latitude  float64   `gorm:"not null;index:idx_casinos_lat_long" json:"latitude"`
	Longitude float64   `gorm:"not null;index:idx_casinos_lat_long" json:"longitude"`
	City      string    `gorm:"size:50" json:"city,omitempty"`
	State     string    `gorm:"size:50" json:"state,omitempty"`
	ZipCode   string    `gorm:"size:20" json:"zip_code,omitempty"`
	Country   string    `gorm:"size:50" json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Sessions referencing a casino block its deletion.
	Sessions []BettingSession `gorm:"foreignKey:CasinoID;constraint:OnDelete:RESTRICT" json:"sessions,omitempty"`
}
