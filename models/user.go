package models

import "time"

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"size:256;uniqueIndex;not null" json:"email"`
	FirstName string    `gorm:"size:100" json:"first_name,omitempty"`
	LastName  string    `gorm:"size:100" json:"last_name,omitempty"`
	APIToken  string    `gorm:"size:64;uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Sessions []BettingSession `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"sessions,omitempty"`
}
