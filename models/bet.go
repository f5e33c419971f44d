package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Bet struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	SessionID   uint            `gorm:"not null;index" json:"session_id"`
	GameType    string          `gorm:"size:100;not null;index" json:"game_type"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	Winnings    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"winnings"`
	Timestamp   time.Time       `gorm:"not null;index" json:"timestamp"`
	Description string          `gorm:"size:500" json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NetResult is winnings minus amount for this single bet.
func (b *Bet) NetResult() decimal.Decimal {
	return b.Winnings.Sub(b.Amount)
}
