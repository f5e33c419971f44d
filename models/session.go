package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BettingSession struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"size:36;not null;index" json:"user_id"`
	CasinoID  uint       `gorm:"not null;index" json:"casino_id"`
	StartTime time.Time  `gorm:"not null;index" json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Notes     string     `gorm:"size:1000" json:"notes,omitempty"`
	IsActive  bool       `gorm:"index" json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Casino *Casino `json:"casino,omitempty"`
	Bets   []Bet   `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"bets,omitempty"`
}

func (BettingSession) TableName() string {
	return "betting_sessions"
}

// TotalWagered sums the amounts of the loaded bets. Never persisted.
func (s *BettingSession) TotalWagered() decimal.Decimal {
	total := decimal.Zero
	for _, b := range s.Bets {
		total = total.Add(b.Amount)
	}
	return total
}

// TotalWinnings sums the winnings of the loaded bets. Never persisted.
func (s *BettingSession) TotalWinnings() decimal.Decimal {
	total := decimal.Zero
	for _, b := range s.Bets {
		total = total.Add(b.Winnings)
	}
	return total
}

// NetProfit is total winnings minus total wagered.
func (s *BettingSession) NetProfit() decimal.Decimal {
	return s.TotalWinnings().Sub(s.TotalWagered())
}
