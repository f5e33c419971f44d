package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coasterdudebob/wwj/models"
)

// BetInput carries the client-supplied fields for recording a bet. The
// timestamp is never taken from input; the server assigns it at creation.
type BetInput struct {
	SessionID   uint            `json:"session_id"`
	GameType    string          `json:"game_type" validate:"required,max=100"`
	Amount      decimal.Decimal `json:"amount"`
	Winnings    decimal.Decimal `json:"winnings"`
	Description string          `json:"description" validate:"max=500"`
}

// BetUpdate carries the fields that may change after creation. Session
// reference and timestamp are immutable.
type BetUpdate struct {
	GameType    string          `json:"game_type" validate:"required,max=100"`
	Amount      decimal.Decimal `json:"amount"`
	Winnings    decimal.Decimal `json:"winnings"`
	Description string          `json:"description" validate:"max=500"`
}

func checkBetFields(fields map[string]string, amount decimal.Decimal) map[string]string {
	if amount.IsNegative() {
		if fields == nil {
			fields = make(map[string]string)
		}
		fields["amount"] = "must not be negative"
	}
	return fields
}

// CreateBet records a bet against a session owned by userID. The stored
// timestamp is the server's current time no matter what the client sent.
func CreateBet(ctx context.Context, db *gorm.DB, userID string, input BetInput) (*models.Bet, error) {
	var session models.BettingSession
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", input.SessionID, userID).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if fields := checkBetFields(checkStruct(input), input.Amount); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	bet := &models.Bet{
		SessionID:   session.ID,
		GameType:    input.GameType,
		Amount:      input.Amount,
		Winnings:    input.Winnings,
		Timestamp:   time.Now().UTC(),
		Description: input.Description,
	}
	if err := db.WithContext(ctx).Create(bet).Error; err != nil {
		return nil, err
	}
	return bet, nil
}

// GetBet loads a bet only when its parent session belongs to userID.
func GetBet(ctx context.Context, db *gorm.DB, userID string, id uint) (*models.Bet, error) {
	var bet models.Bet
	err := db.WithContext(ctx).
		Joins("JOIN betting_sessions ON betting_sessions.id = bets.session_id").
		Where("bets.id = ? AND betting_sessions.user_id = ?", id, userID).
		First(&bet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bet, nil
}

// UpdateBet copies game type, amount, winnings and description onto an
// existing bet scoped to the user's sessions. The write checks the
// previously read updated_at; losing a race against a delete is ErrNotFound,
// against another write ErrConflict.
func UpdateBet(ctx context.Context, db *gorm.DB, userID string, id uint, input BetUpdate) (*models.Bet, error) {
	existing, err := GetBet(ctx, db, userID, id)
	if err != nil {
		return nil, err
	}

	if fields := checkBetFields(checkStruct(input), input.Amount); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	res := db.WithContext(ctx).Model(&models.Bet{}).
		Where("id = ? AND updated_at = ?", id, existing.UpdatedAt).
		Updates(map[string]any{
			"game_type":   input.GameType,
			"amount":      input.Amount,
			"winnings":    input.Winnings,
			"description": input.Description,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, concurrencyOutcome(ctx, db, &models.Bet{}, id)
	}

	var updated models.Bet
	if err := db.WithContext(ctx).First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBet removes a bet scoped to the user's sessions and reports the
// session it belonged to.
func DeleteBet(ctx context.Context, db *gorm.DB, userID string, id uint) (sessionID uint, err error) {
	bet, err := GetBet(ctx, db, userID, id)
	if err != nil {
		return 0, err
	}

	if err := db.WithContext(ctx).Delete(&models.Bet{}, bet.ID).Error; err != nil {
		return 0, err
	}
	return bet.SessionID, nil
}
