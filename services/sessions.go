package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/coasterdudebob/wwj/models"
)

// SessionInput carries the client-supplied fields for starting a session.
// Owner, start time and active flag are always server-assigned.
type SessionInput struct {
	CasinoID uint   `json:"casino_id"`
	Notes    string `json:"notes" validate:"max=1000"`
}

// ListSessions returns the user's sessions with casino and bets loaded,
// newest start time first.
func ListSessions(ctx context.Context, db *gorm.DB, userID string) ([]models.BettingSession, error) {
	var sessions []models.BettingSession
	err := db.WithContext(ctx).
		Preload("Casino").
		Preload("Bets").
		Where("user_id = ?", userID).
		Order("start_time desc").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// StartSession creates a new active session owned by userID. Owner, start
// time and the active flag are set here regardless of input. Any session of
// the user still flagged active is ended in the same transaction, so at most
// one session per user is active afterward.
func StartSession(ctx context.Context, db *gorm.DB, userID string, input SessionInput) (*models.BettingSession, error) {
	fields := checkStruct(input)
	if input.CasinoID == 0 {
		if fields == nil {
			fields = make(map[string]string)
		}
		fields["casino_id"] = "is required"
	}
	if fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	var casino models.Casino
	err := db.WithContext(ctx).First(&casino, input.CasinoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ValidationError{Fields: map[string]string{"casino_id": "unknown casino"}}
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &models.BettingSession{
		UserID:    userID,
		CasinoID:  input.CasinoID,
		StartTime: now,
		IsActive:  true,
		Notes:     input.Notes,
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.BettingSession{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Updates(map[string]any{"is_active": false, "end_time": now}).Error; err != nil {
			return err
		}
		return tx.Create(session).Error
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns one of the user's sessions with casino and bets loaded.
// A session that does not exist and a session owned by someone else are both
// ErrNotFound.
func GetSession(ctx context.Context, db *gorm.DB, userID string, id uint) (*models.BettingSession, error) {
	var session models.BettingSession
	err := db.WithContext(ctx).
		Preload("Casino").
		Preload("Bets", func(tx *gorm.DB) *gorm.DB { return tx.Order("timestamp asc") }).
		Where("id = ? AND user_id = ?", id, userID).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// EndSession stamps the end time and clears the active flag on one of the
// user's sessions.
func EndSession(ctx context.Context, db *gorm.DB, userID string, id uint) (*models.BettingSession, error) {
	var session models.BettingSession
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session.EndTime = &now
	session.IsActive = false
	if err := db.WithContext(ctx).Save(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// ActiveSession returns the user's active session, preferring the most
// recently started one should legacy data hold several. ErrNotFound tells
// the caller to start a new session instead.
func ActiveSession(ctx context.Context, db *gorm.DB, userID string) (*models.BettingSession, error) {
	var session models.BettingSession
	err := db.WithContext(ctx).
		Preload("Casino").
		Preload("Bets").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("start_time desc").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteSession removes one of the user's sessions together with all of its
// bets.
func DeleteSession(ctx context.Context, db *gorm.DB, userID string, id uint) error {
	var session models.BettingSession
	err := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", session.ID).Delete(&models.Bet{}).Error; err != nil {
			return err
		}
		return tx.Delete(&session).Error
	})
}
