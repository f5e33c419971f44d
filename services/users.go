package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/coasterdudebob/wwj/models"
)

// GetProfile returns the user's own profile record.
func GetProfile(ctx context.Context, db *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	err := db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserByToken resolves an API token to its user. Used by the auth
// middleware's database-backed verifier.
func UserByToken(ctx context.Context, db *gorm.DB, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	var user models.User
	err := db.WithContext(ctx).Where("api_token = ?", token).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
