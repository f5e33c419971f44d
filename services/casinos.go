package services

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/coasterdudebob/wwj/geo"
	"github.com/coasterdudebob/wwj/models"
)

// CasinoInput carries the client-supplied casino fields for create and
// update. Identity and timestamps are never taken from input.
type CasinoInput struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Address   string  `json:"address" validate:"max=500"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	City      string  `json:"city" validate:"max=50"`
	State     string  `json:"state" validate:"max=50"`
	ZipCode   string  `json:"zip_code" validate:"max=20"`
	Country   string  `json:"country" validate:"max=50"`
}

// NearbyCasino is a casino annotated with its computed distance from a
// search center.
type NearbyCasino struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Distance  float64 `json:"distance"`
}

// ListCasinos returns every casino ordered by name ascending.
func ListCasinos(ctx context.Context, db *gorm.DB) ([]models.Casino, error) {
	var casinos []models.Casino
	if err := db.WithContext(ctx).Order("name asc").Find(&casinos).Error; err != nil {
		return nil, err
	}
	return casinos, nil
}

// CreateCasino validates and persists a new casino.
func CreateCasino(ctx context.Context, db *gorm.DB, input CasinoInput) (*models.Casino, error) {
	if fields := checkStruct(input); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	casino := &models.Casino{
		Name:      input.Name,
		Address:   input.Address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		City:      input.City,
		State:     input.State,
		ZipCode:   input.ZipCode,
		Country:   input.Country,
	}
	if err := db.WithContext(ctx).Create(casino).Error; err != nil {
		return nil, err
	}
	return casino, nil
}

// GetCasino returns a casino with its sessions loaded, or ErrNotFound.
func GetCasino(ctx context.Context, db *gorm.DB, id uint) (*models.Casino, error) {
	var casino models.Casino
	err := db.WithContext(ctx).Preload("Sessions").First(&casino, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &casino, nil
}

// UpdateCasino re-validates and writes the casino fields. The write carries
// the previously read updated_at as an optimistic concurrency check: when it
// matches nothing, the record either vanished (ErrNotFound) or was changed
// underneath (ErrConflict).
func UpdateCasino(ctx context.Context, db *gorm.DB, id uint, input CasinoInput) (*models.Casino, error) {
	if fields := checkStruct(input); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	var existing models.Casino
	err := db.WithContext(ctx).First(&existing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	res := db.WithContext(ctx).Model(&models.Casino{}).
		Where("id = ? AND updated_at = ?", id, existing.UpdatedAt).
		Updates(map[string]any{
			"name":      input.Name,
			"address":   input.Address,
			"latitude":  input.Latitude,
			"longitude": input.Longitude,
			"city":      input.City,
			"state":     input.State,
			"zip_code":  input.ZipCode,
			"country":   input.Country,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, concurrencyOutcome(ctx, db, &models.Casino{}, id)
	}

	var updated models.Casino
	if err := db.WithContext(ctx).First(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCasino removes a casino with no sessions. Casinos still referenced
// by sessions are protected (ErrCasinoInUse).
func DeleteCasino(ctx context.Context, db *gorm.DB, id uint) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.BettingSession{}).
		Where("casino_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCasinoInUse
	}

	res := db.WithContext(ctx).Delete(&models.Casino{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// NearbyCasinos scans every casino, keeps those within radiusKm (inclusive)
// of the center and returns them sorted by ascending distance.
//
// The full scan is fine at current scale; a bounding-box pre-filter or a
// spatial index is the next step if the directory grows large.
func NearbyCasinos(ctx context.Context, db *gorm.DB, lat, lon, radiusKm float64) ([]NearbyCasino, error) {
	var casinos []models.Casino
	if err := db.WithContext(ctx).Find(&casinos).Error; err != nil {
		return nil, err
	}

	nearby := make([]NearbyCasino, 0)
	for _, c := range casinos {
		d := geo.Distance(lat, lon, c.Latitude, c.Longitude)
		if d <= radiusKm {
			nearby = append(nearby, NearbyCasino{
				ID:        c.ID,
				Name:      c.Name,
				Address:   c.Address,
				Latitude:  c.Latitude,
				Longitude: c.Longitude,
				Distance:  d,
			})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})
	return nearby, nil
}

// concurrencyOutcome resolves a zero-rows-affected optimistic write:
// a deleted record demotes to ErrNotFound, a surviving one is a conflict.
func concurrencyOutcome(ctx context.Context, db *gorm.DB, model any, id uint) error {
	err := db.WithContext(ctx).First(model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return ErrConflict
}
