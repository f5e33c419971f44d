package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coasterdudebob/wwj/models"
)

func TestListCasinosOrderedByName(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	createTestCasino(t, db, "Silver Slipper", 36.1, -115.1)
	createTestCasino(t, db, "Aces High", 36.2, -115.2)
	createTestCasino(t, db, "Lucky Star", 36.3, -115.3)

	casinos, err := ListCasinos(ctx, db)
	require.NoError(t, err)
	require.Len(t, casinos, 3)
	assert.Equal(t, "Aces High", casinos[0].Name)
	assert.Equal(t, "Lucky Star", casinos[1].Name)
	assert.Equal(t, "Silver Slipper", casinos[2].Name)
}

func TestCreateCasinoValidation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	_, err := CreateCasino(ctx, db, CasinoInput{Latitude: 36.1, Longitude: -115.1})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")

	_, err = CreateCasino(ctx, db, CasinoInput{
		Name:     strings.Repeat("x", 201),
		Latitude: 36.1, Longitude: -115.1,
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")

	_, err = CreateCasino(ctx, db, CasinoInput{Name: "Valid", Latitude: 91, Longitude: 0})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "latitude")

	// nothing was written
	var count int64
	require.NoError(t, db.Model(&models.Casino{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetCasinoWithSessions(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "player@example.com")
	casino := createTestCasino(t, db, "Golden Gate", 36.1, -115.1)

	_, err := StartSession(ctx, db, user.ID, SessionInput{CasinoID: casino.ID})
	require.NoError(t, err)

	got, err := GetCasino(ctx, db, casino.ID)
	require.NoError(t, err)
	assert.Equal(t, "Golden Gate", got.Name)
	assert.Len(t, got.Sessions, 1)

	_, err = GetCasino(ctx, db, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCasino(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	casino := createTestCasino(t, db, "Old Name", 36.1, -115.1)

	updated, err := UpdateCasino(ctx, db, casino.ID, CasinoInput{
		Name:     "New Name",
		Address:  "1 Casino Way",
		Latitude: 36.2, Longitude: -115.2,
		City: "Las Vegas", State: "NV", ZipCode: "89101", Country: "USA",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Las Vegas", updated.City)
	assert.Equal(t, 36.2, updated.Latitude)

	_, err = UpdateCasino(ctx, db, 9999, CasinoInput{Name: "Ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCasinoRestrictedBySessions(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "player@example.com")
	busy := createTestCasino(t, db, "Busy", 36.1, -115.1)
	idle := createTestCasino(t, db, "Idle", 36.2, -115.2)

	_, err := StartSession(ctx, db, user.ID, SessionInput{CasinoID: busy.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, DeleteCasino(ctx, db, busy.ID), ErrCasinoInUse)
	assert.NoError(t, DeleteCasino(ctx, db, idle.ID))
	assert.ErrorIs(t, DeleteCasino(ctx, db, idle.ID), ErrNotFound)
}

func TestNearbyCasinosFilterAndOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	centerLat, centerLon := 36.0, -115.0

	// At the center, ~25 km north, and ~51 km north (0.459 degrees of
	// latitude is just over 51 km).
	atCenter := createTestCasino(t, db, "Center", centerLat, centerLon)
	near := createTestCasino(t, db, "Near", centerLat+0.225, centerLon)
	createTestCasino(t, db, "TooFar", centerLat+0.459, centerLon)

	nearby, err := NearbyCasinos(ctx, db, centerLat, centerLon, 50)
	require.NoError(t, err)
	require.Len(t, nearby, 2)

	assert.Equal(t, atCenter.ID, nearby[0].ID)
	assert.Equal(t, 0.0, nearby[0].Distance)
	assert.Equal(t, near.ID, nearby[1].ID)
	assert.InDelta(t, 25, nearby[1].Distance, 1)
	assert.LessOrEqual(t, nearby[0].Distance, nearby[1].Distance)
}

func TestNearbyCasinosEmpty(t *testing.T) {
	db := newTestDB(t)

	nearby, err := NearbyCasinos(context.Background(), db, 0, 0, 50)
	require.NoError(t, err)
	assert.Empty(t, nearby)
}

func TestConcurrencyOutcome(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	casino := createTestCasino(t, db, "Raced", 36.1, -115.1)

	// Record still present: the losing writer sees a conflict.
	assert.ErrorIs(t, concurrencyOutcome(ctx, db, &models.Casino{}, casino.ID), ErrConflict)

	// Record deleted underneath: demoted to not-found.
	require.NoError(t, db.Delete(&models.Casino{}, casino.ID).Error)
	assert.ErrorIs(t, concurrencyOutcome(ctx, db, &models.Casino{}, casino.ID), ErrNotFound)
}
