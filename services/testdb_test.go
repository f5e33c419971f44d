package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/coasterdudebob/wwj/models"
)

// newTestDB opens an isolated in-memory database migrated to the current
// schema. The shared-cache name keeps every pooled connection on the same
// database for the duration of the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Casino{},
		&models.BettingSession{},
		&models.Bet{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		ID:       uuid.NewString(),
		Email:    email,
		APIToken: uuid.NewString(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCasino(t *testing.T, db *gorm.DB, name string, lat, lon float64) *models.Casino {
	t.Helper()
	casino := &models.Casino{Name: name, Latitude: lat, Longitude: lon}
	require.NoError(t, db.Create(casino).Error)
	return casino
}
