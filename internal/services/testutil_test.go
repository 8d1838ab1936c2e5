// internal/services/testutil_test.go
package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/config"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.LoginToken{},
		&models.Application{},
		&models.Partner{},
		&models.Customer{},
		&models.License{},
		&models.LicenseHistory{},
		&models.Course{},
		&models.Chapter{},
		&models.Lesson{},
		&models.AuditLog{},
	)
	require.NoError(t, err)

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Session: config.SessionConfig{
			SecretKey:     "test-secret",
			LifetimeHours: 720,
			RenewHours:    24,
			LoginTokenTTL: 15,
		},
		Portal: config.PortalConfig{BaseURL: "http://localhost:3000"},
	}
}
