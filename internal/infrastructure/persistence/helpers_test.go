package persistence

import (
	"testing"

	"github.com/rescue-ops/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with every table migrated.
// A single connection keeps the in-memory schema visible to all queries.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.UserTypeModel{},
		&models.UserModel{},
		&models.TeamTypeModel{},
		&models.CompanyModel{},
		&models.TeamModel{},
		&models.IncidentModel{},
		&models.MessageModel{},
		&models.NotificationModel{},
		&models.AuditRecordModel{},
	))
	return db
}

func int64Ptr(v int64) *int64 { return &v }
