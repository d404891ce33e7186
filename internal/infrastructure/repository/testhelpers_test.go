package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"modcms/internal/infrastructure/persistence/models"
	applogger "modcms/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.ModuleCategoryModel{},
		&models.ModuleModel{},
		&models.CustomColumnModel{},
		&models.LanguageModel{},
		&models.LanguageCodeModel{},
		&models.TranslationModel{},
		&models.DepartmentModel{},
		&models.TeamMemberModel{},
		&models.ClientModel{},
		&models.MediaModel{},
	))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func testLogger() applogger.Interface {
	return applogger.NewNop()
}
