package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"modcms/internal/application/catalog/dto"
	"modcms/internal/infrastructure/persistence/models"
	"modcms/internal/infrastructure/repository"
	"modcms/internal/shared/db"
	"modcms/internal/shared/logger"
)

const sampleCatalog = `
categories:
  - name: CATEGORY_PEOPLE
    code: people
    columns:
      - name: name
        type: text
        required: true
        options:
          localized: true
      - name: department_id
        type: foreign-key
        foreign_table: departments
        foreign_column: id
      - name: photo_id
        type: foreign-key
        foreign_table: media
        foreign_column: id
    modules:
      - name: Team
        code: team
        table_name: team_members
  - name: CATEGORY_PARTNERS
    code: partners
    columns:
      - name: brand_color
        type: option-set
        options:
          values: ["#000000", "#ffffff"]
    modules:
      - name: Clients
        code: clients
        active: false
`

func newSQLiteService(t *testing.T) *Service {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(
		&models.ModuleCategoryModel{}, &models.ModuleModel{}, &models.CustomColumnModel{},
		&models.DepartmentModel{}, &models.TeamMemberModel{}, &models.ClientModel{}, &models.MediaModel{},
	))

	log := logger.NewNop()
	return NewService(
		repository.NewModuleCategoryRepository(gdb, log),
		repository.NewModuleRepository(gdb, log),
		repository.NewCustomColumnRepository(gdb, log),
		repository.NewSchemaInspector(gdb, log),
		db.NewTransactionManager(gdb),
		log,
	)
}

func TestImportCatalog_CreatesEverythingOnce(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteService(t)

	doc, err := ParseCatalog(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	report, err := svc.ImportCatalog(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, 2, report.CategoriesCreated)
	assert.Equal(t, 4, report.ColumnsCreated)
	assert.Equal(t, 2, report.ModulesCreated)
	assert.Empty(t, report.Skipped)

	again, err := svc.ImportCatalog(ctx, doc)
	require.NoError(t, err)
	assert.Zero(t, again.CategoriesCreated+again.ColumnsCreated+again.ModulesCreated)
	assert.Len(t, again.Skipped, 8)

	clients, err := svc.GetModuleByCode(ctx, "clients")
	require.NoError(t, err)
	assert.False(t, clients.Active)

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	cols, err := svc.ListColumnDefinitions(ctx, cats[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "department_id", "photo_id"}, []string{cols[0].Name, cols[1].Name, cols[2].Name})
}

func TestImportCatalog_RollsBackOnInvalidEntry(t *testing.T) {
	ctx := context.Background()
	svc := newSQLiteService(t)

	doc := &dto.CatalogDocument{Categories: []dto.CatalogCategory{{
		Name: "Broken",
		Code: "broken",
		Columns: []dto.AddColumnRequest{
			{Name: "title", Type: "text"},
			{Name: "owner_id", Type: "foreign-key", ForeignTable: "owners"},
		},
	}}}

	_, err := svc.ImportCatalog(ctx, doc)
	require.Error(t, err)

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, cats)
}

func TestParseCatalog_RejectsUnknownKeys(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader("categories:\n  - name: X\n    code: x\n    colour: red\n"))
	assert.Error(t, err)
}
