package http

import (
	"gorm.io/gorm"

	"modcms/internal/domain/content"
	"modcms/internal/domain/localization"
	"modcms/internal/domain/record"
	"modcms/internal/infrastructure/repository"
	"modcms/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	categoryRepo content.CategoryRepository
	moduleRepo   content.ModuleRepository
	columnRepo   content.ColumnRepository
	recordRepo   record.Repository
	inspector    record.SchemaInspector
	languageRepo localization.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		categoryRepo: repository.NewModuleCategoryRepository(db, log),
		moduleRepo:   repository.NewModuleRepository(db, log),
		columnRepo:   repository.NewCustomColumnRepository(db, log),
		recordRepo:   repository.NewRecordRepository(db, log),
		inspector:    repository.NewSchemaInspector(db, log),
		languageRepo: repository.NewLanguageRepository(db, log),
	}
}
