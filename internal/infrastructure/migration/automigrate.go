package migration

import (
	"modcms/internal/infrastructure/persistence/models"
)

// Models lists every table the auto-migrate strategy creates.
func Models() []interface{} {
	return []interface{}{
		&models.ModuleCategoryModel{},
		&models.ModuleModel{},
		&models.CustomColumnModel{},
		&models.LanguageModel{},
		&models.LanguageCodeModel{},
		&models.TranslationModel{},
		&models.MediaModel{},
		&models.DepartmentModel{},
		&models.TeamMemberModel{},
		&models.ClientModel{},
	}
}
