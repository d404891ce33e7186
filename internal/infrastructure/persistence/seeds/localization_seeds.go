package seeds

import (
	"gorm.io/gorm"

	"modcms/internal/infrastructure/persistence/models"
)

var languageNames = map[string]string{
	"en": "English",
	"ar": "العربية",
	"fr": "Français",
	"de": "Deutsch",
	"es": "Español",
}

// SeedDefaultLanguage makes sure the configured default language exists and is
// flagged as default when no other language carries the flag.
func SeedDefaultLanguage(db *gorm.DB, code string) error {
	name, ok := languageNames[code]
	if !ok {
		name = code
	}

	var defaults int64
	if err := db.Model(&models.LanguageModel{}).Where("is_default = ?", true).Count(&defaults).Error; err != nil {
		return err
	}

	language := models.LanguageModel{Code: code, Name: name, IsDefault: defaults == 0}
	return db.Where(models.LanguageModel{Code: code}).FirstOrCreate(&language).Error
}
