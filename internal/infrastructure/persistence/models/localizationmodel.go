package models

import "modcms/internal/shared/constants"

// LanguageModel is the GORM model for languages
type LanguageModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Code      string `gorm:"column:code;size:20;not null;uniqueIndex:uk_languages_code"`
	Name      string `gorm:"column:name;size:100;not null"`
	IsDefault bool   `gorm:"column:is_default;not null;default:false"`
}

func (LanguageModel) TableName() string {
	return constants.TableLanguages
}

// LanguageCodeModel is the GORM model for language_codes, the translation keys.
type LanguageCodeModel struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Code string `gorm:"column:code;size:191;not null;uniqueIndex:uk_language_codes_code"`
}

func (LanguageCodeModel) TableName() string {
	return constants.TableLanguageCodes
}

// TranslationModel is the GORM model for translations
type TranslationModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	LanguageID     uint   `gorm:"column:language_id;not null;uniqueIndex:uk_translations_language_code,priority:1"`
	LanguageCodeID uint   `gorm:"column:language_code_id;not null;uniqueIndex:uk_translations_language_code,priority:2"`
	Text           string `gorm:"column:text;type:text"`
}

func (TranslationModel) TableName() string {
	return constants.TableTranslations
}
