package models

import (
	"time"

	"modcms/internal/shared/constants"
)

// ModuleCategoryModel is the GORM model for module_categories
type ModuleCategoryModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;size:255;not null"`
	Code      string    `gorm:"column:code;size:100;not null;uniqueIndex:uk_module_categories_code"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (ModuleCategoryModel) TableName() string {
	return constants.TableModuleCategories
}
