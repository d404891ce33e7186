package models

import (
	"time"

	"modcms/internal/shared/constants"
)

// ModuleModel is the GORM model for modules
type ModuleModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;size:255;not null"`
	Code         string    `gorm:"column:code;size:100;not null;uniqueIndex:uk_modules_code"`
	CategoryID   uint      `gorm:"column:category_id;not null;index:idx_modules_category"`
	BackingTable string    `gorm:"column:table_name;size:64;not null"`
	Active       bool      `gorm:"column:active;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (ModuleModel) TableName() string {
	return constants.TableModules
}
