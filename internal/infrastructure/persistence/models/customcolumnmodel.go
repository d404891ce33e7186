package models

import (
	"time"

	"gorm.io/datatypes"

	"modcms/internal/shared/constants"
)

// CustomColumnModel is the GORM model for custom_columns.
// Options holds the JSON payload: option-set values and UI hints.
type CustomColumnModel struct {
	ID            uint           `gorm:"primaryKey;autoIncrement"`
	CategoryID    uint           `gorm:"column:category_id;not null;uniqueIndex:uk_custom_columns_category_name,priority:1"`
	Name          string         `gorm:"column:name;size:64;not null;uniqueIndex:uk_custom_columns_category_name,priority:2"`
	Type          string         `gorm:"column:type;size:20;not null"`
	ForeignTable  *string        `gorm:"column:foreign_table;size:64"`
	ForeignColumn *string        `gorm:"column:foreign_column;size:64"`
	IsRequired    bool           `gorm:"column:is_required;not null;default:false"`
	IsUnique      bool           `gorm:"column:is_unique;not null;default:false"`
	Options       datatypes.JSON `gorm:"column:options"`
	Position      int            `gorm:"column:position;not null;default:0"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (CustomColumnModel) TableName() string {
	return constants.TableCustomColumns
}
