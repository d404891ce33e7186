package dto

import (
	"time"

	"modcms/internal/domain/content"
)

// CreateCategoryRequest creates a module category
type CreateCategoryRequest struct {
	Name string `json:"name" yaml:"name" binding:"required,min=1,max=255"`
	Code string `json:"code" yaml:"code" binding:"required,min=1,max=100"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddColumnRequest declares a custom column for a category
type AddColumnRequest struct {
	Name          string         `json:"name" yaml:"name" binding:"required,max=64"`
	Type          string         `json:"type" yaml:"type" binding:"required,oneof=text number boolean foreign-key option-set"`
	ForeignTable  string         `json:"foreign_table,omitempty" yaml:"foreign_table" binding:"max=64"`
	ForeignColumn string         `json:"foreign_column,omitempty" yaml:"foreign_column" binding:"max=64"`
	Required      bool           `json:"required" yaml:"required"`
	Unique        bool           `json:"unique" yaml:"unique"`
	Options       map[string]any `json:"options,omitempty" yaml:"options"`
}

// ToSpec converts the request into the domain column spec
func (r AddColumnRequest) ToSpec() content.ColumnSpec {
	return content.ColumnSpec{
		Name:          r.Name,
		Type:          r.Type,
		ForeignTable:  r.ForeignTable,
		ForeignColumn: r.ForeignColumn,
		Required:      r.Required,
		Unique:        r.Unique,
		Options:       r.Options,
	}
}

// ColumnResponse represents a column definition in API responses
type ColumnResponse struct {
	ID            uint           `json:"id"`
	CategoryID    uint           `json:"category_id"`
	Name          string         `json:"name"`
	Type          string         `json:"type"`
	ForeignTable  string         `json:"foreign_table,omitempty"`
	ForeignColumn string         `json:"foreign_column,omitempty"`
	Required      bool           `json:"required"`
	Unique        bool           `json:"unique"`
	Options       map[string]any `json:"options,omitempty"`
	Position      int            `json:"position"`
	CreatedAt     time.Time      `json:"created_at"`
}

// CreateModuleRequest creates a module. Active defaults to true.
type CreateModuleRequest struct {
	Name       string `json:"name" yaml:"name" binding:"required,min=1,max=255"`
	Code       string `json:"code" yaml:"code" binding:"required,min=1,max=100"`
	CategoryID uint   `json:"category_id" yaml:"-" binding:"required"`
	TableName  string `json:"table_name,omitempty" yaml:"table_name" binding:"max=64"`
	Active     *bool  `json:"active,omitempty" yaml:"active"`
}

// UpdateModuleRequest changes a module's name or active flag
type UpdateModuleRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Active *bool   `json:"active,omitempty"`
}

// ListModulesRequest filters module listings
type ListModulesRequest struct {
	CategoryID *uint `form:"category_id"`
	Active     *bool `form:"active"`
}

// ModuleResponse represents a module in API responses
type ModuleResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	CategoryID uint      `json:"category_id"`
	TableName  string    `json:"table_name"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToCategoryResponse(c *content.ModuleCategory) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Code:      c.Code(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func ToColumnResponse(d *content.ColumnDefinition) *ColumnResponse {
	resp := &ColumnResponse{
		ID:         d.ID(),
		CategoryID: d.CategoryID(),
		Name:       d.Name(),
		Type:       string(d.Type().Kind()),
		Required:   d.IsRequired(),
		Unique:     d.IsUnique(),
		Options:    d.Options(),
		Position:   d.Position(),
		CreatedAt:  d.CreatedAt(),
	}
	if ref, ok := d.Type().Foreign(); ok {
		resp.ForeignTable = ref.Table
		resp.ForeignColumn = ref.Column
	}
	return resp
}

func ToModuleResponse(m *content.Module) *ModuleResponse {
	return &ModuleResponse{
		ID:         m.ID(),
		Name:       m.Name(),
		Code:       m.Code(),
		CategoryID: m.CategoryID(),
		TableName:  m.TableName(),
		Active:     m.IsActive(),
		CreatedAt:  m.CreatedAt(),
		UpdatedAt:  m.UpdatedAt(),
	}
}
