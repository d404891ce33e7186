// Package content holds the content-type catalog: module categories, modules
// and the custom column definitions that drive record validation.
package content

import (
	"strings"
	"time"

	"modcms/internal/shared/errors"
)

// ModuleCategory groups modules that share a set of column definitions.
type ModuleCategory struct {
	id        uint
	name      string
	code      string
	createdAt time.Time
	updatedAt time.Time
}

// NewModuleCategory creates a category. name may be a literal label or a
// language code resolved at display time.
func NewModuleCategory(name, code string) (*ModuleCategory, error) {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)
	if name == "" {
		return nil, errors.NewValidationError("category name is required")
	}
	if !IsValidCode(code) {
		return nil, errors.NewValidationError("invalid category code", code)
	}

	now := time.Now().UTC()
	return &ModuleCategory{
		name:      name,
		code:      code,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructModuleCategory rebuilds a category from persistence.
func ReconstructModuleCategory(id uint, name, code string, createdAt, updatedAt time.Time) *ModuleCategory {
	return &ModuleCategory{
		id:        id,
		name:      name,
		code:      code,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *ModuleCategory) ID() uint             { return c.id }
func (c *ModuleCategory) Name() string         { return c.name }
func (c *ModuleCategory) Code() string         { return c.code }
func (c *ModuleCategory) CreatedAt() time.Time { return c.createdAt }
func (c *ModuleCategory) UpdatedAt() time.Time { return c.updatedAt }

// SetID sets the ID after the row is inserted.
func (c *ModuleCategory) SetID(id uint) {
	c.id = id
}
