package content

import (
	"strings"
	"time"

	"modcms/internal/shared/errors"
)

// Module is a runtime-defined content type backed by one record table.
type Module struct {
	id         uint
	name       string
	code       string
	categoryID uint
	tableName  string
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

// NewModule creates a module. An empty tableName derives the backing table
// from the code.
func NewModule(name, code string, categoryID uint, tableName string, active bool) (*Module, error) {
	name = strings.TrimSpace(name)
	code = strings.TrimSpace(code)
	if name == "" {
		return nil, errors.NewValidationError("module name is required")
	}
	if !IsValidCode(code) {
		return nil, errors.NewValidationError("invalid module code", code)
	}
	if categoryID == 0 {
		return nil, errors.NewValidationError("category id is required")
	}
	if tableName == "" {
		tableName = TableNameForCode(code)
	}
	if !IsValidIdentifier(tableName) {
		return nil, errors.NewValidationError("invalid table name", tableName)
	}

	now := time.Now().UTC()
	return &Module{
		name:       name,
		code:       code,
		categoryID: categoryID,
		tableName:  tableName,
		active:     active,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructModule rebuilds a module from persistence.
func ReconstructModule(id uint, name, code string, categoryID uint, tableName string, active bool, createdAt, updatedAt time.Time) *Module {
	return &Module{
		id:         id,
		name:       name,
		code:       code,
		categoryID: categoryID,
		tableName:  tableName,
		active:     active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// TableNameForCode maps a module code to its default backing table.
func TableNameForCode(code string) string {
	return strings.ReplaceAll(code, "-", "_")
}

func (m *Module) ID() uint             { return m.id }
func (m *Module) Name() string         { return m.name }
func (m *Module) Code() string         { return m.code }
func (m *Module) CategoryID() uint     { return m.categoryID }
func (m *Module) TableName() string    { return m.tableName }
func (m *Module) IsActive() bool       { return m.active }
func (m *Module) CreatedAt() time.Time { return m.createdAt }
func (m *Module) UpdatedAt() time.Time { return m.updatedAt }

func (m *Module) SetID(id uint) {
	m.id = id
}

// Rename changes the display name.
func (m *Module) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.NewValidationError("module name is required")
	}
	m.name = name
	m.updatedAt = time.Now().UTC()
	return nil
}

// SetActive toggles whether records of this module are reachable.
func (m *Module) SetActive(active bool) {
	m.active = active
	m.updatedAt = time.Now().UTC()
}
