package content

import (
	"fmt"
	"strings"
	"time"

	"modcms/internal/shared/constants"
	"modcms/internal/shared/errors"
)

// TypeKind enumerates the value types a custom column can hold.
type TypeKind string

const (
	TypeText       TypeKind = "text"
	TypeNumber     TypeKind = "number"
	TypeBoolean    TypeKind = "boolean"
	TypeForeignKey TypeKind = "foreign-key"
	TypeOptionSet  TypeKind = "option-set"
)

// Column option keys understood by the engine. Other keys are UI hints.
const (
	OptionValues    = "values"
	OptionLocalized = "localized"
	OptionFormat    = "format"

	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// ForeignRef points a foreign-key column at table.column.
type ForeignRef struct {
	Table  string
	Column string
}

// ColumnType is a tagged variant: the foreign reference exists only for
// foreign-key columns and the allowed values only for option-set columns.
type ColumnType struct {
	kind    TypeKind
	foreign ForeignRef
	values  []string
}

func TextType() ColumnType    { return ColumnType{kind: TypeText} }
func NumberType() ColumnType  { return ColumnType{kind: TypeNumber} }
func BooleanType() ColumnType { return ColumnType{kind: TypeBoolean} }

// ForeignKeyType builds a foreign-key type referencing table.column.
func ForeignKeyType(table, column string) (ColumnType, error) {
	if table == "" || column == "" {
		return ColumnType{}, invalidColumnSpec("foreign-key columns need both foreign table and column")
	}
	if !IsValidIdentifier(table) || !IsValidIdentifier(column) {
		return ColumnType{}, invalidColumnSpec("unsafe foreign reference", table+"."+column)
	}
	return ColumnType{kind: TypeForeignKey, foreign: ForeignRef{Table: table, Column: column}}, nil
}

// OptionSetType builds an option-set type with the given allowed values.
func OptionSetType(values []string) (ColumnType, error) {
	cleaned := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		cleaned = append(cleaned, v)
	}
	if len(cleaned) == 0 {
		return ColumnType{}, invalidColumnSpec("option-set columns need at least one value")
	}
	return ColumnType{kind: TypeOptionSet, values: cleaned}, nil
}

// ParseColumnType builds a ColumnType from its loose persisted or request form.
func ParseColumnType(kind, foreignTable, foreignColumn string, values []string) (ColumnType, error) {
	hasForeign := foreignTable != "" || foreignColumn != ""
	switch TypeKind(kind) {
	case TypeForeignKey:
		return ForeignKeyType(foreignTable, foreignColumn)
	case TypeOptionSet:
		if hasForeign {
			return ColumnType{}, invalidColumnSpec("foreign reference is only allowed on foreign-key columns")
		}
		return OptionSetType(values)
	case TypeText, TypeNumber, TypeBoolean:
		if hasForeign {
			return ColumnType{}, invalidColumnSpec("foreign reference is only allowed on foreign-key columns")
		}
		return ColumnType{kind: TypeKind(kind)}, nil
	default:
		return ColumnType{}, invalidColumnSpec("unknown column type", kind)
	}
}

func (t ColumnType) Kind() TypeKind { return t.kind }

// Foreign returns the referenced table and column; ok is false for other kinds.
func (t ColumnType) Foreign() (ForeignRef, bool) {
	return t.foreign, t.kind == TypeForeignKey
}

// Values returns a copy of the allowed option-set values.
func (t ColumnType) Values() []string {
	if t.kind != TypeOptionSet {
		return nil
	}
	out := make([]string, len(t.values))
	copy(out, t.values)
	return out
}

// Allows reports whether v is one of the option-set values.
func (t ColumnType) Allows(v string) bool {
	for _, allowed := range t.values {
		if allowed == v {
			return true
		}
	}
	return false
}

func (t ColumnType) String() string {
	if t.kind == TypeForeignKey {
		return fmt.Sprintf("%s(%s.%s)", t.kind, t.foreign.Table, t.foreign.Column)
	}
	return string(t.kind)
}

// ColumnSpec is the caller-supplied description of a new column definition.
type ColumnSpec struct {
	Name          string
	Type          string
	ForeignTable  string
	ForeignColumn string
	Required      bool
	Unique        bool
	Options       map[string]any
}

// ColumnDefinition is a validation rule attached to every module of a category.
type ColumnDefinition struct {
	id         uint
	categoryID uint
	name       string
	columnType ColumnType
	required   bool
	unique     bool
	options    map[string]any
	position   int
	createdAt  time.Time
}

// NewColumnDefinition validates spec and builds a definition for categoryID.
// Reserved system column names are rejected as duplicates.
func NewColumnDefinition(categoryID uint, spec ColumnSpec) (*ColumnDefinition, error) {
	name := strings.TrimSpace(spec.Name)
	if !IsValidIdentifier(name) {
		return nil, invalidColumnSpec("unsafe column name", name)
	}
	if constants.IsReservedColumn(name) {
		return nil, errors.New(errors.KindDuplicateColumnName, "column name is reserved", name).WithField(name)
	}

	colType, err := ParseColumnType(spec.Type, spec.ForeignTable, spec.ForeignColumn, optionValues(spec.Options))
	if err != nil {
		return nil, err
	}

	options := cloneOptions(spec.Options)
	if colType.Kind() == TypeOptionSet {
		options[OptionValues] = colType.Values()
	}
	if format, ok := options[OptionFormat]; ok {
		f, _ := format.(string)
		if f != FormatHTML && f != FormatMarkdown {
			return nil, invalidColumnSpec("unsupported format", fmt.Sprint(format))
		}
		if colType.Kind() != TypeText {
			return nil, invalidColumnSpec("format is only allowed on text columns")
		}
	}

	return &ColumnDefinition{
		categoryID: categoryID,
		name:       name,
		columnType: colType,
		required:   spec.Required,
		unique:     spec.Unique,
		options:    options,
		createdAt:  time.Now().UTC(),
	}, nil
}

// ReconstructColumnDefinition rebuilds a definition from persistence.
func ReconstructColumnDefinition(id, categoryID uint, name string, colType ColumnType, required, unique bool, options map[string]any, position int, createdAt time.Time) *ColumnDefinition {
	return &ColumnDefinition{
		id:         id,
		categoryID: categoryID,
		name:       name,
		columnType: colType,
		required:   required,
		unique:     unique,
		options:    cloneOptions(options),
		position:   position,
		createdAt:  createdAt,
	}
}

func (d *ColumnDefinition) ID() uint             { return d.id }
func (d *ColumnDefinition) CategoryID() uint     { return d.categoryID }
func (d *ColumnDefinition) Name() string         { return d.name }
func (d *ColumnDefinition) Type() ColumnType     { return d.columnType }
func (d *ColumnDefinition) IsRequired() bool     { return d.required }
func (d *ColumnDefinition) IsUnique() bool       { return d.unique }
func (d *ColumnDefinition) Position() int        { return d.position }
func (d *ColumnDefinition) CreatedAt() time.Time { return d.createdAt }

// Options returns a copy of the options payload.
func (d *ColumnDefinition) Options() map[string]any {
	return cloneOptions(d.options)
}

// IsLocalized reports whether values are language codes to be resolved for display.
func (d *ColumnDefinition) IsLocalized() bool {
	v, _ := d.options[OptionLocalized].(bool)
	return v
}

// Format returns the rich-text format of a text column, or "".
func (d *ColumnDefinition) Format() string {
	v, _ := d.options[OptionFormat].(string)
	return v
}

func (d *ColumnDefinition) SetID(id uint) {
	d.id = id
}

func (d *ColumnDefinition) SetPosition(position int) {
	d.position = position
}

func optionValues(options map[string]any) []string {
	raw, ok := options[OptionValues]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return nil
	}
}

func cloneOptions(options map[string]any) map[string]any {
	out := make(map[string]any, len(options))
	for k, v := range options {
		out[k] = v
	}
	return out
}
