package record

import (
	"context"

	"modcms/internal/shared/query"
)

// SchemaInspector reads the live column layout of a table.
type SchemaInspector interface {
	Columns(ctx context.Context, table string) ([]ColumnDescriptor, error)
	HasTable(ctx context.Context, table string) (bool, error)
}

// ListQuery selects rows by column equality, one page at a time.
type ListQuery struct {
	Filters map[string]any
	Page    query.PageFilter
}

// Repository stores rows of arbitrary module tables. Table and column names
// must already be validated identifiers.
type Repository interface {
	// Insert writes values and returns the stored row.
	Insert(ctx context.Context, table string, values map[string]any) (Record, error)
	// Update writes values to row id. Callers check existence first.
	Update(ctx context.Context, table string, id any, values map[string]any) error
	// Delete removes row id. It returns false when no row matched.
	Delete(ctx context.Context, table string, id any) (bool, error)
	// Find returns row id, or nil when absent.
	Find(ctx context.Context, table string, id any) (Record, error)
	// List returns rows ordered by id ascending and the total match count.
	List(ctx context.Context, table string, q ListQuery) ([]Record, int64, error)
	// ValueExists reports whether any row other than excludeID has column = value.
	// A nil excludeID excludes nothing.
	ValueExists(ctx context.Context, table, column string, value any, excludeID any) (bool, error)
	// FindByColumn returns rows whose column is one of values.
	FindByColumn(ctx context.Context, table, column string, values []any) ([]Record, error)
}
