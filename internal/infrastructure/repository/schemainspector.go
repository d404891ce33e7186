package repository

import (
	"context"

	"gorm.io/gorm"

	"modcms/internal/domain/record"
	"modcms/internal/shared/db"
	apperrors "modcms/internal/shared/errors"
	"modcms/internal/shared/logger"
)

// SchemaInspector implements record.SchemaInspector with the gorm migrator.
// Results are read from the live database on every call.
type SchemaInspector struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSchemaInspector(db *gorm.DB, logger logger.Interface) record.SchemaInspector {
	return &SchemaInspector{db: db, logger: logger}
}

// HasTable reports whether table exists
func (i *SchemaInspector) HasTable(ctx context.Context, table string) (bool, error) {
	return db.Conn(ctx, i.db).Migrator().HasTable(table), nil
}

// Columns returns the live columns of table, or none when it does not exist
func (i *SchemaInspector) Columns(ctx context.Context, table string) ([]record.ColumnDescriptor, error) {
	migrator := db.Conn(ctx, i.db).Migrator()
	if !migrator.HasTable(table) {
		return nil, nil
	}

	columnTypes, err := migrator.ColumnTypes(table)
	if err != nil {
		i.logger.Errorw("failed to introspect table", "table", table, "error", err)
		return nil, apperrors.NewStorageError("introspect table", err)
	}

	out := make([]record.ColumnDescriptor, 0, len(columnTypes))
	for _, ct := range columnTypes {
		out = append(out, record.ColumnDescriptor{
			Name: ct.Name(),
			Kind: ct.DatabaseTypeName(),
		})
	}
	return out, nil
}
