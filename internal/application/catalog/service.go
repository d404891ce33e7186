// Package catalog is the content-type registry: categories, their column
// definitions and the modules built on them.
package catalog

import (
	"context"

	"modcms/internal/domain/content"
	"modcms/internal/domain/record"
	"modcms/internal/shared/db"
	"modcms/internal/shared/logger"
)

// Service implements the registry operations.
type Service struct {
	categories content.CategoryRepository
	modules    content.ModuleRepository
	columns    content.ColumnRepository
	inspector  record.SchemaInspector
	tx         db.TxRunner
	logger     logger.Interface
}

// NewService creates the registry. inspector may be nil, which skips checks
// of foreign-key targets and backing tables against the live schema.
func NewService(
	categories content.CategoryRepository,
	modules content.ModuleRepository,
	columns content.ColumnRepository,
	inspector record.SchemaInspector,
	tx db.TxRunner,
	logger logger.Interface,
) *Service {
	return &Service{
		categories: categories,
		modules:    modules,
		columns:    columns,
		inspector:  inspector,
		tx:         tx,
		logger:     logger,
	}
}

func (s *Service) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx == nil {
		return fn(ctx)
	}
	return s.tx.RunInTransaction(ctx, fn)
}
