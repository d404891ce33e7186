package catalog

import (
	"context"

	"modcms/internal/application/catalog/dto"
	"modcms/internal/domain/content"
	"modcms/internal/domain/record"
	"modcms/internal/shared/errors"
	"modcms/internal/shared/mapper"
)

// AddColumnDefinition declares a custom column on a category.
func (s *Service) AddColumnDefinition(ctx context.Context, categoryID uint, req dto.AddColumnRequest) (*dto.ColumnResponse, error) {
	if _, err := s.requireCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	def, err := content.NewColumnDefinition(categoryID, req.ToSpec())
	if err != nil {
		return nil, err
	}

	if err := s.checkForeignTarget(ctx, def); err != nil {
		return nil, err
	}

	exists, err := s.columns.ExistsByName(ctx, categoryID, def.Name())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New(errors.KindDuplicateColumnName, "column already defined for category", def.Name()).WithField(def.Name())
	}

	if err := s.columns.Create(ctx, def); err != nil {
		return nil, err
	}

	s.logger.Infow("column definition added",
		"category_id", categoryID,
		"name", def.Name(),
		"type", def.Type().String(),
	)
	return dto.ToColumnResponse(def), nil
}

// ListColumnDefinitions returns the category's definitions in creation order.
func (s *Service) ListColumnDefinitions(ctx context.Context, categoryID uint) ([]*dto.ColumnResponse, error) {
	if _, err := s.requireCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	defs, err := s.columns.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	return mapper.MapSlice(defs, dto.ToColumnResponse), nil
}

// RemoveColumnDefinition drops a definition from its category.
func (s *Service) RemoveColumnDefinition(ctx context.Context, categoryID, columnID uint) error {
	def, err := s.columns.GetByID(ctx, columnID)
	if err != nil {
		return err
	}
	if def == nil || def.CategoryID() != categoryID {
		return errors.New(errors.KindUnknownColumnDefinition, "column definition not found")
	}

	if err := s.columns.Delete(ctx, columnID); err != nil {
		return err
	}

	s.logger.Infow("column definition removed", "category_id", categoryID, "name", def.Name())
	return nil
}

// checkForeignTarget verifies that a foreign-key column points at an existing
// table and column.
func (s *Service) checkForeignTarget(ctx context.Context, def *content.ColumnDefinition) error {
	ref, ok := def.Type().Foreign()
	if !ok || s.inspector == nil {
		return nil
	}

	live, err := s.inspector.Columns(ctx, ref.Table)
	if err != nil {
		return err
	}
	if !record.HasColumn(live, ref.Column) {
		return errors.New(errors.KindInvalidColumnSpec, "foreign reference does not exist", ref.Table+"."+ref.Column).WithField(def.Name())
	}
	return nil
}
