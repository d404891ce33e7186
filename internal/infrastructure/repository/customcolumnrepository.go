package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"modcms/internal/domain/content"
	"modcms/internal/infrastructure/persistence/mappers"
	"modcms/internal/infrastructure/persistence/models"
	"modcms/internal/shared/db"
	apperrors "modcms/internal/shared/errors"
	"modcms/internal/shared/logger"
)

// CustomColumnRepository implements content.ColumnRepository
type CustomColumnRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.CustomColumnMapper
}

// NewCustomColumnRepository creates a new CustomColumnRepository
func NewCustomColumnRepository(db *gorm.DB, logger logger.Interface) content.ColumnRepository {
	return &CustomColumnRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewCustomColumnMapper(),
	}
}

// Create inserts a definition at the end of its category
func (r *CustomColumnRepository) Create(ctx context.Context, column *content.ColumnDefinition) error {
	conn := db.Conn(ctx, r.db)

	var maxPosition int
	if err := conn.Model(&models.CustomColumnModel{}).
		Where("category_id = ?", column.CategoryID()).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPosition).Error; err != nil {
		r.logger.Errorw("failed to read column position", "category_id", column.CategoryID(), "error", err)
		return apperrors.NewStorageError("create column definition", err)
	}
	column.SetPosition(maxPosition + 1)

	model, err := r.mapper.ToModel(column)
	if err != nil {
		return apperrors.NewInvariantError("cannot encode column definition", err.Error())
	}

	if err := conn.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.New(apperrors.KindDuplicateColumnName, "column already defined for category", column.Name()).WithField(column.Name())
		}
		r.logger.Errorw("failed to create column definition", "category_id", column.CategoryID(), "name", column.Name(), "error", err)
		return apperrors.NewStorageError("create column definition", err)
	}

	column.SetID(model.ID)
	return nil
}

// ListByCategory returns the category's definitions in creation order
func (r *CustomColumnRepository) ListByCategory(ctx context.Context, categoryID uint) ([]*content.ColumnDefinition, error) {
	var modelList []*models.CustomColumnModel
	if err := db.Conn(ctx, r.db).
		Where("category_id = ?", categoryID).
		Order("position ASC, id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list column definitions", "category_id", categoryID, "error", err)
		return nil, apperrors.NewStorageError("list column definitions", err)
	}

	defs, err := r.mapper.ToDomainList(modelList)
	if err != nil {
		r.logger.Errorw("stored column definition is invalid", "category_id", categoryID, "error", err)
		return nil, apperrors.NewInvariantError("stored column definition is invalid", err.Error())
	}
	return defs, nil
}

// GetByID retrieves a definition by ID
func (r *CustomColumnRepository) GetByID(ctx context.Context, id uint) (*content.ColumnDefinition, error) {
	var model models.CustomColumnModel
	if err := db.Conn(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get column definition", "id", id, "error", err)
		return nil, apperrors.NewStorageError("get column definition", err)
	}

	def, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, apperrors.NewInvariantError("stored column definition is invalid", err.Error())
	}
	return def, nil
}

// Delete removes a definition by ID
func (r *CustomColumnRepository) Delete(ctx context.Context, id uint) error {
	result := db.Conn(ctx, r.db).Delete(&models.CustomColumnModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete column definition", "id", id, "error", result.Error)
		return apperrors.NewStorageError("delete column definition", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.KindUnknownColumnDefinition, "column definition not found")
	}
	return nil
}

// ExistsByName checks whether the category already defines name
func (r *CustomColumnRepository) ExistsByName(ctx context.Context, categoryID uint, name string) (bool, error) {
	var count int64
	if err := db.Conn(ctx, r.db).Model(&models.CustomColumnModel{}).
		Where("category_id = ? AND name = ?", categoryID, name).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check column name", "category_id", categoryID, "name", name, "error", err)
		return false, apperrors.NewStorageError("check column name", err)
	}
	return count > 0, nil
}

// CountByCategory counts definitions of a category
func (r *CustomColumnRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := db.Conn(ctx, r.db).Model(&models.CustomColumnModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count column definitions", "category_id", categoryID, "error", err)
		return 0, apperrors.NewStorageError("count column definitions", err)
	}
	return count, nil
}
