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

// ModuleCategoryRepository implements content.CategoryRepository
type ModuleCategoryRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.ModuleCategoryMapper
}

// NewModuleCategoryRepository creates a new ModuleCategoryRepository
func NewModuleCategoryRepository(db *gorm.DB, logger logger.Interface) content.CategoryRepository {
	return &ModuleCategoryRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewModuleCategoryMapper(),
	}
}

// Create inserts a category and assigns its ID
func (r *ModuleCategoryRepository) Create(ctx context.Context, category *content.ModuleCategory) error {
	model := r.mapper.ToModel(category)

	if err := db.Conn(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.New(apperrors.KindDuplicateCode, "category code already exists", category.Code())
		}
		r.logger.Errorw("failed to create module category", "code", category.Code(), "error", err)
		return apperrors.NewStorageError("create category", err)
	}

	category.SetID(model.ID)
	return nil
}

// GetByID retrieves a category by ID
func (r *ModuleCategoryRepository) GetByID(ctx context.Context, id uint) (*content.ModuleCategory, error) {
	var model models.ModuleCategoryModel
	if err := db.Conn(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get module category", "id", id, "error", err)
		return nil, apperrors.NewStorageError("get category", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// GetByCode retrieves a category by code
func (r *ModuleCategoryRepository) GetByCode(ctx context.Context, code string) (*content.ModuleCategory, error) {
	var model models.ModuleCategoryModel
	if err := db.Conn(ctx, r.db).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get module category by code", "code", code, "error", err)
		return nil, apperrors.NewStorageError("get category", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// List returns all categories ordered by ID
func (r *ModuleCategoryRepository) List(ctx context.Context) ([]*content.ModuleCategory, error) {
	var modelList []*models.ModuleCategoryModel
	if err := db.Conn(ctx, r.db).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list module categories", "error", err)
		return nil, apperrors.NewStorageError("list categories", err)
	}
	return r.mapper.ToDomainList(modelList), nil
}

// Delete removes a category by ID
func (r *ModuleCategoryRepository) Delete(ctx context.Context, id uint) error {
	result := db.Conn(ctx, r.db).Delete(&models.ModuleCategoryModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete module category", "id", id, "error", result.Error)
		return apperrors.NewStorageError("delete category", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.KindUnknownCategory, "category not found")
	}
	return nil
}

// ExistsByCode checks whether a category with code exists
func (r *ModuleCategoryRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := db.Conn(ctx, r.db).Model(&models.ModuleCategoryModel{}).Where("code = ?", code).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check module category code", "code", code, "error", err)
		return false, apperrors.NewStorageError("check category code", err)
	}
	return count > 0, nil
}
