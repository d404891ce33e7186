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

// ModuleRepository implements content.ModuleRepository
type ModuleRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.ModuleMapper
}

// NewModuleRepository creates a new ModuleRepository
func NewModuleRepository(db *gorm.DB, logger logger.Interface) content.ModuleRepository {
	return &ModuleRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewModuleMapper(),
	}
}

// Create inserts a module and assigns its ID
func (r *ModuleRepository) Create(ctx context.Context, module *content.Module) error {
	model := r.mapper.ToModel(module)

	if err := db.Conn(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.New(apperrors.KindDuplicateCode, "module code already exists", module.Code())
		}
		r.logger.Errorw("failed to create module", "code", module.Code(), "error", err)
		return apperrors.NewStorageError("create module", err)
	}

	module.SetID(model.ID)
	return nil
}

// Update saves the mutable fields of a module
func (r *ModuleRepository) Update(ctx context.Context, module *content.Module) error {
	result := db.Conn(ctx, r.db).Model(&models.ModuleModel{}).
		Where("id = ?", module.ID()).
		Updates(map[string]any{
			"name":       module.Name(),
			"active":     module.IsActive(),
			"updated_at": module.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update module", "id", module.ID(), "error", result.Error)
		return apperrors.NewStorageError("update module", result.Error)
	}
	return nil
}

// Delete removes a module by ID
func (r *ModuleRepository) Delete(ctx context.Context, id uint) error {
	result := db.Conn(ctx, r.db).Delete(&models.ModuleModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete module", "id", id, "error", result.Error)
		return apperrors.NewStorageError("delete module", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.New(apperrors.KindUnknownModule, "module not found")
	}
	return nil
}

// GetByID retrieves a module by ID
func (r *ModuleRepository) GetByID(ctx context.Context, id uint) (*content.Module, error) {
	var model models.ModuleModel
	if err := db.Conn(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get module", "id", id, "error", err)
		return nil, apperrors.NewStorageError("get module", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// GetByCode retrieves a module by code
func (r *ModuleRepository) GetByCode(ctx context.Context, code string) (*content.Module, error) {
	var model models.ModuleModel
	if err := db.Conn(ctx, r.db).Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get module by code", "code", code, "error", err)
		return nil, apperrors.NewStorageError("get module", err)
	}
	return r.mapper.ToDomain(&model), nil
}

// List returns modules matching filter ordered by ID
func (r *ModuleRepository) List(ctx context.Context, filter content.ModuleFilter) ([]*content.Module, error) {
	query := db.Conn(ctx, r.db).Model(&models.ModuleModel{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var modelList []*models.ModuleModel
	if err := query.Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list modules", "error", err)
		return nil, apperrors.NewStorageError("list modules", err)
	}
	return r.mapper.ToDomainList(modelList), nil
}

// ExistsByCode checks whether a module with code exists
func (r *ModuleRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := db.Conn(ctx, r.db).Model(&models.ModuleModel{}).Where("code = ?", code).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check module code", "code", code, "error", err)
		return false, apperrors.NewStorageError("check module code", err)
	}
	return count > 0, nil
}

// CountByCategory counts modules attached to a category
func (r *ModuleRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := db.Conn(ctx, r.db).Model(&models.ModuleModel{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count modules", "category_id", categoryID, "error", err)
		return 0, apperrors.NewStorageError("count modules", err)
	}
	return count, nil
}
