package mappers

import (
	"modcms/internal/domain/content"
	"modcms/internal/infrastructure/persistence/models"
	"modcms/internal/shared/mapper"
)

// ModuleCategoryMapper converts between category entities and models
type ModuleCategoryMapper interface {
	ToDomain(model *models.ModuleCategoryModel) *content.ModuleCategory
	ToModel(category *content.ModuleCategory) *models.ModuleCategoryModel
	ToDomainList(modelList []*models.ModuleCategoryModel) []*content.ModuleCategory
}

type ModuleCategoryMapperImpl struct{}

func NewModuleCategoryMapper() ModuleCategoryMapper {
	return &ModuleCategoryMapperImpl{}
}

func (m *ModuleCategoryMapperImpl) ToDomain(model *models.ModuleCategoryModel) *content.ModuleCategory {
	if model == nil {
		return nil
	}
	return content.ReconstructModuleCategory(model.ID, model.Name, model.Code, model.CreatedAt, model.UpdatedAt)
}

func (m *ModuleCategoryMapperImpl) ToModel(category *content.ModuleCategory) *models.ModuleCategoryModel {
	if category == nil {
		return nil
	}
	return &models.ModuleCategoryModel{
		ID:        category.ID(),
		Name:      category.Name(),
		Code:      category.Code(),
		CreatedAt: category.CreatedAt(),
		UpdatedAt: category.UpdatedAt(),
	}
}

func (m *ModuleCategoryMapperImpl) ToDomainList(modelList []*models.ModuleCategoryModel) []*content.ModuleCategory {
	return mapper.MapSlicePtrSkipNil(modelList, m.ToDomain)
}
