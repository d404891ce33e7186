package mappers

import (
	"modcms/internal/domain/content"
	"modcms/internal/infrastructure/persistence/models"
	"modcms/internal/shared/mapper"
)

// ModuleMapper converts between module entities and models
type ModuleMapper interface {
	ToDomain(model *models.ModuleModel) *content.Module
	ToModel(module *content.Module) *models.ModuleModel
	ToDomainList(modelList []*models.ModuleModel) []*content.Module
}

type ModuleMapperImpl struct{}

func NewModuleMapper() ModuleMapper {
	return &ModuleMapperImpl{}
}

func (m *ModuleMapperImpl) ToDomain(model *models.ModuleModel) *content.Module {
	if model == nil {
		return nil
	}
	return content.ReconstructModule(
		model.ID,
		model.Name,
		model.Code,
		model.CategoryID,
		model.BackingTable,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ModuleMapperImpl) ToModel(module *content.Module) *models.ModuleModel {
	if module == nil {
		return nil
	}
	return &models.ModuleModel{
		ID:           module.ID(),
		Name:         module.Name(),
		Code:         module.Code(),
		CategoryID:   module.CategoryID(),
		BackingTable: module.TableName(),
		Active:       module.IsActive(),
		CreatedAt:    module.CreatedAt(),
		UpdatedAt:    module.UpdatedAt(),
	}
}

func (m *ModuleMapperImpl) ToDomainList(modelList []*models.ModuleModel) []*content.Module {
	return mapper.MapSlicePtrSkipNil(modelList, m.ToDomain)
}
