package catalog

import (
	"context"

	"modcms/internal/application/catalog/dto"
	"modcms/internal/domain/content"
	"modcms/internal/shared/errors"
	"modcms/internal/shared/mapper"
)

// CreateModule creates a module in an existing category.
func (s *Service) CreateModule(ctx context.Context, req dto.CreateModuleRequest) (*dto.ModuleResponse, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	module, err := content.NewModule(req.Name, req.Code, req.CategoryID, req.TableName, active)
	if err != nil {
		return nil, err
	}

	if _, err := s.requireCategory(ctx, module.CategoryID()); err != nil {
		return nil, err
	}

	exists, err := s.modules.ExistsByCode(ctx, module.Code())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New(errors.KindDuplicateCode, "module code already exists", module.Code())
	}

	if s.inspector != nil {
		ok, err := s.inspector.HasTable(ctx, module.TableName())
		if err != nil {
			return nil, err
		}
		if !ok {
			s.logger.Warnw("module backing table does not exist yet", "code", module.Code(), "table", module.TableName())
		}
	}

	if err := s.modules.Create(ctx, module); err != nil {
		return nil, err
	}

	s.logger.Infow("module created",
		"id", module.ID(),
		"code", module.Code(),
		"category_id", module.CategoryID(),
		"table", module.TableName(),
	)
	return dto.ToModuleResponse(module), nil
}

// GetModule returns a module by ID.
func (s *Service) GetModule(ctx context.Context, id uint) (*dto.ModuleResponse, error) {
	module, err := s.requireModule(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToModuleResponse(module), nil
}

// GetModuleByCode returns a module by code, active or not.
func (s *Service) GetModuleByCode(ctx context.Context, code string) (*dto.ModuleResponse, error) {
	module, err := s.modules.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, errors.New(errors.KindUnknownModule, "module not found", code)
	}
	return dto.ToModuleResponse(module), nil
}

// ListModules returns modules, optionally by category and active flag.
func (s *Service) ListModules(ctx context.Context, req dto.ListModulesRequest) ([]*dto.ModuleResponse, error) {
	modules, err := s.modules.List(ctx, content.ModuleFilter{CategoryID: req.CategoryID, Active: req.Active})
	if err != nil {
		return nil, err
	}

	return mapper.MapSlice(modules, dto.ToModuleResponse), nil
}

// UpdateModule renames a module or toggles it.
func (s *Service) UpdateModule(ctx context.Context, id uint, req dto.UpdateModuleRequest) (*dto.ModuleResponse, error) {
	module, err := s.requireModule(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := module.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Active != nil {
		module.SetActive(*req.Active)
	}

	if err := s.modules.Update(ctx, module); err != nil {
		return nil, err
	}

	s.logger.Infow("module updated", "id", module.ID(), "active", module.IsActive())
	return dto.ToModuleResponse(module), nil
}

// DeleteModule removes a module. Its backing table and rows are left alone.
func (s *Service) DeleteModule(ctx context.Context, id uint) error {
	if _, err := s.requireModule(ctx, id); err != nil {
		return err
	}
	if err := s.modules.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("module deleted", "id", id)
	return nil
}

func (s *Service) requireModule(ctx context.Context, id uint) (*content.Module, error) {
	module, err := s.modules.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, errors.New(errors.KindUnknownModule, "module not found")
	}
	return module, nil
}
