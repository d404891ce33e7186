package catalog

import (
	"context"

	"modcms/internal/application/catalog/dto"
	"modcms/internal/domain/content"
	"modcms/internal/shared/errors"
	"modcms/internal/shared/mapper"
)

// CreateCategory creates a category with a unique code.
func (s *Service) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := content.NewModuleCategory(req.Name, req.Code)
	if err != nil {
		return nil, err
	}

	exists, err := s.categories.ExistsByCode(ctx, category.Code())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.New(errors.KindDuplicateCode, "category code already exists", category.Code())
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Infow("module category created", "id", category.ID(), "code", category.Code())
	return dto.ToCategoryResponse(category), nil
}

// GetCategory returns one category.
func (s *Service) GetCategory(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	category, err := s.requireCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// ListCategories returns every category.
func (s *Service) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	return mapper.MapSlice(categories, dto.ToCategoryResponse), nil
}

// DeleteCategory removes a category no module or column definition uses.
func (s *Service) DeleteCategory(ctx context.Context, id uint) error {
	err := s.inTx(ctx, func(ctx context.Context) error {
		if _, err := s.requireCategory(ctx, id); err != nil {
			return err
		}

		moduleCount, err := s.modules.CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		columnCount, err := s.columns.CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if moduleCount > 0 || columnCount > 0 {
			return errors.New(errors.KindCategoryInUse, "category is still referenced",
				"modules or column definitions use it")
		}

		return s.categories.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("module category deleted", "id", id)
	return nil
}

func (s *Service) requireCategory(ctx context.Context, id uint) (*content.ModuleCategory, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.New(errors.KindUnknownCategory, "category not found")
	}
	return category, nil
}
