package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	catalogdto "modcms/internal/application/catalog/dto"
	"modcms/internal/application/records"
	"modcms/internal/application/widget"
	"modcms/internal/domain/localization"
	"modcms/internal/domain/record"
)

type mockCategoryService struct{ mock.Mock }

func (m *mockCategoryService) CreateCategory(ctx context.Context, req catalogdto.CreateCategoryRequest) (*catalogdto.CategoryResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogdto.CategoryResponse), args.Error(1)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id uint) (*catalogdto.CategoryResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogdto.CategoryResponse), args.Error(1)
}

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]*catalogdto.CategoryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalogdto.CategoryResponse), args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryService) AddColumnDefinition(ctx context.Context, categoryID uint, req catalogdto.AddColumnRequest) (*catalogdto.ColumnResponse, error) {
	args := m.Called(ctx, categoryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogdto.ColumnResponse), args.Error(1)
}

func (m *mockCategoryService) ListColumnDefinitions(ctx context.Context, categoryID uint) ([]*catalogdto.ColumnResponse, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalogdto.ColumnResponse), args.Error(1)
}

func (m *mockCategoryService) RemoveColumnDefinition(ctx context.Context, categoryID, columnID uint) error {
	return m.Called(ctx, categoryID, columnID).Error(0)
}

func (m *mockCategoryService) ImportCatalog(ctx context.Context, doc *catalogdto.CatalogDocument) (*catalogdto.ImportReport, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogdto.ImportReport), args.Error(1)
}

type mockModuleService struct{ mock.Mock }

func (m *mockModuleService) CreateModule(ctx context.Context, req catalogdto.CreateModuleRequest) (*catalogdto.ModuleResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogdto.ModuleResponse), args.Error(1)
}

func (m *mockModuleService) GetModule(ctx context.Context, id uint) (*catalogdto.ModuleResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogdto.ModuleResponse), args.Error(1)
}

func (m *mockModuleService) ListModules(ctx context.Context, req catalogdto.ListModulesRequest) ([]*catalogdto.ModuleResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalogdto.ModuleResponse), args.Error(1)
}

func (m *mockModuleService) UpdateModule(ctx context.Context, id uint, req catalogdto.UpdateModuleRequest) (*catalogdto.ModuleResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogdto.ModuleResponse), args.Error(1)
}

func (m *mockModuleService) DeleteModule(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockRecordStore struct{ mock.Mock }

func (m *mockRecordStore) Create(ctx context.Context, moduleCode string, attrs map[string]any) (record.Record, error) {
	args := m.Called(ctx, moduleCode, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(record.Record), args.Error(1)
}

func (m *mockRecordStore) Update(ctx context.Context, moduleCode string, id int64, attrs map[string]any) (record.Record, error) {
	args := m.Called(ctx, moduleCode, id, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(record.Record), args.Error(1)
}

func (m *mockRecordStore) Delete(ctx context.Context, moduleCode string, id int64) error {
	return m.Called(ctx, moduleCode, id).Error(0)
}

func (m *mockRecordStore) Get(ctx context.Context, moduleCode string, id int64, opts records.ListOptions) (record.Record, error) {
	args := m.Called(ctx, moduleCode, id, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(record.Record), args.Error(1)
}

func (m *mockRecordStore) List(ctx context.Context, moduleCode string, opts records.ListOptions) (*records.Page, error) {
	args := m.Called(ctx, moduleCode, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*records.Page), args.Error(1)
}

type mockWidgetBuilder struct{ mock.Mock }

func (m *mockWidgetBuilder) Build(ctx context.Context, req widget.Request) (*widget.Widget, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*widget.Widget), args.Error(1)
}

type mockTextResolver struct{ mock.Mock }

func (m *mockTextResolver) MatchLanguage(ctx context.Context, tag string) (*localization.Language, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*localization.Language), args.Error(1)
}

func (m *mockTextResolver) Resolve(ctx context.Context, code string, languageID uint) (string, error) {
	args := m.Called(ctx, code, languageID)
	return args.String(0), args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }
