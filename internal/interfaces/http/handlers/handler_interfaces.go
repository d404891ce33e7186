package handlers

import (
	"context"

	catalogdto "modcms/internal/application/catalog/dto"
	"modcms/internal/application/records"
	"modcms/internal/application/widget"
	"modcms/internal/domain/localization"
	"modcms/internal/domain/record"
)

// Service interfaces consumed by the handlers

type categoryService interface {
	CreateCategory(ctx context.Context, req catalogdto.CreateCategoryRequest) (*catalogdto.CategoryResponse, error)
	GetCategory(ctx context.Context, id uint) (*catalogdto.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]*catalogdto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uint) error
	AddColumnDefinition(ctx context.Context, categoryID uint, req catalogdto.AddColumnRequest) (*catalogdto.ColumnResponse, error)
	ListColumnDefinitions(ctx context.Context, categoryID uint) ([]*catalogdto.ColumnResponse, error)
	RemoveColumnDefinition(ctx context.Context, categoryID, columnID uint) error
	ImportCatalog(ctx context.Context, doc *catalogdto.CatalogDocument) (*catalogdto.ImportReport, error)
}

type moduleService interface {
	CreateModule(ctx context.Context, req catalogdto.CreateModuleRequest) (*catalogdto.ModuleResponse, error)
	GetModule(ctx context.Context, id uint) (*catalogdto.ModuleResponse, error)
	ListModules(ctx context.Context, req catalogdto.ListModulesRequest) ([]*catalogdto.ModuleResponse, error)
	UpdateModule(ctx context.Context, id uint, req catalogdto.UpdateModuleRequest) (*catalogdto.ModuleResponse, error)
	DeleteModule(ctx context.Context, id uint) error
}

type recordStore interface {
	Create(ctx context.Context, moduleCode string, attrs map[string]any) (record.Record, error)
	Update(ctx context.Context, moduleCode string, id int64, attrs map[string]any) (record.Record, error)
	Delete(ctx context.Context, moduleCode string, id int64) error
	Get(ctx context.Context, moduleCode string, id int64, opts records.ListOptions) (record.Record, error)
	List(ctx context.Context, moduleCode string, opts records.ListOptions) (*records.Page, error)
}

type widgetBuilder interface {
	Build(ctx context.Context, req widget.Request) (*widget.Widget, error)
}

type textResolver interface {
	MatchLanguage(ctx context.Context, tag string) (*localization.Language, error)
	Resolve(ctx context.Context, code string, languageID uint) (string, error)
}
