package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"modcms/internal/domain/content"
	"modcms/internal/domain/record"
)

type mockCategoryRepository struct{ mock.Mock }

func (m *mockCategoryRepository) Create(ctx context.Context, c *content.ModuleCategory) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.SetID(1)
	}
	return args.Error(0)
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id uint) (*content.ModuleCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.ModuleCategory), args.Error(1)
}

func (m *mockCategoryRepository) GetByCode(ctx context.Context, code string) (*content.ModuleCategory, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.ModuleCategory), args.Error(1)
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*content.ModuleCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*content.ModuleCategory), args.Error(1)
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type mockModuleRepository struct{ mock.Mock }

func (m *mockModuleRepository) Create(ctx context.Context, mod *content.Module) error {
	args := m.Called(ctx, mod)
	if args.Error(0) == nil {
		mod.SetID(10)
	}
	return args.Error(0)
}

func (m *mockModuleRepository) Update(ctx context.Context, mod *content.Module) error {
	return m.Called(ctx, mod).Error(0)
}

func (m *mockModuleRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockModuleRepository) GetByID(ctx context.Context, id uint) (*content.Module, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Module), args.Error(1)
}

func (m *mockModuleRepository) GetByCode(ctx context.Context, code string) (*content.Module, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Module), args.Error(1)
}

func (m *mockModuleRepository) List(ctx context.Context, filter content.ModuleFilter) ([]*content.Module, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*content.Module), args.Error(1)
}

func (m *mockModuleRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *mockModuleRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type mockColumnRepository struct{ mock.Mock }

func (m *mockColumnRepository) Create(ctx context.Context, d *content.ColumnDefinition) error {
	args := m.Called(ctx, d)
	if args.Error(0) == nil {
		d.SetID(100)
		d.SetPosition(1)
	}
	return args.Error(0)
}

func (m *mockColumnRepository) ListByCategory(ctx context.Context, categoryID uint) ([]*content.ColumnDefinition, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]*content.ColumnDefinition), args.Error(1)
}

func (m *mockColumnRepository) GetByID(ctx context.Context, id uint) (*content.ColumnDefinition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.ColumnDefinition), args.Error(1)
}

func (m *mockColumnRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockColumnRepository) ExistsByName(ctx context.Context, categoryID uint, name string) (bool, error) {
	args := m.Called(ctx, categoryID, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockColumnRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

type mockSchemaInspector struct{ mock.Mock }

func (m *mockSchemaInspector) Columns(ctx context.Context, table string) ([]record.ColumnDescriptor, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.ColumnDescriptor), args.Error(1)
}

func (m *mockSchemaInspector) HasTable(ctx context.Context, table string) (bool, error) {
	args := m.Called(ctx, table)
	return args.Bool(0), args.Error(1)
}
