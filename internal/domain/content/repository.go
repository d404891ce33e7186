package content

import "context"

// CategoryRepository persists module categories.
// Getters return (nil, nil) when the row does not exist.
type CategoryRepository interface {
	Create(ctx context.Context, category *ModuleCategory) error
	GetByID(ctx context.Context, id uint) (*ModuleCategory, error)
	GetByCode(ctx context.Context, code string) (*ModuleCategory, error)
	List(ctx context.Context) ([]*ModuleCategory, error)
	Delete(ctx context.Context, id uint) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// ModuleFilter narrows module listings. Nil fields do not filter.
type ModuleFilter struct {
	CategoryID *uint
	Active     *bool
}

// ModuleRepository persists modules.
type ModuleRepository interface {
	Create(ctx context.Context, module *Module) error
	Update(ctx context.Context, module *Module) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Module, error)
	GetByCode(ctx context.Context, code string) (*Module, error)
	List(ctx context.Context, filter ModuleFilter) ([]*Module, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

// ColumnRepository persists custom column definitions.
type ColumnRepository interface {
	// Create assigns the next position within the category.
	Create(ctx context.Context, column *ColumnDefinition) error
	// ListByCategory returns definitions in creation order.
	ListByCategory(ctx context.Context, categoryID uint) ([]*ColumnDefinition, error)
	GetByID(ctx context.Context, id uint) (*ColumnDefinition, error)
	Delete(ctx context.Context, id uint) error
	ExistsByName(ctx context.Context, categoryID uint, name string) (bool, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}
