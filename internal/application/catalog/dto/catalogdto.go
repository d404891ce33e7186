package dto

// CatalogDocument is the YAML layout accepted by catalog import.
type CatalogDocument struct {
	Categories []CatalogCategory `yaml:"categories"`
}

// CatalogCategory describes one category with its columns and modules.
type CatalogCategory struct {
	Name    string                `yaml:"name"`
	Code    string                `yaml:"code"`
	Columns []AddColumnRequest    `yaml:"columns"`
	Modules []CreateModuleRequest `yaml:"modules"`
}

// ImportReport summarizes what a catalog import changed.
type ImportReport struct {
	CategoriesCreated int      `json:"categories_created"`
	ColumnsCreated    int      `json:"columns_created"`
	ModulesCreated    int      `json:"modules_created"`
	Skipped           []string `json:"skipped,omitempty"`
}
