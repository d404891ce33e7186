package constants

import "strings"

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType    = "Content-Type"
	HeaderXRequestID     = "X-Request-ID"
	HeaderAcceptLanguage = "Accept-Language"
	HeaderXUserID        = "X-User-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyRequestID = "request_id"

	// Catalog table names
	TableModuleCategories = "module_categories"
	TableModules          = "modules"
	TableCustomColumns    = "custom_columns"
	TableLanguages        = "languages"
	TableLanguageCodes    = "language_codes"
	TableTranslations     = "translations"

	// Sample content tables created by migrations
	TableDepartments = "departments"
	TableTeamMembers = "team_members"
	TableClients     = "clients"
	TableMedia       = "media"

	// Record identity and system-managed columns
	ColumnID        = "id"
	ColumnCreatedAt = "created_at"
	ColumnUpdatedAt = "updated_at"
	ColumnDeletedAt = "deleted_at"
	ColumnCreatedBy = "created_by"
	ColumnUpdatedBy = "updated_by"

	// Widget kinds
	WidgetKindList   = "list"
	WidgetKindSearch = "search"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
)

// ReservedColumns lists the system columns that are never writable and can
// never be declared as custom columns.
var ReservedColumns = []string{
	ColumnID,
	ColumnCreatedAt,
	ColumnUpdatedAt,
	ColumnDeletedAt,
	ColumnCreatedBy,
	ColumnUpdatedBy,
}

// IsReservedColumn reports whether name is a system-managed column.
func IsReservedColumn(name string) bool {
	for _, c := range ReservedColumns {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}
