package http

import (
	"fmt"

	"modcms/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	categoryHandler    *handlers.CategoryHandler
	moduleHandler      *handlers.ModuleHandler
	recordHandler      *handlers.RecordHandler
	widgetHandler      *handlers.WidgetHandler
	translationHandler *handlers.TranslationHandler
	healthHandler      *handlers.HealthHandler
}

func (c *Container) newHandlers() (*allHandlers, error) {
	sqlDB, err := c.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	log := c.log
	return &allHandlers{
		categoryHandler:    handlers.NewCategoryHandler(c.svcs.catalog, log),
		moduleHandler:      handlers.NewModuleHandler(c.svcs.catalog, log),
		recordHandler:      handlers.NewRecordHandler(c.svcs.store, log),
		widgetHandler:      handlers.NewWidgetHandler(c.svcs.composer, log),
		translationHandler: handlers.NewTranslationHandler(c.svcs.resolver, log),
		healthHandler:      handlers.NewHealthHandler(sqlDB, log),
	}, nil
}
