package http

import (
	"modcms/internal/application/catalog"
	"modcms/internal/application/localization"
	"modcms/internal/application/records"
	"modcms/internal/application/widget"
	domainl10n "modcms/internal/domain/localization"
	"modcms/internal/infrastructure/cache"
	shareddb "modcms/internal/shared/db"
	"modcms/internal/shared/services/richtext"
)

// allServices holds the application services behind the handlers.
type allServices struct {
	catalog  *catalog.Service
	resolver *localization.Resolver
	store    *records.Store
	composer *widget.Composer
}

func (c *Container) newServices() *allServices {
	cfg := c.cfg

	var translationCache domainl10n.TranslationCache
	if c.redis != nil && cfg.Localization.CacheTTL() > 0 {
		translationCache = cache.NewRedisTranslationCache(c.redis, cfg.Localization.CacheTTL())
	}

	resolver := localization.NewResolver(
		c.repos.languageRepo,
		translationCache,
		cfg.Localization.DefaultLanguage,
		c.log.With("component", "localization"),
	)

	catalogSvc := catalog.NewService(
		c.repos.categoryRepo,
		c.repos.moduleRepo,
		c.repos.columnRepo,
		c.repos.inspector,
		shareddb.NewTransactionManager(c.db),
		c.log.With("component", "catalog"),
	)

	store := records.NewStore(
		c.repos.moduleRepo,
		c.repos.columnRepo,
		c.repos.inspector,
		c.repos.recordRepo,
		resolver,
		richtext.NewFormatter(),
		cfg.Content,
		c.log.With("component", "records"),
	)

	return &allServices{
		catalog:  catalogSvc,
		resolver: resolver,
		store:    store,
		composer: widget.NewComposer(c.repos.moduleRepo, store, cfg.Content.RoutePrefix, c.log.With("component", "widget")),
	}
}

var _ widget.RecordLister = (*records.Store)(nil)
