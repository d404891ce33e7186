// Package widget builds embeddable data blocks that link to a module and
// optionally carry its records.
package widget

import (
	"context"
	"strings"

	"modcms/internal/application/records"
	"modcms/internal/domain/content"
	"modcms/internal/shared/constants"
	"modcms/internal/shared/errors"
	"modcms/internal/shared/logger"
	"modcms/internal/shared/query"
)

const defaultRoutePrefix = "/modules"

// RecordLister lists records of a loaded module.
type RecordLister interface {
	ListModule(ctx context.Context, module *content.Module, opts records.ListOptions) (*records.Page, error)
}

// Widget is the composed block. An unsupported kind yields the zero value,
// which serializes as {}.
type Widget struct {
	Kind       string         `json:"kind,omitempty"`
	ModuleID   uint           `json:"module_id,omitempty"`
	ModuleCode string         `json:"module_code,omitempty"`
	Route      string         `json:"route,omitempty"`
	Filters    map[string]any `json:"filters,omitempty"`
	Language   string         `json:"language,omitempty"`
	Data       *records.Page  `json:"data,omitempty"`
}

// Request describes the widget to build.
type Request struct {
	ModuleID uint
	Kind     string
	Filters  map[string]any
	LoadData bool
	Language string
	Page     query.PageFilter
}

type Composer struct {
	modules     content.ModuleRepository
	lister      RecordLister
	routePrefix string
	logger      logger.Interface
}

func NewComposer(modules content.ModuleRepository, lister RecordLister, routePrefix string, logger logger.Interface) *Composer {
	routePrefix = strings.TrimRight(routePrefix, "/")
	if routePrefix == "" {
		routePrefix = defaultRoutePrefix
	}
	return &Composer{
		modules:     modules,
		lister:      lister,
		routePrefix: routePrefix,
		logger:      logger,
	}
}

// Build composes the widget for req.
func (c *Composer) Build(ctx context.Context, req Request) (*Widget, error) {
	module, err := c.modules.GetByID(ctx, req.ModuleID)
	if err != nil {
		return nil, err
	}
	if module == nil || !module.IsActive() {
		return nil, errors.New(errors.KindUnknownModule, "module not found")
	}

	if req.Kind != constants.WidgetKindList && req.Kind != constants.WidgetKindSearch {
		c.logger.Debugw("unsupported widget kind", "kind", req.Kind, "module_id", req.ModuleID)
		return &Widget{}, nil
	}

	w := &Widget{
		Kind:       req.Kind,
		ModuleID:   module.ID(),
		ModuleCode: module.Code(),
		Route:      c.route(module.Code(), req.Kind),
		Filters:    req.Filters,
		Language:   req.Language,
	}

	if req.LoadData {
		page, err := c.lister.ListModule(ctx, module, records.ListOptions{
			Filters:        req.Filters,
			Page:           req.Page,
			Language:       req.Language,
			EmbedMedia:     true,
			RenderRichText: true,
		})
		if err != nil {
			return nil, err
		}
		w.Data = page
	}

	return w, nil
}

func (c *Composer) route(code, kind string) string {
	route := c.routePrefix + "/" + code
	if kind == constants.WidgetKindSearch {
		route += "/search"
	}
	return route
}
