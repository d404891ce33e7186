// Package records is the dynamic record store: CRUD over module backing
// tables, validated against the category's column definitions.
package records

import (
	"context"
	"fmt"
	"time"

	"modcms/internal/domain/content"
	"modcms/internal/domain/localization"
	"modcms/internal/domain/record"
	"modcms/internal/shared/config"
	"modcms/internal/shared/constants"
	"modcms/internal/shared/errors"
	"modcms/internal/shared/logger"
	"modcms/internal/shared/query"
	"modcms/internal/shared/services/richtext"
)

// TextResolver resolves language codes stored in localized columns.
type TextResolver interface {
	MatchLanguage(ctx context.Context, tag string) (*localization.Language, error)
	Resolve(ctx context.Context, code string, languageID uint) (string, error)
}

// ListOptions narrows and decorates a list call.
type ListOptions struct {
	// Filters are equality conditions on live columns.
	Filters map[string]any
	Page    query.PageFilter
	// Language is a BCP-47 tag or Accept-Language value; empty means default.
	Language string
	// EmbedMedia attaches referenced media rows to foreign-key columns.
	EmbedMedia bool
	// RenderRichText adds rendered HTML for markdown columns.
	RenderRichText bool
}

// Page is one page of records.
type Page struct {
	Items      []record.Record `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// Store implements create/read/update/delete/list for any active module.
type Store struct {
	modules   content.ModuleRepository
	columns   content.ColumnRepository
	inspector record.SchemaInspector
	records   record.Repository
	texts     TextResolver
	formatter richtext.Formatter
	cfg       config.ContentConfig
	logger    logger.Interface
	now       func() time.Time
}

// NewStore creates a Store. texts may be nil, which disables localized
// siblings in list results.
func NewStore(
	modules content.ModuleRepository,
	columns content.ColumnRepository,
	inspector record.SchemaInspector,
	records record.Repository,
	texts TextResolver,
	formatter richtext.Formatter,
	cfg config.ContentConfig,
	logger logger.Interface,
) *Store {
	if cfg.MediaTable == "" {
		cfg.MediaTable = constants.TableMedia
	}
	return &Store{
		modules:   modules,
		columns:   columns,
		inspector: inspector,
		records:   records,
		texts:     texts,
		formatter: formatter,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// target is everything needed to operate on one module's table, read fresh
// for every call.
type target struct {
	module   *content.Module
	live     []record.ColumnDescriptor
	writable record.WritableSet
	defs     []*content.ColumnDefinition
}

func (t *target) table() string { return t.module.TableName() }

func (s *Store) resolveTarget(ctx context.Context, moduleCode string) (*target, error) {
	module, err := s.modules.GetByCode(ctx, moduleCode)
	if err != nil {
		return nil, err
	}
	if module == nil || !module.IsActive() {
		return nil, errors.New(errors.KindUnknownModule, "module not found", moduleCode)
	}
	return s.targetFor(ctx, module)
}

func (s *Store) targetFor(ctx context.Context, module *content.Module) (*target, error) {
	live, err := s.inspector.Columns(ctx, module.TableName())
	if err != nil {
		return nil, err
	}
	if len(live) == 0 {
		s.logger.Errorw("module backing table missing", "module", module.Code(), "table", module.TableName())
		return nil, errors.NewInvariantError("module backing table missing", module.TableName())
	}

	writable := record.NewWritableSet(live)

	all, err := s.columns.ListByCategory(ctx, module.CategoryID())
	if err != nil {
		return nil, err
	}
	defs := make([]*content.ColumnDefinition, 0, len(all))
	for _, d := range all {
		if writable.Contains(d.Name()) {
			defs = append(defs, d)
		}
	}

	return &target{module: module, live: live, writable: writable, defs: defs}, nil
}

// Create validates attrs and inserts a new record.
func (s *Store) Create(ctx context.Context, moduleCode string, attrs map[string]any) (record.Record, error) {
	t, err := s.resolveTarget(ctx, moduleCode)
	if err != nil {
		return nil, err
	}

	values := t.writable.Filter(attrs)
	if err := s.validate(ctx, t, values, values, nil); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	stamp(t, values, constants.ColumnCreatedAt, now)
	stamp(t, values, constants.ColumnUpdatedAt, now)
	if actor, ok := record.ActorFrom(ctx); ok {
		stamp(t, values, constants.ColumnCreatedBy, actor)
		stamp(t, values, constants.ColumnUpdatedBy, actor)
	}

	stored, err := s.records.Insert(ctx, t.table(), values)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("record created", "module", moduleCode, "id", stored.ID())
	return stored, nil
}

// Update applies a partial change. Absent keys keep their stored value and
// required columns are judged on the merged row.
func (s *Store) Update(ctx context.Context, moduleCode string, id int64, attrs map[string]any) (record.Record, error) {
	t, err := s.resolveTarget(ctx, moduleCode)
	if err != nil {
		return nil, err
	}

	existing, err := s.records.Find(ctx, t.table(), id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, recordNotFound(id)
	}

	patch := t.writable.Filter(attrs)
	if len(patch) == 0 {
		return existing, nil
	}

	merged := existing.Clone()
	for k, v := range patch {
		merged[k] = v
	}
	if err := s.validate(ctx, t, patch, merged, id); err != nil {
		return nil, err
	}

	stamp(t, patch, constants.ColumnUpdatedAt, s.now().UTC())
	if actor, ok := record.ActorFrom(ctx); ok {
		stamp(t, patch, constants.ColumnUpdatedBy, actor)
	}

	if err := s.records.Update(ctx, t.table(), id, patch); err != nil {
		return nil, err
	}

	stored, err := s.records.Find(ctx, t.table(), id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, recordNotFound(id)
	}

	s.logger.Infow("record updated", "module", moduleCode, "id", id, "fields", len(patch))
	return stored, nil
}

// Delete removes a record.
func (s *Store) Delete(ctx context.Context, moduleCode string, id int64) error {
	t, err := s.resolveTarget(ctx, moduleCode)
	if err != nil {
		return err
	}

	deleted, err := s.records.Delete(ctx, t.table(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return recordNotFound(id)
	}

	s.logger.Infow("record deleted", "module", moduleCode, "id", id)
	return nil
}

// Get returns one record, decorated like list results.
func (s *Store) Get(ctx context.Context, moduleCode string, id int64, opts ListOptions) (record.Record, error) {
	t, err := s.resolveTarget(ctx, moduleCode)
	if err != nil {
		return nil, err
	}

	rec, err := s.records.Find(ctx, t.table(), id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, recordNotFound(id)
	}

	items := []record.Record{rec}
	if err := s.decorate(ctx, t, items, opts); err != nil {
		return nil, err
	}
	return items[0], nil
}

// List returns matching records ordered by id.
func (s *Store) List(ctx context.Context, moduleCode string, opts ListOptions) (*Page, error) {
	t, err := s.resolveTarget(ctx, moduleCode)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, t, opts)
}

// ListModule is List for a module already loaded by the caller. Inactive
// modules are rejected the same way.
func (s *Store) ListModule(ctx context.Context, module *content.Module, opts ListOptions) (*Page, error) {
	if module == nil || !module.IsActive() {
		return nil, errors.New(errors.KindUnknownModule, "module not found")
	}
	t, err := s.targetFor(ctx, module)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, t, opts)
}

func (s *Store) list(ctx context.Context, t *target, opts ListOptions) (*Page, error) {
	filters, err := s.listFilters(t, opts.Filters)
	if err != nil {
		return nil, err
	}

	page := opts.Page.Normalize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
	items, total, err := s.records.List(ctx, t.table(), record.ListQuery{Filters: filters, Page: page})
	if err != nil {
		return nil, err
	}

	if err := s.decorate(ctx, t, items, opts); err != nil {
		return nil, err
	}

	return &Page{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(total),
	}, nil
}

func (s *Store) listFilters(t *target, raw map[string]any) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	byName := make(map[string]*content.ColumnDefinition, len(t.defs))
	for _, d := range t.defs {
		byName[d.Name()] = d
	}

	out := make(map[string]any, len(raw))
	for column, value := range raw {
		if !record.HasColumn(t.live, column) {
			return nil, errors.New(errors.KindInvalidFilter, "unknown filter column", column).WithField(column)
		}
		if def, ok := byName[column]; ok && value != nil {
			coerced, err := coerce(def, value, nil)
			if err != nil {
				return nil, errors.New(errors.KindInvalidFilter, "filter value does not match column type", column).WithField(column)
			}
			value = coerced
		}
		out[column] = value
	}
	return out, nil
}

// stamp sets a system column when the live table has it.
func stamp(t *target, values map[string]any, column string, value any) {
	if record.HasColumn(t.live, column) {
		values[column] = value
	}
}

func recordNotFound(id int64) error {
	return errors.New(errors.KindRecordNotFound, "record not found", fmt.Sprint(id))
}
