package records

import (
	"context"
	"fmt"
	"strings"

	"modcms/internal/domain/content"
	"modcms/internal/domain/record"
)

const (
	textSuffix  = "_text"
	htmlSuffix  = "_html"
	mediaSuffix = "_media"
)

// decorate adds derived keys to items in place: resolved text for localized
// columns, embedded media rows and rendered markdown.
func (s *Store) decorate(ctx context.Context, t *target, items []record.Record, opts ListOptions) error {
	if len(items) == 0 {
		return nil
	}

	if err := s.localize(ctx, t, items, opts.Language); err != nil {
		return err
	}
	if opts.EmbedMedia {
		if err := s.embedMedia(ctx, t, items); err != nil {
			return err
		}
	}
	if opts.RenderRichText {
		s.renderMarkdown(t, items)
	}
	return nil
}

func (s *Store) localize(ctx context.Context, t *target, items []record.Record, tag string) error {
	if s.texts == nil {
		return nil
	}

	var localized []string
	for _, d := range t.defs {
		if d.IsLocalized() {
			localized = append(localized, d.Name())
		}
	}
	if len(localized) == 0 {
		return nil
	}

	var languageID uint
	if tag != "" {
		lang, err := s.texts.MatchLanguage(ctx, tag)
		if err != nil {
			return err
		}
		if lang != nil {
			languageID = lang.ID()
		}
	}

	resolved := make(map[string]string)
	for _, rec := range items {
		for _, column := range localized {
			code, ok := rec[column].(string)
			if !ok || code == "" {
				rec[column+textSuffix] = ""
				continue
			}
			text, seen := resolved[code]
			if !seen {
				var err error
				text, err = s.texts.Resolve(ctx, code, languageID)
				if err != nil {
					return err
				}
				resolved[code] = text
			}
			rec[column+textSuffix] = text
		}
	}
	return nil
}

func (s *Store) embedMedia(ctx context.Context, t *target, items []record.Record) error {
	for _, d := range t.defs {
		ref, ok := d.Type().Foreign()
		if !ok || ref.Table != s.cfg.MediaTable {
			continue
		}

		ids := collectValues(items, d.Name())
		byKey := make(map[string]record.Record, len(ids))
		if len(ids) > 0 {
			rows, err := s.records.FindByColumn(ctx, ref.Table, ref.Column, ids)
			if err != nil {
				return err
			}
			for _, row := range rows {
				byKey[fmt.Sprint(row[ref.Column])] = row
			}
		}

		key := embedKey(d)
		for _, rec := range items {
			v := rec[d.Name()]
			if v == nil {
				rec[key] = nil
				continue
			}
			if row, found := byKey[fmt.Sprint(v)]; found {
				rec[key] = row
			} else {
				rec[key] = nil
			}
		}
	}
	return nil
}

func (s *Store) renderMarkdown(t *target, items []record.Record) {
	if s.formatter == nil {
		return
	}
	for _, d := range t.defs {
		if d.Format() != content.FormatMarkdown {
			continue
		}
		for _, rec := range items {
			src, ok := rec[d.Name()].(string)
			if !ok {
				continue
			}
			html, err := s.formatter.RenderMarkdown(src)
			if err != nil {
				s.logger.Warnw("markdown render failed", "column", d.Name(), "id", rec.ID(), "error", err)
				continue
			}
			rec[d.Name()+htmlSuffix] = html
		}
	}
}

// embedKey is the column name without its _id suffix, or name_media.
func embedKey(d *content.ColumnDefinition) string {
	if trimmed := strings.TrimSuffix(d.Name(), "_id"); trimmed != d.Name() && trimmed != "" {
		return trimmed
	}
	return d.Name() + mediaSuffix
}

func collectValues(items []record.Record, column string) []any {
	seen := make(map[string]struct{}, len(items))
	var out []any
	for _, rec := range items {
		v := rec[column]
		if v == nil {
			continue
		}
		key := fmt.Sprint(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}
