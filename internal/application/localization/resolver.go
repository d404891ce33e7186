// Package localization resolves language codes to display text.
package localization

import (
	"context"

	"golang.org/x/text/language"

	domain "modcms/internal/domain/localization"
	"modcms/internal/shared/logger"
)

// Resolver turns language codes into text for a target language, falling
// back to the default language. A missing translation resolves to "".
type Resolver struct {
	repo            domain.Repository
	cache           domain.TranslationCache
	defaultLanguage string
	logger          logger.Interface
}

// NewResolver creates a Resolver. cache may be nil. defaultLanguage is the
// code used when no language row is flagged as default.
func NewResolver(repo domain.Repository, cache domain.TranslationCache, defaultLanguage string, logger logger.Interface) *Resolver {
	return &Resolver{
		repo:            repo,
		cache:           cache,
		defaultLanguage: defaultLanguage,
		logger:          logger,
	}
}

// DefaultLanguage returns the system default language, or nil if none exists.
func (r *Resolver) DefaultLanguage(ctx context.Context) (*domain.Language, error) {
	lang, err := r.repo.GetDefaultLanguage(ctx)
	if err != nil || lang != nil {
		return lang, err
	}
	if r.defaultLanguage == "" {
		return nil, nil
	}
	return r.repo.GetLanguageByCode(ctx, r.defaultLanguage)
}

// Resolve returns the text of code in languageID. A zero languageID means the
// default language.
func (r *Resolver) Resolve(ctx context.Context, code string, languageID uint) (string, error) {
	if code == "" {
		return "", nil
	}

	def, err := r.DefaultLanguage(ctx)
	if err != nil {
		return "", err
	}

	if languageID == 0 {
		if def == nil {
			r.logger.Warnw("no default language configured", "code", code)
			return "", nil
		}
		languageID = def.ID()
	}

	text, found, err := r.lookup(ctx, languageID, code)
	if err != nil || found {
		return text, err
	}

	if def != nil && def.ID() != languageID {
		text, found, err = r.lookup(ctx, def.ID(), code)
		if err != nil || found {
			return text, err
		}
	}

	r.logger.Debugw("translation missing", "code", code, "language_id", languageID)
	return "", nil
}

// ResolveTag resolves code for a BCP-47 tag or Accept-Language value.
func (r *Resolver) ResolveTag(ctx context.Context, code, tag string) (string, error) {
	lang, err := r.MatchLanguage(ctx, tag)
	if err != nil {
		return "", err
	}
	var id uint
	if lang != nil {
		id = lang.ID()
	}
	return r.Resolve(ctx, code, id)
}

// MatchLanguage picks the known language closest to tag. An empty or
// unmatched tag yields the default language.
func (r *Resolver) MatchLanguage(ctx context.Context, tag string) (*domain.Language, error) {
	def, err := r.DefaultLanguage(ctx)
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return def, nil
	}

	languages, err := r.repo.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}
	if len(languages) == 0 {
		return def, nil
	}

	// The matcher falls back to its first entry, so the default goes first.
	ordered := make([]*domain.Language, 0, len(languages))
	if def != nil {
		ordered = append(ordered, def)
	}
	for _, l := range languages {
		if def == nil || l.ID() != def.ID() {
			ordered = append(ordered, l)
		}
	}

	supported := make([]language.Tag, 0, len(ordered))
	for _, l := range ordered {
		t, err := language.Parse(l.Code())
		if err != nil {
			r.logger.Warnw("language has invalid code", "language_id", l.ID(), "code", l.Code())
			t = language.Und
		}
		supported = append(supported, t)
	}

	desired, _, err := language.ParseAcceptLanguage(tag)
	if err != nil || len(desired) == 0 {
		return def, nil
	}

	_, index, confidence := language.NewMatcher(supported).Match(desired...)
	if confidence == language.No {
		return def, nil
	}
	return ordered[index], nil
}

func (r *Resolver) lookup(ctx context.Context, languageID uint, code string) (string, bool, error) {
	if r.cache != nil {
		text, found, err := r.cache.Get(ctx, languageID, code)
		if err != nil {
			r.logger.Warnw("translation cache read failed", "error", err)
		} else if found {
			return text, true, nil
		}
	}

	text, found, err := r.repo.FindTranslation(ctx, languageID, code)
	if err != nil || !found {
		return "", false, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, languageID, code, text); err != nil {
			r.logger.Warnw("translation cache write failed", "error", err)
		}
	}
	return text, true, nil
}
