// Package localization models languages and language-code translations.
package localization

import "context"

// Language is a display language. Code is a BCP-47 tag.
type Language struct {
	id        uint
	code      string
	name      string
	isDefault bool
}

func NewLanguage(id uint, code, name string, isDefault bool) *Language {
	return &Language{id: id, code: code, name: name, isDefault: isDefault}
}

func (l *Language) ID() uint        { return l.id }
func (l *Language) Code() string    { return l.code }
func (l *Language) Name() string    { return l.name }
func (l *Language) IsDefault() bool { return l.isDefault }

// Repository reads languages and translation entries. Getters return
// (nil, nil) when the row does not exist.
type Repository interface {
	// FindTranslation returns the text stored for (languageID, code).
	FindTranslation(ctx context.Context, languageID uint, code string) (text string, found bool, err error)
	GetDefaultLanguage(ctx context.Context) (*Language, error)
	GetLanguageByID(ctx context.Context, id uint) (*Language, error)
	GetLanguageByCode(ctx context.Context, code string) (*Language, error)
	ListLanguages(ctx context.Context) ([]*Language, error)
}

// TranslationCache stores resolved texts keyed by language and code.
type TranslationCache interface {
	Get(ctx context.Context, languageID uint, code string) (text string, found bool, err error)
	Set(ctx context.Context, languageID uint, code, text string) error
}
