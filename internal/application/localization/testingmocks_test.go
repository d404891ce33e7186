package localization

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	domain "modcms/internal/domain/localization"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindTranslation(ctx context.Context, languageID uint, code string) (string, bool, error) {
	args := m.Called(ctx, languageID, code)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockRepository) GetDefaultLanguage(ctx context.Context) (*domain.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Language), args.Error(1)
}

func (m *mockRepository) GetLanguageByID(ctx context.Context, id uint) (*domain.Language, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Language), args.Error(1)
}

func (m *mockRepository) GetLanguageByCode(ctx context.Context, code string) (*domain.Language, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Language), args.Error(1)
}

func (m *mockRepository) ListLanguages(ctx context.Context) ([]*domain.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Language), args.Error(1)
}

// memoryCache is a map-backed translation cache.
type memoryCache struct {
	entries map[string]string
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]string{}}
}

func cacheKey(languageID uint, code string) string {
	return fmt.Sprintf("%d:%s", languageID, code)
}

func (c *memoryCache) Get(_ context.Context, languageID uint, code string) (string, bool, error) {
	text, ok := c.entries[cacheKey(languageID, code)]
	return text, ok, nil
}

func (c *memoryCache) Set(_ context.Context, languageID uint, code, text string) error {
	c.sets++
	c.entries[cacheKey(languageID, code)] = text
	return nil
}
