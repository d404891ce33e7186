package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"modcms/internal/domain/localization"
)

const translationKeyPrefix = "modcms:i18n:"

// RedisTranslationCache keeps resolved translation texts in Redis.
type RedisTranslationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTranslationCache creates a cache whose entries expire after ttl.
func NewRedisTranslationCache(client *redis.Client, ttl time.Duration) localization.TranslationCache {
	return &RedisTranslationCache{client: client, ttl: ttl}
}

func translationKey(languageID uint, code string) string {
	return fmt.Sprintf("%s%d:%s", translationKeyPrefix, languageID, code)
}

// Get returns the cached text; found is false on a miss.
func (c *RedisTranslationCache) Get(ctx context.Context, languageID uint, code string) (string, bool, error) {
	text, err := c.client.Get(ctx, translationKey(languageID, code)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read translation cache: %w", err)
	}
	return text, true, nil
}

// Set stores text for (languageID, code).
func (c *RedisTranslationCache) Set(ctx context.Context, languageID uint, code, text string) error {
	if err := c.client.Set(ctx, translationKey(languageID, code), text, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write translation cache: %w", err)
	}
	return nil
}
