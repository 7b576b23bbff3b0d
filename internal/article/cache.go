// Copyright (c) 2026 Maqala. All rights reserved.

package article

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/maqalahq/maqala/internal/platform/constants"
)

// Cache is a Redis read-through cache for slug lookups, the hottest read
// path of the public site. Cache failures are never surfaced to readers;
// they degrade to a database read and a warning log.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewCache creates a Redis-backed article cache. A nil client disables
// caching entirely.
func NewCache(client *redis.Client, logger *slog.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

// key builds the cache key for a (slug, language) read.
func (cache *Cache) key(slug string, language Language) string {
	return fmt.Sprintf("%s%s:%s", constants.RedisPrefixArticleSlug, slug, language)
}

/*
Get returns the cached article for a (slug, language) read, or nil on a miss.

Parameters:
  - context: context.Context
  - slug: string
  - language: Language

Returns:
  - *Article: The cached aggregate, or nil on miss, disabled cache, or error
*/
func (cache *Cache) Get(context context.Context, slug string, language Language) *Article {
	if cache == nil || cache.client == nil {
		return nil
	}

	payload, err := cache.client.Get(context, cache.key(slug, language)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.Warn("article_cache_get_failed", "slug", slug, "error", err)
		}
		return nil
	}

	target := &Article{}
	if err := json.Unmarshal(payload, target); err != nil {
		cache.logger.Warn("article_cache_decode_failed", "slug", slug, "error", err)
		return nil
	}
	return target
}

/*
Set stores an article under its (slug, language) key with the standard TTL.

Parameters:
  - context: context.Context
  - slug: string
  - language: Language (the language the reader asked for, which may be an
    overlay language rather than the record's primary)
  - target: *Article
*/
func (cache *Cache) Set(context context.Context, slug string, language Language, target *Article) {
	if cache == nil || cache.client == nil {
		return
	}

	payload, err := json.Marshal(target)
	if err != nil {
		cache.logger.Warn("article_cache_encode_failed", "slug", slug, "error", err)
		return
	}

	if err := cache.client.Set(context, cache.key(slug, language), payload, constants.ArticleCacheTTL).Err(); err != nil {
		cache.logger.Warn("article_cache_set_failed", "slug", slug, "error", err)
	}
}

/*
Invalidate drops every language variant of a slug after a write.

Parameters:
  - context: context.Context
  - slug: string
*/
func (cache *Cache) Invalidate(context context.Context, slug string) {
	if cache == nil || cache.client == nil {
		return
	}

	keys := make([]string, 0, len(Languages()))
	for _, language := range Languages() {
		keys = append(keys, cache.key(slug, language))
	}
	if err := cache.client.Del(context, keys...).Err(); err != nil {
		cache.logger.Warn("article_cache_invalidate_failed", "slug", slug, "error", err)
	}
}
