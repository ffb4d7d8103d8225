// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"bookingsite/internal/metrics"
)

const (
	// siteKeyPrefix is the Valkey key prefix for rendered site artifacts.
	siteKeyPrefix = "site:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// Artifact names one cached rendering of a company site.
type Artifact string

const (
	ArtifactPage Artifact = "html"
	ArtifactCSS  Artifact = "css"
)

// SiteCache stores rendered company pages and CSS blocks in Valkey, keyed
// by company slug. Errors are logged and treated as misses so a Valkey
// outage only costs a re-render.
type SiteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSiteCache creates a site cache backed by the given Valkey client.
func NewSiteCache(client *redis.Client, ttl time.Duration) *SiteCache {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	return &SiteCache{client: client, ttl: ttl}
}

// Key returns the Valkey key for a slug's artifact.
func Key(slug string, a Artifact) string {
	return siteKeyPrefix + slug + ":" + string(a)
}

// Get returns the cached artifact for slug, or false on miss.
func (sc *SiteCache) Get(ctx context.Context, slug string, a Artifact) ([]byte, bool) {
	val, err := sc.client.Get(ctx, Key(slug, a)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.PageCacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		slog.WarnContext(ctx, "site cache get error", "slug", slug, "artifact", a, "error", err)
		metrics.PageCacheLookups.WithLabelValues("error").Inc()
		return nil, false
	}
	metrics.PageCacheLookups.WithLabelValues("hit").Inc()
	return val, true
}

// Set stores a rendered artifact with the configured TTL.
func (sc *SiteCache) Set(ctx context.Context, slug string, a Artifact, body []byte) {
	if err := sc.client.Set(ctx, Key(slug, a), body, sc.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "site cache set error", "slug", slug, "artifact", a, "error", err)
	}
}

// Invalidate removes every cached artifact of one company.
func (sc *SiteCache) Invalidate(ctx context.Context, slug string) {
	if err := sc.client.Del(ctx, Key(slug, ArtifactPage), Key(slug, ArtifactCSS)).Err(); err != nil {
		slog.WarnContext(ctx, "site cache invalidate error", "slug", slug, "error", err)
		return
	}
	slog.DebugContext(ctx, "site cache invalidated", "slug", slug)
}

// InvalidateAll removes all cached sites by scanning for the prefix.
func (sc *SiteCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, next, err := sc.client.Scan(ctx, cursor, siteKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.WarnContext(ctx, "site cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := sc.client.Del(ctx, keys...).Err(); err != nil {
				slog.WarnContext(ctx, "site cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.InfoContext(ctx, "site cache cleared", "deleted", deleted)
	}
}
