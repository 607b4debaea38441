package storage

import (
	"context"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog/log"

	"github.com/FCHDev/co2tripcalculator/internal/monitoring"
	"github.com/FCHDev/co2tripcalculator/internal/schema"
)

// Storage is a two-tier read-through cache in front of the coordinate
// resolver, keyed by the normalized city name. Tier 1 is an in-process
// TTL-LRU, tier 2 an optional redis cache. A miss on both tiers is exactly
// the uncached resolver call, so caching never changes correctness.
type Storage struct {
	local      *expirable.LRU[string, schema.CityLocation]
	redisCache redisCache
	resolver   coordinateResolver
}

// New returns a geocode cache. redisCache may be nil to run with the local
// tier only.
func New(local *expirable.LRU[string, schema.CityLocation], redisCache redisCache, resolver coordinateResolver) *Storage {
	return &Storage{
		local:      local,
		redisCache: redisCache,
		resolver:   resolver,
	}
}

// Resolve returns the location of a city, from cache when possible
func (s *Storage) Resolve(ctx context.Context, city string) (schema.CityLocation, error) {
	key := normalizeCity(city)

	if loc, ok := s.local.Get(key); ok {
		monitoring.CacheHits.WithLabelValues("local").Inc()
		return loc, nil
	}
	monitoring.CacheMisses.WithLabelValues("local").Inc()

	if s.redisCache != nil {
		if loc, err := s.redisCache.Get(ctx, key); err == nil {
			monitoring.CacheHits.WithLabelValues("redis").Inc()
			s.local.Add(key, loc)
			return loc, nil
		}
		monitoring.CacheMisses.WithLabelValues("redis").Inc()
	}

	loc, err := s.resolver.Resolve(ctx, city)
	if err != nil {
		return schema.CityLocation{}, err
	}

	s.local.Add(key, loc)
	if s.redisCache != nil {
		s.redisCache.SetAsync(key, loc)
	}

	log.Debug().Str("city", key).Msg("geocoded city added to cache")
	return loc, nil
}

// Suggest is a passthrough, suggestion lookups are not cached
func (s *Storage) Suggest(ctx context.Context, query string) ([]schema.CitySuggestion, error) {
	return s.resolver.Suggest(ctx, query)
}

// normalizeCity lower-cases and collapses whitespace so "  Paris " and
// "paris" share one cache entry
func normalizeCity(city string) string {
	return strings.ToLower(strings.Join(strings.Fields(city), " "))
}
