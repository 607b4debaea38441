package storage

import (
	"context"

	"github.com/FCHDev/co2tripcalculator/internal/schema"
)

type coordinateResolver interface {
	Resolve(ctx context.Context, city string) (schema.CityLocation, error)
	Suggest(ctx context.Context, query string) ([]schema.CitySuggestion, error)
}

type redisCache interface {
	Get(ctx context.Context, key string) (schema.CityLocation, error)
	SetAsync(key string, value schema.CityLocation)
}
