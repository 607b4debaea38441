package service

import (
	"context"

	"github.com/FCHDev/co2tripcalculator/internal/schema"
)

type coordinateResolver interface {
	Resolve(ctx context.Context, city string) (schema.CityLocation, error)
	Suggest(ctx context.Context, query string) ([]schema.CitySuggestion, error)
}
