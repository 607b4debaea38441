package resolver

import (
	"context"

	"github.com/FCHDev/co2tripcalculator/internal/schema"
)

type geocoder interface {
	Resolve(ctx context.Context, city string) (schema.CityLocation, error)
	Suggest(ctx context.Context, query string) ([]schema.CitySuggestion, error)
}
