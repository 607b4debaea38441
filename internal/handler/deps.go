package handler

import (
	"context"

	"github.com/FCHDev/co2tripcalculator/internal/schema"
)

type tripCalculator interface {
	Calculate(ctx context.Context, trip schema.TripConfiguration) (schema.EmissionBreakdown, error)
	Suggest(ctx context.Context, query string) ([]schema.CitySuggestion, error)
}
