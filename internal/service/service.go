package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/FCHDev/co2tripcalculator/internal/emissions"
	"github.com/FCHDev/co2tripcalculator/internal/schema"
)

// ErrMissingCity a required city name is empty after normalization
var ErrMissingCity = errors.New("veuillez renseigner les villes de départ et d'arrivée")

// Service orchestrates a calculation: validate, resolve both cities, compute
type Service struct {
	resolver   coordinateResolver
	calculator *emissions.Calculator
}

// New returns a calculation service
func New(resolver coordinateResolver, calculator *emissions.Calculator) *Service {
	return &Service{
		resolver:   resolver,
		calculator: calculator,
	}
}

// Calculate resolves both cities and builds the emission breakdown. The two
// lookups run concurrently; both are awaited, and when both fail the depart
// error is surfaced so the outcome stays deterministic.
func (s *Service) Calculate(ctx context.Context, trip schema.TripConfiguration) (schema.EmissionBreakdown, error) {
	if strings.TrimSpace(trip.DepartCity) == "" || strings.TrimSpace(trip.ArrivalCity) == "" {
		return schema.EmissionBreakdown{}, ErrMissingCity
	}

	var (
		departLoc, arrivalLoc schema.CityLocation
		departErr, arrivalErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		departLoc, departErr = s.resolver.Resolve(ctx, trip.DepartCity)
		return departErr
	})
	g.Go(func() error {
		arrivalLoc, arrivalErr = s.resolver.Resolve(ctx, trip.ArrivalCity)
		return arrivalErr
	})

	if err := g.Wait(); err != nil {
		if departErr != nil {
			return schema.EmissionBreakdown{}, departErr
		}
		return schema.EmissionBreakdown{}, arrivalErr
	}

	return s.calculator.Compute(trip, departLoc, arrivalLoc), nil
}

// Suggest returns candidate city matches; an empty query yields an empty
// list without touching the geocoding service
func (s *Service) Suggest(ctx context.Context, query string) ([]schema.CitySuggestion, error) {
	if strings.TrimSpace(query) == "" {
		return []schema.CitySuggestion{}, nil
	}
	return s.resolver.Suggest(ctx, query)
}
