package resolver

import (
	"context"
	"strings"
	"time"

	"github.com/FCHDev/co2tripcalculator/internal/schema"
)

// Service bounds every geocoding call with a timeout so a hung upstream
// lookup cannot block a request indefinitely
type Service struct {
	geocoder geocoder
	timeout  time.Duration
}

// New returns a resolver wrapping the given geocoder
func New(geocoder geocoder, timeout time.Duration) *Service {
	return &Service{
		geocoder: geocoder,
		timeout:  timeout,
	}
}

// Resolve resolves a city name, normalized for surrounding whitespace
func (s *Service) Resolve(ctx context.Context, city string) (schema.CityLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.geocoder.Resolve(ctx, strings.TrimSpace(city))
}

// Suggest forwards a suggestion lookup under the same timeout
func (s *Service) Suggest(ctx context.Context, query string) ([]schema.CitySuggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.geocoder.Suggest(ctx, strings.TrimSpace(query))
}
