package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FCHDev/co2tripcalculator/internal/schema"
)

var (
	paris      = schema.Coordinates{Latitude: 48.8566, Longitude: 2.3522}
	strasbourg = schema.Coordinates{Latitude: 48.5734, Longitude: 7.7521}
	tokyo      = schema.Coordinates{Latitude: 35.6762, Longitude: 139.6503}
)

func TestDistanceKm_KnownFixture(t *testing.T) {
	d := DistanceKm(paris, strasbourg)
	assert.InDelta(t, 397.3, d, 5.0)
}

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := []struct {
		name string
		a, b schema.Coordinates
	}{
		{"paris-strasbourg", paris, strasbourg},
		{"paris-tokyo", paris, tokyo},
		{"across antimeridian", schema.Coordinates{Latitude: 10, Longitude: 179}, schema.Coordinates{Latitude: -10, Longitude: -179}},
	}
	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, DistanceKm(tc.a, tc.b), DistanceKm(tc.b, tc.a), 1e-9)
		})
	}
}

func TestDistanceKm_Identity(t *testing.T) {
	assert.Zero(t, DistanceKm(paris, paris))
}

func TestValidateCoords(t *testing.T) {
	require.NoError(t, ValidateCoords(paris))
	require.Error(t, ValidateCoords(schema.Coordinates{Latitude: 91, Longitude: 0}))
	require.Error(t, ValidateCoords(schema.Coordinates{Latitude: 0, Longitude: -181}))
}
