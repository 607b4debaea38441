// Package geo provides great-circle geometry over decimal-degree coordinates.
package geo

import (
	"fmt"

	"github.com/umahmood/haversine"

	"github.com/FCHDev/co2tripcalculator/internal/schema"
)

// DistanceKm returns the haversine great-circle distance between two points
// in kilometers. Spherical earth, no ellipsoidal correction.
func DistanceKm(a, b schema.Coordinates) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Latitude, Lon: a.Longitude},
		haversine.Coord{Lat: b.Latitude, Lon: b.Longitude},
	)
	return km
}

// ValidateCoords returns an error when latitude or longitude is outside its range
func ValidateCoords(c schema.Coordinates) error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("invalid latitude: %f (must be between -90 and 90)", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("invalid longitude: %f (must be between -180 and 180)", c.Longitude)
	}
	return nil
}
