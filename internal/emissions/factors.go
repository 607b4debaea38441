// Package emissions implements the flight carbon footprint calculation and the
// comparison against ground transport alternatives. Everything in this package
// is pure: the only inputs are the configuration tables and resolved coordinates.
package emissions

// Haul-length band boundaries in kilometers, compared with strict <.
const (
	mediumHaulMinKm = 1500
	longHaulMinKm   = 3500
)

// ClassFactors kg CO2 per km by cabin class for one haul band.
// First is zero for bands that have no real first-class tier.
type ClassFactors struct {
	Economy  float64
	Business float64
	First    float64
}

// TransportMode emission factor and average speed of one ground mode
type TransportMode struct {
	KgPerKm     float64
	SpeedKmh    float64
	MaxViableKm float64
}

// AvailabilityBasis selects which distance the viability thresholds compare against
type AvailabilityBasis int

const (
	// BasisOneWay compares thresholds against the one-way distance
	BasisOneWay AvailabilityBasis = iota
	// BasisTotal compares thresholds against the round-trip-scaled distance
	BasisTotal
)

// Config holds every constant of the calculation. Built once at startup and
// passed by value into the calculator, never mutated afterwards.
type Config struct {
	ShortHaul  ClassFactors
	MediumHaul ClassFactors
	LongHaul   ClassFactors

	// ContrailFactor adds the non-CO2 contrail impact as a share of base emissions
	ContrailFactor float64
	// TakeoffLandingKg fixed emissions per flight leg
	TakeoffLandingKg float64
	// PlaneSpeedKmh cruising speed used for the flight duration estimate
	PlaneSpeedKmh float64

	Train TransportMode
	Bus   TransportMode
	Car   TransportMode
	// CarSharedKgPerKm per-km factor for a car with 4 occupants
	CarSharedKgPerKm float64

	AvailabilityBasis AvailabilityBasis
}

// DefaultConfig returns the canonical emission methodology tables.
// Changing the methodology means changing these numbers, not code paths.
func DefaultConfig() Config {
	return Config{
		ShortHaul:  ClassFactors{Economy: 0.156, Business: 0.234},
		MediumHaul: ClassFactors{Economy: 0.131, Business: 0.197},
		LongHaul:   ClassFactors{Economy: 0.115, Business: 0.333, First: 0.459},

		ContrailFactor:   0.7,
		TakeoffLandingKg: 25,
		PlaneSpeedKmh:    800,

		Train: TransportMode{KgPerKm: 0.00273, SpeedKmh: 250, MaxViableKm: 1000},
		Bus:   TransportMode{KgPerKm: 0.0298, SpeedKmh: 90, MaxViableKm: 1200},
		Car:   TransportMode{KgPerKm: 0.193, SpeedKmh: 110, MaxViableKm: 1500},

		CarSharedKgPerKm: 0.0483,

		AvailabilityBasis: BasisOneWay,
	}
}
