package emissions

import (
	"math"

	"github.com/FCHDev/co2tripcalculator/internal/geo"
	"github.com/FCHDev/co2tripcalculator/internal/schema"
)

// Calculator computes emission breakdowns from a fixed configuration
type Calculator struct {
	cfg Config
}

// NewCalculator returns a calculator over the given configuration
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

// FlightTypeFor returns the haul band of a one-way distance
func (c *Calculator) FlightTypeFor(distanceKm float64) schema.FlightType {
	switch {
	case distanceKm < mediumHaulMinKm:
		return schema.ShortHaul
	case distanceKm < longHaulMinKm:
		return schema.MediumHaul
	default:
		return schema.LongHaul
	}
}

// FactorFor returns the kg CO2 per km factor for a one-way distance and cabin
// class. First class below long haul falls back to the long-haul business
// factor, a deliberate approximation of the original methodology.
func (c *Calculator) FactorFor(distanceKm float64, cabin schema.CabinClass) float64 {
	band := c.cfg.LongHaul
	switch c.FlightTypeFor(distanceKm) {
	case schema.ShortHaul:
		band = c.cfg.ShortHaul
	case schema.MediumHaul:
		band = c.cfg.MediumHaul
	}

	switch cabin {
	case schema.Business:
		return band.Business
	case schema.First:
		if band.First == 0 {
			return c.cfg.LongHaul.Business
		}
		return band.First
	default:
		return band.Economy
	}
}

// Compute builds the full emission breakdown for a trip between two resolved
// locations. The emission factor and the flight type are selected from the
// one-way distance; all totals, alternatives and durations scale with the
// round-trip distance when configured.
func (c *Calculator) Compute(trip schema.TripConfiguration, depart, arrival schema.CityLocation) schema.EmissionBreakdown {
	oneWayKm := geo.DistanceKm(depart.Coordinates, arrival.Coordinates)

	legs := 1.0
	if trip.IsRoundTrip {
		legs = 2.0
	}
	totalKm := oneWayKm * legs

	factor := c.FactorFor(oneWayKm, trip.CabinClass)
	cruising := oneWayKm * factor * legs
	takeoffLanding := c.cfg.TakeoffLandingKg * legs
	base := cruising + takeoffLanding
	contrail := base * c.cfg.ContrailFactor

	availKm := oneWayKm
	if c.cfg.AvailabilityBasis == BasisTotal {
		availKm = totalKm
	}

	return schema.EmissionBreakdown{
		Distance:                totalKm,
		CarbonFootprint:         base,
		FlightType:              c.FlightTypeFor(oneWayKm),
		EmissionFactor:          factor,
		CruisingEmissions:       cruising,
		TakeoffLandingEmissions: takeoffLanding,
		ContrailImpact:          contrail,
		TotalImpact:             base + contrail,
		Depart:                  schema.CityInfo{Name: trip.DepartCity, CountryCode: depart.CountryCode},
		Arrival:                 schema.CityInfo{Name: trip.ArrivalCity, CountryCode: arrival.CountryCode},
		Alternatives: schema.Alternatives{
			Train: c.groundAlternative(c.cfg.Train, totalKm, availKm),
			Bus:   c.groundAlternative(c.cfg.Bus, totalKm, availKm),
			Car: schema.CarAlternative{
				Alternative:       c.groundAlternative(c.cfg.Car, totalKm, availKm),
				SharedEmissionsKg: totalKm * c.cfg.CarSharedKgPerKm,
			},
		},
		FlightDurationMinutes: durationMinutes(totalKm, c.cfg.PlaneSpeedKmh),
	}
}

func (c *Calculator) groundAlternative(mode TransportMode, totalKm, availKm float64) schema.Alternative {
	return schema.Alternative{
		EmissionsKg:     totalKm * mode.KgPerKm,
		DurationMinutes: durationMinutes(totalKm, mode.SpeedKmh),
		Available:       availKm < mode.MaxViableKm,
	}
}

func durationMinutes(distanceKm, speedKmh float64) int {
	return int(math.Ceil(distanceKm / speedKmh * 60))
}
