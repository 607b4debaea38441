package schema

import "fmt"

// CabinClass travel class of the flight
type CabinClass string

const (
	Economy  CabinClass = "ECONOMY"
	Business CabinClass = "BUSINESS"
	First    CabinClass = "FIRST"
)

// ParseCabinClass maps a wire value to a CabinClass, empty input defaults to economy
func ParseCabinClass(s string) (CabinClass, error) {
	switch CabinClass(s) {
	case Economy, Business, First:
		return CabinClass(s), nil
	case "":
		return Economy, nil
	default:
		return "", fmt.Errorf("classe de cabine inconnue: %s", s)
	}
}

// FlightType haul-length band of a flight
type FlightType string

const (
	ShortHaul  FlightType = "SHORT_HAUL"
	MediumHaul FlightType = "MEDIUM_HAUL"
	LongHaul   FlightType = "LONG_HAUL"
)

// Label returns the user-facing French label
func (f FlightType) Label() string {
	switch f {
	case ShortHaul:
		return "Court-courrier"
	case MediumHaul:
		return "Moyen-courrier"
	default:
		return "Long-courrier"
	}
}

// Coordinates geographic point in decimal degrees
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// CityLocation geocoded place
type CityLocation struct {
	Coordinates Coordinates
	Country     string
	CountryCode string
}

// CitySuggestion one candidate match returned by the suggestion lookup
type CitySuggestion struct {
	Name       string
	Components map[string]any
}

// CityInfo display information attached to a result
type CityInfo struct {
	Name        string
	CountryCode string
}

// TripConfiguration input of a calculation
type TripConfiguration struct {
	DepartCity  string
	ArrivalCity string
	CabinClass  CabinClass
	IsRoundTrip bool
}

// Alternative ground transport compared against the flight
type Alternative struct {
	EmissionsKg     float64
	DurationMinutes int
	Available       bool
}

// CarAlternative car alternative with the 4-occupant shared figure
type CarAlternative struct {
	Alternative
	SharedEmissionsKg float64
}

// Alternatives all ground modes of a result
type Alternatives struct {
	Train Alternative
	Bus   Alternative
	Car   CarAlternative
}

// EmissionBreakdown full result of a calculation, immutable once built
type EmissionBreakdown struct {
	Distance                float64
	CarbonFootprint         float64
	FlightType              FlightType
	EmissionFactor          float64
	CruisingEmissions       float64
	TakeoffLandingEmissions float64
	ContrailImpact          float64
	TotalImpact             float64
	Depart                  CityInfo
	Arrival                 CityInfo
	Alternatives            Alternatives
	FlightDurationMinutes   int
}
