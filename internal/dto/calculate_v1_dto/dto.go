package calculatev1dto

import (
	"errors"
	"strings"
)

// CalculateRequest dto of the calculate-carbon api
type CalculateRequest struct {
	DepartCity  string `json:"departCity"`
	ArrivalCity string `json:"arrivalCity"`
	CabinClass  string `json:"cabinClass,omitempty"`
	IsRoundTrip bool   `json:"isRoundTrip,omitempty"`
}

// Validate validation of request, messages are user-facing
func (r CalculateRequest) Validate() error {
	if strings.TrimSpace(r.DepartCity) == "" || strings.TrimSpace(r.ArrivalCity) == "" {
		return errors.New("veuillez renseigner les villes de départ et d'arrivée")
	}
	return nil
}

// City city block of the response details
type City struct {
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

// Cities depart and arrival of the trip
type Cities struct {
	Depart  City `json:"depart"`
	Arrival City `json:"arrival"`
}

// Alternative ground transport comparison
type Alternative struct {
	Emissions float64 `json:"emissions"`
	Duration  int     `json:"duration"`
	Available bool    `json:"available"`
}

// CarAlternative car comparison with the shared-occupancy figure
type CarAlternative struct {
	Emissions       float64 `json:"emissions"`
	SharedEmissions float64 `json:"sharedEmissions"`
	Duration        int     `json:"duration"`
	Available       bool    `json:"available"`
}

// Alternatives all ground transport comparisons
type Alternatives struct {
	Train Alternative    `json:"train"`
	Bus   Alternative    `json:"bus"`
	Car   CarAlternative `json:"car"`
}

// Details detailed emission breakdown
type Details struct {
	FlightType              string       `json:"flightType"`
	EmissionFactor          float64      `json:"emissionFactor"`
	CruisingEmissions       float64      `json:"cruisingEmissions"`
	TakeoffLandingEmissions float64      `json:"takeoffLandingEmissions"`
	ContrailImpact          float64      `json:"contrailImpact"`
	TotalImpact             float64      `json:"totalImpact"`
	Cities                  Cities       `json:"cities"`
	Alternatives            Alternatives `json:"alternatives"`
	FlightDuration          int          `json:"flightDuration"`
}

// CalculateResponse structure for response
type CalculateResponse struct {
	Distance        float64 `json:"distance"`
	CarbonFootprint float64 `json:"carbonFootprint"`
	Details         Details `json:"details"`
}

// Suggestion one candidate match of the city-suggestions api
type Suggestion struct {
	Name       string         `json:"name"`
	Components map[string]any `json:"components"`
}

// SuggestionsResponse structure for the city-suggestions response
type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// ErrorResponse error payload of both apis
type ErrorResponse struct {
	Error string `json:"error"`
}
