package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	calculatev1dto "github.com/FCHDev/co2tripcalculator/internal/dto/calculate_v1_dto"
	"github.com/FCHDev/co2tripcalculator/internal/schema"
	"github.com/FCHDev/co2tripcalculator/internal/service"
)

// Handler is the request boundary: it validates input, invokes the
// calculation service and is the only place deciding HTTP status codes
type Handler struct {
	calculator     tripCalculator
	requestTimeout time.Duration
}

// New returns the API handler
func New(calculator tripCalculator, requestTimeout time.Duration) *Handler {
	return &Handler{
		calculator:     calculator,
		requestTimeout: requestTimeout,
	}
}

// Calculate handles POST /api/v1/calculate-carbon
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Méthode non autorisée")
		return
	}

	var request calculatev1dto.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	if err := request.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cabin, err := schema.ParseCabinClass(request.CabinClass)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	trip := schema.TripConfiguration{
		DepartCity:  request.DepartCity,
		ArrivalCity: request.ArrivalCity,
		CabinClass:  cabin,
		IsRoundTrip: request.IsRoundTrip,
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	reqStart := time.Now()
	result, err := h.calculator.Calculate(ctx, trip)
	latency := time.Since(reqStart)

	log.Info().Str("latency", latency.String()).Str("depart", trip.DepartCity).Str("arrival", trip.ArrivalCity).Msg("calculation latency")

	if err != nil {
		if errors.Is(err, service.ErrMissingCity) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Err(err).Msg("calculation failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	json.NewEncoder(w).Encode(toResponse(result))
}

// Suggestions handles GET /api/v1/city-suggestions
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Méthode non autorisée")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	suggestions, err := h.calculator.Suggest(ctx, r.URL.Query().Get("q"))
	if err != nil {
		log.Err(err).Msg("suggestion lookup failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	response := calculatev1dto.SuggestionsResponse{
		Suggestions: make([]calculatev1dto.Suggestion, 0, len(suggestions)),
	}
	for _, s := range suggestions {
		response.Suggestions = append(response.Suggestions, calculatev1dto.Suggestion{
			Name:       s.Name,
			Components: s.Components,
		})
	}

	json.NewEncoder(w).Encode(response)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(calculatev1dto.ErrorResponse{Error: message})
}

func toResponse(b schema.EmissionBreakdown) calculatev1dto.CalculateResponse {
	return calculatev1dto.CalculateResponse{
		Distance:        b.Distance,
		CarbonFootprint: b.CarbonFootprint,
		Details: calculatev1dto.Details{
			FlightType:              b.FlightType.Label(),
			EmissionFactor:          b.EmissionFactor,
			CruisingEmissions:       b.CruisingEmissions,
			TakeoffLandingEmissions: b.TakeoffLandingEmissions,
			ContrailImpact:          b.ContrailImpact,
			TotalImpact:             b.TotalImpact,
			Cities: calculatev1dto.Cities{
				Depart: calculatev1dto.City{
					Name:        b.Depart.Name,
					CountryCode: b.Depart.CountryCode,
				},
				Arrival: calculatev1dto.City{
					Name:        b.Arrival.Name,
					CountryCode: b.Arrival.CountryCode,
				},
			},
			Alternatives: calculatev1dto.Alternatives{
				Train: toAlternative(b.Alternatives.Train),
				Bus:   toAlternative(b.Alternatives.Bus),
				Car: calculatev1dto.CarAlternative{
					Emissions:       b.Alternatives.Car.EmissionsKg,
					SharedEmissions: b.Alternatives.Car.SharedEmissionsKg,
					Duration:        b.Alternatives.Car.DurationMinutes,
					Available:       b.Alternatives.Car.Available,
				},
			},
			FlightDuration: b.FlightDurationMinutes,
		},
	}
}

func toAlternative(a schema.Alternative) calculatev1dto.Alternative {
	return calculatev1dto.Alternative{
		Emissions: a.EmissionsKg,
		Duration:  a.DurationMinutes,
		Available: a.Available,
	}
}
