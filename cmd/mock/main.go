// Command mock serves a local stand-in for the OpenCage geocoding API so the
// service can be exercised without a real access key. Point the service at it
// with OPENCAGE_URL=http://localhost:8082/geocode/v1/json.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
)

type geometry struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type result struct {
	Formatted  string         `json:"formatted"`
	Geometry   geometry       `json:"geometry"`
	Components map[string]any `json:"components"`
}

type status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type responseBody struct {
	Results []result `json:"results"`
	Status  status   `json:"status"`
}

var cities = []result{
	{
		Formatted: "Paris, France",
		Geometry:  geometry{Lat: 48.8566, Lng: 2.3522},
		Components: map[string]any{
			"city": "Paris", "country": "France", "country_code": "fr",
		},
	},
	{
		Formatted: "Strasbourg, France",
		Geometry:  geometry{Lat: 48.5734, Lng: 7.7521},
		Components: map[string]any{
			"city": "Strasbourg", "country": "France", "country_code": "fr",
		},
	},
	{
		Formatted: "Marseille, France",
		Geometry:  geometry{Lat: 43.2965, Lng: 5.3698},
		Components: map[string]any{
			"city": "Marseille", "country": "France", "country_code": "fr",
		},
	},
	{
		Formatted: "Tokyo, Japon",
		Geometry:  geometry{Lat: 35.6762, Lng: 139.6503},
		Components: map[string]any{
			"city": "Tokyo", "country": "Japon", "country_code": "jp",
		},
	},
	{
		Formatted: "New York, États-Unis",
		Geometry:  geometry{Lat: 40.7128, Lng: -74.006},
		Components: map[string]any{
			"city": "New York", "country": "États-Unis", "country_code": "us",
		},
	},
}

func geocodeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.URL.Query().Get("key") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(responseBody{
			Status: status{Code: 401, Message: "invalid API key"},
		})
		return
	}

	query := strings.ToLower(r.URL.Query().Get("q"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	matches := make([]result, 0, limit)
	for _, c := range cities {
		if strings.Contains(strings.ToLower(c.Formatted), query) {
			matches = append(matches, c)
		}
		if len(matches) == limit {
			break
		}
	}

	json.NewEncoder(w).Encode(responseBody{
		Results: matches,
		Status:  status{Code: 200, Message: "OK"},
	})
}

func main() {
	http.HandleFunc("/geocode/v1/json", geocodeHandler)
	log.Println("Mock OpenCage server running on :8082")
	log.Fatal(http.ListenAndServe(":8082", nil))
}
