package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	opencagedto "github.com/FCHDev/co2tripcalculator/internal/dto/opencage_dto"
	"github.com/FCHDev/co2tripcalculator/internal/monitoring"
	"github.com/FCHDev/co2tripcalculator/internal/schema"
)

const (
	// DefaultBaseURL is the OpenCage forward geocoding endpoint
	DefaultBaseURL = "https://api.opencagedata.com/geocode/v1/json"

	apiKeyEnv       = "OPENCAGE_API_KEY"
	suggestionLimit = 5
)

// ErrMissingAPIKey the OpenCage access key is absent from the environment
var ErrMissingAPIKey = errors.New("Clé API OpenCage non configurée")

// NoResultError the geocoding service returned zero candidates
type NoResultError struct {
	Query string
}

func (e *NoResultError) Error() string {
	return "Aucun résultat trouvé pour: " + e.Query
}

// UpstreamError the geocoding service answered with a non-success status
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("Erreur API: statut %d", e.StatusCode)
	}
	return "Erreur API: " + e.Message
}

// Client geocoding client for the OpenCage API
type Client struct {
	baseURL string
	apiKey  func() string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient returns an OpenCage client. The access key is read from the
// environment on every call, so a key added after startup is picked up
// without a restart.
func NewClient(baseURL string, timeout time.Duration, rps float64, burst int) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base url is empty")
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  func() string { return os.Getenv(apiKeyEnv) },
		client: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

// Resolve maps a free-text city name to its coordinates and country
func (c *Client) Resolve(ctx context.Context, city string) (schema.CityLocation, error) {
	body, err := c.geocode(ctx, "resolve", city, 1)
	if err != nil {
		return schema.CityLocation{}, err
	}
	if len(body.Results) == 0 {
		return schema.CityLocation{}, &NoResultError{Query: city}
	}

	first := body.Results[0]
	return schema.CityLocation{
		Coordinates: schema.Coordinates{
			Latitude:  first.Geometry.Lat,
			Longitude: first.Geometry.Lng,
		},
		Country:     first.Country(),
		CountryCode: strings.ToUpper(first.CountryCode()),
	}, nil
}

// Suggest returns up to 5 candidate matches for a partial city name
func (c *Client) Suggest(ctx context.Context, query string) ([]schema.CitySuggestion, error) {
	body, err := c.geocode(ctx, "suggest", query, suggestionLimit)
	if err != nil {
		return nil, err
	}

	suggestions := make([]schema.CitySuggestion, 0, len(body.Results))
	for _, result := range body.Results {
		suggestions = append(suggestions, schema.CitySuggestion{
			Name:       result.Formatted,
			Components: result.Components,
		})
	}
	return suggestions, nil
}

func (c *Client) geocode(ctx context.Context, operation, query string, limit int) (*opencagedto.ResponseBody, error) {
	key := c.apiKey()
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := fmt.Sprintf("%s?q=%s&key=%s&language=fr&limit=%d",
		c.baseURL, url.QueryEscape(query), url.QueryEscape(key), limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("err during creating a request with context: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		monitoring.ObserveGeocodeRequest(operation, "error", time.Since(start))
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			log.Error().Err(err).Msg("couldn't close a body")
		}
	}(resp.Body)

	var body opencagedto.ResponseBody
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode != http.StatusOK {
		monitoring.ObserveGeocodeRequest(operation, "upstream_error", time.Since(start))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: body.Status.Message}
	}
	if decodeErr != nil {
		monitoring.ObserveGeocodeRequest(operation, "decode_error", time.Since(start))
		return nil, fmt.Errorf("err during unmarshaling of a response: %w", decodeErr)
	}

	monitoring.ObserveGeocodeRequest(operation, "ok", time.Since(start))
	return &body, nil
}
