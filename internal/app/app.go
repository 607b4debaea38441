package app

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/FCHDev/co2tripcalculator/internal/client"
	"github.com/FCHDev/co2tripcalculator/internal/emissions"
	"github.com/FCHDev/co2tripcalculator/internal/env"
	"github.com/FCHDev/co2tripcalculator/internal/handler"
	"github.com/FCHDev/co2tripcalculator/internal/middleware"
	"github.com/FCHDev/co2tripcalculator/internal/monitoring"
	"github.com/FCHDev/co2tripcalculator/internal/resolver"
	"github.com/FCHDev/co2tripcalculator/internal/schema"
	"github.com/FCHDev/co2tripcalculator/internal/service"
	"github.com/FCHDev/co2tripcalculator/internal/storage"
	redisStorage "github.com/FCHDev/co2tripcalculator/internal/storage/redis"
)

// App is the process composition root
type App struct{}

const (
	successCode = 0
)

// New returns the application
func New() *App {
	return &App{}
}

// Run wires every component and serves HTTP until the process stops
func (a *App) Run() (exitCode int) {
	ctx := context.Background()

	env.LoadEnv()
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	serverPort := env.GetEnv("PORT", "8080")
	geocoderTimeout := env.GetEnvDuration("GEOCODER_TIMEOUT", 10*time.Second)
	requestTimeout := env.GetEnvDuration("REQUEST_TIMEOUT", 15*time.Second)
	opencageRPS := env.GetEnvFloat("OPENCAGE_RPS", 1)
	opencageBurst := env.GetEnvInt("OPENCAGE_BURST", 1)
	cacheSize := env.GetEnvInt("GEO_CACHE_SIZE", 1000)
	cacheTTL := env.GetEnvDuration("GEO_CACHE_TTL", 24*time.Hour)
	redisAddr := env.GetEnv("REDIS_ADDR", "")
	redisPassword := env.GetEnv("REDIS_PASSWORD", "")
	redisDB := env.GetEnvInt("REDIS_DB", 0)
	redisChanSize := env.GetEnvInt("REDIS_CHAN_SIZE", 1000)
	opencageURL := env.GetEnv("OPENCAGE_URL", client.DefaultBaseURL)

	opencage, err := client.NewClient(opencageURL, geocoderTimeout, opencageRPS, opencageBurst)
	if err != nil {
		log.Error().Err(err).Msg("couldn't initialize the geocoding client")
		return 1
	}
	coordinateResolver := resolver.New(opencage, geocoderTimeout)

	localCache := expirable.NewLRU[string, schema.CityLocation](cacheSize, nil, cacheTTL)
	geocodeStore := storage.New(localCache, nil, coordinateResolver)
	if redisAddr != "" {
		redisCache := redisStorage.NewClient[schema.CityLocation](ctx,
			redisAddr,
			redisPassword,
			redisDB,
			cacheTTL,
			marshalLocation,
			unmarshalLocation,
			redisChanSize,
		)
		geocodeStore = storage.New(localCache, redisCache, coordinateResolver)
	}

	calculator := emissions.NewCalculator(emissions.DefaultConfig())
	tripService := service.New(geocodeStore, calculator)
	apiHandler := handler.New(tripService, requestTimeout)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/calculate-carbon", middleware.Chain("calculate", http.HandlerFunc(apiHandler.Calculate)))
	mux.Handle("/api/v1/city-suggestions", middleware.Chain("suggestions", http.HandlerFunc(apiHandler.Suggestions)))
	mux.Handle("/metrics", monitoring.MetricsHandler())
	mux.Handle("/healthz", monitoring.HealthHandler())

	log.Info().Str("port", serverPort).Msg("server listening")
	if err := http.ListenAndServe(":"+serverPort, mux); err != nil {
		log.Fatal().Err(err).Msg("Server crashed")
	}

	return successCode
}

func marshalLocation(loc schema.CityLocation) (string, error) {
	data, err := json.Marshal(loc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalLocation(s string) (schema.CityLocation, error) {
	var loc schema.CityLocation
	if err := json.Unmarshal([]byte(s), &loc); err != nil {
		return schema.CityLocation{}, err
	}
	return loc, nil
}
