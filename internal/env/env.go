package env

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadEnv load env variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}
}

// GetEnv return a value of an env variable
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvInt return an env variable parsed as int, or the default when unset or invalid
func GetEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("can't parse int env variable, using default")
		return defaultValue
	}
	return parsed
}

// GetEnvFloat return an env variable parsed as float64, or the default when unset or invalid
func GetEnvFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("can't parse float env variable, using default")
		return defaultValue
	}
	return parsed
}

// GetEnvDuration return an env variable parsed as duration, or the default when unset or invalid
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Str("key", key).Str("value", value).Msg("can't parse duration env variable, using default")
		return defaultValue
	}
	return parsed
}
