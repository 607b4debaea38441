// Command loadtest drives the calculate-carbon endpoint with random trips.
// Run it against a service backed by cmd/mock to avoid burning real
// geocoding quota.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/FCHDev/co2tripcalculator/internal/env"
)

type calculateRequest struct {
	DepartCity  string `json:"departCity"`
	ArrivalCity string `json:"arrivalCity"`
	CabinClass  string `json:"cabinClass"`
	IsRoundTrip bool   `json:"isRoundTrip"`
}

var (
	knownCities  = []string{"Paris", "Strasbourg", "Marseille", "Tokyo", "New York"}
	cabinClasses = []string{"ECONOMY", "BUSINESS", "FIRST"}
)

func generateRandomPayload() ([]byte, error) {
	depart := knownCities[rand.Intn(len(knownCities))]
	arrival := knownCities[rand.Intn(len(knownCities))]
	for arrival == depart {
		arrival = knownCities[rand.Intn(len(knownCities))]
	}
	body := calculateRequest{
		DepartCity:  depart,
		ArrivalCity: arrival,
		CabinClass:  cabinClasses[rand.Intn(len(cabinClasses))],
		IsRoundTrip: rand.Intn(2) == 1,
	}
	return json.Marshal(body)
}

func main() {
	env.LoadEnv()
	if needTest := os.Getenv("NEED_TEST"); needTest != "true" {
		return
	}
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	url := "http://localhost:8080/api/v1/calculate-carbon"
	concurrency := flag.Int("concurrency", 50, "Number of concurrent workers")
	duration := flag.Duration("duration", 5*time.Second, "Duration of the load test")
	flag.Parse()

	if envURL := os.Getenv("TARGET_URL"); envURL != "" {
		url = envURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	log.Info().
		Str("target", url).
		Int("concurrency", *concurrency).
		Dur("duration", *duration).
		Msg("Starting load test")

	startTime := time.Now()
	var wg sync.WaitGroup
	var reqCount int
	var reqMu sync.Mutex

	latencyChan := make(chan time.Duration, 100000)

	var latencies []time.Duration
	var latMu sync.Mutex
	var aggWg sync.WaitGroup
	aggWg.Add(1)
	go func() {
		defer aggWg.Done()
		for lat := range latencyChan {
			latMu.Lock()
			latencies = append(latencies, lat)
			latMu.Unlock()
			reqMu.Lock()
			reqCount++
			reqMu.Unlock()
		}
	}()

	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			client := &http.Client{}
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				payload, err := generateRandomPayload()
				if err != nil {
					log.Error().Err(err).Int("worker", workerID).Msg("Error generating payload")
					continue
				}

				req, err := http.NewRequest("POST", url, bytes.NewBuffer(payload))
				if err != nil {
					log.Error().Err(err).Int("worker", workerID).Msg("Error creating request")
					continue
				}
				req.Header.Set("Content-Type", "application/json")
				req = req.WithContext(ctx)

				reqStart := time.Now()
				resp, err := client.Do(req)
				latency := time.Since(reqStart)
				latencyChan <- latency

				if resp != nil && resp.Body != nil {
					_ = resp.Body.Close()
				}

				if err != nil {
					log.Error().Err(err).Int("worker", workerID).Msg("Error sending request or reading response")
				}
			}
		}(i)
	}

	wg.Wait()
	close(latencyChan)
	aggWg.Wait()

	if len(latencies) > 0 {
		sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
		index := int(float64(len(latencies)) * 0.99)
		if index >= len(latencies) {
			index = len(latencies) - 1
		}
		log.Info().Str("99th_percentile", latencies[index].String()).Msg("99th percentile latency")
	}

	totalTime := time.Since(startTime).Seconds()
	rps := float64(reqCount) / totalTime
	log.Info().
		Int("total_requests", reqCount).
		Float64("rps", rps).
		Msg("Load test completed")
}
