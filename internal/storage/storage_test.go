package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FCHDev/co2tripcalculator/internal/schema"
)

type resolverMock struct {
	resolveFunc func(ctx context.Context, city string) (schema.CityLocation, error)
	suggestFunc func(ctx context.Context, query string) ([]schema.CitySuggestion, error)
	calls       int
}

func (m *resolverMock) Resolve(ctx context.Context, city string) (schema.CityLocation, error) {
	m.calls++
	return m.resolveFunc(ctx, city)
}

func (m *resolverMock) Suggest(ctx context.Context, query string) ([]schema.CitySuggestion, error) {
	return m.suggestFunc(ctx, query)
}

type redisCacheMock struct {
	getFunc  func(ctx context.Context, key string) (schema.CityLocation, error)
	setCalls []string
}

func (m *redisCacheMock) Get(ctx context.Context, key string) (schema.CityLocation, error) {
	return m.getFunc(ctx, key)
}

func (m *redisCacheMock) SetAsync(key string, value schema.CityLocation) {
	m.setCalls = append(m.setCalls, key)
}

func newLocal() *expirable.LRU[string, schema.CityLocation] {
	return expirable.NewLRU[string, schema.CityLocation](10, nil, time.Minute)
}

var parisLoc = schema.CityLocation{
	Coordinates: schema.Coordinates{Latitude: 48.8566, Longitude: 2.3522},
	Country:     "France",
	CountryCode: "FR",
}

func TestResolve_MissPopulatesThenHits(t *testing.T) {
	mock := &resolverMock{
		resolveFunc: func(ctx context.Context, city string) (schema.CityLocation, error) {
			return parisLoc, nil
		},
	}
	s := New(newLocal(), nil, mock)

	loc, err := s.Resolve(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, parisLoc, loc)
	assert.Equal(t, 1, mock.calls)

	loc, err = s.Resolve(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, parisLoc, loc)
	assert.Equal(t, 1, mock.calls, "second lookup must come from cache")
}

func TestResolve_NormalizationSharesEntries(t *testing.T) {
	mock := &resolverMock{
		resolveFunc: func(ctx context.Context, city string) (schema.CityLocation, error) {
			return parisLoc, nil
		},
	}
	s := New(newLocal(), nil, mock)

	for _, name := range []string{"Paris", "  paris ", "PARIS", "pArIs"} {
		_, err := s.Resolve(context.Background(), name)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, mock.calls)
}

func TestResolve_RedisTierHitSkipsResolver(t *testing.T) {
	mock := &resolverMock{
		resolveFunc: func(ctx context.Context, city string) (schema.CityLocation, error) {
			return schema.CityLocation{}, errors.New("resolver must not be called")
		},
	}
	redisMock := &redisCacheMock{
		getFunc: func(ctx context.Context, key string) (schema.CityLocation, error) {
			assert.Equal(t, "paris", key)
			return parisLoc, nil
		},
	}
	s := New(newLocal(), redisMock, mock)

	loc, err := s.Resolve(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, parisLoc, loc)
	assert.Equal(t, 0, mock.calls)

	// the redis hit is promoted into the local tier
	_, ok := s.local.Get("paris")
	assert.True(t, ok)
}

func TestResolve_MissWritesBothTiers(t *testing.T) {
	mock := &resolverMock{
		resolveFunc: func(ctx context.Context, city string) (schema.CityLocation, error) {
			return parisLoc, nil
		},
	}
	redisMock := &redisCacheMock{
		getFunc: func(ctx context.Context, key string) (schema.CityLocation, error) {
			return schema.CityLocation{}, errors.New("redis: nil")
		},
	}
	s := New(newLocal(), redisMock, mock)

	_, err := s.Resolve(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, []string{"paris"}, redisMock.setCalls)
}

func TestResolve_ErrorIsNotCached(t *testing.T) {
	wantErr := errors.New("Aucun résultat trouvé pour: Nowhereville")
	mock := &resolverMock{
		resolveFunc: func(ctx context.Context, city string) (schema.CityLocation, error) {
			return schema.CityLocation{}, wantErr
		},
	}
	s := New(newLocal(), nil, mock)

	_, err := s.Resolve(context.Background(), "Nowhereville")
	require.ErrorIs(t, err, wantErr)
	_, err = s.Resolve(context.Background(), "Nowhereville")
	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, 2, mock.calls)
}

func TestSuggest_Passthrough(t *testing.T) {
	mock := &resolverMock{
		suggestFunc: func(ctx context.Context, query string) ([]schema.CitySuggestion, error) {
			return []schema.CitySuggestion{{Name: "Paris, France"}}, nil
		},
	}
	s := New(newLocal(), nil, mock)

	suggestions, err := s.Suggest(context.Background(), "Par")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
}
