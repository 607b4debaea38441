package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// Client generic value cache above redis, with an async saver so cache
// writes never sit on the request path
type Client[V any] struct {
	rdb       *redis.Client
	marshal   func(V) (string, error)
	unmarshal func(string) (V, error)
	ttl       time.Duration
	saveChan  chan entry[V]
}

type entry[V any] struct {
	key   string
	value V
}

// NewClient returns a redis cache client and starts its async saver
func NewClient[V any](ctx context.Context,
	addr string,
	password string,
	db int,
	ttl time.Duration,
	marshal func(V) (string, error),
	unmarshal func(string) (V, error),
	chanSize int) *Client[V] {

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	client := &Client[V]{
		rdb:       rdb,
		marshal:   marshal,
		unmarshal: unmarshal,
		ttl:       ttl,
		saveChan:  make(chan entry[V], chanSize),
	}

	go client.runSaver(ctx)

	return client
}

// Get returns the cached value for a key, redis.Nil error on miss
func (c *Client[V]) Get(ctx context.Context, key string) (V, error) {
	strValue, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		var zero V
		return zero, err
	}
	return c.unmarshal(strValue)
}

// Set stores a value under the configured TTL
func (c *Client[V]) Set(ctx context.Context, key string, value V) error {
	strValue, err := c.marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, strValue, c.ttl).Err()
}

// SetAsync queues a write for the saver goroutine; drops the write when the
// queue is full rather than blocking the caller
func (c *Client[V]) SetAsync(key string, value V) {
	select {
	case c.saveChan <- entry[V]{key: key, value: value}:
	default:
		log.Warn().Str("key", key).Msg("redis save queue full, dropping cache write")
	}
}

func (c *Client[V]) runSaver(ctx context.Context) {
	for {
		select {
		case e, ok := <-c.saveChan:
			if !ok {
				return
			}
			if err := c.Set(ctx, e.key, e.value); err != nil {
				log.Error().Err(err).Str("key", e.key).Msg("redis cache write failed")
			}
		case <-ctx.Done():
			return
		}
	}
}
