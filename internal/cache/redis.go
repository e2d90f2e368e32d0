package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Domenick1991/flightbooking/config"
	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache caches route+date search results. Only the catalog match is
// cached; time-of-day filtering and sorting are recomputed per request.
type RedisCache struct {
	client    redis.Cmdable
	searchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL,
	)
}

func NewRedisCacheWithClient(client redis.Cmdable, searchTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, searchTTL: searchTTL}
}

// GetSearch returns nil, nil on a cache miss.
func (c *RedisCache) GetSearch(ctx context.Context, from, to string, day time.Time) ([]domain.FlightWithAirports, error) {
	data, err := c.client.Get(ctx, SearchKey(from, to, day)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.FlightWithAirports
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetSearch(ctx context.Context, from, to string, day time.Time, flights []domain.FlightWithAirports) error {
	if flights == nil {
		flights = []domain.FlightWithAirports{}
	}
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, SearchKey(from, to, day), payload, c.searchTTL).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// SearchKey is case-insensitive, matching how route terms are compared.
// Terms are query-escaped so a ':' inside one cannot shift the boundary
// between from and to.
func SearchKey(from, to string, day time.Time) string {
	return fmt.Sprintf("cache:search:%s:%s:%s",
		url.QueryEscape(strings.ToLower(strings.TrimSpace(from))),
		url.QueryEscape(strings.ToLower(strings.TrimSpace(to))),
		day.UTC().Format("2006-01-02"))
}
