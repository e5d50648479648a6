// Package cache provides a Redis-backed cache for raw flight offers, keyed by
// the search query that produced them. Offers for a (route, dates, cabin,
// passengers) tuple are stable for minutes at a time, so a short TTL saves
// provider quota across repeated assistant invocations. Preferences are not
// part of the key: filtering happens after the cache.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travel-assist/flight-search-assistant/internal/domain"
)

// OfferCache stores raw offers per search query.
type OfferCache interface {
	// Get returns the cached offers for the query, and whether they existed.
	Get(ctx context.Context, query domain.SearchQuery) ([]domain.RawOffer, bool)

	// Set stores the offers for the query.
	Set(ctx context.Context, query domain.SearchQuery, offers []domain.RawOffer) error

	// Close releases the cache's resources.
	Close() error
}

// Config holds Redis connection settings for the offer cache.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// DefaultConfig returns local-development defaults.
func DefaultConfig() Config {
	return Config{
		Addr: "localhost:6379",
		TTL:  5 * time.Minute,
	}
}

// RedisCache is the Redis-backed OfferCache.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

// Get implements OfferCache. Any Redis failure reads as a miss.
func (c *RedisCache) Get(ctx context.Context, query domain.SearchQuery) ([]domain.RawOffer, bool) {
	data, err := c.client.Get(ctx, cacheKey(query)).Bytes()
	if err != nil {
		return nil, false
	}

	var offers []domain.RawOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, false
	}
	return offers, true
}

// Set implements OfferCache.
func (c *RedisCache) Set(ctx context.Context, query domain.SearchQuery, offers []domain.RawOffer) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(query), data, c.ttl).Err()
}

// Close implements OfferCache.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache satisfies OfferCache without caching anything. Used when Redis is
// not configured.
type NoOpCache struct{}

// NewNoOpCache creates a NoOpCache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always misses.
func (NoOpCache) Get(context.Context, domain.SearchQuery) ([]domain.RawOffer, bool) {
	return nil, false
}

// Set discards the offers.
func (NoOpCache) Set(context.Context, domain.SearchQuery, []domain.RawOffer) error {
	return nil
}

// Close is a no-op.
func (NoOpCache) Close() error {
	return nil
}

// cacheKey hashes the identity of a query. Only fields that change the
// provider's answer participate.
func cacheKey(q domain.SearchQuery) string {
	identity := struct {
		Origin        string
		Destination   string
		DepartureDate string
		ReturnDate    string
		Adults        int
		Children      int
		Infants       int
		CabinClass    string
		Included      []string
		Excluded      []string
		NonStop       bool
		Currency      string
		MaxOffers     int
	}{
		Origin:        q.Origin,
		Destination:   q.Destination,
		DepartureDate: q.DepartureDate.Format("2006-01-02"),
		Adults:        q.Adults,
		Children:      q.Children,
		Infants:       q.Infants,
		CabinClass:    q.CabinClass,
		Included:      q.IncludedAirlines,
		Excluded:      q.ExcludedAirlines,
		NonStop:       q.NonStop,
		Currency:      q.CurrencyCode,
		MaxOffers:     q.MaxOffers,
	}
	if q.ReturnDate != nil {
		identity.ReturnDate = q.ReturnDate.Format("2006-01-02")
	}

	data, _ := json.Marshal(identity)
	sum := sha256.Sum256(data)
	return "offers:" + hex.EncodeToString(sum[:])
}

var (
	_ OfferCache = (*RedisCache)(nil)
	_ OfferCache = (*NoOpCache)(nil)
)
