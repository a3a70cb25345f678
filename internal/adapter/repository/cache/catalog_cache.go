package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/armazena/listing-service/internal/listing/domain"
)

const (
	activeCatalogKey = "catalog:active"
	activeCatalogTTL = 5 * time.Minute
)

// CatalogCache keeps the full active listing set in Redis. The TTL is short:
// the cache only absorbs the read burst of the dashboard, writes invalidate
// it immediately.
type CatalogCache struct {
	client *redis.Client
}

func NewCatalogCache(addr string) (*CatalogCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &CatalogCache{client: client}, nil
}

// GetActive returns nil, nil on a cache miss.
func (c *CatalogCache) GetActive(ctx context.Context) ([]*domain.Listing, error) {
	data, err := c.client.Get(ctx, activeCatalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var listings []*domain.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (c *CatalogCache) SetActive(ctx context.Context, listings []*domain.Listing) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, activeCatalogKey, data, activeCatalogTTL).Err()
}

func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, activeCatalogKey).Err()
}

func (c *CatalogCache) Close() error {
	return c.client.Close()
}
