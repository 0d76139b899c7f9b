package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodgram/internal/api/models"

	"github.com/redis/go-redis/v9"
)

// ReferenceCache keeps the small, read-heavy catalogs (tags, ingredient
// searches) in Redis. All methods are nil-safe: a nil cache means every
// lookup is a miss and every write a no-op, so services never branch on
// whether caching is configured.
type ReferenceCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReferenceCache(addr, password string, ttl time.Duration) (*ReferenceCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ReferenceCache{client: rdb, ttl: ttl}, nil
}

const (
	tagsKey             = "catalog:tags"
	ingredientKeyPrefix = "catalog:ingredients:"
)

func (c *ReferenceCache) GetTags(ctx context.Context) ([]models.Tag, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, tagsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var tags []models.Tag
	if err := json.Unmarshal(raw, &tags); err != nil {
		return nil, false
	}
	return tags, true
}

func (c *ReferenceCache) SetTags(ctx context.Context, tags []models.Tag) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return
	}
	c.client.Set(ctx, tagsKey, raw, c.ttl)
}

func (c *ReferenceCache) InvalidateTags(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, tagsKey)
}

func (c *ReferenceCache) GetIngredients(ctx context.Context, prefix string) ([]models.Ingredient, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, ingredientKeyPrefix+prefix).Bytes()
	if err != nil {
		return nil, false
	}
	var list []models.Ingredient
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return list, true
}

func (c *ReferenceCache) SetIngredients(ctx context.Context, prefix string, list []models.Ingredient) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	c.client.Set(ctx, ingredientKeyPrefix+prefix, raw, c.ttl)
}

// InvalidateIngredients drops every cached search; new catalog rows change
// an unknown set of prefixes.
func (c *ReferenceCache) InvalidateIngredients(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, ingredientKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}

// Close releases the underlying connection pool.
func (c *ReferenceCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
