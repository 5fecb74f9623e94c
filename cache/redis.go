package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"viralreel/config"
	"viralreel/types"

	"github.com/redis/go-redis/v9"
)

// Config configures the Redis connection and key layout
type Config struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	Prefix   string // prepended to every key
	TTL      time.Duration
}

// PackageCache stores generated packages in Redis so repeated requests for a
// category skip regeneration and serialization
type PackageCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// ConfigFromEnv reads REDIS_ADDR, REDIS_PASS, REDIS_DB, CACHE_PREFIX and
// CACHE_TTL_SECONDS, falling back to local defaults
func ConfigFromEnv() Config {
	cfg := Config{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASS"),
		Prefix:   os.Getenv("CACHE_PREFIX"),
		TTL:      config.DefaultCacheTTL,
	}
	if cfg.Addr == "" {
		cfg.Addr = "localhost:6379"
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "viralreel:package:"
	}
	if d := os.Getenv("REDIS_DB"); d != "" {
		if v, err := strconv.Atoi(d); err == nil && v >= 0 {
			cfg.DB = v
		}
	}
	if t := os.Getenv("CACHE_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			cfg.TTL = time.Duration(secs) * time.Second
		}
	}
	return cfg
}

// NewFromEnv creates a PackageCache using ConfigFromEnv
func NewFromEnv() (*PackageCache, error) {
	return New(ConfigFromEnv())
}

// New creates a PackageCache and verifies connectivity
func New(cfg Config) (*PackageCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return &PackageCache{client: client, prefix: cfg.Prefix, ttl: cfg.TTL}, nil
}

// Key builds the cache key for a normalized category under a bank version.
// Changing the bank changes every key, so stale templates are never served.
func Key(bankVersion, category string) string {
	return bankVersion + ":" + types.PackageID(category)
}

// Get returns the cached package for key; ok is false on a miss
func (c *PackageCache) Get(ctx context.Context, key string) (*types.Package, bool, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var p types.Package
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry %s: %w", key, err)
	}
	return &p, true, nil
}

// Set stores a package under key with the configured TTL
func (c *PackageCache) Set(ctx context.Context, key string, p types.Package) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+key, data, c.ttl).Err()
}

// Close closes the underlying Redis client
func (c *PackageCache) Close() error {
	return c.client.Close()
}
