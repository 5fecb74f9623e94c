package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	"viralreel/api"
	"viralreel/batch"
	"viralreel/cache"
	"viralreel/publish"
)

// initPublisher returns the S3 publisher if configured via env.
// Required: S3_BUCKET. Optional: S3_REGION, S3_PROFILE, S3_PREFIX, S3_USE_PATH_STYLE=true
func initPublisher(ctx context.Context) batch.PackagePublisher {
	p, err := publish.NewFromEnv(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to init S3 publisher: %v (uploads disabled)", err)
		return nil
	}
	if p == nil {
		log.Println("S3 not configured; skipping uploads")
		return nil
	}
	return p
}

// initCache returns the Redis response cache unless CACHE_ENABLED=false or
// Redis is unreachable
func initCache() (api.PackageCache, func()) {
	if !getEnvBoolOrDefault("CACHE_ENABLED", true) {
		log.Println("Response cache disabled")
		return nil, func() {}
	}

	c, err := cache.NewFromEnv()
	if err != nil {
		log.Printf("⚠️  Redis unavailable: %v (serving without cache)", err)
		return nil, func() {}
	}
	log.Println("✅ Redis response cache connected")
	return c, func() { _ = c.Close() }
}

func getEnvBoolOrDefault(key string, defaultVal bool) bool {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
