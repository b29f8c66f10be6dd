package helper

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Optional Redis read-through cache. The settings singleton is read on every
// app load, so it gets cached when REDIS_ADDR is set; everything else goes
// straight to Postgres.

var cacheClient *redis.Client

func InitCache() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("ℹ️ REDIS_ADDR not set, cache disabled")
		return
	}
	cacheClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := cacheClient.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis unreachable (%v), cache disabled", err)
		cacheClient = nil
		return
	}
	log.Println("✅ Redis cache connected.")
}

func CacheGet(ctx context.Context, key string) (string, bool) {
	if cacheClient == nil {
		return "", false
	}
	val, err := cacheClient.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func CacheSet(ctx context.Context, key, value string, ttl time.Duration) {
	if cacheClient == nil {
		return
	}
	if err := cacheClient.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("cache set err: %v", err)
	}
}

func CacheDel(ctx context.Context, key string) {
	if cacheClient == nil {
		return
	}
	if err := cacheClient.Del(ctx, key).Err(); err != nil {
		log.Printf("cache del err: %v", err)
	}
}
