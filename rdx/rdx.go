package rdx

import (
	"log"
	"os"
	"time"

	"otto/globals"

	"github.com/redis/go-redis/v9"
)

// Conn is nil when Redis is not configured; callers must treat the cache as
// best-effort.
var Conn *redis.Client

// Init connects to Redis when REDIS_URL is set. The cache is optional: the
// service runs fine without it, upstream calls just stop being memoized.
func Init() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		log.Println("[rdx] REDIS_URL not set; analysis cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(globals.Ctx).Err(); err != nil {
		log.Printf("[rdx] ping failed (%v); analysis cache disabled", err)
		return
	}

	Conn = client
	log.Println("[rdx] connected")
}

// RdxGet fetches a cached value; empty string on miss or when the cache is
// disabled.
func RdxGet(key string) (string, error) {
	if Conn == nil {
		return "", nil
	}
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

// RdxSetWithTTL stores a value with an expiry. No-op when the cache is
// disabled.
func RdxSetWithTTL(key, value string, ttl time.Duration) error {
	if Conn == nil {
		return nil
	}
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}
