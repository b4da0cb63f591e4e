package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient holds the shared connection behind the sliding-window limiter,
// the only Redis consumer in the calculator. Without Redis the service stays
// fully functional; limiting just degrades to per-instance token buckets.
type RedisClient struct {
	client  *redis.Client
	enabled bool
	addr    string
}

// NewRedisClient connects to Redis at addr. An empty addr disables Redis
// outright; a failed ping returns a disabled client alongside the error so
// the caller can log it and continue on the in-memory fallback.
func NewRedisClient(addr, password string) (*RedisClient, error) {
	if addr == "" {
		slog.Warn("Redis URL not configured, rate limiting will use in-memory fallback")
		return &RedisClient{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
		PoolTimeout:  4 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return &RedisClient{addr: addr}, fmt.Errorf("redis ping failed: %w", err)
	}

	slog.Info("Redis connected", "addr", addr)
	return &RedisClient{client: client, enabled: true, addr: addr}, nil
}

// Client returns the underlying connection for the limiter.
func (r *RedisClient) Client() *redis.Client {
	return r.client
}

// Enabled reports whether limiting should go through Redis.
func (r *RedisClient) Enabled() bool {
	return r.enabled
}

// Close releases the connection pool.
func (r *RedisClient) Close() error {
	if r.enabled && r.client != nil {
		return r.client.Close()
	}
	return nil
}

// PoolStats reports connection pool counters for the health endpoint.
func (r *RedisClient) PoolStats() map[string]interface{} {
	if !r.enabled || r.client == nil {
		return map[string]interface{}{"enabled": false}
	}

	stats := r.client.PoolStats()
	return map[string]interface{}{
		"enabled":     true,
		"addr":        r.addr,
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}
