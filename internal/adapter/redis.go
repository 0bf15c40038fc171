package adapter

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisOptions holds the connection settings of the shared limiter store
type RedisOptions struct {
	Addr         string
	Password     string
	DB           int
	ClientName   string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}

// RedisClient is the slice of Redis the rate limiter depends on
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) *redis.StatusCmd

	// NewRateLimiter returns a GCRA limiter sharing this connection pool
	NewRateLimiter() RedisRateLimiter

	// Close closes the Redis connection
	Close() error
}

type redisClient struct {
	client *redis.Client
}

// NewRedisClient creates a Redis client, zero timeouts keep the go-redis defaults
func NewRedisClient(opts RedisOptions) RedisClient {
	return &redisClient{
		client: redis.NewClient(&redis.Options{
			Addr:         opts.Addr,
			Password:     opts.Password,
			DB:           opts.DB,
			ClientName:   opts.ClientName,
			DialTimeout:  opts.DialTimeout,
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
			PoolSize:     opts.PoolSize,
		}),
	}
}

func (r *redisClient) Ping(ctx context.Context) *redis.StatusCmd {
	return r.client.Ping(ctx)
}

func (r *redisClient) NewRateLimiter() RedisRateLimiter {
	return &redisRateLimiter{limiter: redis_rate.NewLimiter(r.client)}
}

func (r *redisClient) Close() error {
	return r.client.Close()
}

// RedisRateLimiter consumes tokens from a distributed bucket
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisRateLimiter=MockRedisRateLimiter
type RedisRateLimiter interface {
	// Allow consumes one token of key under limit
	// The result carries the remaining tokens and how long to wait when refused
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

type redisRateLimiter struct {
	limiter *redis_rate.Limiter
}

func (r *redisRateLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	return r.limiter.Allow(ctx, key, limit)
}
