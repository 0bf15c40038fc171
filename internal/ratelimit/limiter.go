package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/realty-crm/internal/adapter"
	"github.com/feral-file/realty-crm/internal/config"
	"github.com/feral-file/realty-crm/internal/logger"
)

const (
	healthCheckInterval = 10 * time.Second

	// maxLocalKeys bounds the per-key local limiters, the map is reset when it is exceeded
	maxLocalKeys = 10000
)

// Decision is the outcome of one rate limit check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decides whether a request identified by key may proceed
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one token for key
	Allow(ctx context.Context, key string) (Decision, error)

	// Close stops the health monitor and closes the Redis connection
	Close() error
}

type limiter struct {
	config         config.RateLimitConfig
	redis          adapter.RedisClient
	distributed    adapter.RedisRateLimiter
	clock          adapter.Clock
	redisAvailable atomic.Bool
	closed         atomic.Bool
	closeOnce      sync.Once
	stopCh         chan struct{}

	mu    sync.Mutex
	local map[string]*rate.Limiter
}

// NewLimiter creates a limiter backed by Redis with a per-process fallback.
// A nil Redis client yields a local-only limiter.
func NewLimiter(cfg config.RateLimitConfig, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l := &limiter{
		config: cfg,
		redis:  rc,
		clock:  clock,
		stopCh: make(chan struct{}),
		local:  make(map[string]*rate.Limiter),
	}

	if rc == nil {
		logger.Info("Rate limiter initialized without Redis, using local limits",
			zap.Int("requests_per_minute", cfg.RequestsPerMinute),
			zap.Int("burst", cfg.Burst),
		)
		return l, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisAvailable := true
	if err := rc.Ping(ctx).Err(); err != nil {
		redisAvailable = false
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
	}
	l.redisAvailable.Store(redisAvailable)
	l.distributed = rc.NewRateLimiter()

	go l.monitorRedisHealth()

	logger.Info("Rate limiter initialized",
		zap.Int("requests_per_minute", cfg.RequestsPerMinute),
		zap.Int("burst", cfg.Burst),
		zap.Bool("redis_available", redisAvailable),
	)

	return l, nil
}

// Allow consumes one token for key, preferring the shared Redis budget
func (l *limiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.closed.Load() {
		return Decision{}, fmt.Errorf("limiter is closed")
	}

	if l.distributed != nil && l.redisAvailable.Load() {
		res, err := l.distributed.Allow(ctx, l.config.RedisKeyPrefix+key, redis_rate.Limit{
			Rate:   l.config.RequestsPerMinute,
			Burst:  l.config.Burst,
			Period: time.Minute,
		})
		if err == nil {
			return Decision{
				Allowed:    res.Allowed > 0,
				Remaining:  res.Remaining,
				RetryAfter: res.RetryAfter,
			}, nil
		}
		if ctx.Err() != nil {
			return Decision{}, ctx.Err()
		}

		l.redisAvailable.Store(false)
		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local",
			zap.String("key", key),
			zap.Error(err),
		)
	}

	return l.allowLocal(key), nil
}

func (l *limiter) allowLocal(key string) Decision {
	lim := l.localLimiter(key)
	now := l.clock.Now()

	reservation := lim.ReserveN(now, 1)
	if !reservation.OK() {
		return Decision{Allowed: false}
	}
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}
	}
	return Decision{Allowed: true, Remaining: int(lim.TokensAt(now))}
}

func (l *limiter) localLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if lim, ok := l.local[key]; ok {
		return lim
	}
	if len(l.local) >= maxLocalKeys {
		l.local = make(map[string]*rate.Limiter)
	}

	perSecond := rate.Limit(float64(l.config.RequestsPerMinute) / 60.0)
	lim := rate.NewLimiter(perSecond, l.config.Burst)
	l.local[key] = lim
	return lim
}

// monitorRedisHealth periodically checks Redis health and updates availability status
func (l *limiter) monitorRedisHealth() {
	ticker := l.clock.NewTicker(healthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.redis.Ping(ctx).Err()
		cancel()

		redisAvailable := err == nil
		wasAvailable := l.redisAvailable.Swap(redisAvailable)

		if !wasAvailable && redisAvailable {
			logger.Info("Redis connection restored")
		}
	}
}

// Close stops the health monitor and closes the Redis connection
func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.stopCh)

		if l.redis == nil {
			return
		}
		if closeErr := l.redis.Close(); closeErr != nil {
			logger.Warn("Error closing Redis connection", zap.Error(closeErr))
			err = closeErr
		}
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig) error {
	if cfg.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be positive")
	}

	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMinute
	}

	if cfg.RedisKeyPrefix == "" {
		cfg.RedisKeyPrefix = "realty-crm:limiter:"
	}

	return nil
}
