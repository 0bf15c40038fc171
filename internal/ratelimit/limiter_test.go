package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/realty-crm/internal/config"
	"github.com/feral-file/realty-crm/internal/logger"
	"github.com/feral-file/realty-crm/internal/mocks"
	"github.com/feral-file/realty-crm/internal/ratelimit"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testLimiterMocks struct {
	ctrl             *gomock.Controller
	redisClient      *mocks.MockRedisClient
	redisRateLimiter *mocks.MockRedisRateLimiter
	clock            *mocks.MockClock
}

func setupTestLimiter(t *testing.T) *testLimiterMocks {
	ctrl := gomock.NewController(t)

	return &testLimiterMocks{
		ctrl:             ctrl,
		redisClient:      mocks.NewMockRedisClient(ctrl),
		redisRateLimiter: mocks.NewMockRedisRateLimiter(ctrl),
		clock:            mocks.NewMockClock(ctrl),
	}
}

func testConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		RequestsPerMinute: 60,
		Burst:             2,
		RedisKeyPrefix:    "test:limiter:",
	}
}

// newRedisLimiter builds a limiter whose health monitor never ticks during the test
func newRedisLimiter(t *testing.T, m *testLimiterMocks, redisAvailable bool) ratelimit.Limiter {
	statusCmd := redis.NewStatusCmd(context.Background())
	if redisAvailable {
		statusCmd.SetVal("PONG")
	} else {
		statusCmd.SetErr(errors.New("connection refused"))
	}
	m.redisClient.EXPECT().Ping(gomock.Any()).Return(statusCmd)
	m.redisClient.EXPECT().NewRateLimiter().Return(m.redisRateLimiter)

	ticker := time.NewTicker(time.Hour)
	t.Cleanup(ticker.Stop)
	m.clock.EXPECT().NewTicker(10 * time.Second).Return(ticker).AnyTimes()

	l, err := ratelimit.NewLimiter(testConfig(), m.redisClient, m.clock)
	require.NoError(t, err)

	t.Cleanup(func() {
		m.redisClient.EXPECT().Close().Return(nil).AnyTimes()
		_ = l.Close()
	})
	return l
}

func TestNewLimiter_InvalidConfig(t *testing.T) {
	m := setupTestLimiter(t)

	_, err := ratelimit.NewLimiter(config.RateLimitConfig{}, nil, m.clock)
	assert.Error(t, err)
}

func TestLimiter_AllowUsesRedis(t *testing.T) {
	m := setupTestLimiter(t)
	l := newRedisLimiter(t, m, true)

	expectedLimit := redis_rate.Limit{Rate: 60, Burst: 2, Period: time.Minute}
	m.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), "test:limiter:10.0.0.1", expectedLimit).
		Return(&redis_rate.Result{Allowed: 1, Remaining: 1}, nil)
	m.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), "test:limiter:10.0.0.1", expectedLimit).
		Return(&redis_rate.Result{Allowed: 0, Remaining: 0, RetryAfter: 3 * time.Second}, nil)

	d, err := l.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)

	d, err = l.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 3*time.Second, d.RetryAfter)
}

func TestLimiter_FallsBackToLocalOnRedisError(t *testing.T) {
	m := setupTestLimiter(t)
	l := newRedisLimiter(t, m, true)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.clock.EXPECT().Now().Return(now).AnyTimes()

	// Only the first call reaches Redis, later calls stay local until the health check recovers
	m.redisRateLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down")).
		Times(1)

	for i := 0; i < 2; i++ {
		d, err := l.Allow(context.Background(), "10.0.0.2")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d should fit in the burst", i)
	}

	d, err := l.Allow(context.Background(), "10.0.0.2")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
}

func TestLimiter_LocalOnlyWhenRedisUnavailableAtStartup(t *testing.T) {
	m := setupTestLimiter(t)
	l := newRedisLimiter(t, m, false)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.clock.EXPECT().Now().Return(now).AnyTimes()
	m.redisRateLimiter.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	d, err := l.Allow(context.Background(), "10.0.0.3")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLimiter_LocalKeysAreIndependent(t *testing.T) {
	m := setupTestLimiter(t)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.clock.EXPECT().Now().Return(now).AnyTimes()

	l, err := ratelimit.NewLimiter(testConfig(), nil, m.clock)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	for i := 0; i < 2; i++ {
		d, err := l.Allow(context.Background(), "a")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}

	d, err := l.Allow(context.Background(), "a")
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	d, err = l.Allow(context.Background(), "b")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLimiter_ClosedRejects(t *testing.T) {
	m := setupTestLimiter(t)

	l, err := ratelimit.NewLimiter(testConfig(), nil, m.clock)
	require.NoError(t, err)
	require.NoError(t, l.Close())

	_, err = l.Allow(context.Background(), "a")
	assert.Error(t, err)
}
