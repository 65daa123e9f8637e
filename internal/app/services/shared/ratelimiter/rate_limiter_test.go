package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	counters map[string]int64
	ttls     map[string]time.Duration
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{
		counters: make(map[string]int64),
		ttls:     make(map[string]time.Duration),
	}
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.counters, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (f *fakeRedisRepository) Increment(ctx context.Context, key string) (int64, error) {
	f.counters[key]++
	return f.counters[key], nil
}

func (f *fakeRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) error {
	f.ttls[key] = exp
	return nil
}

func (f *fakeRedisRepository) TTL(ctx context.Context, key string) (time.Duration, error) {
	return f.ttls[key], nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

func TestApplyResourceLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("Allows Up To Quota Then Blocks", func(t *testing.T) {
		limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())
		in := &ApplyResourceLimiterInput{
			ResourceName:      "9841234567",
			LimiterGroupName:  "otp-request",
			WindowDurationSec: 600,
			MaxQuota:          3,
			NowUTC:            now,
		}

		for i := 0; i < 3; i++ {
			out, err := limiter.ApplyResourceLimiter(ctx, in)
			assert.NoError(t, err)
			assert.True(t, out.Allowed, "request %d should be allowed", i+1)
		}

		out, err := limiter.ApplyResourceLimiter(ctx, in)
		assert.NoError(t, err)
		assert.False(t, out.Allowed)
		assert.Greater(t, out.RetryAfterSecs, 0)
	})

	t.Run("Separate Resources Do Not Share Quota", func(t *testing.T) {
		limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())
		first := &ApplyResourceLimiterInput{
			ResourceName: "9841111111", LimiterGroupName: "otp-request",
			WindowDurationSec: 600, MaxQuota: 1, NowUTC: now,
		}
		second := &ApplyResourceLimiterInput{
			ResourceName: "9842222222", LimiterGroupName: "otp-request",
			WindowDurationSec: 600, MaxQuota: 1, NowUTC: now,
		}

		out, _ := limiter.ApplyResourceLimiter(ctx, first)
		assert.True(t, out.Allowed)
		out, _ = limiter.ApplyResourceLimiter(ctx, second)
		assert.True(t, out.Allowed)
		out, _ = limiter.ApplyResourceLimiter(ctx, first)
		assert.False(t, out.Allowed)
	})

	t.Run("New Window Resets Quota", func(t *testing.T) {
		limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())
		in := &ApplyResourceLimiterInput{
			ResourceName: "9841234567", LimiterGroupName: "otp-request",
			WindowDurationSec: 600, MaxQuota: 1, NowUTC: now,
		}

		out, _ := limiter.ApplyResourceLimiter(ctx, in)
		assert.True(t, out.Allowed)
		out, _ = limiter.ApplyResourceLimiter(ctx, in)
		assert.False(t, out.Allowed)

		in.NowUTC = now.Add(time.Duration(in.WindowDurationSec) * time.Second)
		out, _ = limiter.ApplyResourceLimiter(ctx, in)
		assert.True(t, out.Allowed, "next window should start fresh")
	})

	t.Run("Zero Quota Is Unlimited", func(t *testing.T) {
		limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())
		out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			ResourceName: "x", LimiterGroupName: "g", WindowDurationSec: 60, MaxQuota: 0, NowUTC: now,
		})
		assert.NoError(t, err)
		assert.True(t, out.Allowed)
	})

	t.Run("Missing Resource Is Blocked", func(t *testing.T) {
		limiter := NewResourceLimiter(newFakeRedisRepository(), zap.NewNop())
		out, err := limiter.ApplyResourceLimiter(ctx, &ApplyResourceLimiterInput{
			ResourceName: "", LimiterGroupName: "g", WindowDurationSec: 60, MaxQuota: 3, NowUTC: now,
		})
		assert.NoError(t, err)
		assert.False(t, out.Allowed)
	})
}
