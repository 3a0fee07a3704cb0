package redis

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLimiter_LocalFallbackEnforcesBudget(t *testing.T) {
	l := NewLimiter(nil, PerMinute(3), zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.Truef(t, l.Allow(ctx, "login:1.2.3.4").Allowed, "request %d should pass", i+1)
	}
	d := l.Allow(ctx, "login:1.2.3.4")
	assert.False(t, d.Allowed)
	assert.Equal(t, 3, d.Limit)
	assert.Positive(t, d.RetryAfter)

	assert.True(t, l.Allow(ctx, "login:5.6.7.8").Allowed, "keys are independent")
}

func TestLocalLimiter_Refills(t *testing.T) {
	l := newLocalLimiter()
	limit := PerMinute(1)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, l.allow("k", limit, start).Allowed)
	assert.False(t, l.allow("k", limit, start.Add(time.Second)).Allowed)
	assert.True(t, l.allow("k", limit, start.Add(61*time.Second)).Allowed)
}

func TestLocalLimiter_SweepsIdleEntries(t *testing.T) {
	l := newLocalLimiter()
	limit := PerMinute(5)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	l.allow("old", limit, start)
	l.allow("new", limit, start.Add(entryTTL+time.Minute))

	_, ok := l.entries["old"]
	assert.False(t, ok)
	assert.Len(t, l.entries, 1)
}
