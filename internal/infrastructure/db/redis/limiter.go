package redis

import (
	"context"
	"sync"
	"time"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Decision is the outcome of one rate-limit check.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
	ResetAfter time.Duration
}

// Limiter enforces a fixed per-key budget. It uses the shared Redis GCRA
// limiter when a client is configured and falls back to an in-process token
// bucket when Redis is absent or failing.
type Limiter struct {
	remote *redis_rate.Limiter
	local  *localLimiter
	limit  redis_rate.Limit
	log    zerolog.Logger
}

// PerMinute returns a limit of n requests per minute with a burst of n.
func PerMinute(n int) redis_rate.Limit {
	return redis_rate.PerMinute(n)
}

// NewLimiter builds a limiter. client may be nil.
func NewLimiter(client *redis.Client, limit redis_rate.Limit, log zerolog.Logger) *Limiter {
	l := &Limiter{
		local: newLocalLimiter(),
		limit: limit,
		log:   log,
	}
	if client != nil {
		l.remote = redis_rate.NewLimiter(client)
	}
	return l
}

func (l *Limiter) Allow(ctx context.Context, key string) Decision {
	if l.remote != nil {
		res, err := l.remote.Allow(ctx, "ratelimit:"+key, l.limit)
		if err == nil {
			return Decision{
				Allowed:    res.Allowed > 0,
				Limit:      l.limit.Rate,
				Remaining:  res.Remaining,
				RetryAfter: res.RetryAfter,
				ResetAfter: res.ResetAfter,
			}
		}
		l.log.Warn().Err(err).Str("key", key).Msg("redis rate limiter failed, using local limiter")
	}
	return l.local.allow(key, l.limit, time.Now())
}

const entryTTL = 10 * time.Minute

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// localLimiter keeps one token bucket per key. Idle entries are swept
// inline on access.
type localLimiter struct {
	mu        sync.Mutex
	entries   map[string]*limiterEntry
	lastSweep time.Time
}

func newLocalLimiter() *localLimiter {
	return &localLimiter{entries: make(map[string]*limiterEntry)}
}

func (l *localLimiter) allow(key string, limit redis_rate.Limit, now time.Time) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > entryTTL {
		for k, e := range l.entries {
			if now.Sub(e.lastAccess) > entryTTL {
				delete(l.entries, k)
			}
		}
		l.lastSweep = now
	}

	perSec := float64(limit.Rate) / limit.Period.Seconds()
	e, ok := l.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(perSec), limit.Burst)}
		l.entries[key] = e
	}
	e.lastAccess = now

	allowed := e.limiter.AllowN(now, 1)
	remaining := int(e.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}

	interval := time.Duration(float64(time.Second) / perSec)
	d := Decision{
		Allowed:    allowed,
		Limit:      limit.Rate,
		Remaining:  remaining,
		ResetAfter: interval,
		RetryAfter: -1,
	}
	if !allowed {
		d.RetryAfter = interval
	}
	return d
}
