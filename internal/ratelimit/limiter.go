package ratelimit

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/subvault/subvault-api/internal/adapter"
	"github.com/subvault/subvault-api/internal/logger"
)

const (
	defaultKeyPrefix     = "subvault:limiter:"
	defaultLocalKeys     = 10000
	healthCheckInterval  = 10 * time.Second
	healthCheckTimeout   = 2 * time.Second
	localLimiterIdleTime = 10 * time.Minute
)

// Policy is a named request budget applied per key (client IP)
type Policy struct {
	Name              string
	RequestsPerMinute int
	Burst             int
}

// Config holds the limiter configuration
type Config struct {
	KeyPrefix string
	Policies  []Policy
	// LocalFallbackMultiplier scales the local budget used while Redis is down,
	// since every API instance then enforces it independently
	LocalFallbackMultiplier float64
	// MaxLocalKeys bounds the number of keys tracked by the local fallback
	MaxLocalKeys int
}

// Decision is the outcome of a rate limit check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decides whether a request may proceed
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one request of policy for key
	Allow(ctx context.Context, policy string, key string) (Decision, error)

	// Close stops the health monitor and closes the Redis connection
	Close() error
}

type policyState struct {
	policy Policy
	limit  redis_rate.Limit
	local  *expirable.LRU[string, *rate.Limiter]
	mu     sync.Mutex
	rate   rate.Limit
	burst  int
}

type limiter struct {
	cfg            Config
	redis          adapter.RedisClient
	distributed    adapter.RedisRateLimiter
	clock          adapter.Clock
	policies       map[string]*policyState
	redisAvailable atomic.Bool
	done           chan struct{}
	closeOnce      sync.Once
}

// NewLimiter creates a limiter. A nil Redis client limits locally only.
func NewLimiter(cfg Config, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	l := &limiter{
		cfg:      cfg,
		redis:    rc,
		clock:    clock,
		policies: make(map[string]*policyState, len(cfg.Policies)),
		done:     make(chan struct{}),
	}

	for _, p := range cfg.Policies {
		localRate := float64(p.RequestsPerMinute) / 60 * cfg.LocalFallbackMultiplier
		l.policies[p.Name] = &policyState{
			policy: p,
			limit:  redis_rate.Limit{Rate: p.RequestsPerMinute, Burst: p.Burst, Period: time.Minute},
			local:  expirable.NewLRU[string, *rate.Limiter](cfg.MaxLocalKeys, nil, localLimiterIdleTime),
			rate:   rate.Limit(localRate),
			burst:  max(int(math.Ceil(float64(p.Burst)*cfg.LocalFallbackMultiplier)), 1),
		}
	}

	if rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		l.distributed = rc.NewRateLimiter()
		if err := rc.Ping(ctx); err != nil {
			logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
		} else {
			l.redisAvailable.Store(true)
		}

		go l.monitorRedisHealth()
	}

	logger.Info("Rate limiter initialized",
		zap.Int("policies", len(l.policies)),
		zap.Bool("redis", rc != nil),
	)

	return l, nil
}

func (l *limiter) Allow(ctx context.Context, policy string, key string) (Decision, error) {
	state, ok := l.policies[policy]
	if !ok {
		return Decision{}, fmt.Errorf("policy '%s' not configured", policy)
	}

	if l.distributed != nil && l.redisAvailable.Load() {
		res, err := l.distributed.Allow(ctx, l.cfg.KeyPrefix+policy+":"+key, state.limit)
		if err == nil {
			return Decision{
				Allowed:    res.Allowed > 0,
				Remaining:  res.Remaining,
				RetryAfter: max(res.RetryAfter, 0),
			}, nil
		}
		if ctx.Err() != nil {
			return Decision{}, ctx.Err()
		}

		l.redisAvailable.Store(false)
		logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local",
			zap.String("policy", policy),
			zap.Error(err),
		)
	}

	return state.allowLocal(key, l.clock.Now()), nil
}

func (s *policyState) allowLocal(key string, now time.Time) Decision {
	s.mu.Lock()
	lim, ok := s.local.Get(key)
	if !ok {
		lim = rate.NewLimiter(s.rate, s.burst)
		s.local.Add(key, lim)
	}
	s.mu.Unlock()

	r := lim.ReserveN(now, 1)
	if !r.OK() {
		return Decision{Allowed: false, RetryAfter: time.Minute}
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Decision{Allowed: false, RetryAfter: delay}
	}
	return Decision{Allowed: true, Remaining: int(lim.TokensAt(now))}
}

// monitorRedisHealth periodically checks Redis health and updates availability status
func (l *limiter) monitorRedisHealth() {
	for {
		select {
		case <-l.done:
			return
		case <-l.clock.After(healthCheckInterval):
		}

		ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
		err := l.redis.Ping(ctx)
		cancel()

		available := err == nil
		if was := l.redisAvailable.Swap(available); !was && available {
			logger.Info("Redis connection restored")
		}
	}
}

func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		close(l.done)
		if l.redis != nil {
			if closeErr := l.redis.Close(); closeErr != nil {
				logger.Warn("Error closing Redis connection", zap.Error(closeErr))
				err = closeErr
			}
		}
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *Config) error {
	if len(cfg.Policies) == 0 {
		return fmt.Errorf("at least one policy must be configured")
	}

	seen := make(map[string]bool, len(cfg.Policies))
	for i, p := range cfg.Policies {
		if p.Name == "" {
			return fmt.Errorf("policy %d: name is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("policy %s: configured twice", p.Name)
		}
		seen[p.Name] = true

		if p.RequestsPerMinute <= 0 {
			return fmt.Errorf("policy %s: requests_per_minute must be positive", p.Name)
		}
		if p.Burst <= 0 {
			p.Burst = p.RequestsPerMinute
		}
		cfg.Policies[i] = p
	}

	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = defaultKeyPrefix
	}
	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = 1
	}
	if cfg.MaxLocalKeys <= 0 {
		cfg.MaxLocalKeys = defaultLocalKeys
	}

	return nil
}
