package ratelimit

import (
    "context"
    "fmt"
    "log"
    "time"

    "github.com/go-redis/redis/v8"
)

// redisLimiter is the atomic increment-and-compare variant. INCR closes the
// check-then-act race of the attempt log at the cost of a coarser fixed
// window: the window starts at the first attempt rather than sliding. It
// keeps the same fail-open behavior.
type redisLimiter struct {
    client        *redis.Client
    windowMinutes int
    maxAttempts   int
}

func NewRedisLimiter(client *redis.Client, windowMinutes, maxAttempts int) Limiter {
    if windowMinutes <= 0 {
        windowMinutes = DefaultWindowMinutes
    }
    if maxAttempts <= 0 {
        maxAttempts = DefaultMaxAttempts
    }
    return &redisLimiter{
        client:        client,
        windowMinutes: windowMinutes,
        maxAttempts:   maxAttempts,
    }
}

func (l *redisLimiter) Check(ctx context.Context, input *CheckInput) (*Decision, error) {
    windowMinutes := l.windowMinutes
    if input.WindowMinutes > 0 {
        windowMinutes = input.WindowMinutes
    }
    maxAttempts := l.maxAttempts
    if input.MaxAttempts > 0 {
        maxAttempts = input.MaxAttempts
    }

    window := time.Duration(windowMinutes) * time.Minute
    key := fmt.Sprintf("ratelimit:%s:%s", input.Action, input.Identifier)

    count, err := l.client.Incr(ctx, key).Result()
    if err != nil {
        log.Printf("rate limit incr failed for %s, allowing: %v", key, err)
        RecordCheck(input.Action, "fail_open")
        return &Decision{
            Allowed:           true,
            AttemptsRemaining: maxAttempts - 1,
            WindowMinutes:     windowMinutes,
            MaxAttempts:       maxAttempts,
        }, nil
    }

    if count == 1 {
        if err := l.client.Expire(ctx, key, window).Err(); err != nil {
            log.Printf("rate limit expire failed for %s: %v", key, err)
        }
    }

    if count > int64(maxAttempts) {
        resetTime := time.Now().UTC().Add(window)
        ttl, err := l.client.TTL(ctx, key).Result()
        switch {
        case err == nil && ttl > 0:
            resetTime = time.Now().UTC().Add(ttl)
        case err == nil && ttl < 0:
            // The counter lost its expiry: EXPIRE failed earlier, or the
            // process died between INCR and EXPIRE. Re-arm it so the block
            // lifts when the window elapses instead of lasting forever.
            if err := l.client.Expire(ctx, key, window).Err(); err != nil {
                log.Printf("rate limit expire repair failed for %s: %v", key, err)
            }
        }
        RecordCheck(input.Action, "blocked")
        return &Decision{
            Allowed:           false,
            AttemptsRemaining: 0,
            WindowMinutes:     windowMinutes,
            MaxAttempts:       maxAttempts,
            ResetTime:         &resetTime,
        }, nil
    }

    RecordCheck(input.Action, "allowed")
    return &Decision{
        Allowed:           true,
        AttemptsRemaining: maxAttempts - int(count),
        WindowMinutes:     windowMinutes,
        MaxAttempts:       maxAttempts,
    }, nil
}
