package ratelimit

import (
    "context"
    "log"
    "time"

    "github.com/google/uuid"
)

// Defaults applied when a check does not override them.
const (
    DefaultWindowMinutes = 15
    DefaultMaxAttempts   = 5
)

type Limiter interface {
    Check(ctx context.Context, input *CheckInput) (*Decision, error)
}

// attemptLogLimiter counts attempts inside a sliding window over the attempt
// log. The count-then-insert sequence is a check-then-act race: concurrent
// callers near the limit may each pass the count before any insert lands.
// That brief over-admission is accepted; this is an abuse deterrent, not a
// hard quota. The Redis backend is the atomic alternative.
type attemptLogLimiter struct {
    store         AttemptStore
    windowMinutes int
    maxAttempts   int
}

func NewAttemptLogLimiter(store AttemptStore, windowMinutes, maxAttempts int) Limiter {
    if windowMinutes <= 0 {
        windowMinutes = DefaultWindowMinutes
    }
    if maxAttempts <= 0 {
        maxAttempts = DefaultMaxAttempts
    }
    return &attemptLogLimiter{
        store:         store,
        windowMinutes: windowMinutes,
        maxAttempts:   maxAttempts,
    }
}

func (l *attemptLogLimiter) Check(ctx context.Context, input *CheckInput) (*Decision, error) {
    windowMinutes := l.windowMinutes
    if input.WindowMinutes > 0 {
        windowMinutes = input.WindowMinutes
    }
    maxAttempts := l.maxAttempts
    if input.MaxAttempts > 0 {
        maxAttempts = input.MaxAttempts
    }

    now := time.Now().UTC()
    window := time.Duration(windowMinutes) * time.Minute
    windowStart := now.Add(-window)

    count, err := l.store.CountAttemptsSince(ctx, input.Identifier, input.Action, windowStart)
    if err != nil {
        // Fail open: a limiter outage must not block legitimate traffic.
        log.Printf("rate limit count failed for %s/%s, allowing: %v", input.Identifier, input.Action, err)
        RecordCheck(input.Action, "fail_open")
        return &Decision{
            Allowed:           true,
            AttemptsRemaining: maxAttempts - 1,
            WindowMinutes:     windowMinutes,
            MaxAttempts:       maxAttempts,
        }, nil
    }

    if count >= maxAttempts {
        l.pruneStale(ctx, input, windowStart)
        resetTime := now.Add(window)
        RecordCheck(input.Action, "blocked")
        return &Decision{
            Allowed:           false,
            AttemptsRemaining: 0,
            WindowMinutes:     windowMinutes,
            MaxAttempts:       maxAttempts,
            ResetTime:         &resetTime,
        }, nil
    }

    attempt := &Attempt{
        ID:         uuid.NewString(),
        Identifier: input.Identifier,
        Action:     input.Action,
        CreatedAt:  now,
    }
    if input.IPAddress != "" {
        attempt.IPAddress = &input.IPAddress
    }
    if input.UserAgent != "" {
        attempt.UserAgent = &input.UserAgent
    }

    if err := l.store.InsertAttempt(ctx, attempt); err != nil {
        // Same availability choice: the attempt goes unrecorded, the caller
        // proceeds.
        log.Printf("rate limit insert failed for %s/%s, allowing: %v", input.Identifier, input.Action, err)
        RecordCheck(input.Action, "fail_open")
    } else {
        RecordCheck(input.Action, "allowed")
    }

    l.pruneStale(ctx, input, windowStart)

    return &Decision{
        Allowed:           true,
        AttemptsRemaining: maxAttempts - count - 1,
        WindowMinutes:     windowMinutes,
        MaxAttempts:       maxAttempts,
    }, nil
}

func (l *attemptLogLimiter) pruneStale(ctx context.Context, input *CheckInput, windowStart time.Time) {
    if err := l.store.DeleteAttemptsBefore(ctx, input.Identifier, input.Action, windowStart); err != nil {
        log.Printf("rate limit prune failed for %s/%s: %v", input.Identifier, input.Action, err)
    }
}
