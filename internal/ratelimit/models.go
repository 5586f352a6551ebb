package ratelimit

import "time"

// Attempt is one recorded invocation of a guarded action. Rows older than the
// sliding window are dead weight and get opportunistically deleted during
// checks.
type Attempt struct {
    ID         string    `json:"id" db:"id"`
    Identifier string    `json:"identifier" db:"identifier"`
    Action     string    `json:"action" db:"action"`
    IPAddress  *string   `json:"ip_address,omitempty" db:"ip_address"`
    UserAgent  *string   `json:"user_agent,omitempty" db:"user_agent"`
    CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CheckInput describes one rate-limit decision. WindowMinutes and MaxAttempts
// override the configured defaults when positive.
type CheckInput struct {
    Identifier    string
    Action        string
    WindowMinutes int
    MaxAttempts   int
    IPAddress     string
    UserAgent     string
}

// Decision is the limiter's verdict. ResetTime is only set on rejection.
type Decision struct {
    Allowed           bool       `json:"allowed"`
    AttemptsRemaining int        `json:"attempts_remaining"`
    WindowMinutes     int        `json:"window_minutes"`
    MaxAttempts       int        `json:"max_attempts"`
    ResetTime         *time.Time `json:"reset_time,omitempty"`
}
