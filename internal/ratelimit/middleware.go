package ratelimit

import (
    "net"
    "net/http"
    "strings"

    "github.com/pawpals/pawpals-backend/internal/common/utils"
)

// Middleware gates mutating routes behind the limiter. It is advisory: any
// limiter failure lets the request through.
type Middleware struct {
    limiter Limiter
}

func NewMiddleware(limiter Limiter) *Middleware {
    return &Middleware{limiter: limiter}
}

// Limit returns a mux middleware that checks the given action for the caller.
// The identifier is the authenticated user id when present on the context,
// the client IP otherwise.
func (m *Middleware) Limit(action string) func(http.Handler) http.Handler {
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            identifier := ClientIP(r)
            if userID, ok := r.Context().Value("userID").(string); ok && userID != "" {
                identifier = userID
            }

            decision, err := m.limiter.Check(r.Context(), &CheckInput{
                Identifier: identifier,
                Action:     action,
                IPAddress:  ClientIP(r),
                UserAgent:  r.UserAgent(),
            })
            if err != nil || decision == nil {
                next.ServeHTTP(w, r)
                return
            }

            if !decision.Allowed {
                utils.RespondWithJSON(w, http.StatusTooManyRequests, map[string]interface{}{
                    "error":              "Too many requests. Please try again later.",
                    "allowed":            false,
                    "attempts_remaining": 0,
                    "reset_time":         decision.ResetTime,
                })
                return
            }

            next.ServeHTTP(w, r)
        })
    }
}

// ClientIP extracts the originating client address, preferring proxy headers.
func ClientIP(r *http.Request) string {
    if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
        parts := strings.Split(forwarded, ",")
        return strings.TrimSpace(parts[0])
    }
    if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
        return realIP
    }

    host, _, err := net.SplitHostPort(r.RemoteAddr)
    if err != nil {
        return r.RemoteAddr
    }
    return host
}
