package ratelimit

import (
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestClientIP(t *testing.T) {
    req := httptest.NewRequest(http.MethodGet, "/", nil)
    req.RemoteAddr = "192.0.2.10:51234"
    assert.Equal(t, "192.0.2.10", ClientIP(req))

    req.Header.Set("X-Real-IP", "198.51.100.2")
    assert.Equal(t, "198.51.100.2", ClientIP(req))

    req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
    assert.Equal(t, "203.0.113.7", ClientIP(req))
}

func TestLimitMiddlewareBlocksAfterMax(t *testing.T) {
    limiter := NewAttemptLogLimiter(&fakeStore{}, 10, 2)
    middleware := NewMiddleware(limiter)

    handler := middleware.Limit("profile_update")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusNoContent)
    }))

    do := func() int {
        req := httptest.NewRequest(http.MethodPost, "/", nil)
        req.RemoteAddr = "192.0.2.10:51234"
        rec := httptest.NewRecorder()
        handler.ServeHTTP(rec, req)
        return rec.Code
    }

    assert.Equal(t, http.StatusNoContent, do())
    assert.Equal(t, http.StatusNoContent, do())
    assert.Equal(t, http.StatusTooManyRequests, do())
}

func TestLimitMiddlewareIsolatesIdentifiers(t *testing.T) {
    limiter := NewAttemptLogLimiter(&fakeStore{}, 10, 1)
    middleware := NewMiddleware(limiter)

    handler := middleware.Limit("profile_update")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusNoContent)
    }))

    do := func(ip string) int {
        req := httptest.NewRequest(http.MethodPost, "/", nil)
        req.RemoteAddr = ip + ":51234"
        rec := httptest.NewRecorder()
        handler.ServeHTTP(rec, req)
        return rec.Code
    }

    require.Equal(t, http.StatusNoContent, do("192.0.2.10"))
    assert.Equal(t, http.StatusTooManyRequests, do("192.0.2.10"))
    assert.Equal(t, http.StatusNoContent, do("192.0.2.11"))
}

func TestLimitMiddlewareFailsOpen(t *testing.T) {
    limiter := NewAttemptLogLimiter(&fakeStore{countErr: assert.AnError}, 10, 1)
    middleware := NewMiddleware(limiter)

    handler := middleware.Limit("profile_update")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusNoContent)
    }))

    req := httptest.NewRequest(http.MethodPost, "/", nil)
    rec := httptest.NewRecorder()
    handler.ServeHTTP(rec, req)
    assert.Equal(t, http.StatusNoContent, rec.Code)
}
