package discovery

import (
    "github.com/gorilla/mux"

    "github.com/pawpals/pawpals-backend/internal/ratelimit"
)

func RegisterRoutes(router *mux.Router, handler *Handler, limiter *ratelimit.Middleware) {
    api := router.PathPrefix("/api/v1/discovery").Subrouter()

    api.HandleFunc("/match", handler.Match).Methods("POST")

    // Free-text search is the easiest endpoint to hammer, so it sits behind
    // the advisory rate limit gate.
    search := api.PathPrefix("/search").Subrouter()
    search.Use(limiter.Limit("discovery_search"))
    search.HandleFunc("", handler.Search).Methods("POST")
}
