package ratelimit

import "github.com/gorilla/mux"

func RegisterRoutes(router *mux.Router, handler *Handler) {
    api := router.PathPrefix("/api/v1/rate-limit").Subrouter()

    api.HandleFunc("/check", handler.Check).Methods("POST")
}
