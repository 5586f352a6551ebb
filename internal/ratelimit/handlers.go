package ratelimit

import (
    "encoding/json"
    "net/http"

    "github.com/pawpals/pawpals-backend/internal/common/utils"
)

type CheckRequestDTO struct {
    Identifier    string `json:"identifier" validate:"required"`
    Action        string `json:"action" validate:"required"`
    WindowMinutes int    `json:"window_minutes,omitempty" validate:"omitempty,min=1"`
    MaxAttempts   int    `json:"max_attempts,omitempty" validate:"omitempty,min=1"`
}

type Handler struct {
    limiter Limiter
}

func NewHandler(limiter Limiter) *Handler {
    return &Handler{limiter: limiter}
}

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
    var dto CheckRequestDTO
    if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
        return
    }

    if err := utils.ValidateStruct(&dto); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, err.Error())
        return
    }

    decision, err := h.limiter.Check(r.Context(), &CheckInput{
        Identifier:    dto.Identifier,
        Action:        dto.Action,
        WindowMinutes: dto.WindowMinutes,
        MaxAttempts:   dto.MaxAttempts,
        IPAddress:     ClientIP(r),
        UserAgent:     r.UserAgent(),
    })
    if err != nil {
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check rate limit")
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

    utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
        "allowed":            true,
        "attempts_remaining": decision.AttemptsRemaining,
        "window_minutes":     decision.WindowMinutes,
        "max_attempts":       decision.MaxAttempts,
    })
}
