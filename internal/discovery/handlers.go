package discovery

import (
    "encoding/json"
    "errors"
    "net/http"

    "github.com/pawpals/pawpals-backend/internal/common/utils"
)

type Handler struct {
    service Service
}

func NewHandler(service Service) *Handler {
    return &Handler{service: service}
}

func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
    var dto MatchRequestDTO
    if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
        return
    }

    if err := utils.ValidateStruct(&dto); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, err.Error())
        return
    }

    matches, err := h.service.Match(r.Context(), &dto)
    if err != nil {
        if errors.Is(err, ErrPetNotFound) {
            RecordMatchRequest("not_found", 0)
            utils.RespondWithError(w, http.StatusNotFound, err.Error())
            return
        }
        RecordMatchRequest("error", 0)
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to find matches")
        return
    }

    if matches == nil {
        matches = []*MatchResult{}
    }
    utils.RespondWithJSON(w, http.StatusOK, MatchResponseDTO{Matches: matches})
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
    var dto SearchRequestDTO
    if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
        return
    }

    if err := utils.ValidateStruct(&dto); err != nil {
        utils.RespondWithError(w, http.StatusBadRequest, err.Error())
        return
    }

    results, err := h.service.Search(r.Context(), &dto)
    if err != nil {
        if errors.Is(err, ErrEmptyQuery) {
            utils.RespondWithError(w, http.StatusBadRequest, err.Error())
            return
        }
        utils.RespondWithError(w, http.StatusInternalServerError, "Failed to search pets")
        return
    }

    if results == nil {
        results = []*SearchResult{}
    }
    utils.RespondWithJSON(w, http.StatusOK, SearchResponseDTO{Results: results})
}
