package discovery

// DTOs for API requests/responses

type MatchRequestDTO struct {
    PetID     string   `json:"petId" validate:"required"`
    Latitude  *float64 `json:"latitude" validate:"required"`
    Longitude *float64 `json:"longitude" validate:"required"`
    Radius    *float64 `json:"radius,omitempty" validate:"omitempty,gt=0"`
}

type SearchRequestDTO struct {
    PetID       string   `json:"petId" validate:"required"`
    SearchQuery string   `json:"searchQuery" validate:"required"`
    Latitude    *float64 `json:"latitude,omitempty"`
    Longitude   *float64 `json:"longitude,omitempty"`
    MaxDistance *float64 `json:"maxDistance,omitempty" validate:"omitempty,gt=0"`
}

type MatchResponseDTO struct {
    Matches []*MatchResult `json:"matches"`
}

type SearchResponseDTO struct {
    Results []*SearchResult `json:"results"`
}
