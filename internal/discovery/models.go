package discovery

import (
    "time"

    "github.com/lib/pq"
)

// Friendship statuses
const (
    StatusPending  = "pending"
    StatusAccepted = "accepted"
    StatusRejected = "rejected"
)

type PetProfile struct {
    ID          string         `json:"id" db:"id"`
    Name        string         `json:"name" db:"name"`
    Breed       string         `json:"breed" db:"breed"`
    Age         *int           `json:"age,omitempty" db:"age"`
    Latitude    *float64       `json:"latitude,omitempty" db:"latitude"`
    Longitude   *float64       `json:"longitude,omitempty" db:"longitude"`
    Traits      pq.StringArray `json:"personality_traits" db:"personality_traits"`
    IsAvailable bool           `json:"is_available" db:"is_available"`
    OwnerID     string         `json:"owner_id" db:"owner_id"`
    CreatedAt   time.Time      `json:"created_at" db:"created_at"`
    UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// HasLocation reports whether the owner has set coordinates on the profile.
func (p *PetProfile) HasLocation() bool {
    return p.Latitude != nil && p.Longitude != nil
}

type Friendship struct {
    ID          string    `json:"id" db:"id"`
    RequesterID string    `json:"requester_id" db:"requester_id"`
    RecipientID string    `json:"recipient_id" db:"recipient_id"`
    Status      string    `json:"status" db:"status"`
    CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// MatchResult is built per request and never persisted.
type MatchResult struct {
    ID                 string   `json:"id"`
    Name               string   `json:"name"`
    Breed              string   `json:"breed"`
    Age                *int     `json:"age,omitempty"`
    Traits             []string `json:"personality_traits"`
    OwnerID            string   `json:"owner_id"`
    MaskedLocation
    Distance           float64 `json:"distance"`
    CompatibilityScore int     `json:"compatibility_score"`
}

type SearchResult struct {
    ID        string   `json:"id"`
    Name      string   `json:"name"`
    Breed     string   `json:"breed"`
    Age       *int     `json:"age,omitempty"`
    Traits    []string `json:"personality_traits"`
    OwnerID   string   `json:"owner_id"`
    OwnerName *string  `json:"owner_name"`
    MaskedLocation
    Distance  *float64 `json:"distance"`
}
