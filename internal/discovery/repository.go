package discovery

import (
    "context"
    "database/sql"
    "fmt"

    "github.com/jmoiron/sqlx"
)

type Repository interface {
    GetPetProfile(ctx context.Context, petID string) (*PetProfile, error)
    ListAvailableProfiles(ctx context.Context) ([]*PetProfile, error)
    SearchAvailableByName(ctx context.Context, query string, limit int) ([]*PetProfile, error)
    ListFriendships(ctx context.Context, petID string) ([]*Friendship, error)
    ResolveOwnerName(ctx context.Context, userID string) (*string, error)
}

type postgresRepository struct {
    db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) Repository {
    return &postgresRepository{db: db}
}

func (r *postgresRepository) GetPetProfile(ctx context.Context, petID string) (*PetProfile, error) {
    var profile PetProfile
    query := `
        SELECT id, name, breed, age, latitude, longitude, personality_traits,
               is_available, owner_id, created_at, updated_at
        FROM pet_profiles
        WHERE id = $1
    `

    err := r.db.GetContext(ctx, &profile, query, petID)
    if err == sql.ErrNoRows {
        return nil, ErrPetNotFound
    }
    if err != nil {
        return nil, fmt.Errorf("failed to fetch pet profile: %w", err)
    }

    return &profile, nil
}

// ListAvailableProfiles returns available profiles that have both coordinates
// set. Profiles without a location can never be distance-matched.
func (r *postgresRepository) ListAvailableProfiles(ctx context.Context) ([]*PetProfile, error) {
    var profiles []*PetProfile
    query := `
        SELECT id, name, breed, age, latitude, longitude, personality_traits,
               is_available, owner_id, created_at, updated_at
        FROM pet_profiles
        WHERE is_available = TRUE
              AND latitude IS NOT NULL
              AND longitude IS NOT NULL
    `

    err := r.db.SelectContext(ctx, &profiles, query)
    if err != nil {
        return nil, fmt.Errorf("failed to list available profiles: %w", err)
    }

    return profiles, nil
}

func (r *postgresRepository) SearchAvailableByName(ctx context.Context, query string, limit int) ([]*PetProfile, error) {
    var profiles []*PetProfile
    sqlQuery := `
        SELECT id, name, breed, age, latitude, longitude, personality_traits,
               is_available, owner_id, created_at, updated_at
        FROM pet_profiles
        WHERE is_available = TRUE
              AND name ILIKE '%' || $1 || '%'
        ORDER BY name
        LIMIT $2
    `

    err := r.db.SelectContext(ctx, &profiles, sqlQuery, query, limit)
    if err != nil {
        return nil, fmt.Errorf("failed to search profiles: %w", err)
    }

    return profiles, nil
}

func (r *postgresRepository) ListFriendships(ctx context.Context, petID string) ([]*Friendship, error) {
    var edges []*Friendship
    query := `
        SELECT id, requester_id, recipient_id, status, created_at
        FROM friendships
        WHERE requester_id = $1 OR recipient_id = $1
    `

    err := r.db.SelectContext(ctx, &edges, query, petID)
    if err != nil {
        return nil, fmt.Errorf("failed to list friendships: %w", err)
    }

    return edges, nil
}

func (r *postgresRepository) ResolveOwnerName(ctx context.Context, userID string) (*string, error) {
    var name string
    query := `SELECT display_name FROM users WHERE id = $1`

    err := r.db.GetContext(ctx, &name, query, userID)
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, fmt.Errorf("failed to resolve owner name: %w", err)
    }

    return &name, nil
}
