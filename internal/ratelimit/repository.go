package ratelimit

import (
    "context"
    "fmt"
    "time"

    "github.com/jmoiron/sqlx"
)

type AttemptStore interface {
    InsertAttempt(ctx context.Context, attempt *Attempt) error
    CountAttemptsSince(ctx context.Context, identifier, action string, since time.Time) (int, error)
    DeleteAttemptsBefore(ctx context.Context, identifier, action string, cutoff time.Time) error
}

type postgresStore struct {
    db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) AttemptStore {
    return &postgresStore{db: db}
}

func (s *postgresStore) InsertAttempt(ctx context.Context, attempt *Attempt) error {
    query := `
        INSERT INTO rate_limit_attempts (id, identifier, action, ip_address, user_agent, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `

    _, err := s.db.ExecContext(
        ctx, query,
        attempt.ID, attempt.Identifier, attempt.Action,
        attempt.IPAddress, attempt.UserAgent, attempt.CreatedAt,
    )
    if err != nil {
        return fmt.Errorf("failed to insert attempt: %w", err)
    }

    return nil
}

func (s *postgresStore) CountAttemptsSince(ctx context.Context, identifier, action string, since time.Time) (int, error) {
    var count int
    query := `
        SELECT COUNT(*) FROM rate_limit_attempts
        WHERE identifier = $1 AND action = $2 AND created_at >= $3
    `

    err := s.db.GetContext(ctx, &count, query, identifier, action, since)
    if err != nil {
        return 0, fmt.Errorf("failed to count attempts: %w", err)
    }

    return count, nil
}

func (s *postgresStore) DeleteAttemptsBefore(ctx context.Context, identifier, action string, cutoff time.Time) error {
    query := `
        DELETE FROM rate_limit_attempts
        WHERE identifier = $1 AND action = $2 AND created_at < $3
    `

    _, err := s.db.ExecContext(ctx, query, identifier, action, cutoff)
    if err != nil {
        return fmt.Errorf("failed to delete stale attempts: %w", err)
    }

    return nil
}
