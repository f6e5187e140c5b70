package repository

import (
	"context"
	"errors"

	"campus-link/internal/database"

	"github.com/google/uuid"
)

var ErrNotFollowing = errors.New("not following")

type FollowRepository interface {
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	ListFollowing(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
	ListFollowers(ctx context.Context, followeeID uuid.UUID) ([]uuid.UUID, error)
}

type PostgresFollowRepository struct {
	db database.DB
}

func NewPostgresFollowRepository(db database.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO follows (id, follower_id, followee_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (follower_id, followee_id) DO NOTHING`,
		uuid.New(), followerID, followeeID,
	)
	return err
}

func (r *PostgresFollowRepository) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`,
		followerID, followeeID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFollowing
	}
	return nil
}

func (r *PostgresFollowRepository) ListFollowing(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	return r.listIDs(ctx,
		`SELECT followee_id FROM follows WHERE follower_id = $1 ORDER BY created_at ASC`,
		followerID,
	)
}

func (r *PostgresFollowRepository) ListFollowers(ctx context.Context, followeeID uuid.UUID) ([]uuid.UUID, error) {
	return r.listIDs(ctx,
		`SELECT follower_id FROM follows WHERE followee_id = $1 ORDER BY created_at ASC`,
		followeeID,
	)
}

func (r *PostgresFollowRepository) listIDs(ctx context.Context, query string, arg any) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
