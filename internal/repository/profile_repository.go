package repository

import (
	"context"
	"database/sql"
	"errors"

	"campus-link/internal/database"
	"campus-link/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	ListAllExcept(ctx context.Context, userID uuid.UUID) ([]profile.Profile, error)
	List(ctx context.Context, limit, offset int) ([]profile.Profile, error)
	Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `id, user_id, name, email,
	COALESCE(tech_skills, '{}'), COALESCE(non_tech_skills, '{}'), COALESCE(interests, '{}'),
	COALESCE(preferred_role, ''), COALESCE(experience_level, ''),
	COALESCE(availability, ''), COALESCE(personality_style, ''),
	created_at, updated_at`

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`,
		userID,
	)

	p, err := scanProfileRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, err
	}
	return p, nil
}

// ListAllExcept returns the candidate pool for a project: every profile but
// the given user's.
func (r *PostgresProfileRepository) ListAllExcept(ctx context.Context, userID uuid.UUID) ([]profile.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id <> $1 ORDER BY created_at ASC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProfiles(rows)
}

func (r *PostgresProfileRepository) List(ctx context.Context, limit, offset int) ([]profile.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at ASC, id ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProfiles(rows)
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (id, user_id, name, email, tech_skills, non_tech_skills, interests,
			preferred_role, experience_level, availability, personality_style)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		 ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			tech_skills = EXCLUDED.tech_skills,
			non_tech_skills = EXCLUDED.non_tech_skills,
			interests = EXCLUDED.interests,
			preferred_role = EXCLUDED.preferred_role,
			experience_level = EXCLUDED.experience_level,
			availability = EXCLUDED.availability,
			personality_style = EXCLUDED.personality_style,
			updated_at = now()`,
		p.ID, p.UserID, p.Name, p.Email, p.TechSkills, p.NonTechSkills, p.Interests,
		p.PreferredRole, p.ExperienceLevel, p.Availability, p.PersonalityStyle,
	)
	if err != nil {
		return profile.Profile{}, err
	}

	return r.FindByUserID(ctx, p.UserID)
}

func collectProfiles(rows database.Rows) ([]profile.Profile, error) {
	out := make([]profile.Profile, 0)
	for rows.Next() {
		p, err := scanProfileRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfileRow(row rowScanner) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Email,
		&p.TechSkills, &p.NonTechSkills, &p.Interests,
		&p.PreferredRole, &p.ExperienceLevel,
		&p.Availability, &p.PersonalityStyle,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
