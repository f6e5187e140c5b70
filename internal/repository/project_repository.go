package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"campus-link/internal/database"
	"campus-link/internal/domain/project"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrAlreadyUpvoted  = errors.New("already upvoted")
)

type ProjectRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (project.Project, error)
	ListRecent(ctx context.Context, limit, offset int) ([]project.Project, error)
	Create(ctx context.Context, p project.Project) (project.Project, error)
	Upvote(ctx context.Context, projectID, userID uuid.UUID) (int, error)
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

const projectColumns = `id, owner_id, COALESCE(title, ''), COALESCE(description, ''),
	COALESCE(category, ''), COALESCE(tags, '{}'), COALESCE(required_skills, '{}'),
	COALESCE(upvotes, 0), created_at, updated_at`

// FindByID reads the primary projects table and falls back to the legacy
// posts shape when the record predates the projects migration. Legacy rows
// store the category as "topic" and required skills as a comma-joined
// string; both are coerced here so the engines only ever see the canonical
// shape.
func (r *PostgresProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`,
		id,
	)

	p, err := scanProjectRow(row)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) && !errors.Is(err, pgx.ErrNoRows) {
		return project.Project{}, err
	}

	return r.findLegacyPost(ctx, id)
}

func (r *PostgresProjectRepository) findLegacyPost(ctx context.Context, id uuid.UUID) (project.Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, created_by, COALESCE(title, ''), COALESCE(description, ''),
			COALESCE(topic, ''), COALESCE(tags, '{}'), COALESCE(required_skills_csv, ''),
			COALESCE(upvotes, 0), created_at
		 FROM legacy_posts WHERE id = $1`,
		id,
	)

	var p project.Project
	var skillsCSV string
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Description,
		&p.Category, &p.Tags, &skillsCSV,
		&p.Upvotes, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}

	p.RequiredSkills = splitCSV(skillsCSV)
	p.UpdatedAt = p.CreatedAt
	return p, nil
}

func (r *PostgresProjectRepository) ListRecent(ctx context.Context, limit, offset int) ([]project.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, id ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Project, 0)
	for rows.Next() {
		p, err := scanProjectRow(rows)
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

func (r *PostgresProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO projects (id, owner_id, title, description, category, tags, required_skills)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.OwnerID, p.Title, p.Description, p.Category, p.Tags, p.RequiredSkills,
	)
	if err != nil {
		return project.Project{}, err
	}

	return r.FindByID(ctx, p.ID)
}

// Upvote records one upvote per user per project and returns the new count.
func (r *PostgresProjectRepository) Upvote(ctx context.Context, projectID, userID uuid.UUID) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	affected, err := tx.Exec(ctx,
		`INSERT INTO project_upvotes (id, project_id, user_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (project_id, user_id) DO NOTHING`,
		uuid.New(), projectID, userID,
	)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, ErrAlreadyUpvoted
	}

	var upvotes int
	row := tx.QueryRow(ctx,
		`UPDATE projects SET upvotes = upvotes + 1, updated_at = now() WHERE id = $1 RETURNING upvotes`,
		projectID,
	)
	if err := row.Scan(&upvotes); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrProjectNotFound
		}
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return upvotes, nil
}

func scanProjectRow(row rowScanner) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Description,
		&p.Category, &p.Tags, &p.RequiredSkills,
		&p.Upvotes, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func splitCSV(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
