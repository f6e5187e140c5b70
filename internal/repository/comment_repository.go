package repository

import (
	"context"

	"campus-link/internal/database"
	"campus-link/internal/domain/project"

	"github.com/google/uuid"
)

type CommentRepository interface {
	Create(ctx context.Context, c project.Comment) (project.Comment, error)
	ListByProjectID(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]project.Comment, error)
}

type PostgresCommentRepository struct {
	db database.DB
}

func NewPostgresCommentRepository(db database.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

func (r *PostgresCommentRepository) Create(ctx context.Context, c project.Comment) (project.Comment, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO project_comments (id, project_id, author_id, body)
		 VALUES ($1,$2,$3,$4)
		 RETURNING id, project_id, author_id, body, created_at`,
		c.ID, c.ProjectID, c.AuthorID, c.Body,
	)

	var created project.Comment
	if err := row.Scan(&created.ID, &created.ProjectID, &created.AuthorID, &created.Body, &created.CreatedAt); err != nil {
		return project.Comment{}, err
	}
	return created, nil
}

func (r *PostgresCommentRepository) ListByProjectID(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]project.Comment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, project_id, author_id, body, created_at
		 FROM project_comments
		 WHERE project_id = $1
		 ORDER BY created_at ASC
		 LIMIT $2 OFFSET $3`,
		projectID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]project.Comment, 0)
	for rows.Next() {
		var c project.Comment
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
