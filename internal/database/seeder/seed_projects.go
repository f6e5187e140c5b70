package seeder

import (
	"context"
	"fmt"

	"campus-link/internal/database"
)

type ProjectSeeder struct{}

func (ProjectSeeder) Name() string { return "projects" }

func (ProjectSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "projects",
		"id", "owner_id", "title", "description", "category", "tags",
		"required_skills", "upvotes", "created_at", "updated_at",
	); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Title          string
		Description    string
		Category       string
		Tags           []string
		RequiredSkills []string
	}{
		{
			Title:          "Campus Events App",
			Description:    "A mobile-friendly calendar of everything happening on campus.",
			Category:       "Web",
			Tags:           []string{"Web", "EdTech"},
			RequiredSkills: []string{"React", "Node.js"},
		},
		{
			Title:          "Study Group Matcher",
			Description:    "Pairs students into study groups by course and schedule.",
			Category:       "Backend",
			Tags:           []string{"Backend", "Data"},
			RequiredSkills: []string{"Go", "PostgreSQL"},
		},
		{
			Title:          "Lecture Note Summarizer",
			Description:    "Summarizes uploaded lecture notes into revision cards.",
			Category:       "Machine Learning",
			Tags:           []string{"Machine Learning", "EdTech"},
			RequiredSkills: []string{"Python", "TensorFlow"},
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO projects (id, owner_id, title, description, category, tags, required_skills)
			 SELECT gen_random_uuid(), user_id, $1, $2, $3, $4, $5
			 FROM profiles
			 WHERE NOT EXISTS (SELECT 1 FROM projects WHERE title = $1)
			 ORDER BY created_at ASC
			 LIMIT 1`,
			it.Title,
			it.Description,
			it.Category,
			it.Tags,
			it.RequiredSkills,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
