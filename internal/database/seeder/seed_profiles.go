package seeder

import (
	"context"
	"fmt"

	"campus-link/internal/database"
)

type ProfileSeeder struct{}

func (ProfileSeeder) Name() string { return "profiles" }

func (ProfileSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "profiles",
		"id", "user_id", "name", "email", "tech_skills", "non_tech_skills", "interests",
		"preferred_role", "experience_level", "availability", "personality_style",
		"created_at", "updated_at",
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
		Name             string
		Email            string
		TechSkills       []string
		NonTechSkills    []string
		Interests        []string
		PreferredRole    string
		ExperienceLevel  string
		Availability     string
		PersonalityStyle string
	}{
		{
			Name:             "Amira Hassan",
			Email:            "amira@campus.test",
			TechSkills:       []string{"React", "TypeScript", "Node.js"},
			NonTechSkills:    []string{"Public Speaking"},
			Interests:        []string{"Web", "EdTech"},
			PreferredRole:    "Frontend Developer",
			ExperienceLevel:  "Intermediate",
			Availability:     "10 hrs/week",
			PersonalityStyle: "Collaborative",
		},
		{
			Name:             "Jonas Weber",
			Email:            "jonas@campus.test",
			TechSkills:       []string{"Go", "PostgreSQL", "Docker"},
			NonTechSkills:    []string{"Project Management"},
			Interests:        []string{"Backend", "DevOps"},
			PreferredRole:    "Backend Developer",
			ExperienceLevel:  "Advanced",
			Availability:     "15 hrs/week",
			PersonalityStyle: "Independent",
		},
		{
			Name:             "Priya Nair",
			Email:            "priya@campus.test",
			TechSkills:       []string{"Python", "TensorFlow", "SQL"},
			NonTechSkills:    []string{"Writing"},
			Interests:        []string{"Machine Learning", "Data"},
			PreferredRole:    "Data Scientist",
			ExperienceLevel:  "Intermediate",
			Availability:     "8 hrs/week",
			PersonalityStyle: "Analytical",
		},
		{
			Name:             "Lucas Moreira",
			Email:            "lucas@campus.test",
			TechSkills:       []string{"Figma", "HTML", "CSS"},
			NonTechSkills:    []string{"Illustration"},
			Interests:        []string{"Design", "Web"},
			PreferredRole:    "UI/UX Designer",
			ExperienceLevel:  "Beginner",
			Availability:     "5 hrs/week",
			PersonalityStyle: "Creative",
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO profiles
				(id, user_id, name, email, tech_skills, non_tech_skills, interests,
				 preferred_role, experience_level, availability, personality_style)
			 VALUES (gen_random_uuid(), gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (email) DO NOTHING`,
			it.Name,
			it.Email,
			it.TechSkills,
			it.NonTechSkills,
			it.Interests,
			it.PreferredRole,
			it.ExperienceLevel,
			it.Availability,
			it.PersonalityStyle,
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
