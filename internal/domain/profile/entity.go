package profile

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExperienceBeginner     = "Beginner"
	ExperienceIntermediate = "Intermediate"
	ExperienceAdvanced     = "Advanced"
)

type Profile struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Name             string
	Email            string
	TechSkills       []string
	NonTechSkills    []string
	Interests        []string
	PreferredRole    string
	ExperienceLevel  string
	Availability     string
	PersonalityStyle string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Follow struct {
	ID         uuid.UUID
	FollowerID uuid.UUID
	FolloweeID uuid.UUID
	CreatedAt  time.Time
}
