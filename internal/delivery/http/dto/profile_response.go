package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	TechSkills       []string  `json:"tech_skills"`
	NonTechSkills    []string  `json:"non_tech_skills"`
	Interests        []string  `json:"interests"`
	PreferredRole    string    `json:"preferred_role"`
	ExperienceLevel  string    `json:"experience_level"`
	Availability     string    `json:"availability"`
	PersonalityStyle string    `json:"personality_style"`
	UpdatedAt        time.Time `json:"updated_at"`
}
