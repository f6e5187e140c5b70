package dto

import "github.com/google/uuid"

type RecommendedProjectResponse struct {
	ProjectID uuid.UUID `json:"project_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Upvotes   int       `json:"upvotes"`
	Score     int       `json:"score"`
}
