package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProjectResponse struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Tags           []string  `json:"tags"`
	RequiredSkills []string  `json:"required_skills"`
	Upvotes        int       `json:"upvotes"`
	CreatedAt      time.Time `json:"created_at"`
}

type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type UpvoteResponse struct {
	ProjectID uuid.UUID `json:"project_id"`
	Upvotes   int       `json:"upvotes"`
}
