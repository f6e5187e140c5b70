package project

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Title          string
	Description    string
	Category       string
	Tags           []string
	RequiredSkills []string
	Upvotes        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Comment struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	AuthorID  uuid.UUID
	Body      string
	CreatedAt time.Time
}
