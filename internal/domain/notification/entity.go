package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeComment   = "comment"
	TypeUpvote    = "upvote"
	TypeFollow    = "follow"
	TypeMessage   = "message"
	TypeCandidate = "candidate_match"
)

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ActorID   uuid.UUID
	Type      string
	Body      string
	Read      bool
	CreatedAt time.Time
}
