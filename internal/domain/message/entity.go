package message

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Body        string
	CreatedAt   time.Time
}
