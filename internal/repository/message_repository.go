package repository

import (
	"context"

	"campus-link/internal/database"
	"campus-link/internal/domain/message"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, m message.Message) (message.Message, error)
	ListConversation(ctx context.Context, a, b uuid.UUID, limit, offset int) ([]message.Message, error)
}

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m message.Message) (message.Message, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO messages (id, sender_id, recipient_id, body)
		 VALUES ($1,$2,$3,$4)
		 RETURNING id, sender_id, recipient_id, body, created_at`,
		m.ID, m.SenderID, m.RecipientID, m.Body,
	)

	var created message.Message
	if err := row.Scan(&created.ID, &created.SenderID, &created.RecipientID, &created.Body, &created.CreatedAt); err != nil {
		return message.Message{}, err
	}
	return created, nil
}

func (r *PostgresMessageRepository) ListConversation(ctx context.Context, a, b uuid.UUID, limit, offset int) ([]message.Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, sender_id, recipient_id, body, created_at
		 FROM messages
		 WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)
		 ORDER BY created_at ASC
		 LIMIT $3 OFFSET $4`,
		a, b, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]message.Message, 0)
	for rows.Next() {
		var m message.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
