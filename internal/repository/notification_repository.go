package repository

import (
	"context"
	"errors"

	"campus-link/internal/database"
	"campus-link/internal/domain/notification"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(ctx context.Context, n notification.Notification) (notification.Notification, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO notifications (id, user_id, actor_id, type, body)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING id, user_id, actor_id, type, body, read, created_at`,
		n.ID, n.UserID, n.ActorID, n.Type, n.Body,
	)

	var created notification.Notification
	if err := row.Scan(&created.ID, &created.UserID, &created.ActorID, &created.Type, &created.Body, &created.Read, &created.CreatedAt); err != nil {
		return notification.Notification{}, err
	}
	return created, nil
}

func (r *PostgresNotificationRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, actor_id, type, body, read, created_at
		 FROM notifications
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.ActorID, &n.Type, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *PostgresNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = true WHERE user_id = $1 AND read = false`,
		userID,
	)
	return err
}
