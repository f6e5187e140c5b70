package usecase

import (
	"context"
	"errors"

	"campus-link/internal/domain/notification"
	"campus-link/internal/repository"

	"github.com/google/uuid"
)

type NotificationUsecase interface {
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type Notifications struct {
	repo repository.NotificationRepository
}

func NewNotificationUsecase(repo repository.NotificationRepository) *Notifications {
	return &Notifications{repo: repo}
}

func (u *Notifications) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	out, err := u.repo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Notifications) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if id == uuid.Nil {
		return ErrNotFound
	}

	if err := u.repo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Notifications) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.repo.MarkAllRead(ctx, userID); err != nil {
		return ErrInternal
	}
	return nil
}
