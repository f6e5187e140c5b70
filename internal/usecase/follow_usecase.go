package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"campus-link/internal/domain/notification"
	"campus-link/internal/repository"
	"campus-link/internal/ws"

	"github.com/google/uuid"
)

type FollowUsecase interface {
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type Follows struct {
	follows       repository.FollowRepository
	profiles      repository.ProfileRepository
	notifications repository.NotificationRepository
	logger        *log.Logger
}

func NewFollowUsecase(
	follows repository.FollowRepository,
	profiles repository.ProfileRepository,
	notifications repository.NotificationRepository,
	logger *log.Logger,
) *Follows {
	return &Follows{follows: follows, profiles: profiles, notifications: notifications, logger: logger}
}

func (u *Follows) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if followerID == uuid.Nil {
		return ErrUnauthorized
	}
	if followeeID == uuid.Nil || followeeID == followerID {
		return ErrInvalidInput
	}

	// The followee must exist as a profile before the edge is stored.
	if _, err := u.profiles.FindByUserID(ctx, followeeID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ErrProfileNotFound
		}
		return ErrInternal
	}

	if err := u.follows.Follow(ctx, followerID, followeeID); err != nil {
		return ErrInternal
	}

	actorName := u.actorName(ctx, followerID)
	if u.notifications != nil {
		if _, err := u.notifications.Create(ctx, notification.Notification{
			UserID:  followeeID,
			ActorID: followerID,
			Type:    notification.TypeFollow,
			Body:    fmt.Sprintf("%s started following you", actorName),
		}); err != nil && u.logger != nil {
			u.logger.Printf("notification store failed | user=%s type=%s err=%v", followeeID, notification.TypeFollow, err)
		}
	}
	ws.NotifyUser(followeeID, notification.TypeFollow, followerID, fmt.Sprintf("%s started following you", actorName))

	return nil
}

func (u *Follows) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if followerID == uuid.Nil {
		return ErrUnauthorized
	}
	if followeeID == uuid.Nil {
		return ErrInvalidInput
	}

	if err := u.follows.Unfollow(ctx, followerID, followeeID); err != nil {
		if errors.Is(err, repository.ErrNotFollowing) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Follows) ListFollowing(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	out, err := u.follows.ListFollowing(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Follows) ListFollowers(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	out, err := u.follows.ListFollowers(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Follows) actorName(ctx context.Context, userID uuid.UUID) string {
	p, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil || p.Name == "" {
		return "Someone"
	}
	return p.Name
}
