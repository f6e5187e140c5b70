package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"campus-link/internal/domain/message"
	"campus-link/internal/domain/notification"
	"campus-link/internal/repository"
	"campus-link/internal/ws"

	"github.com/google/uuid"
)

const maxMessageBody = 2000

type MessageUsecase interface {
	Send(ctx context.Context, senderID, recipientID uuid.UUID, body string) (message.Message, error)
	ListConversation(ctx context.Context, userID, peerID uuid.UUID, limit, offset int) ([]message.Message, error)
}

type Messages struct {
	messages      repository.MessageRepository
	profiles      repository.ProfileRepository
	notifications repository.NotificationRepository
	logger        *log.Logger
}

func NewMessageUsecase(
	messages repository.MessageRepository,
	profiles repository.ProfileRepository,
	notifications repository.NotificationRepository,
	logger *log.Logger,
) *Messages {
	return &Messages{messages: messages, profiles: profiles, notifications: notifications, logger: logger}
}

func (u *Messages) Send(ctx context.Context, senderID, recipientID uuid.UUID, body string) (message.Message, error) {
	if senderID == uuid.Nil {
		return message.Message{}, ErrUnauthorized
	}
	body = strings.TrimSpace(body)
	if recipientID == uuid.Nil || recipientID == senderID || body == "" || len(body) > maxMessageBody {
		return message.Message{}, ErrInvalidInput
	}

	if _, err := u.profiles.FindByUserID(ctx, recipientID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return message.Message{}, ErrProfileNotFound
		}
		return message.Message{}, ErrInternal
	}

	created, err := u.messages.Create(ctx, message.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	})
	if err != nil {
		return message.Message{}, ErrInternal
	}

	if u.notifications != nil {
		if _, err := u.notifications.Create(ctx, notification.Notification{
			UserID:  recipientID,
			ActorID: senderID,
			Type:    notification.TypeMessage,
			Body:    preview(body),
		}); err != nil && u.logger != nil {
			u.logger.Printf("notification store failed | user=%s type=%s err=%v", recipientID, notification.TypeMessage, err)
		}
	}
	ws.NotifyUser(recipientID, notification.TypeMessage, senderID, preview(body))

	return created, nil
}

func (u *Messages) ListConversation(ctx context.Context, userID, peerID uuid.UUID, limit, offset int) ([]message.Message, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if peerID == uuid.Nil {
		return nil, ErrInvalidInput
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

	out, err := u.messages.ListConversation(ctx, userID, peerID, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func preview(body string) string {
	const max = 80
	if len(body) <= max {
		return body
	}
	return body[:max] + "..."
}
