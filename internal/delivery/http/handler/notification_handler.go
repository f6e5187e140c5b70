package handler

import (
	"errors"

	"campus-link/internal/delivery/http/dto"
	"campus-link/internal/delivery/http/middleware"
	"campus-link/internal/pkg/response"
	"campus-link/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	uc usecase.NotificationUsecase
}

func NewNotificationHandler(uc usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

func (h *NotificationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/read-all", h.MarkAllRead)
	r.Post("/:notification_id/read", h.MarkRead)
}

func (h *NotificationHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	notifs, err := h.uc.List(c.Context(), userID, limit, offset)
	if err != nil {
		return mapNotificationUsecaseError(err)
	}

	out := make([]dto.NotificationResponse, 0, len(notifs))
	for _, n := range notifs {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			ActorID:   n.ActorID,
			Type:      n.Type,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	notifID, err := uuid.Parse(c.Params("notification_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.MarkRead(c.Context(), notifID, userID); err != nil {
		return mapNotificationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *NotificationHandler) MarkAllRead(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.uc.MarkAllRead(c.Context(), userID); err != nil {
		return mapNotificationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapNotificationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Notification not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
