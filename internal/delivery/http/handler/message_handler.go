package handler

import (
	"errors"

	"campus-link/internal/delivery/http/dto"
	"campus-link/internal/delivery/http/middleware"
	"campus-link/internal/domain/message"
	"campus-link/internal/pkg/response"
	"campus-link/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MessageHandler struct {
	uc usecase.MessageUsecase
}

type sendMessageRequest struct {
	RecipientID uuid.UUID `json:"recipient_id"`
	Body        string    `json:"body"`
}

func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

func (h *MessageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Send)
	r.Get("/:user_id", h.ListConversation)
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	sent, err := h.uc.Send(c.Context(), userID, req.RecipientID, req.Body)
	if err != nil {
		return mapMessageUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, toMessageResponse(sent))
}

func (h *MessageHandler) ListConversation(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	peerID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	msgs, err := h.uc.ListConversation(c.Context(), userID, peerID, limit, offset)
	if err != nil {
		return mapMessageUsecaseError(err)
	}

	out := make([]dto.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func toMessageResponse(m message.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt,
	}
}

func mapMessageUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
