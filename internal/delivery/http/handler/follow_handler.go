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

type FollowHandler struct {
	uc usecase.FollowUsecase
}

func NewFollowHandler(uc usecase.FollowUsecase) *FollowHandler {
	return &FollowHandler{uc: uc}
}

func (h *FollowHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:user_id/follow", h.Follow)
	r.Delete("/:user_id/follow", h.Unfollow)
	r.Get("/me/following", h.ListFollowing)
	r.Get("/me/followers", h.ListFollowers)
}

func (h *FollowHandler) Follow(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	targetID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Follow(c.Context(), userID, targetID); err != nil {
		return mapFollowUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *FollowHandler) Unfollow(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	targetID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Unfollow(c.Context(), userID, targetID); err != nil {
		return mapFollowUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *FollowHandler) ListFollowing(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	ids, err := h.uc.ListFollowing(c.Context(), userID)
	if err != nil {
		return mapFollowUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FollowListResponse{UserIDs: ids, Count: len(ids)})
}

func (h *FollowHandler) ListFollowers(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	ids, err := h.uc.ListFollowers(c.Context(), userID)
	if err != nil {
		return mapFollowUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FollowListResponse{UserIDs: ids, Count: len(ids)})
}

func mapFollowUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not following", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
