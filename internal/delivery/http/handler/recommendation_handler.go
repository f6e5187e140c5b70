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

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := queryInt(c, "limit", 0)

	recs, err := h.uc.GetRecommendedProjects(c.Context(), userID, limit)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	out := make([]dto.RecommendedProjectResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, dto.RecommendedProjectResponse{
			ProjectID: r.ProjectID,
			Title:     r.Title,
			Category:  r.Category,
			Tags:      r.Tags,
			Upvotes:   r.Upvotes,
			Score:     r.Score,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapRecommendationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
