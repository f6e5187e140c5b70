package handler

import (
	"errors"
	"strconv"

	"campus-link/internal/delivery/http/dto"
	"campus-link/internal/delivery/http/middleware"
	"campus-link/internal/pkg/response"
	"campus-link/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:project_id/candidates", h.GetCandidates)
}

// GetCandidates serves the ranked teammate list for a project. The ai query
// flag requests the re-ranking stage; when it cannot enrich, the response
// carries ai_refined=false and the deterministic ranking.
func (h *MatchHandler) GetCandidates(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	useAI, _ := strconv.ParseBool(c.Query("ai"))

	res, err := h.uc.FindCandidates(c.Context(), userID, projectID, useAI)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := dto.CandidateListResponse{
		Candidates: make([]dto.CandidateResponse, 0, len(res.Items)),
		AIRefined:  res.AIRefined,
	}
	for _, item := range res.Items {
		out.Candidates = append(out.Candidates, dto.CandidateResponse{
			UserID:        item.UserID,
			Name:          item.Name,
			PreferredRole: item.PreferredRole,
			TechSkills:    item.TechSkills,
			MatchScore:    item.MatchScore,
			Reason:        item.Reason,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMatchUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
