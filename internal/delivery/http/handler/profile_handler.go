package handler

import (
	"errors"
	"strconv"

	"campus-link/internal/delivery/http/dto"
	"campus-link/internal/delivery/http/middleware"
	"campus-link/internal/domain/profile"
	"campus-link/internal/pkg/response"
	"campus-link/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type updateProfileRequest struct {
	Name             *string  `json:"name"`
	TechSkills       []string `json:"tech_skills"`
	NonTechSkills    []string `json:"non_tech_skills"`
	Interests        []string `json:"interests"`
	PreferredRole    *string  `json:"preferred_role"`
	ExperienceLevel  *string  `json:"experience_level"`
	Availability     *string  `json:"availability"`
	PersonalityStyle *string  `json:"personality_style"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me", h.UpdateMe)
	r.Get("/", h.List)
	r.Get("/:user_id", h.GetByID)
}

func (h *ProfileHandler) GetMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	prof, err := h.uc.GetByUserID(c.Context(), userID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toProfileResponse(prof, true))
}

func (h *ProfileHandler) UpdateMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	email, _ := c.Locals(middleware.CtxEmailKey).(string)

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	prof, err := h.uc.Update(c.Context(), userID, email, usecase.UpdateProfileInput{
		Name:             req.Name,
		TechSkills:       req.TechSkills,
		NonTechSkills:    req.NonTechSkills,
		Interests:        req.Interests,
		PreferredRole:    req.PreferredRole,
		ExperienceLevel:  req.ExperienceLevel,
		Availability:     req.Availability,
		PersonalityStyle: req.PersonalityStyle,
	})
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toProfileResponse(prof, true))
}

func (h *ProfileHandler) List(c fiber.Ctx) error {
	if _, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	profs, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	out := make([]dto.ProfileResponse, 0, len(profs))
	for _, p := range profs {
		out = append(out, toProfileResponse(p, false))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProfileHandler) GetByID(c fiber.Ctx) error {
	if _, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	targetID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	prof, err := h.uc.GetByUserID(c.Context(), targetID)
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toProfileResponse(prof, false))
}

func toProfileResponse(p profile.Profile, includeEmail bool) dto.ProfileResponse {
	out := dto.ProfileResponse{
		UserID:           p.UserID,
		Name:             p.Name,
		TechSkills:       p.TechSkills,
		NonTechSkills:    p.NonTechSkills,
		Interests:        p.Interests,
		PreferredRole:    p.PreferredRole,
		ExperienceLevel:  p.ExperienceLevel,
		Availability:     p.Availability,
		PersonalityStyle: p.PersonalityStyle,
		UpdatedAt:        p.UpdatedAt,
	}
	if includeEmail {
		out.Email = p.Email
	}
	return out
}

func mapProfileUsecaseError(err error) error {
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

func queryInt(c fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
