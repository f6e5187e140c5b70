package handler

import (
	"errors"

	"campus-link/internal/delivery/http/dto"
	"campus-link/internal/delivery/http/middleware"
	"campus-link/internal/domain/project"
	"campus-link/internal/pkg/response"
	"campus-link/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	uc usecase.ProjectUsecase
}

type createProjectRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	RequiredSkills []string `json:"required_skills"`
}

type addCommentRequest struct {
	Body string `json:"body"`
}

func NewProjectHandler(uc usecase.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:project_id", h.Get)
	r.Post("/:project_id/upvote", h.Upvote)
	r.Post("/:project_id/comments", h.AddComment)
	r.Get("/:project_id/comments", h.ListComments)
}

func (h *ProjectHandler) Create(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createProjectRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.uc.Create(c.Context(), userID, usecase.CreateProjectInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Tags:           req.Tags,
		RequiredSkills: req.RequiredSkills,
	})
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, toProjectResponse(created))
}

func (h *ProjectHandler) List(c fiber.Ctx) error {
	if _, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)

	projects, err := h.uc.ListRecent(c.Context(), limit, offset)
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProjectHandler) Get(c fiber.Ctx) error {
	if _, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Get(c.Context(), projectID)
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toProjectResponse(p))
}

func (h *ProjectHandler) Upvote(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	upvotes, err := h.uc.Upvote(c.Context(), projectID, userID)
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.UpvoteResponse{
		ProjectID: projectID,
		Upvotes:   upvotes,
	})
}

func (h *ProjectHandler) AddComment(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req addCommentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.uc.AddComment(c.Context(), projectID, userID, req.Body)
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageOK, toCommentResponse(created))
}

func (h *ProjectHandler) ListComments(c fiber.Ctx) error {
	if _, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)

	comments, err := h.uc.ListComments(c.Context(), projectID, limit, offset)
	if err != nil {
		return mapProjectUsecaseError(err)
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		out = append(out, toCommentResponse(cm))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func toProjectResponse(p project.Project) dto.ProjectResponse {
	return dto.ProjectResponse{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category,
		Tags:           p.Tags,
		RequiredSkills: p.RequiredSkills,
		Upvotes:        p.Upvotes,
		CreatedAt:      p.CreatedAt,
	}
}

func toCommentResponse(cm project.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:        cm.ID,
		ProjectID: cm.ProjectID,
		AuthorID:  cm.AuthorID,
		Body:      cm.Body,
		CreatedAt: cm.CreatedAt,
	}
}

func mapProjectUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Project not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyUpvoted):
		return middleware.NewAppError(fiber.StatusConflict, "Already upvoted", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
