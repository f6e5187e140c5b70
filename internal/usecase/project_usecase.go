package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"campus-link/internal/domain/matching"
	"campus-link/internal/domain/notification"
	"campus-link/internal/domain/project"
	"campus-link/internal/repository"
	"campus-link/internal/ws"

	"github.com/google/uuid"
)

type CreateProjectInput struct {
	Title          string
	Description    string
	Category       string
	Tags           []string
	RequiredSkills []string
}

type ProjectUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateProjectInput) (project.Project, error)
	Get(ctx context.Context, id uuid.UUID) (project.Project, error)
	ListRecent(ctx context.Context, limit, offset int) ([]project.Project, error)
	Upvote(ctx context.Context, projectID, userID uuid.UUID) (int, error)
	AddComment(ctx context.Context, projectID, authorID uuid.UUID, body string) (project.Comment, error)
	ListComments(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]project.Comment, error)
}

type Projects struct {
	projects      repository.ProjectRepository
	profiles      repository.ProfileRepository
	comments      repository.CommentRepository
	notifications repository.NotificationRepository
	cache         RecommendationCache
	logger        *log.Logger
}

func NewProjectUsecase(
	projects repository.ProjectRepository,
	profiles repository.ProfileRepository,
	comments repository.CommentRepository,
	notifications repository.NotificationRepository,
	cache RecommendationCache,
	logger *log.Logger,
) *Projects {
	return &Projects{
		projects:      projects,
		profiles:      profiles,
		comments:      comments,
		notifications: notifications,
		cache:         cache,
		logger:        logger,
	}
}

func (u *Projects) Create(ctx context.Context, ownerID uuid.UUID, in CreateProjectInput) (project.Project, error) {
	if ownerID == uuid.Nil {
		return project.Project{}, ErrUnauthorized
	}
	if strings.TrimSpace(in.Title) == "" {
		return project.Project{}, ErrInvalidInput
	}

	created, err := u.projects.Create(ctx, project.Project{
		OwnerID:        ownerID,
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		Category:       strings.TrimSpace(in.Category),
		Tags:           cleanList(in.Tags),
		RequiredSkills: cleanList(in.RequiredSkills),
	})
	if err != nil {
		return project.Project{}, ErrInternal
	}

	InvalidateRecommendations(ctx, u.cache)
	u.alertCandidates(ctx, created)
	return created, nil
}

// alertCandidates tells users who rank well against a freshly created project
// that it is looking for teammates. Best-effort like every notification.
func (u *Projects) alertCandidates(ctx context.Context, proj project.Project) {
	if u.profiles == nil {
		return
	}

	pool, err := u.profiles.ListAllExcept(ctx, proj.OwnerID)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("candidate alert skipped | project=%s err=%v", proj.ID, err)
		}
		return
	}

	ranked := matching.RankCandidates(toEngineProject(proj), toEngineProfiles(pool), false)
	for _, c := range ranked {
		u.notify(ctx, c.Profile.UserID, proj.OwnerID, notification.TypeCandidate,
			fmt.Sprintf("New project %q is looking for teammates with your skills", proj.Title))
	}
}

func (u *Projects) Get(ctx context.Context, id uuid.UUID) (project.Project, error) {
	if id == uuid.Nil {
		return project.Project{}, ErrProjectNotFound
	}

	p, err := u.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, ErrInternal
	}
	return p, nil
}

func (u *Projects) ListRecent(ctx context.Context, limit, offset int) ([]project.Project, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	out, err := u.projects.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Projects) Upvote(ctx context.Context, projectID, userID uuid.UUID) (int, error) {
	if userID == uuid.Nil {
		return 0, ErrUnauthorized
	}
	if projectID == uuid.Nil {
		return 0, ErrProjectNotFound
	}

	proj, err := u.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return 0, ErrProjectNotFound
		}
		return 0, ErrInternal
	}

	upvotes, err := u.projects.Upvote(ctx, projectID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyUpvoted):
			return 0, ErrAlreadyUpvoted
		case errors.Is(err, repository.ErrProjectNotFound):
			return 0, ErrProjectNotFound
		default:
			return 0, ErrInternal
		}
	}

	InvalidateRecommendations(ctx, u.cache)
	u.notify(ctx, proj.OwnerID, userID, notification.TypeUpvote,
		fmt.Sprintf("Your project %q received an upvote", proj.Title))

	return upvotes, nil
}

func (u *Projects) AddComment(ctx context.Context, projectID, authorID uuid.UUID, body string) (project.Comment, error) {
	if authorID == uuid.Nil {
		return project.Comment{}, ErrUnauthorized
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return project.Comment{}, ErrInvalidInput
	}

	proj, err := u.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return project.Comment{}, ErrProjectNotFound
		}
		return project.Comment{}, ErrInternal
	}

	created, err := u.comments.Create(ctx, project.Comment{
		ProjectID: projectID,
		AuthorID:  authorID,
		Body:      body,
	})
	if err != nil {
		return project.Comment{}, ErrInternal
	}

	u.notify(ctx, proj.OwnerID, authorID, notification.TypeComment,
		fmt.Sprintf("New comment on %q", proj.Title))

	return created, nil
}

func (u *Projects) ListComments(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]project.Comment, error) {
	if projectID == uuid.Nil {
		return nil, ErrProjectNotFound
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	out, err := u.comments.ListByProjectID(ctx, projectID, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// notify stores a notification row and pushes it over the hub. Best-effort:
// failures are logged and never fail the triggering request. Self-actions
// are skipped.
func (u *Projects) notify(ctx context.Context, userID, actorID uuid.UUID, evtType, body string) {
	if userID == uuid.Nil || userID == actorID {
		return
	}
	if u.notifications != nil {
		if _, err := u.notifications.Create(ctx, notification.Notification{
			UserID:  userID,
			ActorID: actorID,
			Type:    evtType,
			Body:    body,
		}); err != nil && u.logger != nil {
			u.logger.Printf("notification store failed | user=%s type=%s err=%v", userID, evtType, err)
		}
	}
	ws.NotifyUser(userID, evtType, actorID, body)
}
