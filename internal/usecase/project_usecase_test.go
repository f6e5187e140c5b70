package usecase

import (
	"context"
	"errors"
	"testing"

	"campus-link/internal/domain/notification"
	"campus-link/internal/domain/profile"
	"campus-link/internal/domain/project"
	"campus-link/internal/repository"

	"github.com/google/uuid"
)

func TestCreateProjectValidation(t *testing.T) {
	uc := NewProjectUsecase(&mockProjectRepo{}, nil, &mockCommentRepo{}, &mockNotificationRepo{}, nil, nil)

	if _, err := uc.Create(context.Background(), uuid.Nil, CreateProjectInput{Title: "x"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := uc.Create(context.Background(), uuid.New(), CreateProjectInput{Title: "   "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}
}

func TestCreateProjectInvalidatesRecommendations(t *testing.T) {
	ownerID := uuid.New()
	projects := &mockProjectRepo{
		create: func(ctx context.Context, p project.Project) (project.Project, error) {
			p.ID = uuid.New()
			return p, nil
		},
	}
	cache := &mockCache{}
	uc := NewProjectUsecase(projects, nil, &mockCommentRepo{}, &mockNotificationRepo{}, cache, nil)

	created, err := uc.Create(context.Background(), ownerID, CreateProjectInput{
		Title:          "  Campus Radio  ",
		Tags:           []string{"Audio", " ", ""},
		RequiredSkills: []string{"Go"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Title != "Campus Radio" {
		t.Fatalf("title not trimmed: %q", created.Title)
	}
	if len(created.Tags) != 1 {
		t.Fatalf("blank tags not dropped: %v", created.Tags)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != "recommend:*" {
		t.Fatalf("recommendation cache not invalidated: %v", cache.deleted)
	}
}

func TestCreateProjectAlertsMatchingCandidates(t *testing.T) {
	ownerID := uuid.New()
	strong := strongProfile("Alice")
	weak := profile.Profile{UserID: uuid.New(), Name: "Empty"}

	projects := &mockProjectRepo{
		create: func(ctx context.Context, p project.Project) (project.Project, error) {
			p.ID = uuid.New()
			return p, nil
		},
	}
	profiles := &mockProfileRepo{
		listAllExcept: func(ctx context.Context, userID uuid.UUID) ([]profile.Profile, error) {
			if userID != ownerID {
				t.Fatalf("candidate pool must exclude the owner, got %s", userID)
			}
			return []profile.Profile{strong, weak}, nil
		},
	}
	notifications := &mockNotificationRepo{}
	uc := NewProjectUsecase(projects, profiles, &mockCommentRepo{}, notifications, nil, nil)

	if _, err := uc.Create(context.Background(), ownerID, CreateProjectInput{
		Title:          "Campus Events App",
		Category:       "Web",
		Tags:           []string{"Web"},
		RequiredSkills: []string{"React", "Node.js"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(notifications.created) != 1 {
		t.Fatalf("expected one candidate alert, got %d", len(notifications.created))
	}
	n := notifications.created[0]
	if n.UserID != strong.UserID || n.ActorID != ownerID || n.Type != notification.TypeCandidate {
		t.Fatalf("unexpected candidate alert: %+v", n)
	}
}

func TestUpvoteNotifiesOwner(t *testing.T) {
	ownerID := uuid.New()
	voterID := uuid.New()
	proj := project.Project{ID: uuid.New(), OwnerID: ownerID, Title: "Campus Radio"}

	projects := &mockProjectRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (project.Project, error) { return proj, nil },
		upvote: func(ctx context.Context, projectID, userID uuid.UUID) (int, error) {
			return 4, nil
		},
	}
	notifications := &mockNotificationRepo{}
	cache := &mockCache{}
	uc := NewProjectUsecase(projects, nil, &mockCommentRepo{}, notifications, cache, nil)

	upvotes, err := uc.Upvote(context.Background(), proj.ID, voterID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upvotes != 4 {
		t.Fatalf("upvotes = %d, want 4", upvotes)
	}
	if len(notifications.created) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifications.created))
	}
	n := notifications.created[0]
	if n.UserID != ownerID || n.ActorID != voterID || n.Type != notification.TypeUpvote {
		t.Fatalf("unexpected notification: %+v", n)
	}
	if len(cache.deleted) != 1 {
		t.Fatalf("recommendation cache not invalidated")
	}
}

func TestUpvoteAlreadyUpvoted(t *testing.T) {
	proj := project.Project{ID: uuid.New(), OwnerID: uuid.New()}
	projects := &mockProjectRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (project.Project, error) { return proj, nil },
		upvote: func(ctx context.Context, projectID, userID uuid.UUID) (int, error) {
			return 0, repository.ErrAlreadyUpvoted
		},
	}
	notifications := &mockNotificationRepo{}
	uc := NewProjectUsecase(projects, nil, &mockCommentRepo{}, notifications, nil, nil)

	if _, err := uc.Upvote(context.Background(), proj.ID, uuid.New()); !errors.Is(err, ErrAlreadyUpvoted) {
		t.Fatalf("expected ErrAlreadyUpvoted, got %v", err)
	}
	if len(notifications.created) != 0 {
		t.Fatalf("no notification expected on duplicate upvote")
	}
}

func TestAddCommentSkipsSelfNotification(t *testing.T) {
	ownerID := uuid.New()
	proj := project.Project{ID: uuid.New(), OwnerID: ownerID, Title: "Campus Radio"}

	projects := &mockProjectRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (project.Project, error) { return proj, nil },
	}
	comments := &mockCommentRepo{
		create: func(ctx context.Context, c project.Comment) (project.Comment, error) {
			c.ID = uuid.New()
			return c, nil
		},
	}
	notifications := &mockNotificationRepo{}
	uc := NewProjectUsecase(projects, nil, comments, notifications, nil, nil)

	// Owner commenting on their own project gets no notification.
	if _, err := uc.AddComment(context.Background(), proj.ID, ownerID, "looks good"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifications.created) != 0 {
		t.Fatalf("self-comment should not notify")
	}

	if _, err := uc.AddComment(context.Background(), proj.ID, uuid.New(), "can I join?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifications.created) != 1 {
		t.Fatalf("expected one notification after another user commented")
	}
}

func TestAddCommentNotificationFailureIsNonFatal(t *testing.T) {
	proj := project.Project{ID: uuid.New(), OwnerID: uuid.New(), Title: "Campus Radio"}

	projects := &mockProjectRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (project.Project, error) { return proj, nil },
	}
	comments := &mockCommentRepo{
		create: func(ctx context.Context, c project.Comment) (project.Comment, error) {
			c.ID = uuid.New()
			return c, nil
		},
	}
	notifications := &mockNotificationRepo{fail: errors.New("db down")}
	uc := NewProjectUsecase(projects, nil, comments, notifications, nil, nil)

	if _, err := uc.AddComment(context.Background(), proj.ID, uuid.New(), "hi"); err != nil {
		t.Fatalf("comment should succeed even when the notification store fails: %v", err)
	}
}
