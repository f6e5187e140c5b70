package usecase

import (
	"context"
	"time"

	"campus-link/internal/domain/matching"
	"campus-link/internal/domain/notification"
	"campus-link/internal/domain/profile"
	"campus-link/internal/domain/project"

	"github.com/google/uuid"
)

type mockProfileRepo struct {
	findByUserID  func(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	listAllExcept func(ctx context.Context, userID uuid.UUID) ([]profile.Profile, error)
	list          func(ctx context.Context, limit, offset int) ([]profile.Profile, error)
	upsert        func(ctx context.Context, p profile.Profile) (profile.Profile, error)
}

func (m *mockProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	return m.findByUserID(ctx, userID)
}

func (m *mockProfileRepo) ListAllExcept(ctx context.Context, userID uuid.UUID) ([]profile.Profile, error) {
	return m.listAllExcept(ctx, userID)
}

func (m *mockProfileRepo) List(ctx context.Context, limit, offset int) ([]profile.Profile, error) {
	return m.list(ctx, limit, offset)
}

func (m *mockProfileRepo) Upsert(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	return m.upsert(ctx, p)
}

type mockProjectRepo struct {
	findByID   func(ctx context.Context, id uuid.UUID) (project.Project, error)
	listRecent func(ctx context.Context, limit, offset int) ([]project.Project, error)
	create     func(ctx context.Context, p project.Project) (project.Project, error)
	upvote     func(ctx context.Context, projectID, userID uuid.UUID) (int, error)
}

func (m *mockProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (project.Project, error) {
	return m.findByID(ctx, id)
}

func (m *mockProjectRepo) ListRecent(ctx context.Context, limit, offset int) ([]project.Project, error) {
	return m.listRecent(ctx, limit, offset)
}

func (m *mockProjectRepo) Create(ctx context.Context, p project.Project) (project.Project, error) {
	return m.create(ctx, p)
}

func (m *mockProjectRepo) Upvote(ctx context.Context, projectID, userID uuid.UUID) (int, error) {
	return m.upvote(ctx, projectID, userID)
}

type mockCommentRepo struct {
	create          func(ctx context.Context, c project.Comment) (project.Comment, error)
	listByProjectID func(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]project.Comment, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, c project.Comment) (project.Comment, error) {
	return m.create(ctx, c)
}

func (m *mockCommentRepo) ListByProjectID(ctx context.Context, projectID uuid.UUID, limit, offset int) ([]project.Comment, error) {
	return m.listByProjectID(ctx, projectID, limit, offset)
}

type mockNotificationRepo struct {
	created []notification.Notification
	fail    error
}

func (m *mockNotificationRepo) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	if m.fail != nil {
		return notification.Notification{}, m.fail
	}
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	m.created = append(m.created, n)
	return n, nil
}

func (m *mockNotificationRepo) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, error) {
	out := make([]notification.Notification, 0)
	for _, n := range m.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}

func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return nil
}

type mockReranker struct {
	refine func(ctx context.Context, proj matching.Project, candidates []matching.ScoredCandidate) ([]matching.ScoredCandidate, bool)
	calls  int
}

func (m *mockReranker) Refine(ctx context.Context, proj matching.Project, candidates []matching.ScoredCandidate) ([]matching.ScoredCandidate, bool) {
	m.calls++
	return m.refine(ctx, proj, candidates)
}

type mockCache struct {
	getJSON func(ctx context.Context, key string, out any) (bool, error)
	setJSON func(ctx context.Context, key string, value any, ttl time.Duration) error
	deleted []string
}

func (m *mockCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if m.getJSON != nil {
		return m.getJSON(ctx, key, out)
	}
	return false, nil
}

func (m *mockCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if m.setJSON != nil {
		return m.setJSON(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) DeleteByPattern(ctx context.Context, pattern string) error {
	m.deleted = append(m.deleted, pattern)
	return nil
}
