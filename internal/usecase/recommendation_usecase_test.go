package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-link/internal/domain/profile"
	"campus-link/internal/domain/project"
	"campus-link/internal/repository"

	"github.com/google/uuid"
)

func TestGetRecommendedProjectsUnauthorized(t *testing.T) {
	uc := NewRecommendationUsecase(&mockProfileRepo{}, &mockProjectRepo{}, nil)

	if _, err := uc.GetRecommendedProjects(context.Background(), uuid.Nil, 5); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGetRecommendedProjectsProfileNotFound(t *testing.T) {
	profiles := &mockProfileRepo{
		findByUserID: func(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
			return profile.Profile{}, repository.ErrProfileNotFound
		},
	}
	uc := NewRecommendationUsecase(profiles, &mockProjectRepo{}, nil)

	if _, err := uc.GetRecommendedProjects(context.Background(), uuid.New(), 5); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestGetRecommendedProjectsExcludesOwnAndRanks(t *testing.T) {
	userID := uuid.New()
	prof := profile.Profile{
		UserID:     userID,
		TechSkills: []string{"Go", "Postgres"},
		Interests:  []string{"Backend"},
	}

	own := project.Project{ID: uuid.New(), OwnerID: userID, Title: "Mine", RequiredSkills: []string{"Go", "Postgres"}, Tags: []string{"Backend"}, Upvotes: 99}
	perfect := project.Project{ID: uuid.New(), OwnerID: uuid.New(), Title: "Perfect", RequiredSkills: []string{"Go", "Postgres"}, Tags: []string{"Backend"}, Upvotes: 3}
	partial := project.Project{ID: uuid.New(), OwnerID: uuid.New(), Title: "Partial", RequiredSkills: []string{"Go", "Rust"}, Tags: []string{"Systems"}, Upvotes: 0}

	profiles := &mockProfileRepo{
		findByUserID: func(ctx context.Context, id uuid.UUID) (profile.Profile, error) { return prof, nil },
	}
	projects := &mockProjectRepo{
		listRecent: func(ctx context.Context, limit, offset int) ([]project.Project, error) {
			return []project.Project{own, partial, perfect}, nil
		},
	}
	uc := NewRecommendationUsecase(profiles, projects, nil)

	got, err := uc.GetRecommendedProjects(context.Background(), userID, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
	if got[0].ProjectID != perfect.ID {
		t.Fatalf("best match should rank first, got %s", got[0].Title)
	}
	// 3*100 + 2*100 + min(3,10)
	if got[0].Score != 503 {
		t.Fatalf("perfect match score = %d, want 503", got[0].Score)
	}
	for _, r := range got {
		if r.ProjectID == own.ID {
			t.Fatalf("own project must not be recommended")
		}
	}
}

func TestGetRecommendedProjectsCacheHit(t *testing.T) {
	userID := uuid.New()
	cached := []RecommendedProject{{ProjectID: uuid.New(), Title: "Cached", Score: 42}}

	cache := &mockCache{
		getJSON: func(ctx context.Context, key string, out any) (bool, error) {
			*(out.(*[]RecommendedProject)) = cached
			return true, nil
		},
	}
	profiles := &mockProfileRepo{
		findByUserID: func(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
			t.Fatalf("profile repo should not be hit on cache hit")
			return profile.Profile{}, nil
		},
	}
	uc := NewRecommendationUsecase(profiles, &mockProjectRepo{}, cache)

	got, err := uc.GetRecommendedProjects(context.Background(), userID, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Cached" {
		t.Fatalf("cached result not returned, got %+v", got)
	}
}

func TestGetRecommendedProjectsCacheMissStores(t *testing.T) {
	userID := uuid.New()
	var storedKey string
	var storedTTL time.Duration

	cache := &mockCache{
		setJSON: func(ctx context.Context, key string, value any, ttl time.Duration) error {
			storedKey = key
			storedTTL = ttl
			return nil
		},
	}
	profiles := &mockProfileRepo{
		findByUserID: func(ctx context.Context, id uuid.UUID) (profile.Profile, error) {
			return profile.Profile{UserID: userID, TechSkills: []string{"Go"}}, nil
		},
	}
	projects := &mockProjectRepo{
		listRecent: func(ctx context.Context, limit, offset int) ([]project.Project, error) {
			return []project.Project{{ID: uuid.New(), OwnerID: uuid.New(), RequiredSkills: []string{"Go"}}}, nil
		},
	}
	uc := NewRecommendationUsecase(profiles, projects, cache)

	if _, err := uc.GetRecommendedProjects(context.Background(), userID, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if storedKey != recommendationCacheKey(userID, 5) {
		t.Fatalf("stored under key %q", storedKey)
	}
	if storedTTL != recommendationCacheTTL {
		t.Fatalf("stored with ttl %v", storedTTL)
	}
}

func TestInvalidateRecommendations(t *testing.T) {
	cache := &mockCache{}

	InvalidateRecommendations(context.Background(), cache)
	if len(cache.deleted) != 1 || cache.deleted[0] != "recommend:*" {
		t.Fatalf("expected recommend:* delete, got %v", cache.deleted)
	}

	// Nil cache is a no-op, not a panic.
	InvalidateRecommendations(context.Background(), nil)
}
