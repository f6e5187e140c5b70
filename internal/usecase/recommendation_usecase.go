package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-link/internal/domain/matching"
	"campus-link/internal/repository"

	"github.com/google/uuid"
)

// RecommendationCache is satisfied by the redis cache; a nil cache bypasses
// caching entirely.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type RecommendedProject struct {
	ProjectID uuid.UUID `json:"project_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Upvotes   int       `json:"upvotes"`
	Score     int       `json:"score"`
}

type RecommendationUsecase interface {
	GetRecommendedProjects(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedProject, error)
}

const (
	maxRecommendationLimit = 20
	recommendationPoolSize = 200
	recommendationCacheTTL = 5 * time.Minute
)

type Recommendation struct {
	profiles repository.ProfileRepository
	projects repository.ProjectRepository
	cache    RecommendationCache
}

func NewRecommendationUsecase(profiles repository.ProfileRepository, projects repository.ProjectRepository, cache RecommendationCache) *Recommendation {
	return &Recommendation{profiles: profiles, projects: projects, cache: cache}
}

func (u *Recommendation) GetRecommendedProjects(ctx context.Context, userID uuid.UUID, limit int) ([]RecommendedProject, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if limit <= 0 {
		limit = matching.DefaultRecommendations
	}
	if limit > maxRecommendationLimit {
		limit = maxRecommendationLimit
	}

	key := recommendationCacheKey(userID, limit)
	if u.cache != nil {
		var cached []RecommendedProject
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	prof, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	pool, err := u.projects.ListRecent(ctx, recommendationPoolSize, 0)
	if err != nil {
		return nil, ErrInternal
	}

	// Own projects are never suggested back to their owner.
	candidates := make([]matching.Project, 0, len(pool))
	for _, p := range pool {
		if p.OwnerID == userID {
			continue
		}
		candidates = append(candidates, toEngineProject(p))
	}

	ranked := matching.RankProjects(toEngineProfile(prof), candidates, limit)

	out := make([]RecommendedProject, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, RecommendedProject{
			ProjectID: r.Project.ID,
			Title:     r.Project.Title,
			Category:  r.Project.Category,
			Tags:      r.Project.Tags,
			Upvotes:   r.Project.Upvotes,
			Score:     r.Score,
		})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, recommendationCacheTTL)
	}

	return out, nil
}

func recommendationCacheKey(userID uuid.UUID, limit int) string {
	return fmt.Sprintf("recommend:%s:%d", userID, limit)
}

// InvalidateRecommendations drops every cached recommendation list. Called
// after writes that change scores (new projects, upvotes).
func InvalidateRecommendations(ctx context.Context, cache RecommendationCache) {
	if cache == nil {
		return
	}
	_ = cache.DeleteByPattern(ctx, "recommend:*")
}
