package usecase

import (
	"context"
	"errors"

	"campus-link/internal/domain/matching"
	"campus-link/internal/repository"

	"github.com/google/uuid"
)

// Reranker is the optional AI enrichment stage. A nil Reranker means the
// deterministic ranking is served as-is.
type Reranker interface {
	Refine(ctx context.Context, proj matching.Project, candidates []matching.ScoredCandidate) ([]matching.ScoredCandidate, bool)
}

type CandidateItem struct {
	UserID        uuid.UUID
	Name          string
	PreferredRole string
	TechSkills    []string
	MatchScore    int
	Reason        string
}

type CandidateList struct {
	Items     []CandidateItem
	AIRefined bool
}

type MatchingUsecase interface {
	FindCandidates(ctx context.Context, userID, projectID uuid.UUID, useAI bool) (CandidateList, error)
}

type Matching struct {
	projects repository.ProjectRepository
	profiles repository.ProfileRepository
	reranker Reranker
}

func NewMatchingUsecase(projects repository.ProjectRepository, profiles repository.ProfileRepository, reranker Reranker) *Matching {
	return &Matching{projects: projects, profiles: profiles, reranker: reranker}
}

func (u *Matching) FindCandidates(ctx context.Context, userID, projectID uuid.UUID, useAI bool) (CandidateList, error) {
	if userID == uuid.Nil {
		return CandidateList{}, ErrUnauthorized
	}
	if projectID == uuid.Nil {
		return CandidateList{}, ErrProjectNotFound
	}

	proj, err := u.projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return CandidateList{}, ErrProjectNotFound
		}
		return CandidateList{}, ErrInternal
	}

	pool, err := u.profiles.ListAllExcept(ctx, proj.OwnerID)
	if err != nil {
		return CandidateList{}, ErrInternal
	}

	engProj := toEngineProject(proj)
	useAI = useAI && u.reranker != nil

	ranked := matching.RankCandidates(engProj, toEngineProfiles(pool), useAI)

	refined := false
	if useAI {
		ranked, refined = u.reranker.Refine(ctx, engProj, ranked)
	}

	items := make([]CandidateItem, 0, len(ranked))
	for _, c := range ranked {
		reason := c.Reason
		if reason == "" {
			reason = matching.DefaultReason(c.Profile, engProj)
		}
		items = append(items, CandidateItem{
			UserID:        c.Profile.UserID,
			Name:          c.Profile.Name,
			PreferredRole: c.Profile.PreferredRole,
			TechSkills:    c.Profile.TechSkills,
			MatchScore:    c.MatchScore,
			Reason:        reason,
		})
	}

	return CandidateList{Items: items, AIRefined: refined}, nil
}
