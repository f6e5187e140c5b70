package usecase

import (
	"context"
	"errors"
	"strings"

	"campus-link/internal/domain/profile"
	"campus-link/internal/repository"

	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	Name             *string
	TechSkills       []string
	NonTechSkills    []string
	Interests        []string
	PreferredRole    *string
	ExperienceLevel  *string
	Availability     *string
	PersonalityStyle *string
}

type ProfileUsecase interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, email string, in UpdateProfileInput) (profile.Profile, error)
	List(ctx context.Context, limit, offset int) ([]profile.Profile, error)
}

type Profiles struct {
	repo repository.ProfileRepository
}

func NewProfileUsecase(repo repository.ProfileRepository) *Profiles {
	return &Profiles{repo: repo}
}

func (u *Profiles) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}

	p, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}

// Update upserts the caller's profile. Unset pointer fields keep their
// stored value; list fields replace wholesale when non-nil.
func (u *Profiles) Update(ctx context.Context, userID uuid.UUID, email string, in UpdateProfileInput) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}

	current, err := u.repo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return profile.Profile{}, ErrInternal
	}

	next := current
	next.UserID = userID
	if strings.TrimSpace(email) != "" {
		next.Email = email
	}
	if in.Name != nil {
		next.Name = strings.TrimSpace(*in.Name)
	}
	if in.TechSkills != nil {
		next.TechSkills = cleanList(in.TechSkills)
	}
	if in.NonTechSkills != nil {
		next.NonTechSkills = cleanList(in.NonTechSkills)
	}
	if in.Interests != nil {
		next.Interests = cleanList(in.Interests)
	}
	if in.PreferredRole != nil {
		next.PreferredRole = strings.TrimSpace(*in.PreferredRole)
	}
	if in.ExperienceLevel != nil {
		next.ExperienceLevel = strings.TrimSpace(*in.ExperienceLevel)
	}
	if in.Availability != nil {
		next.Availability = strings.TrimSpace(*in.Availability)
	}
	if in.PersonalityStyle != nil {
		next.PersonalityStyle = strings.TrimSpace(*in.PersonalityStyle)
	}

	saved, err := u.repo.Upsert(ctx, next)
	if err != nil {
		return profile.Profile{}, ErrInternal
	}
	return saved, nil
}

func (u *Profiles) List(ctx context.Context, limit, offset int) ([]profile.Profile, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	out, err := u.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
