package usecase

import (
	"campus-link/internal/domain/matching"
	"campus-link/internal/domain/profile"
	"campus-link/internal/domain/project"
)

func toEngineProfile(p profile.Profile) matching.Profile {
	return matching.Profile{
		UserID:           p.UserID,
		Name:             p.Name,
		TechSkills:       p.TechSkills,
		NonTechSkills:    p.NonTechSkills,
		Interests:        p.Interests,
		PreferredRole:    p.PreferredRole,
		ExperienceLevel:  p.ExperienceLevel,
		Availability:     p.Availability,
		PersonalityStyle: p.PersonalityStyle,
	}
}

func toEngineProfiles(in []profile.Profile) []matching.Profile {
	out := make([]matching.Profile, 0, len(in))
	for _, p := range in {
		out = append(out, toEngineProfile(p))
	}
	return out
}

func toEngineProject(p project.Project) matching.Project {
	return matching.Project{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category,
		Tags:           p.Tags,
		RequiredSkills: p.RequiredSkills,
		Upvotes:        p.Upvotes,
	}
}
