package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"
)

type Profile struct {
	UserID           uuid.UUID
	Name             string
	TechSkills       []string
	NonTechSkills    []string
	Interests        []string
	PreferredRole    string
	ExperienceLevel  string
	Availability     string
	PersonalityStyle string
}

type Project struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Title          string
	Description    string
	Category       string
	Tags           []string
	RequiredSkills []string
	Upvotes        int
}

type ScoredCandidate struct {
	Profile    Profile
	MatchScore int
	Reason     string
}

const (
	weightSkill        = 0.35
	weightInterest     = 0.20
	weightRole         = 0.15
	weightExperience   = 0.10
	weightAvailability = 0.10
	weightStyle        = 0.10
)

// Projects carry no experience requirement of their own; every project is
// assumed to need the middle ordinal.
const projectExperienceNeed = 2

const (
	MinCandidateScore      = 40
	MaxCandidates          = 5
	MaxCandidatesForRerank = 10
)

var commonRoles = map[string]struct{}{
	"Frontend Developer":   {},
	"Backend Developer":    {},
	"Full Stack Developer": {},
}

// Score is total over its inputs: missing strings and nil slices score as
// empty. Rounding is half-up; the weighted sum is never negative, so
// math.Round gives exactly that.
func Score(p Profile, proj Project) int {
	total := weightSkill*skillTerm(p.TechSkills, proj.RequiredSkills) +
		weightInterest*interestTerm(p.Interests, proj.Tags, proj.Category) +
		weightRole*roleTerm(p.PreferredRole) +
		weightExperience*experienceTerm(p.ExperienceLevel) +
		weightAvailability*presenceTerm(p.Availability) +
		weightStyle*presenceTerm(p.PersonalityStyle)

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// RankCandidates scores the pool against the project, excluding the owner,
// drops anything below MinCandidateScore and returns the top candidates in
// descending score order. The stable sort makes input order the tie-break.
func RankCandidates(proj Project, pool []Profile, forRerank bool) []ScoredCandidate {
	out := make([]ScoredCandidate, 0, len(pool))
	for _, p := range pool {
		if p.UserID != uuid.Nil && p.UserID == proj.OwnerID {
			continue
		}
		s := Score(p, proj)
		if s < MinCandidateScore {
			continue
		}
		out = append(out, ScoredCandidate{Profile: p, MatchScore: s})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	limit := MaxCandidates
	if forRerank {
		limit = MaxCandidatesForRerank
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// OverlapCount reports how many of the project's required skills are covered
// by the profile's tech skills.
func OverlapCount(p Profile, proj Project) int {
	matched := 0
	for _, req := range proj.RequiredSkills {
		if matchesAny(req, p.TechSkills) {
			matched++
		}
	}
	return matched
}

func DefaultReason(p Profile, proj Project) string {
	return fmt.Sprintf("Matches %d of %d required skills", OverlapCount(p, proj), len(proj.RequiredSkills))
}

func skillTerm(techSkills, required []string) float64 {
	if len(required) == 0 {
		return 0
	}
	matched := 0
	for _, req := range required {
		if matchesAny(req, techSkills) {
			matched++
		}
	}
	return float64(matched) / float64(len(required)) * 100
}

func interestTerm(interests, tags []string, category string) float64 {
	if len(interests) == 0 {
		return 0
	}
	matched := 0
	for _, it := range interests {
		if matchesAny(it, tags) || bidirMatch(it, category) {
			matched++
		}
	}
	return float64(matched) / float64(len(interests)) * 100
}

// An empty role and a role from the common set both score 50; anything else
// counts as a complement and scores 80.
func roleTerm(role string) float64 {
	role = strings.TrimSpace(role)
	if role == "" {
		return 50
	}
	if _, ok := commonRoles[role]; ok {
		return 50
	}
	return 80
}

func experienceTerm(level string) float64 {
	diff := experienceOrdinal(level) - projectExperienceNeed
	if diff < 0 {
		diff = -diff
	}
	if diff <= 1 {
		return 100
	}
	return 0
}

func experienceOrdinal(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "beginner":
		return 1
	case "intermediate":
		return 2
	case "advanced":
		return 3
	default:
		return 2
	}
}

func presenceTerm(v string) float64 {
	if strings.TrimSpace(v) == "" {
		return 0
	}
	return 100
}

// bidirMatch treats two strings as matching when either is a
// case-insensitive substring of the other ("React" matches "React.js").
// Blank strings never match.
func bidirMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func matchesAny(s string, pool []string) bool {
	for _, p := range pool {
		if bidirMatch(s, p) {
			return true
		}
	}
	return false
}
