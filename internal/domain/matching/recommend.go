package matching

import (
	"math"
	"sort"
)

type ScoredProject struct {
	Project Project
	Score   int
}

const (
	recommendSkillWeight    = 3
	recommendInterestWeight = 2
	popularityCap           = 10

	DefaultRecommendations = 5
)

// ScoreProject is the dashboard relevance score. Unlike Score it is not
// normalized: a full skill and interest overlap with a popular project
// reaches 510. The scale is part of the contract, callers only compare
// relative values and display the raw number.
func ScoreProject(p Profile, proj Project) int {
	skillPct := overlapPct(proj.RequiredSkills, p.TechSkills)
	interestPct := overlapPct(p.Interests, proj.Tags)

	boost := proj.Upvotes
	if boost < 0 {
		boost = 0
	}
	if boost > popularityCap {
		boost = popularityCap
	}

	total := recommendSkillWeight*skillPct + recommendInterestWeight*interestPct + float64(boost)
	return int(math.Round(total))
}

// RankProjects scores every project for the profile and returns the top
// limit entries (DefaultRecommendations when limit <= 0) in descending
// score order. Identical inputs always produce identical output.
func RankProjects(p Profile, projects []Project, limit int) []ScoredProject {
	if limit <= 0 {
		limit = DefaultRecommendations
	}

	out := make([]ScoredProject, 0, len(projects))
	for _, proj := range projects {
		out = append(out, ScoredProject{Project: proj, Score: ScoreProject(p, proj)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func overlapPct(items, pool []string) float64 {
	if len(items) == 0 || len(pool) == 0 {
		return 0
	}
	matched := 0
	for _, it := range items {
		if matchesAny(it, pool) {
			matched++
		}
	}
	return float64(matched) / float64(len(items)) * 100
}
