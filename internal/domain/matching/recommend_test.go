package matching

import (
	"testing"

	"github.com/google/uuid"
)

func TestScoreProject_UnboundedCeiling(t *testing.T) {
	p := Profile{
		TechSkills: []string{"Go", "PostgreSQL"},
		Interests:  []string{"Backend", "Databases"},
	}
	proj := Project{
		RequiredSkills: []string{"Go", "PostgreSQL"},
		Tags:           []string{"Backend", "Databases"},
		Upvotes:        25,
	}

	// 3*100 + 2*100 + min(25,10) = 510. The scale is intentionally not
	// clamped to 100.
	if got := ScoreProject(p, proj); got != 510 {
		t.Fatalf("expected 510, got %d", got)
	}
}

func TestScoreProject_EmptyLists(t *testing.T) {
	if got := ScoreProject(Profile{}, Project{Upvotes: 3}); got != 3 {
		t.Fatalf("expected popularity-only score 3, got %d", got)
	}
	if got := ScoreProject(Profile{TechSkills: []string{"Go"}}, Project{}); got != 0 {
		t.Fatalf("expected 0 when project lists are empty, got %d", got)
	}
}

func TestScoreProject_NegativeUpvotesIgnored(t *testing.T) {
	if got := ScoreProject(Profile{}, Project{Upvotes: -4}); got != 0 {
		t.Fatalf("expected 0 for negative upvotes, got %d", got)
	}
}

func TestRankProjects_StableAndCapped(t *testing.T) {
	p := Profile{TechSkills: []string{"Go"}, Interests: []string{"Backend"}}

	projects := make([]Project, 0, 8)
	for i := 0; i < 8; i++ {
		projects = append(projects, Project{
			ID:             uuid.New(),
			RequiredSkills: []string{"Go"},
			Tags:           []string{"Backend"},
			Upvotes:        i,
		})
	}

	first := RankProjects(p, projects, 0)
	second := RankProjects(p, projects, 0)

	if len(first) != DefaultRecommendations {
		t.Fatalf("expected default limit %d, got %d", DefaultRecommendations, len(first))
	}
	if len(first) != len(second) {
		t.Fatalf("expected identical runs, lengths %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Project.ID != second[i].Project.ID || first[i].Score != second[i].Score {
			t.Fatalf("expected stable ranking at idx=%d", i)
		}
	}
	for i := 1; i < len(first); i++ {
		if first[i].Score > first[i-1].Score {
			t.Fatalf("expected descending scores at idx=%d", i)
		}
	}
}

func TestRankProjects_ExplicitLimit(t *testing.T) {
	p := Profile{TechSkills: []string{"Go"}}
	projects := []Project{
		{ID: uuid.New(), RequiredSkills: []string{"Go"}},
		{ID: uuid.New(), RequiredSkills: []string{"Rust"}},
		{ID: uuid.New(), RequiredSkills: []string{"Go", "Rust"}},
	}

	got := RankProjects(p, projects, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Score < got[1].Score {
		t.Fatalf("expected descending order")
	}
}
