package matching

import (
	"testing"

	"github.com/google/uuid"
)

func strongProfile() Profile {
	return Profile{
		UserID:           uuid.New(),
		Name:             "Rani",
		TechSkills:       []string{"React", "Node.js"},
		Interests:        []string{"WebDev"},
		PreferredRole:    "Data Scientist",
		ExperienceLevel:  "Intermediate",
		Availability:     "10hr/week",
		PersonalityStyle: "Analytical",
	}
}

func webProject() Project {
	return Project{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		Title:          "Campus Marketplace",
		RequiredSkills: []string{"React", "MongoDB"},
		Tags:           []string{"WebDev"},
		Category:       "WebDev",
	}
}

func TestScore_WeightedScenario(t *testing.T) {
	// skill 50, interest 100, role 80, experience 100, availability 100,
	// style 100 -> round(79.5) = 80 under half-up rounding.
	got := Score(strongProfile(), webProject())
	if got != 80 {
		t.Fatalf("expected score=80, got %d", got)
	}
}

func TestScore_EmptyProfile(t *testing.T) {
	// Only the role (50, empty counts as common) and experience (default
	// ordinal 2 vs need 2) terms fire: round(7.5 + 10) = 18.
	got := Score(Profile{}, webProject())
	if got != 18 {
		t.Fatalf("expected score=18 for empty profile, got %d", got)
	}
	if got >= MinCandidateScore {
		t.Fatalf("empty profile must fall below the candidate threshold, got %d", got)
	}
}

func TestScore_SubstringMatchIsBidirectional(t *testing.T) {
	p := Profile{TechSkills: []string{"React"}}
	proj := Project{RequiredSkills: []string{"React.js"}}
	reversed := Profile{TechSkills: []string{"React.js"}}
	projShort := Project{RequiredSkills: []string{"React"}}

	if Score(p, proj) != Score(reversed, projShort) {
		t.Fatalf("expected symmetric substring containment")
	}
	if OverlapCount(p, proj) != 1 {
		t.Fatalf("expected React to cover React.js")
	}
}

func TestScore_OrderIndependent(t *testing.T) {
	p := strongProfile()
	proj := webProject()
	base := Score(p, proj)

	p.TechSkills = []string{"Node.js", "React"}
	proj.RequiredSkills = []string{"MongoDB", "React"}
	proj.Tags = []string{"WebDev"}

	if got := Score(p, proj); got != base {
		t.Fatalf("expected order-independent score, base=%d got=%d", base, got)
	}
}

func TestScore_Bounds(t *testing.T) {
	cases := []struct {
		name string
		p    Profile
		proj Project
	}{
		{"empty both", Profile{}, Project{}},
		{"full match", Profile{
			TechSkills:       []string{"Go", "PostgreSQL"},
			Interests:        []string{"Backend"},
			PreferredRole:    "ML Engineer",
			ExperienceLevel:  "Advanced",
			Availability:     "20hr/week",
			PersonalityStyle: "Driver",
		}, Project{
			RequiredSkills: []string{"Go", "PostgreSQL"},
			Tags:           []string{"Backend"},
			Category:       "Backend",
		}},
	}

	for _, tc := range cases {
		got := Score(tc.p, tc.proj)
		if got < 0 || got > 100 {
			t.Fatalf("%s: score out of range: %d", tc.name, got)
		}
	}
}

func TestScore_RoleTerm(t *testing.T) {
	base := Project{}

	common := Score(Profile{PreferredRole: "Backend Developer"}, base)
	empty := Score(Profile{}, base)
	uncommon := Score(Profile{PreferredRole: "Data Scientist"}, base)

	if common != empty {
		t.Fatalf("common role and empty role must score alike: %d vs %d", common, empty)
	}
	if uncommon <= common {
		t.Fatalf("uncommon role must outscore common role: %d vs %d", uncommon, common)
	}
}

func TestScore_UnknownExperienceDefaultsToIntermediate(t *testing.T) {
	known := Score(Profile{ExperienceLevel: "Intermediate"}, Project{})
	unknown := Score(Profile{ExperienceLevel: "wizard"}, Project{})
	if known != unknown {
		t.Fatalf("unrecognized experience must default to the middle ordinal: %d vs %d", known, unknown)
	}
}

func TestRankCandidates_ExcludesOwnerAndLowScores(t *testing.T) {
	proj := webProject()

	owner := strongProfile()
	owner.UserID = proj.OwnerID

	weak := Profile{UserID: uuid.New()}
	strong := strongProfile()

	ranked := RankCandidates(proj, []Profile{owner, weak, strong}, false)
	if len(ranked) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(ranked))
	}
	if ranked[0].Profile.UserID != strong.UserID {
		t.Fatalf("expected only the strong non-owner candidate")
	}
	for _, c := range ranked {
		if c.MatchScore < MinCandidateScore {
			t.Fatalf("candidate below threshold leaked through: %d", c.MatchScore)
		}
	}
}

func TestRankCandidates_CapsAndOrder(t *testing.T) {
	proj := webProject()

	pool := make([]Profile, 0, 12)
	for i := 0; i < 12; i++ {
		p := strongProfile()
		p.UserID = uuid.New()
		pool = append(pool, p)
	}

	top := RankCandidates(proj, pool, false)
	if len(top) != MaxCandidates {
		t.Fatalf("expected cap at %d without rerank, got %d", MaxCandidates, len(top))
	}

	wide := RankCandidates(proj, pool, true)
	if len(wide) != MaxCandidatesForRerank {
		t.Fatalf("expected cap at %d for rerank, got %d", MaxCandidatesForRerank, len(wide))
	}

	for i := 1; i < len(wide); i++ {
		if wide[i].MatchScore > wide[i-1].MatchScore {
			t.Fatalf("expected descending scores at idx=%d", i)
		}
	}

	// Equal scores keep pool order, so the ranking is deterministic.
	for i := range wide {
		if wide[i].Profile.UserID != pool[i].UserID {
			t.Fatalf("expected stable tie-break to preserve pool order at idx=%d", i)
		}
	}
}
