package gemini

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"campus-link/internal/domain/matching"

	"github.com/google/uuid"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func sampleCandidates(n int) []matching.ScoredCandidate {
	out := make([]matching.ScoredCandidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, matching.ScoredCandidate{
			Profile: matching.Profile{
				UserID:     uuid.New(),
				Name:       fmt.Sprintf("Candidate %d", i),
				TechSkills: []string{"React", "Node.js"},
			},
			MatchScore: 90 - i,
		})
	}
	return out
}

func sampleProject() matching.Project {
	return matching.Project{
		ID:             uuid.New(),
		Title:          "Study Group Finder",
		Category:       "WebDev",
		RequiredSkills: []string{"React", "MongoDB"},
	}
}

func TestRefine_GeneratorErrorFallsBack(t *testing.T) {
	cands := sampleCandidates(8)
	r := NewReranker(&stubGenerator{err: errors.New("boom")}, nil)

	got, enriched := r.Refine(context.Background(), sampleProject(), cands)
	if enriched {
		t.Fatalf("expected fallback, got enriched result")
	}
	if len(got) != matching.MaxCandidates {
		t.Fatalf("expected top-%d fallback, got %d", matching.MaxCandidates, len(got))
	}
	for i, c := range got {
		if c.Profile.UserID != cands[i].Profile.UserID {
			t.Fatalf("fallback must preserve original order at idx=%d", i)
		}
		if c.MatchScore != cands[i].MatchScore {
			t.Fatalf("fallback must preserve original scores at idx=%d", i)
		}
		if c.Reason == "" {
			t.Fatalf("fallback candidate idx=%d missing reason", i)
		}
	}
}

func TestRefine_GarbageResponseFallsBack(t *testing.T) {
	cands := sampleCandidates(3)
	r := NewReranker(&stubGenerator{response: "I cannot help with that."}, nil)

	got, enriched := r.Refine(context.Background(), sampleProject(), cands)
	if enriched {
		t.Fatalf("expected fallback on unparseable text")
	}
	if len(got) != 3 {
		t.Fatalf("expected all 3 candidates, got %d", len(got))
	}
}

func TestRefine_ObjectResponseFallsBack(t *testing.T) {
	cands := sampleCandidates(2)
	r := NewReranker(&stubGenerator{response: `{"top": []}`}, nil)

	if _, enriched := r.Refine(context.Background(), sampleProject(), cands); enriched {
		t.Fatalf("expected fallback on JSON-but-not-array response")
	}
}

func TestRefine_ParsesFencedArray(t *testing.T) {
	cands := sampleCandidates(3)
	resp := fmt.Sprintf("```json\n[\n {\"id\": %q, \"matchScore\": 95, \"reason\": \"Covers the full stack\"},\n {\"id\": %q, \"matchScore\": 70}\n]\n```",
		cands[2].Profile.UserID, cands[0].Profile.UserID)
	r := NewReranker(&stubGenerator{response: resp}, nil)

	got, enriched := r.Refine(context.Background(), sampleProject(), cands)
	if !enriched {
		t.Fatalf("expected enriched result")
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reconciled candidates, got %d", len(got))
	}
	if got[0].Profile.UserID != cands[2].Profile.UserID || got[0].MatchScore != 95 {
		t.Fatalf("expected AI ordering to win: got id=%s score=%d", got[0].Profile.UserID, got[0].MatchScore)
	}
	if got[0].Reason != "Covers the full stack" {
		t.Fatalf("unexpected reason: %q", got[0].Reason)
	}
	if got[1].Reason == "" {
		t.Fatalf("missing reason must be backfilled")
	}
	if got[1].Profile.Name != cands[0].Profile.Name {
		t.Fatalf("profile fields must come from the original candidate")
	}
}

func TestRefine_ArrayEmbeddedInProse(t *testing.T) {
	cands := sampleCandidates(1)
	resp := fmt.Sprintf("Here are my picks:\n[{\"id\": %q, \"matchScore\": \"88\", \"reason\": \"Strong React background\"}]\nHope this helps!",
		cands[0].Profile.UserID)
	r := NewReranker(&stubGenerator{response: resp}, nil)

	got, enriched := r.Refine(context.Background(), sampleProject(), cands)
	if !enriched {
		t.Fatalf("expected enriched result from embedded array")
	}
	if len(got) != 1 || got[0].MatchScore != 88 {
		t.Fatalf("expected string score coerced to 88, got %+v", got)
	}
}

func TestRefine_DropsLowAndUnknownEntries(t *testing.T) {
	cands := sampleCandidates(2)
	resp := fmt.Sprintf(`[
 {"id": %q, "matchScore": 20, "reason": "weak"},
 {"id": %q, "matchScore": 80, "reason": "solid"},
 {"id": "not-a-uuid", "matchScore": 99},
 {"id": %q, "matchScore": 99, "reason": "hallucinated"}
]`, cands[0].Profile.UserID, cands[1].Profile.UserID, uuid.New())
	r := NewReranker(&stubGenerator{response: resp}, nil)

	got, enriched := r.Refine(context.Background(), sampleProject(), cands)
	if !enriched {
		t.Fatalf("expected enriched result")
	}
	if len(got) != 1 {
		t.Fatalf("expected only the solid candidate, got %d", len(got))
	}
	if got[0].Profile.UserID != cands[1].Profile.UserID {
		t.Fatalf("wrong candidate survived reconciliation")
	}
}

func TestRefine_AllEntriesFilteredFallsBack(t *testing.T) {
	cands := sampleCandidates(2)
	resp := fmt.Sprintf(`[{"id": %q, "matchScore": 10}]`, cands[0].Profile.UserID)
	r := NewReranker(&stubGenerator{response: resp}, nil)

	got, enriched := r.Refine(context.Background(), sampleProject(), cands)
	if enriched {
		t.Fatalf("expected fallback when reconciliation drops everything")
	}
	if len(got) != 2 {
		t.Fatalf("expected both original candidates, got %d", len(got))
	}
}

func TestRefine_NoCandidates(t *testing.T) {
	r := NewReranker(&stubGenerator{response: "[]"}, nil)
	got, enriched := r.Refine(context.Background(), sampleProject(), nil)
	if enriched || len(got) != 0 {
		t.Fatalf("expected empty non-enriched result, got %d enriched=%v", len(got), enriched)
	}
}

func TestRefine_CapsAtFive(t *testing.T) {
	cands := sampleCandidates(8)
	items := ""
	for i, c := range cands {
		if i > 0 {
			items += ","
		}
		items += fmt.Sprintf(`{"id": %q, "matchScore": %d, "reason": "ok"}`, c.Profile.UserID, 50+i)
	}
	r := NewReranker(&stubGenerator{response: "[" + items + "]"}, nil)

	got, enriched := r.Refine(context.Background(), sampleProject(), cands)
	if !enriched {
		t.Fatalf("expected enriched result")
	}
	if len(got) != matching.MaxCandidates {
		t.Fatalf("expected cap at %d, got %d", matching.MaxCandidates, len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].MatchScore > got[i-1].MatchScore {
			t.Fatalf("expected descending scores at idx=%d", i)
		}
	}
}
