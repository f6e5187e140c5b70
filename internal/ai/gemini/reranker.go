package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"campus-link/internal/domain/matching"

	"github.com/google/uuid"
)

type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Reranker is an optional enrichment stage over the deterministic candidate
// ranking. It never fails: any transport or parse problem falls back to the
// original top candidates with a templated rationale.
type Reranker struct {
	generator ContentGenerator
	logger    *log.Logger
}

func NewReranker(generator ContentGenerator, logger *log.Logger) *Reranker {
	return &Reranker{generator: generator, logger: logger}
}

type promptCandidate struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	PreferredRole string   `json:"preferredRole"`
	TechSkills    []string `json:"techSkills"`
	Interests     []string `json:"interests"`
	MatchScore    int      `json:"matchScore"`
}

// Refine sends the scored candidates to the generative model for re-ranking
// and rationale text. The boolean reports whether AI output was applied;
// false means the deterministic fallback was returned.
func (r *Reranker) Refine(ctx context.Context, proj matching.Project, candidates []matching.ScoredCandidate) ([]matching.ScoredCandidate, bool) {
	if len(candidates) == 0 {
		return []matching.ScoredCandidate{}, false
	}
	if r == nil || r.generator == nil {
		return fallback(proj, candidates), false
	}

	raw, err := r.generator.GenerateContent(ctx, buildPrompt(proj, candidates))
	if err != nil {
		r.logf("rerank fallback | reason=generate_error err=%v", err)
		return fallback(proj, candidates), false
	}

	items, err := parseRerankResponse(raw)
	if err != nil {
		r.logf("rerank fallback | reason=parse_error err=%v", err)
		return fallback(proj, candidates), false
	}

	refined := reconcile(items, candidates)
	if len(refined) == 0 {
		r.logf("rerank fallback | reason=empty_reconciliation")
		return fallback(proj, candidates), false
	}

	return refined, true
}

func (r *Reranker) logf(format string, args ...any) {
	if r == nil || r.logger == nil {
		return
	}
	r.logger.Printf(format, args...)
}

func buildPrompt(proj matching.Project, candidates []matching.ScoredCandidate) string {
	payload := make([]promptCandidate, 0, len(candidates))
	for _, c := range candidates {
		payload = append(payload, promptCandidate{
			ID:            c.Profile.UserID.String(),
			Name:          c.Profile.Name,
			PreferredRole: c.Profile.PreferredRole,
			TechSkills:    c.Profile.TechSkills,
			Interests:     c.Profile.Interests,
			MatchScore:    c.MatchScore,
		})
	}

	candidateJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		candidateJSON = []byte("[]")
	}

	var b strings.Builder
	b.WriteString("You are helping a campus collaboration platform pick teammates for a project.\n\n")
	b.WriteString("Project:\n")
	fmt.Fprintf(&b, "- Title: %s\n", proj.Title)
	fmt.Fprintf(&b, "- Category: %s\n", proj.Category)
	fmt.Fprintf(&b, "- Required skills: %s\n", strings.Join(proj.RequiredSkills, ", "))
	fmt.Fprintf(&b, "- Description: %s\n\n", proj.Description)
	b.WriteString("Candidates (pre-scored, higher is better):\n")
	b.Write(candidateJSON)
	b.WriteString("\n\nReturn ONLY a JSON array of the top 5 candidates, best first. ")
	b.WriteString(`Each element must be {"id": "<candidate id>", "matchScore": <0-100 integer>, "reason": "<one short sentence>"}.`)
	return b.String()
}

type rerankItem struct {
	ID         string
	MatchScore *int
	Reason     string
}

func parseRerankResponse(raw string) ([]rerankItem, error) {
	cleaned := stripFences(raw)
	cleaned = extractArray(cleaned)

	var generic []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &generic); err != nil {
		return nil, fmt.Errorf("response is not a JSON array: %w", err)
	}

	items := make([]rerankItem, 0, len(generic))
	for _, m := range generic {
		it := rerankItem{
			ID:     coerceString(m["id"]),
			Reason: coerceString(m["reason"]),
		}
		if score, ok := coerceInt(m["matchScore"]); ok {
			it.MatchScore = &score
		}
		items = append(items, it)
	}
	return items, nil
}

// reconcile maps the model's answer back onto the original scored
// candidates. Entries without a known identifier are discarded; missing
// fields are backfilled from the original candidate.
func reconcile(items []rerankItem, originals []matching.ScoredCandidate) []matching.ScoredCandidate {
	byID := make(map[uuid.UUID]matching.ScoredCandidate, len(originals))
	for _, c := range originals {
		byID[c.Profile.UserID] = c
	}

	out := make([]matching.ScoredCandidate, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		id, err := uuid.Parse(strings.TrimSpace(it.ID))
		if err != nil {
			continue
		}
		orig, ok := byID[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		c := orig
		if it.MatchScore != nil {
			c.MatchScore = *it.MatchScore
		}
		if reason := strings.TrimSpace(it.Reason); reason != "" {
			c.Reason = reason
		} else if c.Reason == "" {
			c.Reason = genericReason(orig)
		}

		if c.MatchScore < matching.MinCandidateScore {
			continue
		}
		if c.MatchScore > 100 {
			c.MatchScore = 100
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	if len(out) > matching.MaxCandidates {
		out = out[:matching.MaxCandidates]
	}
	return out
}

// fallback returns the deterministic top candidates untouched, with a
// rationale derived from the skill overlap.
func fallback(proj matching.Project, candidates []matching.ScoredCandidate) []matching.ScoredCandidate {
	out := make([]matching.ScoredCandidate, 0, matching.MaxCandidates)
	for _, c := range candidates {
		if len(out) == matching.MaxCandidates {
			break
		}
		if c.Reason == "" {
			c.Reason = matching.DefaultReason(c.Profile, proj)
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

func genericReason(c matching.ScoredCandidate) string {
	return fmt.Sprintf("Compatibility score %d based on skills and interests", c.MatchScore)
}

func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(strings.Trim(raw, "`"))
}

// extractArray pulls the first top-level JSON array out of surrounding prose.
func extractArray(raw string) string {
	start := strings.Index(raw, "[")
	if start == -1 {
		return raw
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		ch := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return raw[start : i+1]
			}
		}
	}
	return raw[start:]
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}

func coerceInt(v any) (int, bool) {
	switch val := v.(type) {
	case float64:
		return int(math.Round(val)), true
	case int:
		return val, true
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return int(math.Round(f)), true
	default:
		return 0, false
	}
}
