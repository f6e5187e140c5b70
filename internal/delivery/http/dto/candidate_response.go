package dto

import "github.com/google/uuid"

type CandidateResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name"`
	PreferredRole string    `json:"preferred_role"`
	TechSkills    []string  `json:"tech_skills"`
	MatchScore    int       `json:"match_score"`
	Reason        string    `json:"reason"`
}

type CandidateListResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	AIRefined  bool                `json:"ai_refined"`
}
