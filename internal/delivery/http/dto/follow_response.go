package dto

import "github.com/google/uuid"

type FollowListResponse struct {
	UserIDs []uuid.UUID `json:"user_ids"`
	Count   int         `json:"count"`
}
