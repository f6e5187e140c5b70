package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type NotificationEvent struct {
	Type      string `json:"type"`
	ActorID   string `json:"actor_id,omitempty"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyUser pushes a notification event to the user's open connections.
// Best-effort: no hub, no listeners or a full buffer all silently no-op.
func NotifyUser(userID uuid.UUID, evtType string, actorID uuid.UUID, body string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if userID == uuid.Nil || strings.TrimSpace(evtType) == "" {
		return
	}

	evt := NotificationEvent{
		Type:      evtType,
		Body:      body,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if actorID != uuid.Nil {
		evt.ActorID = actorID.String()
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Send(userID, b)
}
