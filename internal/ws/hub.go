package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type envelope struct {
	userID  uuid.UUID
	payload []byte
}

// Hub routes payloads to the websocket clients of a single user. A user may
// hold several connections (multiple tabs); each gets its own copy.
type Hub struct {
	clients    map[*Client]bool
	byUser     map[uuid.UUID]map[*Client]bool
	deliver    chan envelope
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		byUser:     make(map[uuid.UUID]map[*Client]bool),
		deliver:    make(chan envelope, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			if h.byUser[client.userID] == nil {
				h.byUser[client.userID] = make(map[*Client]bool)
			}
			h.byUser[client.userID][client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | user=%s total_clients=%d", client.userID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				if peers := h.byUser[client.userID]; peers != nil {
					delete(peers, client)
					if len(peers) == 0 {
						delete(h.byUser, client.userID)
					}
				}
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | user=%s total_clients=%d", client.userID, total)
			}

		case msg := <-h.deliver:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.byUser[msg.userID]))
			for c := range h.byUser[msg.userID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Send queues a payload for every open connection of the user. Delivery is
// best-effort: a full buffer drops the payload rather than blocking the
// caller.
func (h *Hub) Send(userID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.deliver <- envelope{userID: userID, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS delivery dropped | user=%s reason=buffer_full", userID)
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
