package handler

import (
	"context"
	"strconv"
	"time"

	"campus-link/internal/database"
	"campus-link/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// ClientCounter reports how many websocket clients are connected.
type ClientCounter interface {
	ClientCount() int
}

type HealthHandler struct {
	db    database.DB
	cache Pinger
	hub   ClientCounter
}

func NewHealthHandler(db database.DB, cache Pinger, hub ClientCounter) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, hub: hub}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{
		"database": "ok",
		"cache":    "ok",
	}

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			status["database"] = "down"
		}
	}
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			status["cache"] = "down"
		}
	}
	if h.hub != nil {
		status["ws_clients"] = strconv.Itoa(h.hub.ClientCount())
	}

	if status["database"] == "down" {
		return response.Error(c, fiber.StatusServiceUnavailable, "service unavailable", status)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}
