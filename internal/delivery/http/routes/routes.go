package routes

import (
	"campus-link/internal/delivery/http/handler"
	v1 "campus-link/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	deps   v1.Dependencies
}

func NewRegistry(deps v1.Dependencies) *Registry {
	var hub handler.ClientCounter
	if deps.Hub != nil {
		hub = deps.Hub
	}
	return &Registry{
		health: handler.NewHealthHandler(deps.DB, deps.Cache, hub),
		deps:   deps,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
