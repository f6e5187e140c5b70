package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"campus-link/internal/config"
	"campus-link/internal/database/migration"
	"campus-link/internal/database/seeder"
	"campus-link/internal/delivery/http/middleware"
	"campus-link/internal/delivery/http/routes"
	v1 "campus-link/internal/delivery/http/routes/v1"
	"campus-link/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := runMigrations(ctx, c); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	if cfg.Database.RunSeeders {
		runner := seeder.Runner{Seeders: []seeder.Seeder{
			seeder.ProfileSeeder{},
			seeder.ProjectSeeder{},
		}}
		if err := runner.Run(ctx, c.DB); err != nil {
			_ = c.Close()
			return nil, nil, err
		}
	}

	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, c)

	registry := routes.NewRegistry(v1.Dependencies{
		Config:   cfg,
		DB:       c.DB,
		Cache:    c.Cache,
		Reranker: c.Reranker,
		Hub:      c.Hub,
		Logger:   c.Logger,
	})
	registry.Register(f)

	return &App{Fiber: f}, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	app.Use(accessMw.Middleware())
}

func runMigrations(ctx context.Context, c *Container) error {
	sqldb := c.DB.SQLDB()
	if sqldb == nil {
		return nil
	}

	runner := migration.Runner{Dir: os.Getenv("MIGRATIONS_DIR")}
	return runner.Run(ctx, sqldb)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
