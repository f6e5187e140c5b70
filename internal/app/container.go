package app

import (
	"context"
	"log"
	"time"

	"campus-link/internal/ai/gemini"
	"campus-link/internal/config"
	"campus-link/internal/database"
	dbpostgres "campus-link/internal/database/postgres"
	"campus-link/internal/infrastructure/cache"
	"campus-link/internal/usecase"
	"campus-link/internal/ws"
)

type Container struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Hub      *ws.Hub
	Reranker usecase.Reranker
	Logger   *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger := log.Default()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		Hub:    ws.NewHub(logger),
		Logger: logger,
	}

	if cfg.Gemini.APIKey != "" {
		client, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Printf("[AI] Gemini unavailable, serving deterministic ranking only: %v", err)
		} else {
			c.Reranker = gemini.NewReranker(client, logger)
		}
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
