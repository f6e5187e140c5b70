package v1

import (
	"log"

	"campus-link/internal/config"
	"campus-link/internal/database"
	"campus-link/internal/delivery/http/handler"
	"campus-link/internal/delivery/http/middleware"
	"campus-link/internal/infrastructure/cache"
	"campus-link/internal/pkg/jwt"
	"campus-link/internal/repository"
	"campus-link/internal/usecase"
	"campus-link/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Dependencies carries the shared infrastructure the v1 routes are built on.
// Cache, Reranker and Hub are optional: a nil value degrades the feature
// (no caching, deterministic ranking only, no live notifications).
type Dependencies struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Reranker usecase.Reranker
	Hub      *ws.Hub
	Logger   *log.Logger
}

func Register(r fiber.Router, deps Dependencies) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	profileRepo := repository.NewPostgresProfileRepository(deps.DB)
	projectRepo := repository.NewPostgresProjectRepository(deps.DB)
	commentRepo := repository.NewPostgresCommentRepository(deps.DB)
	followRepo := repository.NewPostgresFollowRepository(deps.DB)
	notificationRepo := repository.NewPostgresNotificationRepository(deps.DB)
	messageRepo := repository.NewPostgresMessageRepository(deps.DB)

	var recCache usecase.RecommendationCache
	if deps.Cache != nil {
		recCache = deps.Cache
	}

	profileUC := usecase.NewProfileUsecase(profileRepo)
	projectUC := usecase.NewProjectUsecase(projectRepo, profileRepo, commentRepo, notificationRepo, recCache, deps.Logger)
	matchingUC := usecase.NewMatchingUsecase(projectRepo, profileRepo, deps.Reranker)
	recommendationUC := usecase.NewRecommendationUsecase(profileRepo, projectRepo, recCache)
	followUC := usecase.NewFollowUsecase(followRepo, profileRepo, notificationRepo, deps.Logger)
	notificationUC := usecase.NewNotificationUsecase(notificationRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo, profileRepo, notificationRepo, deps.Logger)

	profileHandler := handler.NewProfileHandler(profileUC)
	projectHandler := handler.NewProjectHandler(projectUC)
	matchHandler := handler.NewMatchHandler(matchingUC)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC)
	followHandler := handler.NewFollowHandler(followUC)
	notificationHandler := handler.NewNotificationHandler(notificationUC)
	messageHandler := handler.NewMessageHandler(messageUC)

	protected := r.Group("", authMw.Middleware())

	profileHandler.RegisterRoutes(protected.Group("/profiles"))
	followHandler.RegisterRoutes(protected.Group("/users"))

	projectsGroup := protected.Group("/projects")
	projectHandler.RegisterRoutes(projectsGroup)
	matchHandler.RegisterRoutes(projectsGroup)

	recommendationHandler.RegisterRoutes(protected.Group("/recommendations"))
	messageHandler.RegisterRoutes(protected.Group("/messages"))

	notificationsGroup := protected.Group("/notifications")
	if deps.Hub != nil {
		wsHandler := ws.NewHandler(deps.Hub, deps.Logger)
		notificationsGroup.Get("/ws", wsHandler.HandleNotificationsWS)
	}
	notificationHandler.RegisterRoutes(notificationsGroup)
}
