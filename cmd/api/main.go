package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"prospecttrack/internal/config"
	"prospecttrack/internal/database"
	"prospecttrack/internal/docstore"
	"prospecttrack/internal/domain"
	"prospecttrack/internal/middleware"
	"prospecttrack/internal/modules/auth"
	"prospecttrack/internal/modules/favorite"
	"prospecttrack/internal/modules/live"
	"prospecttrack/internal/modules/prospect"
	"prospecttrack/internal/modules/rating"
	jwtsvc "prospecttrack/internal/pkg/jwt"
	"prospecttrack/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	mongoClient, docs, err := docstore.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	userRepo := repository.NewUserRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(docs)
	ratingRepo := repository.NewRatingRepository(docs)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := live.NewHub()
	defer hub.Close()
	liveHandler := live.NewHandler(hub)

	prospectService := prospect.NewService(cfg.StatsAPIBaseURL, &http.Client{Timeout: cfg.StatsAPITimeout})
	prospectHandler := prospect.NewHandler(prospectService)

	authService := auth.NewService(userRepo, j, favoriteRepo)
	authHandler := auth.NewHandler(authService)

	favoriteService := favorite.NewService(favoriteRepo, prospectService)
	favoriteHandler := favorite.NewHandler(favoriteService)

	ratingService := rating.NewService(ratingRepo, hub)
	ratingHandler := rating.NewHandler(ratingService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		prospectHandler.RegisterRoutes(v1)
		ratingHandler.RegisterPublicRoutes(v1)
		liveHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)
			ratingHandler.RegisterProtectedRoutes(protected)
		}

		// identity provider callback
		webhooks := v1.Group("/")
		webhooks.Use(middleware.InternalTokenAuth(cfg.WebhookToken))
		{
			authHandler.RegisterWebhookRoutes(webhooks)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
