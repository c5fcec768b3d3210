package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"prospecttrack/internal/config"
	"prospecttrack/internal/database"
	"prospecttrack/internal/docstore"
	"prospecttrack/internal/domain"
	"prospecttrack/internal/repository"
)

// Seeds a demo account with a few followed and rated prospects for local
// development against a fresh database.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()
	mongoClient, docs, err := docstore.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatal("document store connection failed:", err)
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	demo := domain.User{
		ID:           uuid.NewString(),
		Email:        "demo@prospecttrack.dev",
		PasswordHash: string(hash),
		Name:         "Demo User",
	}
	db.Exec("DELETE FROM users WHERE email = ?", demo.Email)
	if err := db.Create(&demo).Error; err != nil {
		log.Fatal("create demo user failed:", err)
	}

	favoriteRepo := repository.NewFavoriteRepository(docs)
	ratingRepo := repository.NewRatingRepository(docs)

	// A couple of well-known prospect IDs from the stats API.
	prospectIDs := []string{"800050", "695549", "687263"}

	if err := favoriteRepo.ProvisionUser(ctx, demo.ID, demo.Email); err != nil {
		log.Fatal("provision favorites failed:", err)
	}
	for _, id := range prospectIDs {
		if err := favoriteRepo.SetFavorite(ctx, demo.ID, id, true); err != nil {
			log.Fatal("seed favorite failed:", err)
		}
	}

	for i, id := range prospectIDs {
		if _, err := ratingRepo.Append(ctx, id, 3+i%3); err != nil {
			log.Fatal("seed rating failed:", err)
		}
	}

	log.Printf("Seed complete: user=%s password=demo123 favorites=%d", demo.Email, len(prospectIDs))
}
