package main

import (
	"context"
	"log"
	"os"

	"artist_marketplace/internal/db"
	"artist_marketplace/internal/repository"
	"artist_marketplace/internal/service"
)

func main() {
	// expects DATABASE_URL and JWT_SECRET env vars
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	ctx := context.Background()
	email := "test-artist@example.com"

	var artistID int64
	err := pool.QueryRow(ctx, `
		INSERT INTO artists (email) VALUES ($1)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id`, email).Scan(&artistID)
	if err != nil {
		log.Fatalf("create artist failed: %v", err)
	}
	log.Printf("artist id=%d email=%s\n", artistID, email)

	profiles := repository.NewProfileRepository(pool)
	if err := profiles.Create(ctx, artistID, "Test Artist"); err != nil {
		log.Fatalf("create profile failed: %v", err)
	}

	p, err := profiles.Get(ctx, artistID)
	if err != nil {
		log.Fatalf("fetch profile failed: %v", err)
	}
	log.Printf("profile display_name=%q created_at=%v\n", p.DisplayName, p.CreatedAt)

	service.InitJWT(secret)
	token, err := service.GenerateJWT(artistID)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
