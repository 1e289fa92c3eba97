// Package main creates the first coordinator account. Running it again with
// the same email is a no-op.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	authModel "github.com/pixelpirates/leaderboard/internal/auth/model"
	"github.com/pixelpirates/leaderboard/internal/auth/password"
	authRepository "github.com/pixelpirates/leaderboard/internal/auth/repository"
	authService "github.com/pixelpirates/leaderboard/internal/auth/service"
	"github.com/pixelpirates/leaderboard/internal/auth/token"
	appConfig "github.com/pixelpirates/leaderboard/internal/config"
	dbConfig "github.com/pixelpirates/leaderboard/internal/database/config"
	"github.com/pixelpirates/leaderboard/internal/database/database"
	"github.com/pixelpirates/leaderboard/internal/database/migrate"
	"github.com/pixelpirates/leaderboard/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to read .env: %v", err)
	}

	name := flag.String("name", appConfig.GetEnv("SEED_COORDINATOR_NAME", "Coordinator"), "coordinator display name")
	email := flag.String("email", appConfig.GetEnv("SEED_COORDINATOR_EMAIL", ""), "coordinator email")
	pass := flag.String("password", appConfig.GetEnv("SEED_COORDINATOR_PASSWORD", ""), "coordinator password")
	flag.Parse()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sugar, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = sugar.Sync() }()

	ctx := context.Background()
	db, err := database.Open(ctx, dbConfig.LoadConfigFromEnv(), database.DefaultOptions(sugar))
	if err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := migrate.Migrate(db, sugar); err != nil {
		sugar.Fatalw("failed to apply migrations", "error", err)
	}

	svc := authService.New(
		authRepository.New(db, sugar),
		db,
		password.NewHasher(cfg.Auth.BcryptCost),
		token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer),
		sugar,
	)

	_, err = svc.RegisterCoordinator(ctx, &authModel.RegisterCoordinatorRequest{
		Name:     *name,
		Email:    *email,
		Password: *pass,
	})
	switch {
	case errors.Is(err, authModel.ErrEmailExists):
		sugar.Infow("coordinator already exists", "email", *email)
	case err != nil:
		sugar.Fatalw("failed to create coordinator", "error", err)
	default:
		sugar.Infow("coordinator created", "email", *email)
	}
}
