package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/config"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/database"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/repository"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/services"
)

// The server never runs background jobs, so expired sessions and
// consumed refresh tokens are swept from here (cron or by hand).
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete expired sessions and refresh tokens",
	Run:   runCleanup,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	auth := services.NewAuthService(userRepo, repository.NewSessionRepository(db),
		time.Duration(cfg.Auth.SessionHours)*time.Hour)
	tokens := services.NewTokenService(userRepo, repository.NewRefreshTokenRepository(db), cfg.App.Secret,
		time.Duration(cfg.Auth.AccessTokenMinutes)*time.Minute,
		time.Duration(cfg.Auth.RefreshTokenHours)*time.Hour)

	if err := auth.CleanupExpiredSessions(); err != nil {
		log.Fatalf("Failed to clean sessions: %v", err)
	}
	if err := tokens.CleanupExpired(); err != nil {
		log.Fatalf("Failed to clean refresh tokens: %v", err)
	}
	fmt.Println("Cleanup complete")
}
