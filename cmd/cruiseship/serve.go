package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/config"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/database"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/handlers"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/middleware"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/repository"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/services"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/validators"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	refreshRepo := repository.NewRefreshTokenRepository(db)
	itemRepo := repository.NewItemRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, sessionRepo,
		time.Duration(cfg.Auth.SessionHours)*time.Hour)
	tokenService := services.NewTokenService(userRepo, refreshRepo, cfg.App.Secret,
		time.Duration(cfg.Auth.AccessTokenMinutes)*time.Minute,
		time.Duration(cfg.Auth.RefreshTokenHours)*time.Hour)
	catalogService := services.NewCatalogService(itemRepo)
	bookingService := services.NewBookingService(bookingRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	itemHandler := handlers.NewItemHandler(catalogService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	contactHandler := handlers.NewContactHandler(contactRepo)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	validators.Register()

	r := gin.Default()
	handlers.RegisterRoutes(r, authHandler, itemHandler, bookingHandler, contactHandler,
		middleware.Authenticate(tokenService, authService))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		log.Printf("Starting server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
}
