package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/config"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/database"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/repository"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/services"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long:  "Create, list, and delete platform users.",
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Run:   runUserList,
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user",
	Run:   runUserCreate,
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete [email]",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	Run:   runUserDelete,
}

var (
	userEmail    string
	userName     string
	userPassword string
	userRole     string
)

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userDeleteCmd)

	userCreateCmd.Flags().StringVarP(&userEmail, "email", "e", "", "User email (required)")
	userCreateCmd.Flags().StringVarP(&userPassword, "password", "p", "", "User password (required)")
	userCreateCmd.Flags().StringVarP(&userName, "username", "u", "", "Username (derived from email when omitted)")
	userCreateCmd.Flags().StringVarP(&userRole, "role", "r", "voyager", "User role (voyager/admin/manager/head_cook/supervisor)")
	userCreateCmd.MarkFlagRequired("email")
	userCreateCmd.MarkFlagRequired("password")
}

func openUserRepo() (*repository.UserRepository, *services.AuthService) {
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

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	authService := services.NewAuthService(userRepo, sessionRepo,
		time.Duration(cfg.Auth.SessionHours)*time.Hour)
	return userRepo, authService
}

func runUserList(cmd *cobra.Command, args []string) {
	repo, _ := openUserRepo()

	users, err := repo.List()
	if err != nil {
		log.Fatalf("Failed to list users: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tUSERNAME\tROLE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			u.ID, u.Email, u.Username, u.Role, u.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()
}

func runUserCreate(cmd *cobra.Command, args []string) {
	role, err := models.ParseRole(userRole)
	if err != nil {
		log.Fatalf("Invalid role: %v", err)
	}

	_, auth := openUserRepo()

	user, err := auth.Register(userEmail, userName, userPassword, role)
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	fmt.Printf("Created %s %q (id %d)\n", user.Role, user.Email, user.ID)
}

func runUserDelete(cmd *cobra.Command, args []string) {
	repo, _ := openUserRepo()

	user, err := repo.GetByEmail(services.NormalizeEmail(args[0]))
	if err != nil {
		log.Fatalf("Failed to find user: %v", err)
	}
	if err := repo.Delete(user.ID); err != nil {
		log.Fatalf("Failed to delete user: %v", err)
	}
	fmt.Printf("Deleted %q\n", user.Email)
}
