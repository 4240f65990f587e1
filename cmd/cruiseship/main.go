package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cruiseship",
	Short: "Cruise ship management backend",
	Long:  "Role-based booking and inventory backend for the cruise ship service platform.",
}

func main() {
	// A missing .env file is fine; env vars may come from anywhere.
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
