package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/courtside/nba-backend/cmd/api/commands"
)

// @title Courtside NBA API
// @version 1.0
// @description Coaches, players and league data for the Courtside dashboard

// @host localhost:8080
// @BasePath /api

func main() {
	rootCmd := &cobra.Command{
		Use:           "courtside",
		Short:         "Courtside NBA API Server",
		Long:          `Courtside serves coach records, player profiles and league datasets to the NBA dashboard frontend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewCoachCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
