package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/courtside/nba-backend/internal/application/services"
	"github.com/courtside/nba-backend/internal/infrastructure/config"
	"github.com/courtside/nba-backend/internal/infrastructure/database"
	"github.com/courtside/nba-backend/internal/infrastructure/logger"
	"github.com/courtside/nba-backend/internal/infrastructure/metrics"
	"github.com/courtside/nba-backend/internal/infrastructure/server"
	"github.com/courtside/nba-backend/internal/ports"
)

// Build information, set with -ldflags at release time
var (
	Version   = "dev"
	GitCommit = "development"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Courtside API server",
		Long:  "Start the Courtside API server with all configured routes and middleware",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx)
		},
	}
}

// NewMigrateCommand creates the migrate command with subcommands
func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
		Long:  "Manage the postgres collections schema (up, down, version)",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Run up migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			return runMigration(cmd, "up", steps)
		},
	}
	upCmd.Flags().Int("steps", 0, "Number of migrations to apply (0 = all)")

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Run down migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			return runMigration(cmd, "down", steps)
		},
	}
	downCmd.Flags().Int("steps", 0, "Number of migrations to revert (0 = all)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showMigrationVersion(cmd)
		},
	}

	migrateCmd.AddCommand(upCmd, downCmd, versionCmd)

	return migrateCmd
}

// NewCoachCommand creates the coach management command
func NewCoachCommand() *cobra.Command {
	coachCmd := &cobra.Command{
		Use:   "coach",
		Short: "Coach management commands",
		Long:  "List, create and update coaches directly in the configured store",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all coaches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCoachService(func(svc ports.CoachService) error {
				coaches, err := svc.ListCoaches(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, coaches)
			})
		},
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new coach",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := coachRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			return withCoachService(func(svc ports.CoachService) error {
				coach, err := svc.CreateCoach(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printJSON(cmd, coach)
			})
		},
	}

	createCmd.Flags().String("name", "", "Coach name (required)")
	createCmd.Flags().String("team", "", "Current team")
	createCmd.Flags().String("age", "", "Coach age")
	_ = createCmd.MarkFlagRequired("name")

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an existing coach",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid coach id %q", args[0])
			}

			req, err := updateRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			return withCoachService(func(svc ports.CoachService) error {
				coach, err := svc.UpdateCoach(cmd.Context(), id, req)
				if err != nil {
					return err
				}
				return printJSON(cmd, coach)
			})
		},
	}

	updateCmd.Flags().String("name", "", "New coach name")
	updateCmd.Flags().String("team", "", "New team")
	updateCmd.Flags().String("age", "", "New age")
	updateCmd.Flags().StringSlice("clear", nil, "Fields to reset to null (age, team, history)")

	coachCmd.AddCommand(listCmd, createCmd, updateCmd)
	return coachCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Courtside version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Courtside %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "Git Commit: %s\n", GitCommit)
		},
	}
}

func runServer(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	stores, err := server.OpenStores(cfg, appLogger, m)
	if err != nil {
		appLogger.Errorw("Failed to open storage", "error", err)
		return err
	}
	defer stores.Close()

	srv := server.New(cfg, stores, appLogger, m)

	appLogger.Infow("Starting Courtside API server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"storage", cfg.Storage.Driver,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)))
	}()

	select {
	case err := <-errCh:
		if err != nil {
			appLogger.Errorw("Server failed", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorw("Graceful shutdown failed", "error", err)
		return err
	}

	appLogger.Info("Server stopped")
	return <-errCh
}

func newMigrator() (*migrate.Migrate, *database.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	driver, err := postgres.WithInstance(db.DB.DB, &postgres.Config{})
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+cfg.Database.MigrationsPath, "postgres", driver)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, db, nil
}

func runMigration(cmd *cobra.Command, direction string, steps int) error {
	m, db, err := newMigrator()
	if err != nil {
		return err
	}
	defer db.Close()

	switch direction {
	case "up":
		if steps > 0 {
			err = m.Steps(steps)
		} else {
			err = m.Up()
		}
	case "down":
		if steps > 0 {
			err = m.Steps(-steps)
		} else {
			err = m.Down()
		}
	}

	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Fprintln(cmd.OutOrStdout(), "No migrations to run")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration %s completed successfully\n", direction)
	return nil
}

func showMigrationVersion(cmd *cobra.Command) error {
	m, db, err := newMigrator()
	if err != nil {
		return err
	}
	defer db.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Fprintln(cmd.OutOrStdout(), "No migrations applied")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Current migration version: %d\n", version)
	fmt.Fprintf(cmd.OutOrStdout(), "Dirty: %t\n", dirty)
	return nil
}

func withCoachService(fn func(ports.CoachService) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cliLoggerConfig(cfg.Logger))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()

	stores, err := server.OpenStores(cfg, appLogger, nil)
	if err != nil {
		return err
	}
	defer stores.Close()

	return fn(services.NewCoachService(stores.Coaches, appLogger))
}

// cliLoggerConfig keeps log lines off stdout, which carries the command's JSON
// output
func cliLoggerConfig(cfg config.LoggerConfig) config.LoggerConfig {
	if cfg.Output != "file" {
		cfg.Output = "stderr"
	}
	return cfg
}

func coachRequestFromFlags(cmd *cobra.Command) (ports.CreateCoachRequest, error) {
	var req ports.CreateCoachRequest

	name, _ := cmd.Flags().GetString("name")
	req.Name = &name

	if cmd.Flags().Changed("team") {
		team, _ := cmd.Flags().GetString("team")
		req.Team = &team
	}

	if cmd.Flags().Changed("age") {
		raw, _ := cmd.Flags().GetString("age")
		age, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, fmt.Errorf("invalid age %q: %w", raw, err)
		}
		req.Age = &age
	}

	return req, nil
}

func updateRequestFromFlags(cmd *cobra.Command) (ports.UpdateCoachRequest, error) {
	var req ports.UpdateCoachRequest

	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = ports.Some(name)
	}
	if cmd.Flags().Changed("team") {
		team, _ := cmd.Flags().GetString("team")
		req.Team = ports.Some(team)
	}
	if cmd.Flags().Changed("age") {
		raw, _ := cmd.Flags().GetString("age")
		age, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, fmt.Errorf("invalid age %q: %w", raw, err)
		}
		req.Age = ports.Some(age)
	}

	cleared, _ := cmd.Flags().GetStringSlice("clear")
	for _, field := range cleared {
		switch field {
		case "age":
			req.Age = ports.Null[float64]()
		case "team":
			req.Team = ports.Null[string]()
		case "history":
			req.History = ports.Null[[]interface{}]()
		default:
			return req, fmt.Errorf("cannot clear field %q", field)
		}
	}

	return req, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
