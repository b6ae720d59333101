package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SscSPs/garage_books/internal/platform/config"
	"github.com/SscSPs/garage_books/pkg/database"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.AddCommand(newMigrateStepCommand("up", "Apply all pending migrations", database.MigrateUp))
	cmd.AddCommand(newMigrateStepCommand("down", "Roll back all migrations", database.MigrateDown))
	return cmd
}

func newMigrateStepCommand(use, short string, dir database.MigrationDirection) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger := newLogger(os.Stdout, cfg.LogLevel)
			if cfg.DatabaseURL == "" {
				return errors.New("PGSQL_URL must be set to run migrations")
			}

			changed, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, dir)
			if err != nil {
				return fmt.Errorf("migrate %s: %w", use, err)
			}
			if changed {
				logger.Info("Database migrations applied", slog.String("direction", use))
			} else {
				logger.Info("No migrations to apply", slog.String("direction", use))
			}
			return nil
		},
	}
}
