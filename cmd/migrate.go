package main

import (
	"context"
	"database/sql"
	"fmt"

	root "directorybolt"
	"directorybolt/internal/config"
	"directorybolt/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema applies the embedded goose migrations.
func migrateSchema(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	return nil
}

// migrateRiver brings the River tables to the newest version bundled with
// the driver. It returns the version before and after.
func migrateRiver(ctx context.Context, db *sql.DB) (int, int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("could not create river migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("could not get existing river migrations: %w", err)
	}
	current := 0
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if current >= latest {
		return current, current, nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latest,
	}); err != nil {
		return current, current, fmt.Errorf("could not migrate river tables: %w", err)
	}

	return current, latest, nil
}

// migrateCommand constructs the 'migrate' subcommand that brings the schema
// and the River job tables to the latest version.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, _ []string) {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "unexpected database handle")
			}

			if status, _ := cmd.Flags().GetBool("status"); status {
				goose.SetBaseFS(root.Migrations)
				if err := goose.SetDialect("postgres"); err != nil {
					logger.Fatal(ctx, "could not set goose dialect", zap.Error(err))
				}
				if err := goose.StatusContext(ctx, db, "migrations"); err != nil {
					logger.Fatal(ctx, "could not read migration status", zap.Error(err))
				}

				return
			}

			if err := migrateSchema(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			from, to, err := migrateRiver(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
			logger.Info(ctx, "database migrated", zap.Int("riverFrom", from), zap.Int("riverTo", to))
		},
	}

	cmd.Flags().Bool("status", false, "Print the migration status instead of migrating")

	return cmd
}
