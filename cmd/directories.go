package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"directorybolt/internal/audit"
	"directorybolt/internal/catalog"
	"directorybolt/internal/config"
	"directorybolt/internal/enrich"
	"directorybolt/internal/formmap"
	"directorybolt/pkg/domain"
	"directorybolt/pkg/logger"
	"directorybolt/pkg/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// directoriesCommand constructs the 'directories' subcommand grouping the
// catalog maintenance tools.
func directoriesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directories",
		Short: "Maintains the directory catalog",
	}

	cmd.AddCommand(
		importDirectoriesCommand(cfg),
		auditDirectoriesCommand(cfg),
		monitorDirectoriesCommand(cfg),
		enrichDirectoriesCommand(cfg),
	)

	return cmd
}

// selectDirectories loads the active catalog, restricted to ids when given.
func selectDirectories(ctx context.Context, strg storage.DirectoryStorage, ids []string) []domain.Directory {
	dirs, err := strg.ListDirectories(ctx, true)
	if err != nil {
		logger.Fatal(ctx, "could not list directories", zap.Error(err))
	}
	if len(ids) == 0 {
		return dirs
	}

	return slices.DeleteFunc(dirs, func(d domain.Directory) bool {
		return !slices.Contains(ids, d.ID)
	})
}

func importDirectoriesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Merges JSON, CSV or XLSX directory lists into the catalog",
		Run: func(cmd *cobra.Command, files []string) {
			ctx := cmd.Context()
			withDefaults, _ := cmd.Flags().GetBool("defaults")
			if len(files) == 0 && !withDefaults {
				logger.Fatal(ctx, "nothing to import, pass files or --defaults")
			}

			sources := make([]catalog.Source, 0, len(files))
			for _, f := range files {
				format, err := catalog.FormatFromPath(f)
				if err != nil {
					logger.Fatal(ctx, "unsupported file", zap.String("file", f), zap.Error(err))
				}
				data, err := os.ReadFile(f)
				if err != nil {
					logger.Fatal(ctx, "could not read file", zap.String("file", f), zap.Error(err))
				}
				sources = append(sources, catalog.Source{Name: filepath.Base(f), Format: format, Data: data})
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if withDefaults {
				defaults, err := catalog.Defaults()
				if err != nil {
					logger.Fatal(ctx, "could not load default directories", zap.Error(err))
				}
				n, err := strg.UpsertDirectories(ctx, defaults...)
				if err != nil {
					logger.Fatal(ctx, "could not store default directories", zap.Error(err))
				}
				logger.Info(ctx, "default directories imported", zap.Int64("upserted", n))
			}

			if len(sources) == 0 {
				return
			}
			if _, err := catalog.New(strg).Import(ctx, sources...); err != nil {
				logger.Fatal(ctx, "could not import directories", zap.Error(err))
			}
		},
	}

	cmd.Flags().Bool("defaults", false, "Also import the built-in catalog")

	return cmd
}

func auditDirectoriesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [ids...]",
		Short: "Checks directory URLs and records which are reachable",
		Run: func(cmd *cobra.Command, ids []string) {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			store, closeStore, err := getBlobStore(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not open blob store", zap.Error(err))
			}
			defer closeStore()

			dirs := selectDirectories(ctx, strg, ids)
			total := len(dirs)
			if len(ids) > 0 {
				all, err := strg.ListDirectories(ctx, true)
				if err != nil {
					logger.Fatal(ctx, "could not list directories", zap.Error(err))
				}
				total = len(all)
			}

			results, err := audit.New(audit.NewOptions(cfg)).Run(ctx, dirs)
			if err != nil {
				logger.Fatal(ctx, "audit interrupted", zap.Error(err))
			}

			for _, res := range results {
				if err := strg.UpdateDirectoryAudit(ctx, res.DirectoryID, res.Accessible, res.CheckedAt); err != nil {
					logger.Error(ctx, "could not store audit result", zap.String("directory", res.DirectoryID), zap.Error(err))
				}
			}

			report := audit.BuildReport(results, total, time.Now().UTC())
			body, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not encode report", zap.Error(err))
			}
			name := fmt.Sprintf("audits/%s.json", report.GeneratedAt.Format("20060102T150405Z"))
			uri, err := store.PutObject(ctx, name, "application/json", bytes.NewReader(body))
			if err != nil {
				logger.Error(ctx, "could not store audit report", zap.Error(err))
			} else {
				logger.Info(ctx, "audit report stored", zap.String("uri", uri))
			}

			if err := report.WriteText(cmd.OutOrStdout()); err != nil {
				logger.Fatal(ctx, "could not print report", zap.Error(err))
			}
		},
	}

	return cmd
}

func monitorDirectoriesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor [ids...]",
		Short: "Captures submission forms and reports changes",
		Run: func(cmd *cobra.Command, ids []string) {
			ctx := cmd.Context()
			rawMode, _ := cmd.Flags().GetString("mode")
			mode, err := formmap.ParseMode(rawMode)
			if err != nil {
				logger.Fatal(ctx, "invalid mode", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			store, closeStore, err := getBlobStore(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not open blob store", zap.Error(err))
			}
			defer closeStore()

			publisher, closePublisher, err := getPublisher(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not open event publisher", zap.Error(err))
			}
			defer closePublisher()

			renderer := formmap.NewChromeRenderer(formmap.NewChromeOptions(cfg))
			defer renderer.Close()

			var targets []formmap.Target
			for _, d := range selectDirectories(ctx, strg, ids) {
				if t := formmap.TargetFor(d); t.URL() != "" {
					targets = append(targets, t)
				}
			}

			outcomes, err := formmap.NewMonitor(renderer, strg, store, publisher).
				Run(ctx, mode, targets, cfg.Monitor.Concurrency)
			if err != nil {
				logger.Fatal(ctx, "monitoring interrupted", zap.Error(err))
			}

			var failed, changed int
			for _, o := range outcomes {
				switch {
				case o.Err != nil:
					failed++
				case o.Change != nil:
					changed++
				}
			}
			logger.Info(ctx, "form capture finished",
				zap.String("mode", string(mode)),
				zap.Int("targets", len(targets)),
				zap.Int("changed", changed),
				zap.Int("failed", failed))
		},
	}

	cmd.Flags().String("mode", string(formmap.ModeMonitor), "map or monitor")

	return cmd
}

func enrichDirectoriesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrich [ids...]",
		Short: "Queues domain authority lookups for directories",
		Long: "Queues lookups for the given directories, or for every directory whose " +
			"authority is missing or stale. The jobs are worked by serve.",
		Run: func(cmd *cobra.Command, ids []string) {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			enricher := enrich.New(strg, nil, enrich.NewOptions(cfg))

			var (
				added int
				err   error
			)
			if len(ids) > 0 {
				added, err = enricher.Enqueue(ctx, ids...)
			} else {
				added, err = enricher.EnqueueStale(ctx)
			}
			if err != nil {
				logger.Fatal(ctx, "could not queue enrichment", zap.Error(err))
			}

			logger.Info(ctx, "enrichment queued", zap.Int("added", added))
		},
	}

	return cmd
}
