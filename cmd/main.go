// Package main is the directorybolt command. It loads configuration, sets up
// logging and dispatches to the serve, migrate, jwt, staff and directories
// subcommands.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"directorybolt/internal/config"
	"directorybolt/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadConfig reads the -c flag ahead of cobra so subcommand constructors can
// receive the parsed configuration.
func loadConfig() *config.Config {
	fs := flag.NewFlagSet("directorybolt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("c", "config.yml", "The config file path")
	// -c must precede the subcommand, the rest belongs to cobra
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)
	if cfg.LogLevel == "" {
		return cfg
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal("invalid log level: ", err)
	}

	return cfg
}

func main() {
	cfg := loadConfig()

	rootCmd := &cobra.Command{
		Use:          "directorybolt",
		Short:        "Directory submission backend",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")
	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		JWTCommand(cfg),
		staffCommand(cfg),
		directoriesCommand(cfg),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := 0
	func() {
		defer func() {
			if p := recover(); p != nil {
				logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
				code = 2
			}
		}()

		if err := rootCmd.ExecuteContext(ctx); err != nil {
			code = 1
		}
	}()

	stop()
	_ = logger.Get(ctx).Sync()
	os.Exit(code)
}
