package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iudanet/maintkeeper/internal/config"
	"github.com/iudanet/maintkeeper/internal/logger"
	"github.com/iudanet/maintkeeper/internal/server/app"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath  string
		addr        string
		dbPath      string
		showVersion bool
	)

	cmd := &cobra.Command{
		Use:           "maintkeeper-server",
		Short:         "Reference sync server for MaintKeeper clients",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				printVersion(cmd)
				return nil
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("db") {
				cfg.Server.Database = dbPath
			}

			log := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
			log.Info("MaintKeeper server starting", "version", Version, "addr", cfg.Server.Addr, "database", cfg.Server.Database)

			srv, err := app.New(cmd.Context(), cfg, log, Version)
			if err != nil {
				return err
			}
			defer func() {
				if err := srv.Close(); err != nil {
					log.Error("Failed to close database", "error", err)
				}
			}()

			if err := srv.Run(cmd.Context()); err != nil {
				return err
			}

			log.Info("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides server.database)")
	cmd.Flags().BoolVar(&showVersion, "version", false, "show version information")

	return cmd
}

func printVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "MaintKeeper Server\n")
	fmt.Fprintf(out, "Version:    %s\n", Version)
	fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
}
