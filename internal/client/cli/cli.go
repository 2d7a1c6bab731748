package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iudanet/maintkeeper/internal/client/integrity"
	"github.com/iudanet/maintkeeper/internal/client/iocli"
	"github.com/iudanet/maintkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/maintkeeper/internal/client/store"
	"github.com/iudanet/maintkeeper/internal/client/sync"
	"github.com/iudanet/maintkeeper/internal/clock"
	"github.com/iudanet/maintkeeper/internal/codec"
	"github.com/iudanet/maintkeeper/internal/config"
	"github.com/iudanet/maintkeeper/internal/logger"
)

// BuildInfo версия сборки, задается через ldflags
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// RootOptions holds global flags for all commands
type RootOptions struct {
	ConfigPath string
	DBPath     string
	Endpoint   string
	LogLevel   string
	JSON       bool
}

// Cli связывает команды с хранилищем, движком синхронизации и валидатором.
// Компоненты открываются лениво перед первой командой, которой они нужны.
type Cli struct {
	io          iocli.IO
	cfg         *config.Config
	store       *store.Store
	syncService sync.Service
	validator   *integrity.Validator
	logger      *slog.Logger
	closeFn     func() error
	build       BuildInfo
	opts        RootOptions
	ownSync     bool // syncService создан в open и закрывается вместе со store
}

// New creates a Cli writing to out
func New(out iocli.IO, build BuildInfo) *Cli {
	return &Cli{io: out, build: build}
}

// NewRootCommand creates the maintkeeper command tree
func NewRootCommand(c *Cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "maintkeeper",
		Short:         "Offline-first maintenance record keeper",
		Long:          "Stores maintenance records locally and synchronizes them with a remote endpoint.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.Close()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&c.opts.ConfigPath, "config", "c", "", "path to YAML config file")
	flags.StringVar(&c.opts.DBPath, "db", "", "path to local database (overrides config)")
	flags.StringVar(&c.opts.Endpoint, "endpoint", "", "remote sync endpoint (overrides config)")
	flags.StringVar(&c.opts.LogLevel, "log-level", "", "log level: debug|info|warn|error")
	flags.BoolVar(&c.opts.JSON, "json", false, "print results as JSON")

	cmd.AddCommand(
		c.newSaveCommand(),
		c.newGetCommand(),
		c.newUpdateCommand(),
		c.newDeleteCommand(),
		c.newUnsyncedCommand(),
		c.newStatsCommand(),
		c.newCleanupCommand(),
		c.newSyncCommand(),
		c.newConflictsCommand(),
		c.newIntentsCommand(),
		c.newValidateCommand(),
		c.newRepairCommand(),
		c.newExportCommand(),
		c.newImportCommand(),
		c.newDaemonCommand(),
		c.newVersionCommand(),
	)

	return cmd
}

// open loads config and opens the store unless they were injected
func (c *Cli) open(ctx context.Context) error {
	if c.cfg == nil {
		cfg, err := config.Load(c.opts.ConfigPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}
	c.applyFlags()

	if c.logger == nil {
		c.logger = logger.New(c.cfg.Log.Level, c.cfg.Log.Format, os.Stderr)
	}

	if c.store != nil {
		return nil
	}

	st, err := boltdb.New(ctx, c.cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	cdc, err := codec.New(c.cfg.Store.CompressionThreshold)
	if err != nil {
		_ = st.Close()
		return fmt.Errorf("failed to create codec: %w", err)
	}

	s, err := store.New(ctx, st, cdc, clock.New(), c.logger)
	if err != nil {
		_ = cdc.Close()
		_ = st.Close()
		return err
	}

	validator := integrity.New(st, cdc, integrity.Options{
		Logger:       c.logger,
		HistoryLimit: c.cfg.Integrity.HistoryLimit,
	})
	if err := registerRules(validator, c.cfg.Integrity.Collections); err != nil {
		_ = cdc.Close()
		_ = st.Close()
		return err
	}

	s.SetCorruptionObserver(func(w store.CorruptionWarning) {
		validator.RecordCorruption(w.Key, w.Stored, w.Computed, w.DetectedAt)
	})

	c.store = s
	c.validator = validator
	if c.syncService == nil {
		c.syncService = sync.NewService(s, nil, c.logger)
		c.ownSync = true
	}
	c.closeFn = func() error {
		return errors.Join(cdc.Close(), st.Close())
	}

	return nil
}

// applyFlags lets global flags override the loaded config
func (c *Cli) applyFlags() {
	if c.opts.DBPath != "" {
		c.cfg.Store.Path = c.opts.DBPath
	}
	if c.opts.Endpoint != "" {
		c.cfg.Sync.Endpoint = c.opts.Endpoint
	}
	if c.opts.LogLevel != "" {
		c.cfg.Log.Level = c.opts.LogLevel
	}
}

// Close releases the store opened by open
func (c *Cli) Close() error {
	if c.closeFn == nil {
		return nil
	}
	err := c.closeFn()
	c.closeFn = nil
	c.store = nil
	c.validator = nil
	if c.ownSync {
		c.syncService = nil
		c.ownSync = false
	}
	return err
}

// prepare is shared by every command that needs the store
func (c *Cli) prepare(cmd *cobra.Command, _ []string) error {
	return c.open(cmd.Context())
}
