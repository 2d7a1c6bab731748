package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/maintkeeper/internal/client/storage"
	"github.com/iudanet/maintkeeper/internal/client/sync"
	"github.com/iudanet/maintkeeper/internal/models"
)

// syncFlags переопределения секции sync конфигурации
type syncFlags struct {
	collection string
	policy     string
	batchSize  int
	maxRetries int
}

func (c *Cli) newSyncCommand() *cobra.Command {
	var flags syncFlags

	cmd := &cobra.Command{
		Use:     "sync",
		Short:   "Push unsynced records and deletes to the remote endpoint",
		Args:    cobra.NoArgs,
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.syncOptions()
			if flags.collection != "" {
				opts.Collection = flags.collection
			}
			if flags.policy != "" {
				opts.ConflictResolution = sync.Policy(flags.policy)
			}
			if flags.batchSize > 0 {
				opts.BatchSize = flags.batchSize
			}
			if flags.maxRetries > 0 {
				opts.MaxRetries = flags.maxRetries
			}

			return c.runSync(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&flags.collection, "collection", "", "sync one collection only")
	cmd.Flags().StringVar(&flags.policy, "policy", "", "conflict resolution: manual|local|remote")
	cmd.Flags().IntVar(&flags.batchSize, "batch-size", 0, "records per batch")
	cmd.Flags().IntVar(&flags.maxRetries, "max-retries", 0, "skip records that failed this many times")

	return cmd
}

func (c *Cli) syncOptions() sync.Options {
	return sync.Options{
		ConflictResolution: sync.Policy(c.cfg.Sync.ConflictResolution),
		BatchSize:          c.cfg.Sync.BatchSize,
		MaxRetries:         c.cfg.Sync.MaxRetries,
	}
}

func (c *Cli) runSync(ctx context.Context, opts sync.Options) error {
	endpoint := c.cfg.Sync.Endpoint
	if endpoint == "" {
		return fmt.Errorf("sync endpoint is not configured: use --endpoint or sync.endpoint")
	}

	if c.cfg.Sync.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Sync.Timeout)
		defer cancel()
	}

	if !c.opts.JSON {
		c.io.Println("=== Synchronization ===")
		c.io.Printf("Endpoint: %s\n", endpoint)
	}

	result, err := c.syncService.Sync(ctx, endpoint, opts)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if c.opts.JSON {
		return c.printJSON(result)
	}

	c.io.Println()
	if result.Interrupted {
		c.io.Println("! Synchronization interrupted")
	} else {
		c.io.Println("✓ Synchronization completed")
	}
	c.io.Printf("Synced:    %d\n", result.Synced)
	c.io.Printf("Deleted:   %d\n", result.Deleted)
	c.io.Printf("Failed:    %d\n", result.Failed)
	c.io.Printf("Skipped:   %d\n", result.Skipped)

	for _, ref := range result.Conflicts {
		state := "pending"
		if ref.Resolved {
			state = "resolved: " + ref.Resolution
		}
		c.io.Printf("Conflict:  %s (%s, local v%d, remote v%d) %s\n", ref.Key, ref.Type, ref.LocalVersion, ref.RemoteVersion, state)
	}
	for _, msg := range result.Errors {
		c.io.Printf("Error:     %s\n", msg)
	}

	return nil
}

func (c *Cli) newConflictsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Inspect and resolve sync conflicts",
	}

	cmd.AddCommand(c.newConflictsListCommand(), c.newConflictsResolveCommand())
	return cmd
}

func (c *Cli) newConflictsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List pending conflicts",
		Args:    cobra.NoArgs,
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			conflicts, err := c.store.Conflicts(cmd.Context())
			if err != nil {
				return err
			}

			if c.opts.JSON {
				return c.printJSON(conflicts)
			}

			if len(conflicts) == 0 {
				c.io.Println("No pending conflicts.")
				return nil
			}

			for _, conflict := range conflicts {
				c.io.Printf("%s  %s  local v%d  remote v%d  detected %s\n",
					conflict.Key(), conflict.ConflictType, conflict.LocalVersion, conflict.RemoteVersion,
					conflict.DetectedAt.Format(time.RFC3339))
				if len(conflict.LocalData) > 0 {
					c.io.Printf("  local:  %s\n", conflict.LocalData)
				}
				if len(conflict.RemoteData) > 0 {
					c.io.Printf("  remote: %s\n", conflict.RemoteData)
				}
			}
			return nil
		},
	}
}

func (c *Cli) newConflictsResolveCommand() *cobra.Command {
	var (
		use   string
		value string
	)

	cmd := &cobra.Command{
		Use:     "resolve <collection> <id>",
		Short:   "Resolve a conflict with the local, remote or a merged value",
		Example: `  maintkeeper conflicts resolve work-orders wo-1 --use merged --value '{"status":"closed"}'`,
		Args:    cobra.ExactArgs(2),
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			var res sync.Resolution
			switch use {
			case "local":
				res = sync.UseLocal()
			case "remote":
				res = sync.UseRemote()
			case "merged":
				if value == "" {
					return fmt.Errorf("--value is required with --use merged")
				}
				merged, err := parseValue(value)
				if err != nil {
					return err
				}
				res = sync.UseMerged(merged)
			default:
				return fmt.Errorf("invalid --use %q: must be local, remote or merged", use)
			}

			key := models.ItemKey{Collection: args[0], ID: args[1]}
			err := c.syncService.ResolveConflict(cmd.Context(), key, res)
			if errors.Is(err, storage.ErrConflictNotFound) {
				return fmt.Errorf("no pending conflict for %s", key)
			}
			if err != nil {
				return fmt.Errorf("failed to resolve conflict: %w", err)
			}

			c.io.Printf("✓ Resolved %s with %s\n", key, res.Kind)
			return nil
		},
	}
	cmd.Flags().StringVar(&use, "use", "", "local|remote|merged")
	cmd.Flags().StringVar(&value, "value", "", "merged JSON value")

	return cmd
}
