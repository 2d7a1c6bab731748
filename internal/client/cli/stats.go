package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/maintkeeper/internal/client/store"
)

func (c *Cli) newStatsCommand() *cobra.Command {
	var collection string

	cmd := &cobra.Command{
		Use:     "stats",
		Short:   "Show storage usage and sync backlog",
		Args:    cobra.NoArgs,
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := c.store.Stats(cmd.Context(), collection)
			if err != nil {
				return err
			}

			lastSync, err := c.store.LastSyncTime(cmd.Context())
			if err != nil {
				return err
			}

			if c.opts.JSON {
				return c.printJSON(stats)
			}

			c.io.Println("=== Store Statistics ===")
			c.io.Printf("Items:             %d\n", stats.TotalItems)
			c.io.Printf("Size:              %d bytes (%d stored, ratio %.2f)\n", stats.TotalSize, stats.CompressedSize, stats.CompressionRatio)
			c.io.Printf("Unsynced:          %d\n", stats.UnsyncedItems)
			c.io.Printf("Pending deletes:   %d\n", stats.PendingDeletes)
			c.io.Printf("Pending intents:   %d\n", stats.PendingIntents)
			c.io.Printf("Conflicts:         %d\n", stats.Conflicts)
			c.io.Printf("Oldest item:       %s\n", formatTime(stats.OldestItem))
			c.io.Printf("Newest item:       %s\n", formatTime(stats.NewestItem))
			c.io.Printf("Oldest conflict:   %s\n", formatTime(stats.OldestConflict))
			if lastSync.IsZero() {
				c.io.Println("Last sync:         never")
			} else {
				c.io.Printf("Last sync:         %s\n", lastSync.Format(time.RFC3339))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&collection, "collection", "", "limit to one collection")

	return cmd
}

func (c *Cli) newCleanupCommand() *cobra.Command {
	var (
		maxAge   time.Duration
		maxItems int
		expired  bool
	)

	cmd := &cobra.Command{
		Use:     "cleanup",
		Short:   "Remove expired, aged and over-capacity synced records",
		Args:    cobra.NoArgs,
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.cleanupOptions()
			if cmd.Flags().Changed("max-age") {
				opts.MaxAge = &maxAge
			}
			if cmd.Flags().Changed("max-items") {
				opts.MaxItems = maxItems
			}
			if cmd.Flags().Changed("expired") {
				opts.RemoveExpired = expired
			}

			result, err := c.store.Cleanup(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if c.opts.JSON {
				return c.printJSON(result)
			}

			c.io.Printf("Removed %d records (expired %d, aged %d, over capacity %d)\n",
				result.Total(), result.Expired, result.Aged, result.OverCapacity)
			return nil
		},
	}
	cmd.Flags().DurationVar(&maxAge, "max-age", 0, "remove synced records not modified for this long")
	cmd.Flags().IntVar(&maxItems, "max-items", 0, "keep at most this many records")
	cmd.Flags().BoolVar(&expired, "expired", true, "remove synced records past expiresAt")

	return cmd
}

func (c *Cli) cleanupOptions() store.CleanupOptions {
	return store.CleanupOptions{
		MaxAge:        c.cfg.Cleanup.MaxAge,
		MaxItems:      c.cfg.Cleanup.MaxItems,
		RemoveExpired: c.cfg.Cleanup.RemoveExpired,
	}
}

func (c *Cli) newIntentsCommand() *cobra.Command {
	var (
		after         uint64
		compactBefore uint64
	)

	cmd := &cobra.Command{
		Use:     "intents",
		Short:   "Show or compact the sync intent log",
		Args:    cobra.NoArgs,
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			if compactBefore > 0 {
				removed, err := c.store.CompactIntents(cmd.Context(), compactBefore)
				if err != nil {
					return err
				}
				c.io.Printf("Compacted %d intents\n", removed)
				return nil
			}

			intents, err := c.store.Intents(cmd.Context(), after)
			if err != nil {
				return err
			}

			if c.opts.JSON {
				return c.printJSON(intents)
			}

			for _, intent := range intents {
				c.io.Printf("%6d  %s  %-6s  %s\n", intent.Seq, intent.Timestamp.Format(time.RFC3339Nano), intent.Operation, intent.Key())
			}
			c.io.Printf("\nTotal: %d\n", len(intents))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&after, "after", 0, "show intents with seq greater than this")
	cmd.Flags().Uint64Var(&compactBefore, "compact-before", 0, "drop intents with seq lower than this (irreversible)")

	return cmd
}
