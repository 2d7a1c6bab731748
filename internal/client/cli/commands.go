package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/maintkeeper/internal/client/store"
)

func (c *Cli) newSaveCommand() *cobra.Command {
	var meta metadataFlags

	cmd := &cobra.Command{
		Use:     "save <collection> <id> <json>",
		Short:   "Save a record, replacing any existing value",
		Example: `  maintkeeper save work-orders wo-1 '{"title":"Replace pump seal","assetId":"a-7"}' --priority high`,
		Args:    cobra.ExactArgs(3),
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseValue(args[2])
			if err != nil {
				return err
			}
			md, err := meta.build(time.Now())
			if err != nil {
				return err
			}

			if err := c.store.Save(cmd.Context(), args[0], args[1], value, md); err != nil {
				return fmt.Errorf("failed to save record: %w", err)
			}

			c.io.Printf("✓ Saved %s:%s\n", args[0], args[1])
			return nil
		},
	}
	meta.register(cmd)

	return cmd
}

func (c *Cli) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get <collection> [id]",
		Short:   "Print one record or a whole collection as JSON",
		Args:    cobra.RangeArgs(1, 2),
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				record, err := c.store.GetOne(cmd.Context(), args[0], args[1])
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("record not found: %s:%s", args[0], args[1])
				}
				if err != nil {
					return fmt.Errorf("failed to get record: %w", err)
				}
				return c.printJSON(record)
			}

			records, err := c.store.Get(cmd.Context(), args[0], "")
			if err != nil {
				return fmt.Errorf("failed to get records: %w", err)
			}
			return c.printJSON(records)
		},
	}
}

func (c *Cli) newUpdateCommand() *cobra.Command {
	var meta metadataFlags

	cmd := &cobra.Command{
		Use:     "update <collection> <id> <json>",
		Short:   "Merge fields into an existing record",
		Example: `  maintkeeper update work-orders wo-1 '{"status":"closed"}'`,
		Args:    cobra.ExactArgs(3),
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			partial, err := parseValue(args[2])
			if err != nil {
				return err
			}
			md, err := meta.build(time.Now())
			if err != nil {
				return err
			}

			err = c.store.Update(cmd.Context(), args[0], args[1], partial, md)
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("record not found: %s:%s", args[0], args[1])
			}
			if errors.Is(err, store.ErrChecksumMismatch) {
				return fmt.Errorf("record %s:%s is corrupted, run 'repair %s' first: %w", args[0], args[1], args[0], err)
			}
			if err != nil {
				return fmt.Errorf("failed to update record: %w", err)
			}

			c.io.Printf("✓ Updated %s:%s\n", args[0], args[1])
			return nil
		},
	}
	meta.register(cmd)

	return cmd
}

func (c *Cli) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <collection> <id>",
		Short:   "Delete a record; the delete is pushed on the next sync",
		Args:    cobra.ExactArgs(2),
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.store.Delete(cmd.Context(), args[0], args[1])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("record not found: %s:%s", args[0], args[1])
			}
			if err != nil {
				return fmt.Errorf("failed to delete record: %w", err)
			}

			c.io.Printf("✓ Deleted %s:%s\n", args[0], args[1])
			return nil
		},
	}
}

func (c *Cli) newUnsyncedCommand() *cobra.Command {
	var collection string

	cmd := &cobra.Command{
		Use:     "unsynced",
		Short:   "List records waiting to be pushed",
		Args:    cobra.NoArgs,
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := c.store.GetUnsynced(cmd.Context(), collection)
			if err != nil {
				return err
			}

			if c.opts.JSON {
				return c.printJSON(items)
			}

			if len(items) == 0 {
				c.io.Println("Nothing to sync.")
				return nil
			}

			for _, item := range items {
				c.io.Printf("%-40s v%-4d attempts=%d", item.Key(), item.Version, item.SyncAttempts)
				if item.LastError != "" {
					c.io.Printf("  last error: %s", item.LastError)
				}
				c.io.Println()
			}
			c.io.Printf("\nTotal: %d\n", len(items))
			return nil
		},
	}
	cmd.Flags().StringVar(&collection, "collection", "", "limit to one collection")

	return cmd
}
