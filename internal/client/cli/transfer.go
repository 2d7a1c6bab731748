package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iudanet/maintkeeper/internal/client/store"
)

func (c *Cli) newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:     "export <collection>",
		Short:   "Export a collection as a JSON document",
		Args:    cobra.ExactArgs(1),
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.store.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if out == "" {
				_, err := c.io.Write(append(data, '\n'))
				return err
			}

			if err := os.WriteFile(out, data, 0o600); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}
			c.io.Printf("✓ Exported %s to %s\n", args[0], out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")

	return cmd
}

func (c *Cli) newImportCommand() *cobra.Command {
	var collection string

	cmd := &cobra.Command{
		Use:     "import <file>",
		Short:   "Import records from an export document or a JSON array",
		Args:    cobra.ExactArgs(1),
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read import file: %w", err)
			}

			imported, err := c.store.Import(cmd.Context(), data, collection)
			if err != nil {
				var importErr *store.ImportError
				if errors.As(err, &importErr) {
					c.io.Printf("Imported %d records before the failure\n", importErr.Imported)
				}
				return err
			}

			c.io.Printf("✓ Imported %d records\n", imported)
			return nil
		},
	}
	cmd.Flags().StringVar(&collection, "collection", "", "target collection (defaults to the records' own)")

	return cmd
}
