package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/maintkeeper/internal/models"
)

// parseValue decodes a JSON value given on the command line
func parseValue(raw string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("value must be valid JSON: %w", err)
	}
	return v, nil
}

// printJSON writes v as indented JSON
func (c *Cli) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = c.io.Write(append(data, '\n'))
	return err
}

// metadataFlags собирает флаги метаданных записи
type metadataFlags struct {
	source    string
	priority  string
	tags      []string
	expiresIn time.Duration
}

func (f *metadataFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.source, "source", "", "record source (defaults to the collection)")
	cmd.Flags().StringVar(&f.priority, "priority", "", "sync priority: low|medium|high")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "record tag, repeatable")
	cmd.Flags().DurationVar(&f.expiresIn, "expires-in", 0, "expire the record after this duration")
}

// build returns nil when no metadata flag was given
func (f *metadataFlags) build(now time.Time) (*models.ItemMetadata, error) {
	if f.source == "" && f.priority == "" && f.tags == nil && f.expiresIn == 0 {
		return nil, nil
	}

	meta := &models.ItemMetadata{
		Source:   f.source,
		Priority: models.Priority(f.priority),
		Tags:     f.tags,
	}
	if meta.Priority != "" && !meta.Priority.Valid() {
		return nil, fmt.Errorf("invalid priority %q: must be low, medium or high", f.priority)
	}
	if f.expiresIn > 0 {
		expiresAt := now.Add(f.expiresIn)
		meta.ExpiresAt = &expiresAt
	}

	return meta, nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.RFC3339)
}
