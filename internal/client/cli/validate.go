package cli

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/iudanet/maintkeeper/internal/client/integrity"
	"github.com/iudanet/maintkeeper/internal/config"
	"github.com/iudanet/maintkeeper/internal/models"
)

// ErrIntegrityCritical is returned by validate when a report is critical
var ErrIntegrityCritical = errors.New("integrity check failed")

func (c *Cli) newValidateCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "validate [collection]",
		Short:   "Run integrity checks over one or all collections",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := c.runValidate(cmd.Context(), args)
			if err != nil {
				return err
			}

			if c.opts.JSON {
				if err := c.printJSON(reports); err != nil {
					return err
				}
			} else {
				for _, report := range reports {
					c.printReport(report, verbose)
				}
			}

			for _, report := range reports {
				if report.OverallStatus == integrity.StatusCritical {
					return fmt.Errorf("%w: %s", ErrIntegrityCritical, report.Collection)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print passed checks too")

	return cmd
}

// runValidate validates the given collection or every stored one
func (c *Cli) runValidate(ctx context.Context, args []string) ([]*integrity.Report, error) {
	collections := args
	if len(collections) == 0 {
		var err error
		collections, err = c.store.Collections(ctx)
		if err != nil {
			return nil, err
		}
	}

	reports := make([]*integrity.Report, 0, len(collections))
	for _, collection := range collections {
		report, err := c.validator.ValidateStore(ctx, collection)
		if err != nil {
			return nil, fmt.Errorf("failed to validate %s: %w", collection, err)
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (c *Cli) printReport(report *integrity.Report, verbose bool) {
	c.io.Printf("=== %s: %s ===\n", report.Collection, report.OverallStatus)
	c.io.Printf("Checks: %d  passed: %d  failed: %d  warnings: %d\n",
		report.TotalChecks, report.Passed, report.Failed, report.Warnings)

	for _, check := range report.Checks {
		if check.Status == models.CheckPassed && !verbose {
			continue
		}
		field := ""
		if check.Field != "" {
			field = "." + check.Field
		}
		c.io.Printf("  [%s] %s %s%s: %s\n", check.Status, check.Type, check.ItemID, field, check.Message)
	}
}

func (c *Cli) newRepairCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "repair <collection>",
		Short:   "Re-stamp stale checksums of records that still decode",
		Args:    cobra.ExactArgs(1),
		PreRunE: c.prepare,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.validator.Repair(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if c.opts.JSON {
				return c.printJSON(result)
			}

			c.io.Printf("Repaired: %d\n", len(result.Repaired))
			for _, key := range result.Repaired {
				c.io.Printf("  %s\n", key)
			}
			if len(result.Unrepairable) > 0 {
				c.io.Printf("Unrepairable: %d\n", len(result.Unrepairable))
				for _, key := range result.Unrepairable {
					c.io.Printf("  %s\n", key)
				}
			}
			return nil
		},
	}
}

// registerRules registers the declarative rules from config
func registerRules(v *integrity.Validator, collections map[string]config.CollectionRules) error {
	for collection, rules := range collections {
		if len(rules.Fields) > 0 {
			fields, err := buildFields(rules.Fields)
			if err != nil {
				return fmt.Errorf("invalid schema for %s: %w", collection, err)
			}
			if err := v.RegisterSchema(collection, integrity.Schema{Fields: fields}); err != nil {
				return fmt.Errorf("invalid schema for %s: %w", collection, err)
			}
		}

		if len(rules.References) > 0 {
			refs := make([]integrity.ReferenceRule, 0, len(rules.References))
			for _, ref := range rules.References {
				refs = append(refs, integrity.ReferenceRule{
					Field:                ref.Field,
					ReferencedCollection: ref.Collection,
					ReferencedField:      ref.Target,
					Required:             ref.Required,
				})
			}
			v.RegisterReferenceRules(collection, refs)
		}
	}

	return nil
}

func buildFields(configs []config.FieldConfig) ([]integrity.Field, error) {
	fields := make([]integrity.Field, 0, len(configs))
	for i := range configs {
		field, err := buildField(&configs[i])
		if err != nil {
			return nil, err
		}
		fields = append(fields, *field)
	}
	return fields, nil
}

func buildField(fc *config.FieldConfig) (*integrity.Field, error) {
	kind, err := integrity.ParseKind(fc.Type)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", fc.Name, err)
	}

	field := &integrity.Field{
		Name:     fc.Name,
		Kind:     kind,
		Required: fc.Required,
		Min:      fc.Min,
		Max:      fc.Max,
		Enum:     fc.Enum,
	}

	if fc.Pattern != "" {
		field.Pattern, err = regexp.Compile(fc.Pattern)
		if err != nil {
			return nil, fmt.Errorf("field %q: invalid pattern: %w", fc.Name, err)
		}
	}

	if len(fc.Fields) > 0 {
		field.Fields, err = buildFields(fc.Fields)
		if err != nil {
			return nil, err
		}
	}

	if fc.Items != nil {
		field.Items, err = buildField(fc.Items)
		if err != nil {
			return nil, err
		}
	}

	return field, nil
}
