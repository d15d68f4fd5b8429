package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/merchkit-io/shopapi-client/internal/constants"
	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewPriceRulesCommand creates the price-rules command group.
func NewPriceRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "price-rules",
		Aliases: []string{"price-rule"},
		Short:   "Manage price rules",
		Long:    "List and manage discount price rules",
	}

	cmd.AddCommand(newPriceRulesListCommand())
	cmd.AddCommand(newPriceRulesGetCommand())
	cmd.AddCommand(newPriceRulesDeleteCommand())

	return cmd
}

func newPriceRulesListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List price rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := shopapi.NewQueryParams().WithLimit(limit)

			rules, _, err := client.PriceRules().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list price rules: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(rules)
			case OutputFormatYAML:
				return outputYAML(rules)
			default:
				return outputPriceRulesTable(rules)
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")

	return cmd
}

func outputPriceRulesTable(rules []shopapi.PriceRule) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Type", "Value", "Target", "Starts")

	for _, rule := range rules {
		_ = table.Append(
			strconv.FormatInt(rule.ID, 10),
			rule.Title,
			rule.ValueType,
			rule.Value,
			rule.TargetType,
			formatTime(rule.StartsAt),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newPriceRulesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get RULE_ID",
		Short: "Get a price rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid price rule id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			rule, err := client.PriceRules().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get price rule: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatYAML:
				return outputYAML(rule)
			default:
				return outputJSON(rule)
			}
		},
	}
}

func newPriceRulesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete RULE_ID",
		Short: "Delete a price rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid price rule id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			if _, err := client.PriceRules().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete price rule: %w", err)
			}

			fmt.Printf("Price rule %d deleted\n", id)

			return nil
		},
	}
}
