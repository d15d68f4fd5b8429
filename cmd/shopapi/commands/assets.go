package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewAssetsCommand creates the assets command group.
func NewAssetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assets",
		Aliases: []string{"asset"},
		Short:   "Manage theme assets",
		Long:    "List and manage theme assets, addressed by key within a theme",
	}

	cmd.AddCommand(newAssetsListCommand())
	cmd.AddCommand(newAssetsGetCommand())
	cmd.AddCommand(newAssetsDeleteCommand())

	return cmd
}

func newAssetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list THEME_ID",
		Short: "List assets of a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			themeID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid theme id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			assets, _, err := client.Assets().List(context.Background(), themeID)
			if err != nil {
				return fmt.Errorf("failed to list assets: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(assets)
			case OutputFormatYAML:
				return outputYAML(assets)
			default:
				return outputAssetsTable(assets)
			}
		},
	}
}

func outputAssetsTable(assets []shopapi.Asset) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Key", "Content Type", "Updated")

	for _, asset := range assets {
		_ = table.Append(asset.Key, asset.ContentType, formatTime(asset.UpdatedAt))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newAssetsGetCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "get THEME_ID KEY",
		Short: "Get a theme asset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			themeID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid theme id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			asset, err := client.Assets().Get(context.Background(), themeID, args[1])
			if err != nil {
				return fmt.Errorf("failed to get asset: %w", err)
			}

			if raw {
				fmt.Fprint(os.Stdout, asset.Value)

				return nil
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatYAML:
				return outputYAML(asset)
			default:
				return outputJSON(asset)
			}
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the asset value only")

	return cmd
}

func newAssetsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete THEME_ID KEY",
		Short: "Delete a theme asset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			themeID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid theme id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			if _, err := client.Assets().Delete(context.Background(), themeID, args[1]); err != nil {
				return fmt.Errorf("failed to delete asset: %w", err)
			}

			fmt.Printf("Asset %s deleted\n", args[1])

			return nil
		},
	}
}
