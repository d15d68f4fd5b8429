package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewShopCommand creates the shop command
func NewShopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Show shop information",
		Long:  "Display information about the shop the session is bound to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			shop, err := client.GetShop(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch shop: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(shop)
			case OutputFormatYAML:
				return outputYAML(shop)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.FormatInt(shop.ID, 10))
				_ = table.Append("Name", shop.Name)
				_ = table.Append("Domain", shop.Domain)
				_ = table.Append("Email", shop.Email)
				_ = table.Append("Currency", shop.Currency)
				_ = table.Append("Plan", shop.PlanName)
				_ = table.Append("Created", formatTime(shop.CreatedAt))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}
