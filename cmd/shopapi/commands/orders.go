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

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage orders",
		Long:    "List and manage shop orders",
	}

	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersGetCommand())
	cmd.AddCommand(newOrdersCountCommand())
	cmd.AddCommand(newOrdersActionCommand("close", "Close an order"))
	cmd.AddCommand(newOrdersActionCommand("open", "Re-open a closed order"))
	cmd.AddCommand(newOrdersActionCommand("cancel", "Cancel an order"))

	return cmd
}

func newOrdersListCommand() *cobra.Command {
	var (
		allPages   bool
		limit      int
		status     string
		filterExpr string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Long:  "List shop orders with optional client-side filtering",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := shopapi.NewQueryParams().WithLimit(limit)

			if status != "" {
				params.WithStatus(status)
			}

			orders, err := fetchOrders(ctx, client, params, allPages)
			if err != nil {
				return err
			}

			orders, err = applyFilter(filterExpr, orders)
			if err != nil {
				return err
			}

			return outputOrdersList(orders)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&status, "status", "", "filter by order status (open, closed, cancelled, any)")
	cmd.Flags().StringVar(&filterExpr, "filter", "", "filter expression, e.g. 'financial_status == \"paid\"'")

	return cmd
}

func fetchOrders(ctx context.Context, client shopapi.Client, params *shopapi.QueryParams, allPages bool) ([]shopapi.Order, error) {
	if allPages {
		orders, err := shopapi.FetchAllPages(ctx, client.Orders().List, params)
		if err != nil {
			return nil, fmt.Errorf("failed to list orders: %w", err)
		}

		return orders, nil
	}

	orders, _, err := client.Orders().List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func outputOrdersList(orders []shopapi.Order) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(orders)
	case OutputFormatYAML:
		return outputYAML(orders)
	default:
		return outputOrdersTable(orders)
	}
}

func outputOrdersTable(orders []shopapi.Order) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Total", "Financial", "Fulfillment", "Created")

	for _, order := range orders {
		_ = table.Append(
			strconv.FormatInt(order.ID, 10),
			order.Name,
			order.Email,
			order.TotalPrice+" "+order.Currency,
			order.FinancialStatus,
			order.FulfillmentStatus,
			formatTime(order.CreatedAt),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORDER_ID",
		Short: "Get an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			order, err := client.Orders().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get order: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatYAML:
				return outputYAML(order)
			default:
				return outputJSON(order)
			}
		},
	}
}

func newOrdersCountCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := shopapi.NewQueryParams()
			if status != "" {
				params.WithStatus(status)
			}

			count, err := client.Orders().Count(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to count orders: %w", err)
			}

			fmt.Println(count)

			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by order status")

	return cmd
}

func newOrdersActionCommand(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " ORDER_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid order id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var order *shopapi.Order

			switch action {
			case "close":
				order, err = client.Orders().Close(ctx, id)
			case "open":
				order, err = client.Orders().Open(ctx, id)
			case "cancel":
				order, err = client.Orders().Cancel(ctx, id)
			}

			if err != nil {
				return fmt.Errorf("failed to %s order: %w", action, err)
			}

			past := map[string]string{"close": "closed", "open": "opened", "cancel": "cancelled"}
			fmt.Printf("Order %s %s\n", order.Name, past[action])

			return nil
		},
	}
}
