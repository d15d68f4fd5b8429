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

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
		Long:    "List, search, and manage shop customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersSearchCommand())
	cmd.AddCommand(newCustomersCountCommand())
	cmd.AddCommand(newCustomersDeleteCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		allPages   bool
		limit      int
		sinceID    int64
		filterExpr string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List shop customers with optional client-side filtering",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := shopapi.NewQueryParams().WithLimit(limit)

			if sinceID > 0 {
				params.WithSinceID(sinceID)
			}

			customers, err := fetchCustomers(ctx, client, params, allPages)
			if err != nil {
				return err
			}

			customers, err = applyFilter(filterExpr, customers)
			if err != nil {
				return err
			}

			return outputCustomersList(customers)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().Int64Var(&sinceID, "since-id", 0, "only customers after the given id")
	cmd.Flags().StringVar(&filterExpr, "filter", "", "filter expression, e.g. 'orders_count > 5'")

	return cmd
}

func fetchCustomers(ctx context.Context, client shopapi.Client, params *shopapi.QueryParams, allPages bool) ([]shopapi.Customer, error) {
	if allPages {
		customers, err := shopapi.FetchAllPages(ctx, client.Customers().List, params)
		if err != nil {
			return nil, fmt.Errorf("failed to list customers: %w", err)
		}

		return customers, nil
	}

	customers, _, err := client.Customers().List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

func outputCustomersList(customers []shopapi.Customer) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return outputJSON(customers)
	case OutputFormatYAML:
		return outputYAML(customers)
	default:
		return outputCustomersTable(customers)
	}
}

func outputCustomersTable(customers []shopapi.Customer) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Email", "Name", "Orders", "Total Spent", "Tags")

	for _, customer := range customers {
		name := customer.FirstName
		if customer.LastName != "" {
			name += " " + customer.LastName
		}

		_ = table.Append(
			strconv.FormatInt(customer.ID, 10),
			customer.Email,
			name,
			strconv.FormatInt(customer.OrdersCount, 10),
			customer.TotalSpent,
			customer.Tags,
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid customer id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get customer: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatYAML:
				return outputYAML(customer)
			default:
				return outputJSON(customer)
			}
		},
	}
}

func newCustomersSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search customers",
		Long:  "Search customers by a platform query, e.g. 'email:ada@example.com'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			customers, _, err := client.Customers().Search(context.Background(), args[0], nil)
			if err != nil {
				return fmt.Errorf("failed to search customers: %w", err)
			}

			return outputCustomersList(customers)
		},
	}
}

func newCustomersCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			count, err := client.Customers().Count(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to count customers: %w", err)
			}

			fmt.Println(count)

			return nil
		},
	}
}

func newCustomersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CUSTOMER_ID",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid customer id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			if _, err := client.Customers().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete customer: %w", err)
			}

			fmt.Printf("Customer %d deleted\n", id)

			return nil
		},
	}
}
