package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/merchkit-io/shopapi-client/internal/constants"
	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
	"github.com/nats-io/nats.go"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewEventsCommand creates the events command group.
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event"},
		Short:   "Inspect shop events",
		Long:    "List shop events or relay them to a NATS subject",
	}

	cmd.AddCommand(newEventsListCommand())
	cmd.AddCommand(newEventsGetCommand())
	cmd.AddCommand(newEventsCountCommand())
	cmd.AddCommand(newEventsRelayCommand())

	return cmd
}

func newEventsListCommand() *cobra.Command {
	var (
		limit   int
		sinceID int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := shopapi.NewQueryParams().WithLimit(limit)
			if sinceID > 0 {
				params.WithSinceID(sinceID)
			}

			events, _, err := client.Events().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(events)
			case OutputFormatYAML:
				return outputYAML(events)
			default:
				return outputEventsTable(events)
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultPageSize, "results per page")
	cmd.Flags().Int64Var(&sinceID, "since-id", 0, "only events after the given id")

	return cmd
}

func outputEventsTable(events []shopapi.Event) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Subject", "Verb", "Message", "Created")

	for _, event := range events {
		subject := fmt.Sprintf("%s/%d", event.SubjectType, event.SubjectID)
		_ = table.Append(
			strconv.FormatInt(event.ID, 10),
			subject,
			event.Verb,
			event.Message,
			formatTime(event.CreatedAt),
		)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newEventsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EVENT_ID",
		Short: "Get an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid event id %q: %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			event, err := client.Events().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get event: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatYAML:
				return outputYAML(event)
			default:
				return outputJSON(event)
			}
		},
	}
}

func newEventsCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Count events",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			count, err := client.Events().Count(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("failed to count events: %w", err)
			}

			fmt.Println(count)

			return nil
		},
	}
}

func newEventsRelayCommand() *cobra.Command {
	var (
		natsURL  string
		subject  string
		interval time.Duration
		sinceID  int64
	)

	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Relay events to NATS",
		Long: `Poll the events endpoint and publish each new event as JSON to a
NATS subject. The relay tracks the last seen event id and runs until
interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if natsURL == "" {
				return constants.ErrNATSURLRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			conn, err := nats.Connect(natsURL, nats.Name("shopapi-events-relay"))
			if err != nil {
				return fmt.Errorf("failed to connect to NATS: %w", err)
			}
			defer func() {
				if err := conn.Drain(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: draining NATS connection: %v\n", err)
				}
			}()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Relaying events to %s on subject %q\n", natsURL, subject)

			return relayEvents(ctx, client, conn, subject, interval, sinceID)
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats-url", nats.DefaultURL, "NATS server URL")
	cmd.Flags().StringVar(&subject, "subject", "shop.events", "NATS subject to publish to")
	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "polling interval")
	cmd.Flags().Int64Var(&sinceID, "since-id", 0, "start after the given event id")

	return cmd
}

// relayEvents polls for new events and publishes them until ctx is done.
func relayEvents(ctx context.Context, client shopapi.Client, conn *nats.Conn, subject string, interval time.Duration, sinceID int64) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		published, lastID, err := publishNewEvents(ctx, client, conn, subject, sinceID)
		if err != nil {
			return err
		}

		if published > 0 {
			sinceID = lastID
			fmt.Printf("Published %d events (last id %d)\n", published, lastID)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func publishNewEvents(ctx context.Context, client shopapi.Client, conn *nats.Conn, subject string, sinceID int64) (int, int64, error) {
	params := shopapi.NewQueryParams()
	if sinceID > 0 {
		params.WithSinceID(sinceID)
	}

	events, err := shopapi.FetchAllPages(ctx, client.Events().List, params)
	if err != nil {
		return 0, sinceID, fmt.Errorf("failed to fetch events: %w", err)
	}

	published := 0
	lastID := sinceID

	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return published, lastID, fmt.Errorf("encoding event %d: %w", event.ID, err)
		}

		if err := conn.Publish(subject, payload); err != nil {
			return published, lastID, fmt.Errorf("publishing event %d: %w", event.ID, err)
		}

		published++

		if event.ID > lastID {
			lastID = event.ID
		}
	}

	return published, lastID, nil
}
