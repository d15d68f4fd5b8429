package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/merchkit-io/shopapi-client/pkg/shopapi"
	"github.com/merchkit-io/shopapi-client/pkg/shopclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		store      string
		token      string
		apiKey     string
		apiVersion string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to a store",
		Long:  "Authenticate against a store's admin API and persist the credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get store host
			if store == "" {
				store = viper.GetString("store")
			}

			if store == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Store host: ")
				store, _ = reader.ReadString('\n')
				store = strings.TrimSpace(store)
			}

			if store == "" {
				return fmt.Errorf("store host is required")
			}

			config := &shopapi.Config{
				Store:      store,
				APIVersion: apiVersion,
			}

			// Determine authentication method
			if apiKey != "" {
				fmt.Print("API password: ")
				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				fmt.Println()

				config.APIKey = apiKey
				config.Password = string(bytePassword)
			} else {
				if token == "" {
					fmt.Print("Access token: ")
					byteToken, err := term.ReadPassword(int(syscall.Stdin))
					if err != nil {
						return fmt.Errorf("failed to read token: %w", err)
					}
					fmt.Println()

					token = string(byteToken)
				}

				config.AccessToken = token
			}

			// Create client
			client, err := shopclient.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Test connection by fetching the shop
			ctx := context.Background()
			shop, err := client.GetShop(ctx)
			if err != nil {
				return fmt.Errorf("failed to connect to store: %w", err)
			}

			// Persist credentials
			viper.Set("store", client.Session().Store())
			viper.Set("api_version", client.Session().APIVersion())
			viper.Set("token", config.AccessToken)
			viper.Set("api_key", config.APIKey)
			viper.Set("password", config.Password)

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in to %s (%s)\n", shop.Name, client.Session().Store())
			fmt.Printf("API version: %s\n", client.Session().APIVersion())

			return nil
		},
	}

	// Add flags
	cmd.Flags().StringVarP(&store, "store", "s", "", "store host (e.g. acme.myshopplatform.com)")
	cmd.Flags().StringVarP(&token, "token", "t", "", "access token")
	cmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "private app API key (password is prompted)")
	cmd.Flags().StringVar(&apiVersion, "api-version", "", "dated API version (e.g. 2024-01)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from the store",
		Long:  "Clear stored credentials for the current store",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Clear authentication data
			viper.Set("token", "")
			viper.Set("api_key", "")
			viper.Set("password", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")
			return nil
		},
	}
}
